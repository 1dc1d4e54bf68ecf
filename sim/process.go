// Process is the unit of work the scheduling policies compete over.
// Every field except PID and Priority mutates as the simulation advances.

package sim

import "fmt"

// Process holds the mutable per-process simulation state. A process is owned
// by exactly one engine collection (job queue, ready, waiting, the running
// slot, or terminated) at any instant; ownership moves between collections on
// tick transitions and is never shared across engines.
type Process struct {
	PID          uint // unique, assigned sequentially from 1
	CPURemaining uint // remaining CPU burst; 0 means terminated
	IORemaining  uint // remaining I/O burst; 0 means no outstanding I/O
	Arrival      uint // tick at which the process enters the ready collection
	Priority     int  // fixed external priority, lower is more urgent

	Waiting    uint // ticks spent in the ready collection
	Turnaround uint // ticks from arrival (inclusive) to termination (inclusive)
}

func (p *Process) String() string {
	return fmt.Sprintf("pid=%d cpu=%d io=%d arrival=%d prio=%d",
		p.PID, p.CPURemaining, p.IORemaining, p.Arrival, p.Priority)
}

// Clone returns an independent copy. Engines must never alias another
// engine's processes, so the shared workload is cloned per engine.
func (p *Process) Clone() *Process {
	c := *p
	return &c
}

// Comparator is a strict total order over processes: it reports whether a
// should be served before b. Every comparator below breaks ties by PID, which
// keeps each ordering deterministic for identical primary keys.
type Comparator func(a, b *Process) bool

// ByShortestJob orders by remaining CPU burst; the SJF ready disciplines.
func ByShortestJob(a, b *Process) bool {
	if a.CPURemaining != b.CPURemaining {
		return a.CPURemaining < b.CPURemaining
	}
	return a.PID < b.PID
}

// ByPriority orders by the fixed priority value, lower first.
func ByPriority(a, b *Process) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.PID < b.PID
}

// ByIORemaining orders by remaining I/O burst; the waiting queue uses this so
// completed I/O surfaces at the top.
func ByIORemaining(a, b *Process) bool {
	if a.IORemaining != b.IORemaining {
		return a.IORemaining < b.IORemaining
	}
	return a.PID < b.PID
}

// ByArrival orders by arrival tick; the job queue uses this so admission only
// ever has to inspect the top.
func ByArrival(a, b *Process) bool {
	if a.Arrival != b.Arrival {
		return a.Arrival < b.Arrival
	}
	return a.PID < b.PID
}
