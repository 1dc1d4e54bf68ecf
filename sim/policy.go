// Scheduling policy tags and the ready-queue discipline each one implies.

package sim

import "fmt"

// Policy identifies one of the six supported scheduling algorithms.
type Policy string

const (
	FCFS                  Policy = "fcfs"
	NonPreemptiveSJF      Policy = "sjf"
	PreemptiveSJF         Policy = "preemptive-sjf"
	NonPreemptivePriority Policy = "priority"
	PreemptivePriority    Policy = "preemptive-priority"
	RoundRobin            Policy = "round-robin"
)

// DefaultQuantum is the fixed round-robin time slice in ticks.
const DefaultQuantum = 10

// AllPolicies lists every supported policy in canonical comparison order.
var AllPolicies = []Policy{
	FCFS,
	NonPreemptiveSJF,
	PreemptiveSJF,
	NonPreemptivePriority,
	PreemptivePriority,
	RoundRobin,
}

// Name returns the human-readable policy name used in reports.
func (p Policy) Name() string {
	switch p {
	case FCFS:
		return "FCFS"
	case NonPreemptiveSJF:
		return "Non-Preemptive SJF"
	case PreemptiveSJF:
		return "Preemptive SJF"
	case NonPreemptivePriority:
		return "Non-Preemptive Priority"
	case PreemptivePriority:
		return "Preemptive Priority"
	case RoundRobin:
		return "Round Robin"
	}
	return string(p)
}

// Preemptive reports whether the policy may evict the running process when a
// better candidate sits in the ready queue.
func (p Policy) Preemptive() bool {
	return p == PreemptiveSJF || p == PreemptivePriority
}

// readyComparator returns the comparator ordering the ready queue, or nil for
// the FIFO disciplines.
func (p Policy) readyComparator() Comparator {
	switch p {
	case NonPreemptiveSJF, PreemptiveSJF:
		return ByShortestJob
	case NonPreemptivePriority, PreemptivePriority:
		return ByPriority
	}
	return nil
}

// ParsePolicy resolves a policy tag, accepting the canonical lowercase names.
func ParsePolicy(s string) (Policy, error) {
	for _, p := range AllPolicies {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
}

// readyQueue is the tagged ready-discipline variant: exactly one of fifo or
// prio is non-nil, resolved once at engine construction. The original kept a
// void* field reinterpreted per policy flag at every call site.
type readyQueue struct {
	fifo *FIFOQueue
	prio *PriorityQueue
}

func newReadyQueue(p Policy) readyQueue {
	if cmp := p.readyComparator(); cmp != nil {
		return readyQueue{prio: NewPriorityQueue(cmp)}
	}
	return readyQueue{fifo: &FIFOQueue{}}
}

func (r readyQueue) push(p *Process) {
	if r.prio != nil {
		r.prio.Push(p)
		return
	}
	r.fifo.Enqueue(p)
}

func (r readyQueue) pop() (*Process, error) {
	if r.prio != nil {
		return r.prio.Pop()
	}
	return r.fifo.Dequeue()
}

func (r readyQueue) peek() *Process {
	if r.prio != nil {
		return r.prio.Peek()
	}
	return r.fifo.Front()
}

func (r readyQueue) len() int {
	if r.prio != nil {
		return r.prio.Len()
	}
	return r.fifo.Len()
}

func (r readyQueue) items() []*Process {
	if r.prio != nil {
		return r.prio.Items()
	}
	return r.fifo.Items()
}
