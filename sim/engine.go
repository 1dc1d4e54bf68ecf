// Engine is the per-policy scheduling state machine. It owns five process
// collections and advances the simulation one discrete tick at a time.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim/trace"
)

// DefaultTickBudget bounds a single engine run. Termination is guaranteed for
// any valid workload, so hitting the budget means a broken invariant; Run
// fails with ErrSimulationStalled instead of looping forever.
const DefaultTickBudget = 1 << 20

// Engine simulates one scheduling policy over a private clone of the
// workload. Collections:
//
//	jobQueue:   not-yet-arrived processes, ordered by arrival then PID
//	ready:      dispatchable processes, FIFO or priority per policy
//	waiting:    processes performing I/O, ordered by remaining I/O then PID
//	running:    the at-most-one process holding the CPU
//	terminated: finished processes
//
// Every process belongs to exactly one of these at any instant.
type Engine struct {
	policy Policy

	// Quantum is the round-robin time slice; override before Run to deviate
	// from the default.
	Quantum uint

	jobQueue   *PriorityQueue
	ready      readyQueue
	waiting    *PriorityQueue
	terminated []*Process
	running    *Process

	elapsed     uint
	idle        uint
	numProcess  int
	quantumUsed uint

	interrupts InterruptSource
	trace      *trace.ExecutionTrace

	// TickBudget caps Run; override before Run for pathological workloads.
	TickBudget uint
}

// NewEngine builds an engine for the given policy over its own clones of the
// workload descriptors. The caller's processes are never mutated. interrupts
// feeds the probabilistic I/O branches; pass NeverInterrupt to disable them.
func NewEngine(policy Policy, workload []*Process, interrupts InterruptSource) (*Engine, error) {
	if _, err := ParsePolicy(string(policy)); err != nil {
		return nil, err
	}
	if len(workload) == 0 {
		return nil, fmt.Errorf("%w: no processes", ErrInvalidWorkload)
	}

	e := &Engine{
		policy:     policy,
		Quantum:    DefaultQuantum,
		jobQueue:   NewPriorityQueue(ByArrival),
		ready:      newReadyQueue(policy),
		waiting:    NewPriorityQueue(ByIORemaining),
		numProcess: len(workload),
		interrupts: interrupts,
		trace:      &trace.ExecutionTrace{},
		TickBudget: DefaultTickBudget,
	}
	for _, p := range workload {
		if p.CPURemaining == 0 {
			return nil, fmt.Errorf("%w: process %d has zero CPU burst", ErrInvalidWorkload, p.PID)
		}
		e.jobQueue.Push(p.Clone())
	}
	return e, nil
}

// Tick advances the simulation by exactly one time unit and reports whether
// every process has terminated. The step order matters: later steps observe
// earlier steps' mutations within the same tick.
func (e *Engine) Tick() bool {
	// 1. Admission: processes whose arrival tick is now move to ready.
	for e.jobQueue.Len() > 0 && e.jobQueue.Peek().Arrival == e.elapsed {
		e.ready.push(e.mustPop(e.jobQueue))
	}

	// 2. I/O completion: processes whose I/O has drained move to ready.
	for e.waiting.Len() > 0 && e.waiting.Peek().IORemaining == 0 {
		e.ready.push(e.mustPop(e.waiting))
	}

	// 3. Dispatch.
	if e.running == nil && e.ready.len() > 0 {
		e.running = e.mustReadyPop()
	}

	// 4. Preemption: under the preemptive policies, a strictly better ready
	// candidate evicts the running process back into the ready queue.
	if e.policy.Preemptive() && e.running != nil && e.ready.len() > 0 &&
		e.ready.prio.Better(e.ready.prio.Peek(), e.running) {
		evicted := e.running
		e.ready.push(evicted)
		e.running = e.mustReadyPop()
		logrus.Debugf("[%s] tick %d: pid %d preempted by pid %d", e.policy, e.elapsed, evicted.PID, e.running.PID)
	}

	// 5. Aging: everything still in ready waited this tick.
	for _, p := range e.ready.items() {
		p.Waiting++
		p.Turnaround++
	}

	// 6. I/O progress.
	for _, p := range e.waiting.Items() {
		if p.IORemaining > 0 {
			p.IORemaining--
		}
		p.Turnaround++
	}

	// 7. Spontaneous I/O return: each waiting process may abandon its I/O on
	// a positive draw, provided more than one tick of CPU work remains. The
	// survivors land in a rebuilt waiting queue. This reproduces the original
	// model's early-return quirk; see DESIGN.md.
	if e.waiting.Len() > 0 {
		fresh := NewPriorityQueue(ByIORemaining)
		for e.waiting.Len() > 0 {
			p := e.mustPop(e.waiting)
			if e.interrupts.Draw() && p.CPURemaining > 1 {
				e.ready.push(p)
			} else {
				fresh.Push(p)
			}
		}
		e.waiting = fresh
	}

	// 8. CPU execution.
	if p := e.running; p != nil {
		p.CPURemaining--
		p.Turnaround++
		e.trace.Record(trace.Ran(e.elapsed, p.PID))

		switch {
		case p.CPURemaining == 0:
			e.terminated = append(e.terminated, p)
			e.running = nil
			e.quantumUsed = 0
			if len(e.terminated) == e.numProcess {
				logrus.Debugf("[%s] tick %d: all %d processes terminated", e.policy, e.elapsed, e.numProcess)
				// The terminating tick is counted but elapsed is not
				// advanced past it; the utilization formula accounts
				// for this.
				return true
			}

		case p.IORemaining > 0 && (p.CPURemaining == 1 || e.interrupts.Draw()):
			// I/O request: forced on the last-but-one CPU tick, otherwise
			// probabilistic.
			e.waiting.Push(p)
			e.running = nil
			e.quantumUsed = 0

		default:
			if e.policy == RoundRobin {
				e.quantumUsed++
				if e.quantumUsed == e.Quantum {
					e.ready.push(p)
					e.running = nil
					e.quantumUsed = 0
				}
			}
		}
	} else {
		e.idle++
		e.trace.Record(trace.IdleTick(e.elapsed))
	}

	// 9. Advance the clock.
	e.elapsed++
	return false
}

// Run ticks the engine to completion, failing with ErrSimulationStalled if
// the tick budget is exhausted first.
func (e *Engine) Run() error {
	for budget := e.TickBudget; budget > 0; budget-- {
		if e.Tick() {
			return nil
		}
	}
	return fmt.Errorf("%w: %s did not terminate within %d ticks",
		ErrSimulationStalled, e.policy.Name(), e.TickBudget)
}

// Policy returns the engine's scheduling policy.
func (e *Engine) Policy() Policy { return e.policy }

// Elapsed returns the engine clock: the index of the tick about to execute,
// or of the terminating tick once the run has ended.
func (e *Engine) Elapsed() uint { return e.elapsed }

// IdleTime returns the number of ticks the CPU spent idle.
func (e *Engine) IdleTime() uint { return e.idle }

// Trace returns the per-tick execution trace recorded so far.
func (e *Engine) Trace() *trace.ExecutionTrace { return e.trace }

// Terminated returns the finished processes. Read-only; meaningful as a
// complete set only after Run.
func (e *Engine) Terminated() []*Process { return e.terminated }

// CollectionCounts reports how many processes each engine collection holds.
type CollectionCounts struct {
	Job        int
	Ready      int
	Waiting    int
	Running    int
	Terminated int
}

// Total sums the counts across all collections.
func (c CollectionCounts) Total() int {
	return c.Job + c.Ready + c.Waiting + c.Running + c.Terminated
}

// Counts snapshots the per-collection occupancy. Process ownership is
// exclusive, so Total always equals the workload size.
func (e *Engine) Counts() CollectionCounts {
	c := CollectionCounts{
		Job:        e.jobQueue.Len(),
		Ready:      e.ready.len(),
		Waiting:    e.waiting.Len(),
		Terminated: len(e.terminated),
	}
	if e.running != nil {
		c.Running = 1
	}
	return c
}

// Stats evaluates the final statistics over the terminated collection.
func (e *Engine) Stats() (Stats, error) {
	return EvaluateStats(e.terminated, e.elapsed, e.idle)
}

// Result packages the final statistics as a PolicyResult for reporting.
func (e *Engine) Result() (trace.PolicyResult, error) {
	s, err := e.Stats()
	if err != nil {
		return trace.PolicyResult{}, err
	}
	return trace.PolicyResult{
		Policy:         e.policy.Name(),
		ElapsedTime:    s.ElapsedTime,
		CPUUtilization: s.CPUUtilization,
		AvgWaiting:     s.AvgWaiting,
		AvgTurnaround:  s.AvgTurnaround,
		MaxWaiting:     s.MaxWaiting,
	}, nil
}

// mustPop pops from a guarded priority queue. All engine pops are gated on
// emptiness checks, so a failure here is a broken invariant worth crashing
// on.
func (e *Engine) mustPop(pq *PriorityQueue) *Process {
	p, err := pq.Pop()
	if err != nil {
		panic(fmt.Sprintf("engine %s: %v", e.policy, err))
	}
	return p
}

func (e *Engine) mustReadyPop() *Process {
	p, err := e.ready.pop()
	if err != nil {
		panic(fmt.Sprintf("engine %s: %v", e.policy, err))
	}
	return p
}
