package sim

import "errors"

// Sentinel errors surfaced by the simulation packages. Callers match them
// with errors.Is; the engine wraps them with context via fmt.Errorf and %w.
var (
	// ErrEmptyQueue is returned by Pop/Dequeue on an empty collection. Inside
	// a running engine every pop is guarded, so observing it there means a
	// broken invariant, not a recoverable condition.
	ErrEmptyQueue = errors.New("pop from empty queue")

	// ErrInvalidPolicy reports an unrecognized scheduling policy tag.
	ErrInvalidPolicy = errors.New("invalid scheduling policy")

	// ErrInvalidWorkload reports a workload no engine can run: zero
	// processes, or a process with no CPU requirement.
	ErrInvalidWorkload = errors.New("invalid workload")

	// ErrSimulationStalled reports that the defensive tick budget was
	// exceeded before every process terminated.
	ErrSimulationStalled = errors.New("simulation stalled")
)
