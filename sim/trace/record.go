// Package trace provides pure-data execution records for scheduling runs.
// It has no dependency on sim/; reporters consume it read-only.
package trace

// TickRecord captures what the CPU did during one tick: either it ran the
// process identified by PID, or it sat idle.
type TickRecord struct {
	Tick uint
	PID  uint
	Idle bool
}

// Ran builds a record for a tick spent executing pid.
func Ran(tick, pid uint) TickRecord {
	return TickRecord{Tick: tick, PID: pid}
}

// IdleTick builds a record for a tick the CPU spent idle.
func IdleTick(tick uint) TickRecord {
	return TickRecord{Tick: tick, Idle: true}
}

// ExecutionTrace collects per-tick records over one engine run.
type ExecutionTrace struct {
	Ticks []TickRecord
}

// Record appends a tick record.
func (et *ExecutionTrace) Record(r TickRecord) {
	et.Ticks = append(et.Ticks, r)
}

// Len returns the number of recorded ticks.
func (et *ExecutionTrace) Len() int {
	return len(et.Ticks)
}

// PolicyResult holds one policy's final statistics for cross-policy
// comparison.
type PolicyResult struct {
	Policy         string
	ElapsedTime    uint
	CPUUtilization float64
	AvgWaiting     float64
	AvgTurnaround  float64
	MaxWaiting     uint
}
