package sim

// Stats holds the aggregate performance figures derived from one engine run.
type Stats struct {
	ElapsedTime    uint    // engine clock at termination
	CPUUtilization float64 // fraction of ticks the CPU was busy, in [0,1]
	AvgWaiting     float64
	AvgTurnaround  float64
	MaxWaiting     uint
}

// EvaluateStats derives final statistics from the terminated collection.
// elapsed is the engine clock at termination, which does not count the
// terminating tick; the +1 in the utilization numerator compensates.
// Fails with ErrInvalidWorkload when no process terminated.
func EvaluateStats(terminated []*Process, elapsed, idle uint) (Stats, error) {
	n := len(terminated)
	if n == 0 {
		return Stats{}, ErrInvalidWorkload
	}

	var sumWaiting, sumTurnaround, maxWaiting uint
	for _, p := range terminated {
		sumWaiting += p.Waiting
		sumTurnaround += p.Turnaround
		if p.Waiting > maxWaiting {
			maxWaiting = p.Waiting
		}
	}

	// A run that terminates on its very first tick leaves elapsed at 0; the
	// CPU never idled, so utilization is 1 by definition.
	utilization := 1.0
	if elapsed > 0 {
		utilization = float64(elapsed+1-idle) / float64(elapsed)
	}
	if utilization > 1 {
		utilization = 1
	}
	if utilization < 0 {
		utilization = 0
	}

	return Stats{
		ElapsedTime:    elapsed,
		CPUUtilization: utilization,
		AvgWaiting:     float64(sumWaiting) / float64(n),
		AvgTurnaround:  float64(sumTurnaround) / float64(n),
		MaxWaiting:     maxWaiting,
	}, nil
}
