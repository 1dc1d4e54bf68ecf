package trace

// Summary aggregates a set of PolicyResults into the cross-policy view the
// final report renders.
type Summary struct {
	Results []PolicyResult

	BestAvgWaiting    string // policy with the lowest average waiting time
	BestAvgTurnaround string // policy with the lowest average turnaround time
	BestUtilization   string // policy with the highest CPU utilization
}

// Summarize computes aggregate statistics over policy results.
// Safe for empty input (returns zero-value fields).
func Summarize(results []PolicyResult) *Summary {
	s := &Summary{Results: results}
	if len(results) == 0 {
		return s
	}

	bestWait, bestTurn, bestUtil := results[0], results[0], results[0]
	for _, r := range results[1:] {
		if r.AvgWaiting < bestWait.AvgWaiting {
			bestWait = r
		}
		if r.AvgTurnaround < bestTurn.AvgTurnaround {
			bestTurn = r
		}
		if r.CPUUtilization > bestUtil.CPUUtilization {
			bestUtil = r
		}
	}
	s.BestAvgWaiting = bestWait.Policy
	s.BestAvgTurnaround = bestTurn.Policy
	s.BestUtilization = bestUtil.Policy

	return s
}
