// Package report renders workload tables, per-tick gantt charts, and the
// cross-policy comparison table. It consumes read-only snapshots and trace
// records; nothing here mutates simulation state.
package report

import (
	"fmt"
	"io"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/trace"
)

// blocksPerLine is the number of gantt-chart blocks rendered per line.
const blocksPerLine = 10

const rule = "++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++++"

// WriteWorkload renders the generated process table.
func WriteWorkload(w io.Writer, procs []*sim.Process) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "++  PID  ++  CPU_BURST_TIME  ++  IO_BURST_TIME  ++  ARRIVAL_TIME  ++  PRIORITY  ++")
	fmt.Fprintln(w, rule)
	for _, p := range procs {
		fmt.Fprintf(w, "++ %5d ++  %14d  ++  %13d  ++  %12d  ++  %8d  ++\n",
			p.PID, p.CPURemaining, p.IORemaining, p.Arrival, p.Priority)
	}
	fmt.Fprintln(w, rule)
}

// WriteGantt renders the per-tick execution trace as a gantt chart,
// blocksPerLine blocks per line.
func WriteGantt(w io.Writer, et *trace.ExecutionTrace) {
	for i, rec := range et.Ticks {
		if rec.Idle {
			fmt.Fprint(w, "[  IDLE  ]")
		} else {
			fmt.Fprintf(w, "[ %6d ]", rec.PID)
		}
		if (i+1)%blocksPerLine == 0 {
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintln(w)
}

// WriteResult renders one policy's final statistics block.
func WriteResult(w io.Writer, r trace.PolicyResult) {
	fmt.Fprintf(w, "-> Execution time: %d\n", r.ElapsedTime+1)
	fmt.Fprintf(w, "-> CPU Utilization: %.3f\n", r.CPUUtilization)
	fmt.Fprintf(w, "-> Average waiting time: %.3f\n", r.AvgWaiting)
	fmt.Fprintf(w, "-> Average turnaround time: %.3f\n", r.AvgTurnaround)
	fmt.Fprintf(w, "-> Max waiting time: %d\n", r.MaxWaiting)
}

// WriteSummary renders the cross-policy comparison table.
func WriteSummary(w io.Writer, s *trace.Summary) {
	fmt.Fprintln(w, "\n# Summary")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "+++++++++++++++++++++++++++++++  CPU Util  ++   Avg WT   ++   Avg TT   ++  Max WT  ++")
	for _, r := range s.Results {
		fmt.Fprintf(w, "++ %-25s ++  %8.3f  ++ %10.3f ++ %10.3f ++ %8d ++\n",
			r.Policy, r.CPUUtilization, r.AvgWaiting, r.AvgTurnaround, r.MaxWaiting)
	}
	fmt.Fprintln(w, rule)
	if s.BestAvgWaiting != "" {
		fmt.Fprintf(w, "-> Lowest average waiting time: %s\n", s.BestAvgWaiting)
		fmt.Fprintf(w, "-> Lowest average turnaround time: %s\n", s.BestAvgTurnaround)
		fmt.Fprintf(w, "-> Highest CPU utilization: %s\n", s.BestUtilization)
	}
}
