package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/trace"
)

func TestWriteWorkload_OneRowPerProcess(t *testing.T) {
	var buf bytes.Buffer
	WriteWorkload(&buf, []*sim.Process{
		{PID: 1, CPURemaining: 12, IORemaining: 3, Arrival: 0, Priority: -7},
		{PID: 2, CPURemaining: 4, IORemaining: 0, Arrival: 5, Priority: 20},
	})

	out := buf.String()
	assert.Contains(t, out, "PID")
	assert.Contains(t, out, "CPU_BURST_TIME")
	assert.Contains(t, out, "-7")
	assert.Contains(t, out, "20")
	// three rules, one header, one row per process
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 6)
}

func TestWriteGantt_RendersRunAndIdleBlocks(t *testing.T) {
	et := &trace.ExecutionTrace{}
	et.Record(trace.Ran(0, 1))
	et.Record(trace.IdleTick(1))
	et.Record(trace.Ran(2, 1))

	var buf bytes.Buffer
	WriteGantt(&buf, et)

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "[      1 ]"))
	assert.Equal(t, 1, strings.Count(out, "[  IDLE  ]"))
}

func TestWriteGantt_BreaksLineEveryTenBlocks(t *testing.T) {
	et := &trace.ExecutionTrace{}
	for i := uint(0); i < 25; i++ {
		et.Record(trace.Ran(i, 1))
	}

	var buf bytes.Buffer
	WriteGantt(&buf, et)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, 10, strings.Count(lines[0], "["))
	assert.Equal(t, 10, strings.Count(lines[1], "["))
	assert.Equal(t, 5, strings.Count(lines[2], "["))
}

func TestWriteResult_ShowsExecutionTimePlusOne(t *testing.T) {
	// The engine clock stops on the terminating tick; the rendered execution
	// time counts that tick.
	var buf bytes.Buffer
	WriteResult(&buf, trace.PolicyResult{
		Policy:         "FCFS",
		ElapsedTime:    4,
		CPUUtilization: 1.0,
		AvgWaiting:     1.5,
		AvgTurnaround:  4.0,
		MaxWaiting:     3,
	})

	out := buf.String()
	assert.Contains(t, out, "Execution time: 5")
	assert.Contains(t, out, "CPU Utilization: 1.000")
	assert.Contains(t, out, "Average waiting time: 1.500")
	assert.Contains(t, out, "Average turnaround time: 4.000")
	assert.Contains(t, out, "Max waiting time: 3")
}

func TestWriteSummary_OneRowPerPolicyAndWinners(t *testing.T) {
	results := []trace.PolicyResult{
		{Policy: "FCFS", CPUUtilization: 0.9, AvgWaiting: 10, AvgTurnaround: 20, MaxWaiting: 30},
		{Policy: "Round Robin", CPUUtilization: 0.8, AvgWaiting: 7, AvgTurnaround: 15, MaxWaiting: 12},
	}

	var buf bytes.Buffer
	WriteSummary(&buf, trace.Summarize(results))

	out := buf.String()
	assert.Contains(t, out, "FCFS")
	assert.Contains(t, out, "Round Robin")
	assert.Contains(t, out, "Lowest average waiting time: Round Robin")
	assert.Contains(t, out, "Highest CPU utilization: FCFS")
}
