package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePolicy_AllCanonicalNames(t *testing.T) {
	for _, p := range AllPolicies {
		got, err := ParsePolicy(string(p))
		if err != nil {
			t.Errorf("ParsePolicy(%q): %v", p, err)
		}
		if got != p {
			t.Errorf("ParsePolicy(%q) = %q", p, got)
		}
	}
}

func TestParsePolicy_Unknown_ReturnsErrInvalidPolicy(t *testing.T) {
	_, err := ParsePolicy("lottery")
	if !errors.Is(err, ErrInvalidPolicy) {
		t.Errorf("ParsePolicy(lottery): err = %v, want ErrInvalidPolicy", err)
	}
}

func TestPolicy_Preemptive(t *testing.T) {
	assert.False(t, FCFS.Preemptive())
	assert.False(t, NonPreemptiveSJF.Preemptive())
	assert.True(t, PreemptiveSJF.Preemptive())
	assert.False(t, NonPreemptivePriority.Preemptive())
	assert.True(t, PreemptivePriority.Preemptive())
	assert.False(t, RoundRobin.Preemptive())
}

func TestNewReadyQueue_DisciplinePerPolicy(t *testing.T) {
	// FCFS and round-robin get a FIFO discipline, the rest a priority queue.
	for _, p := range []Policy{FCFS, RoundRobin} {
		r := newReadyQueue(p)
		if r.fifo == nil || r.prio != nil {
			t.Errorf("%s: ready discipline is not FIFO", p)
		}
	}
	for _, p := range []Policy{NonPreemptiveSJF, PreemptiveSJF, NonPreemptivePriority, PreemptivePriority} {
		r := newReadyQueue(p)
		if r.prio == nil || r.fifo != nil {
			t.Errorf("%s: ready discipline is not a priority queue", p)
		}
	}
}

func TestReadyQueue_PriorityDiscipline_OrdersByComparator(t *testing.T) {
	// GIVEN an SJF ready queue with jobs of decreasing burst
	r := newReadyQueue(NonPreemptiveSJF)
	r.push(&Process{PID: 1, CPURemaining: 9})
	r.push(&Process{PID: 2, CPURemaining: 3})
	r.push(&Process{PID: 3, CPURemaining: 6})

	// THEN pop yields the shortest job
	p, err := r.pop()
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, uint(2), p.PID)
	assert.Equal(t, 2, r.len())
}

func TestPolicy_Name_DistinctAndNonEmpty(t *testing.T) {
	seen := map[string]Policy{}
	for _, p := range AllPolicies {
		name := p.Name()
		if name == "" {
			t.Errorf("%s: empty name", p)
		}
		if other, dup := seen[name]; dup {
			t.Errorf("name %q shared by %s and %s", name, p, other)
		}
		seen[name] = p
	}
}
