package workload

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedsim/schedsim/sim"
)

func TestGenerate_FieldRanges(t *testing.T) {
	// GIVEN the default spec for 50 processes
	spec := DefaultSpec(50)
	procs, err := Generate(&spec, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	require.Len(t, procs, 50)

	for i, p := range procs {
		assert.Equal(t, uint(i+1), p.PID)
		assert.GreaterOrEqual(t, p.CPURemaining, uint(1))
		assert.LessOrEqual(t, p.CPURemaining, uint(40))
		assert.LessOrEqual(t, p.IORemaining, uint(19))
		assert.Less(t, p.Arrival, uint(3*50))
		assert.GreaterOrEqual(t, p.Priority, -20)
		assert.LessOrEqual(t, p.Priority, 20)
		assert.Zero(t, p.Waiting)
		assert.Zero(t, p.Turnaround)
	}
}

func TestGenerate_ShortBurstsDominate(t *testing.T) {
	// The burst pool is 90% short jobs; over a large sample the short share
	// must clearly dominate.
	spec := DefaultSpec(2000)
	procs, err := Generate(&spec, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	short := 0
	for _, p := range procs {
		if p.CPURemaining <= 10 {
			short++
		}
	}
	ratio := float64(short) / float64(len(procs))
	if ratio < 0.8 {
		t.Errorf("short-burst share = %.3f, want ≈ 0.9", ratio)
	}
}

func TestGenerate_Deterministic_ForSeed(t *testing.T) {
	spec := DefaultSpec(30)
	a, err := Generate(&spec, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := Generate(&spec, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	for i := range a {
		assert.Equal(t, *a[i], *b[i], "process %d differs across identical seeds", i)
	}
}

func TestGenerate_ZeroProcesses_ReturnsErrInvalidWorkload(t *testing.T) {
	spec := Spec{NumProcesses: 0}
	_, err := Generate(&spec, rand.New(rand.NewSource(1)))
	if !errors.Is(err, sim.ErrInvalidWorkload) {
		t.Errorf("err = %v, want ErrInvalidWorkload", err)
	}
}

func TestClone_IsDeep(t *testing.T) {
	spec := DefaultSpec(5)
	procs, err := Generate(&spec, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	clones := Clone(procs)
	require.Len(t, clones, len(procs))
	for i := range clones {
		assert.Equal(t, *procs[i], *clones[i])
		clones[i].Waiting = 99
		assert.Zero(t, procs[i].Waiting, "clone %d aliases the original", i)
	}
}
