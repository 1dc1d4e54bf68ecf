package workload

import (
	"fmt"
	"math/rand"

	"github.com/schedsim/schedsim/sim"
)

// burstPoolSize is the size of the CPU-burst sampling pool. The pool skews
// toward short bursts: 90% of entries fall in [1,10], 5% in [11,20], 5% in
// [21,40], approximating a geometric service-time distribution.
const burstPoolSize = 500

// Generate synthesizes the process descriptors for spec, deterministic for a
// given seed. PIDs are assigned sequentially from 1; cpu ∈ [1,40],
// io ∈ [0, MaxIOBurst], arrival ∈ [0, ArrivalSpread*N), priority ∈
// [-PriorityRange, PriorityRange].
func Generate(spec *Spec, rng *rand.Rand) ([]*sim.Process, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", sim.ErrInvalidWorkload, err)
	}

	pool := burstPool(rng)
	n := spec.NumProcesses

	procs := make([]*sim.Process, 0, n)
	for i := 0; i < n; i++ {
		procs = append(procs, &sim.Process{
			PID:          uint(i + 1),
			CPURemaining: pool[rng.Intn(burstPoolSize)],
			IORemaining:  uint(rng.Intn(int(spec.MaxIOBurst) + 1)),
			Arrival:      uint(rng.Intn(int(spec.ArrivalSpread) * n)),
			Priority:     rng.Intn(2*spec.PriorityRange+1) - spec.PriorityRange,
		})
	}
	return procs, nil
}

// burstPool fills the weighted CPU-burst pool.
func burstPool(rng *rand.Rand) [burstPoolSize]uint {
	var pool [burstPoolSize]uint
	for i := range pool {
		switch {
		case i < burstPoolSize*90/100:
			pool[i] = uint(rng.Intn(10) + 1) // 1..10
		case i < burstPoolSize*95/100:
			pool[i] = uint(rng.Intn(10) + 11) // 11..20
		default:
			pool[i] = uint(rng.Intn(20) + 21) // 21..40
		}
	}
	return pool
}

// Clone deep-copies a workload so each engine owns its processes outright.
func Clone(procs []*sim.Process) []*sim.Process {
	out := make([]*sim.Process, len(procs))
	for i, p := range procs {
		out[i] = p.Clone()
	}
	return out
}
