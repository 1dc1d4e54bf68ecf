package sim

import (
	"github.com/sirupsen/logrus"
)

// RunAll runs one engine per requested policy over private clones of the
// shared workload, to completion, in order. Each engine draws interrupts
// from its own partitioned RNG subsystem, so policies neither share mutable
// state nor perturb each other's randomness.
//
// The engines are returned for trace and statistics consumption. The first
// construction or run error aborts the batch.
func RunAll(policies []Policy, workload []*Process, rng *PartitionedRNG, quantum, tickBudget uint) ([]*Engine, error) {
	engines := make([]*Engine, 0, len(policies))
	for _, policy := range policies {
		src := NewCoinSource(rng.ForSubsystem(SubsystemEngine(policy)))
		e, err := NewEngine(policy, workload, src)
		if err != nil {
			return nil, err
		}
		if quantum > 0 {
			e.Quantum = quantum
		}
		if tickBudget > 0 {
			e.TickBudget = tickBudget
		}
		engines = append(engines, e)
	}

	for _, e := range engines {
		logrus.Infof("running %s over %d processes", e.Policy().Name(), e.numProcess)
		if err := e.Run(); err != nil {
			return nil, err
		}
	}
	return engines, nil
}
