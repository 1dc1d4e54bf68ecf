package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// InterruptSource supplies the boolean draws the engine consumes: one per
// waiting-queue member per tick (spontaneous I/O return) and one per
// executing process per tick (I/O request). Injectable so tests can pin the
// sequence.
type InterruptSource interface {
	Draw() bool
}

// CoinSource reproduces the original simulator's biased coin: the majority
// vote of 100 fair flips, true with probability ~0.53.
type CoinSource struct {
	rng *rand.Rand
}

// NewCoinSource creates a CoinSource over a dedicated seeded stream.
func NewCoinSource(rng *rand.Rand) *CoinSource {
	return &CoinSource{rng: rng}
}

func (c *CoinSource) Draw() bool {
	heads := 0
	for i := 0; i < 100; i++ {
		if c.rng.Intn(2) == 1 {
			heads++
		}
	}
	return heads >= 50
}

// NeverInterrupt is an InterruptSource whose draws are always false. With it,
// processes leave I/O only when IORemaining reaches zero, and request I/O
// only at the forced cpu==1 point.
type NeverInterrupt struct{}

func (NeverInterrupt) Draw() bool { return false }

// === Subsystem constants ===

// SubsystemWorkload is the RNG subsystem for workload generation.
// Uses the master seed directly.
const SubsystemWorkload = "workload"

// SubsystemEngine returns the RNG subsystem name for one policy's engine, so
// each of the six engines draws an isolated interrupt stream.
func SubsystemEngine(p Policy) string {
	return fmt.Sprintf("engine_%s", p)
}

// PartitionedRNG provides deterministic, isolated RNG instances per
// subsystem. Two runs with the same master seed produce identical draw
// sequences in every subsystem.
//
// Derivation: SubsystemWorkload uses the master seed directly; every other
// subsystem uses masterSeed XOR fnv1a64(name).
//
// Not thread-safe; each engine runs on a single goroutine.
type PartitionedRNG struct {
	seed       int64
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a master seed.
func NewPartitionedRNG(seed int64) *PartitionedRNG {
	return &PartitionedRNG{
		seed:       seed,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named
// subsystem. The same name always returns the same cached *rand.Rand.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	derivedSeed := p.seed
	if name != SubsystemWorkload {
		derivedSeed ^= fnv1a64(name)
	}

	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Seed returns the master seed this PartitionedRNG was built from.
func (p *PartitionedRNG) Seed() int64 {
	return p.seed
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
