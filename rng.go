package sandcore

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RNG is the uniform random source every element rule draws from. The
// production implementation is single-threaded and held as
// engine-instance state rather than a package global so that an Engine's
// lifecycle fully owns its randomness. Tests may substitute a deterministic
// RNG (see newSeededRNG) through this same seam.
type RNG interface {
	// Chance reports true with probability p, clamped to [0,1].
	Chance(p float64) bool
	// Direction returns -1 or +1 with uniform probability.
	Direction() int
	// Int returns a uniform integer in [lo, hi], inclusive.
	Int(lo, hi int) int
	// Float returns a uniform real in [lo, hi).
	Float(lo, hi float64) float64
}

// pcgRNG is the production RNG, backed by math/rand/v2's PCG source and
// seeded once from OS entropy at construction.
type pcgRNG struct {
	r *rand.Rand
}

// newEntropyRNG constructs a pcgRNG seeded from crypto/rand. Falls back to a
// fixed seed only if entropy is unavailable (never on supported platforms).
func newEntropyRNG() *pcgRNG {
	var seed [16]byte
	if _, err := crand.Read(seed[:]); err != nil {
		binary.BigEndian.PutUint64(seed[0:8], 0x9e3779b97f4a7c15)
		binary.BigEndian.PutUint64(seed[8:16], 0xbf58476d1ce4e5b9)
	}
	seed1 := binary.BigEndian.Uint64(seed[0:8])
	seed2 := binary.BigEndian.Uint64(seed[8:16])
	return &pcgRNG{r: rand.New(rand.NewPCG(seed1, seed2))}
}

// newSeededRNG constructs a pcgRNG from a fixed seed, for deterministic tests.
func newSeededRNG(seed1, seed2 uint64) *pcgRNG {
	return &pcgRNG{r: rand.New(rand.NewPCG(seed1, seed2))}
}

func (g *pcgRNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return g.r.Float64() < p
}

func (g *pcgRNG) Direction() int {
	if g.r.IntN(2) == 0 {
		return -1
	}
	return 1
}

func (g *pcgRNG) Int(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.r.IntN(hi-lo+1)
}

func (g *pcgRNG) Float(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + g.r.Float64()*(hi-lo)
}

// permutation returns a fresh uniform permutation of [0, n) using a
// caller-supplied scratch buffer, reused across calls to avoid per-row
// allocation in the update loop (see engine.go's row traversal).
func permutation(buf []int, n int, rng RNG) []int {
	if cap(buf) < n {
		buf = make([]int, n)
	}
	buf = buf[:n]
	for i := range buf {
		buf[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Int(0, i)
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}
