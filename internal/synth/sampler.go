package synth

import (
	"math/rand/v2"
)

// Sampler draws uniform samples without replacement from a seeded PCG source.
// A Sampler is not safe for concurrent use.
type Sampler struct {
	seed uint64
	rng  *rand.Rand
}

// pcgStream is the fixed second word of the PCG state. Only the seed varies.
const pcgStream = 0x9e3779b97f4a7c15

// NewSampler returns a Sampler seeded with seed. A zero seed is replaced by a
// freshly drawn one; Seed reports the value actually used.
func NewSampler(seed uint64) *Sampler {
	for seed == 0 {
		seed = rand.Uint64()
	}
	return &Sampler{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, pcgStream)),
	}
}

// Seed returns the seed that reproduces this sampler's sequence.
func (s *Sampler) Seed() uint64 {
	return s.seed
}

// Sample returns min(n, k) distinct integers from [0, n) in random order.
// Bounds larger than the population are clamped; a non-positive bound or
// population yields an empty sample.
func (s *Sampler) Sample(n, k int) []int {
	k = min(n, k)
	if k <= 0 {
		return []int{}
	}

	// Dense draw: a permutation prefix is cheaper than rejection.
	if 2*k >= n {
		return s.rng.Perm(n)[:k]
	}

	seen := make(map[int]struct{}, k)
	out := make([]int, 0, k)
	for len(out) < k {
		v := s.rng.IntN(n)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
