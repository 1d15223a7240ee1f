package synth

import "github.com/roach88/cbegen/internal/ir"

// GenerateHeaders builds n headers where header i depends on min(i, fanIn)
// distinct headers chosen from {0..i-1}. Header 0 has no dependencies.
func GenerateHeaders(n, fanIn int, s *Sampler) []ir.HeaderUnit {
	headers := make([]ir.HeaderUnit, 0, max(n, 0))
	for i := 0; i < n; i++ {
		headers = append(headers, GenerateHeader(i, fanIn, s))
	}
	return headers
}

// GenerateHeader builds header i alone. The candidate pool is exactly the
// indices below i, so no self edge or forward edge can be sampled.
func GenerateHeader(i, fanIn int, s *Sampler) ir.HeaderUnit {
	return ir.HeaderUnit{
		Index: i,
		Deps:  s.Sample(i, fanIn),
	}
}
