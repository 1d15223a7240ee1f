package synth

import "github.com/roach88/cbegen/internal/ir"

// GenerateSources builds m translation units, each depending on
// min(headers, fanIn) distinct headers chosen from {0..headers-1}.
// Source units never depend on each other.
func GenerateSources(m, headers, fanIn int, s *Sampler) []ir.SourceUnit {
	sources := make([]ir.SourceUnit, 0, max(m, 0))
	for j := 0; j < m; j++ {
		sources = append(sources, ir.SourceUnit{
			Index: j,
			Deps:  s.Sample(headers, fanIn),
		})
	}
	return sources
}

// GenerateEntry builds the entry unit that aggregates every source unit.
func GenerateEntry(sources []ir.SourceUnit) ir.EntryUnit {
	return ir.EntryUnit{Sources: len(sources)}
}
