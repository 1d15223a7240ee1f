package ir

import "fmt"

// HeaderUnit is one generated header. Deps holds indices of lower-numbered
// headers it includes, in sample order.
type HeaderUnit struct {
	Index int   `json:"index"`
	Deps  []int `json:"deps"`
}

// Symbol returns the inline function exported by the header.
func (h HeaderUnit) Symbol() string {
	return HeaderSymbol(h.Index)
}

// Value is what the header's symbol evaluates to.
func (h HeaderUnit) Value() int {
	return h.Index
}

// SourceUnit is one generated translation unit. Deps holds header indices,
// distinct and in [0, N).
type SourceUnit struct {
	Index int   `json:"index"`
	Deps  []int `json:"deps"`
}

// Symbol returns the function exported by the source unit.
func (s SourceUnit) Symbol() string {
	return SourceSymbol(s.Index)
}

// Value is the sum of the referenced headers' values.
func (s SourceUnit) Value() int {
	sum := 0
	for _, d := range s.Deps {
		sum += d
	}
	return sum
}

// EntryUnit is the single root unit that calls every source unit's symbol.
type EntryUnit struct {
	Sources int `json:"sources"`
}

// Project is everything one generation run produces before it is encoded.
type Project struct {
	Headers []HeaderUnit `json:"headers"`
	Sources []SourceUnit `json:"sources"`
	Entry   EntryUnit    `json:"entry"`
}

// Total returns the value the entry unit prints when the generated program runs.
func (p *Project) Total() int {
	total := 0
	for _, s := range p.Sources {
		total += s.Value()
	}
	return total
}

// HeaderSymbol names the function exported by header i.
func HeaderSymbol(i int) string {
	return fmt.Sprintf("func_%d", i)
}

// SourceSymbol names the function exported by source unit j.
func SourceSymbol(j int) string {
	return fmt.Sprintf("source_func_%d", j)
}
