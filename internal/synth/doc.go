// Package synth generates the header DAG and the source units of a synthetic
// C++ project, and renders each unit to source text.
//
// Generation runs in two strictly ordered stages:
//  1. GenerateHeaders builds N headers. Header i includes min(i, K) headers
//     sampled from {0..i-1}; edges only ever point to lower indices, so the
//     include graph cannot contain a cycle.
//  2. GenerateSources builds M translation units. Each includes min(N, K')
//     headers sampled from {0..N-1} and sums their values. A single entry
//     unit calls every translation unit and prints the total.
//
// Randomness comes from a seeded Sampler. The same seed and parameters always
// produce the same project; seed 0 asks NewSampler for a fresh seed.
package synth
