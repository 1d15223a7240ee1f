// Package graph verifies that dependency graphs are acyclic.
//
// Generated headers are acyclic by construction, and a well-formed manifest
// is a two-stage compile/link pipeline. This package does not enforce either
// property; it checks them after the fact so tests and the validate command
// can prove that nothing upstream broke the construction.
//
// Two checks are provided:
//   - TopoOrder: Kahn's traversal. It either orders every node or reports the
//     nodes that could not be ordered.
//   - FindCycles: Tarjan's strongly connected components, reported as cycle
//     paths for diagnostics.
package graph
