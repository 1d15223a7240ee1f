// Package ir provides the data model shared by every stage of a generation run.
//
// This package contains type definitions and naming only. All other internal
// packages import ir; ir imports nothing internal. This keeps the model the
// foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Header dependencies always point to strictly lower indices, so the
//     header relation is acyclic by construction
//   - Source units are independent leaves; only the entry unit depends on them
//   - A manifest is built once per run and never mutated afterwards
//   - Paths never contain the manifest delimiters '|' or ','
package ir
