// Package store provides a SQLite-backed ledger of generation runs.
//
// Each run is recorded once with its seed, sizes, output root, and the
// digest of the manifest it produced. Because generation is reproducible
// from a seed, the ledger is enough to recreate any past tree exactly and to
// confirm that the recreated manifest matches.
//
// # Conventions
//
//   - Append-only: runs are never updated or deleted
//   - Ordering uses the seq column (a logical clock), never timestamps
//   - All list queries use ORDER BY seq so results are deterministic
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
package store
