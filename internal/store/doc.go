// Package store records msgc generation history in SQLite.
//
// Each successful generate run is stored with the hash of the schema and
// options it was generated from, the hash of the file it wrote, and the
// message identifier table of that run. The CLI uses the latest run for an
// output path to skip regenerating unchanged files, and lists runs with
// the history command.
//
// # Ordering
//
// Runs are ordered by seq, a logical clock assigned at insert time, never
// by created_at.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
