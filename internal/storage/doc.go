// Package storage defines the persistence contract for the solution ledger.
//
// The ledger records one row per solved target and trial order, so repeat
// runs can answer from storage. The SQLite implementation lives in the
// sqlite subpackage.
//
// # Error Types
//
//   - ErrNotFound: no solution is recorded for the requested key.
package storage
