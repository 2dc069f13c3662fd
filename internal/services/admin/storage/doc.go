// Package storage defines persistence contracts for operator-facing admin artifacts.
//
// Handlers depend on these interfaces rather than a concrete SQLite schema.
package storage
