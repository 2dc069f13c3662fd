// Package sqlite provides SQLite-backed admin persistence.
//
// It only stores the admin activity log; FAQ records live in the backend.
package sqlite
