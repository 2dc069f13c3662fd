// Package migrations embeds the admin SQLite schema.
package migrations

import "embed"

// FS holds the forward-only migration files.
//
//go:embed *.sql
var FS embed.FS
