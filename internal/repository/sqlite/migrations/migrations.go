// Package migrations holds the board's SQLite schema and installs it.
package migrations

import "embed"

// FS contains the schema files, applied in lexical order.
//
//go:embed *.sql
var FS embed.FS
