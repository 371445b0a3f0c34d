// Package migrations holds the SQLite schema for character storage
package migrations

import "embed"

// FS contains the embedded migrations
//
//go:embed *.sql
var FS embed.FS
