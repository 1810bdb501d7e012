// Package migrations embeds the goose SQL migrations so the API binary can
// apply them at startup without a migrations directory on disk.
package migrations

import "embed"

// FS holds every *.sql migration in this directory.
//
//go:embed *.sql
var FS embed.FS
