// Package migrations embeds the goose SQL migrations for the Postgres store
// and applies them at server start and in integration tests.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
