// Package migrations embeds the goose SQL migrations for the dataset store.
package migrations

import "embed"

// FS holds every *.sql migration in version order.
//
//go:embed *.sql
var FS embed.FS
