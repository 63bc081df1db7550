// Package migrations embeds the goose migrations for the development
// backend database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
