// Package migrations embeds the goose migrations of the mock API's optional
// PostgreSQL user store.
package migrations

import "embed"

//go:embed postgres/*.sql
var Postgres embed.FS
