// Package migrations embeds the goose migrations of the client databases:
// the local SQLite session database and the hosted PostgreSQL favorites
// database.
package migrations

import "embed"

//go:embed sqlite/*.sql
var SQLite embed.FS

//go:embed postgres/*.sql
var Postgres embed.FS
