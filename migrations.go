// Package hunter embeds the SQL migrations so the binary can migrate its own
// database.
package hunter

import "embed"

// Migrations holds the goose migration files.
//
//go:embed migrations/*.sql
var Migrations embed.FS
