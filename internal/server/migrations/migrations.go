// Package migrations embeds the SQL migrations applied by goose at startup,
// one directory per supported dialect.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS
