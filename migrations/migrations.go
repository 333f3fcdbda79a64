// Package migrations embeds the goose SQL migrations so they can be applied
// at startup without shipping loose files next to the binary.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
