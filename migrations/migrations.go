// Package migrations embeds the SQL schema migrations so they can be applied
// with golang-migrate from both the server binary and the test suites.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
