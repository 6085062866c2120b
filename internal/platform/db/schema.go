package db

import _ "embed"

// Schema is the DDL for the users table. It is applied by operators and
// integration tests, never by the service itself.
//
//go:embed schema.sql
var Schema string
