// Package auth provides the session providers that back the dashboard's
// session accessor: opaque cookie sessions stored in SQLite, and signed
// identity tokens issued by an upstream identity provider.
package auth
