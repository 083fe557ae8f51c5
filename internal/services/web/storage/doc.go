// Package storage declares persistence contracts for dashboard identities,
// web sessions, and revoked identity tokens.
package storage
