// Package sqlite provides the dashboard persistence adapter backed by SQLite.
package sqlite
