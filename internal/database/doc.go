// Package database provides PostgreSQL connection pool management for the
// optional run archive.
package database
