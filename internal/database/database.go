// Package database provides the document-store abstraction for the studio
// site API.
//
// The Database interface narrows SurrealDB to the three call shapes the
// repositories actually use:
//   - Query: rows of a SELECT
//   - QueryOne: single row, ErrNotFound when absent
//   - Execute: mutation with no result
//
// Multi-document writes go through AtomicBatch (see transaction.go), which
// wraps its statements in BEGIN TRANSACTION / COMMIT TRANSACTION so they
// apply together or not at all.
package database

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a unique index rejected the write.
	ErrDuplicate = errors.New("duplicate record")

	// ErrConnection indicates a failure to reach the store.
	ErrConnection = errors.New("database connection error")

	// ErrQuery indicates a query execution failure.
	ErrQuery = errors.New("query error")
)

// Database is the narrow store contract consumed by the repositories.
type Database interface {
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// Query runs a statement and returns its rows.
	Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)

	// QueryOne runs a statement and returns its first row, or ErrNotFound.
	QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)

	// Execute runs a mutation and discards any result.
	Execute(ctx context.Context, query string, vars map[string]interface{}) error
}

// Config holds store connection settings.
type Config struct {
	Host      string
	Port      string
	User      string
	Password  string
	Namespace string
	Database  string
}
