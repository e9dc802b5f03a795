package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/surrealdb/surrealdb.go"
)

// SurrealDB implements Database over the SurrealDB websocket driver.
type SurrealDB struct {
	db     *surrealdb.DB
	config Config
}

// NewSurrealDB creates an unconnected SurrealDB instance.
func NewSurrealDB(cfg Config) *SurrealDB {
	return &SurrealDB{config: cfg}
}

// Connect establishes the connection, signs in, and selects the namespace
// and database.
func (s *SurrealDB) Connect(ctx context.Context) error {
	endpoint := fmt.Sprintf("ws://%s:%s", s.config.Host, s.config.Port)

	db, err := surrealdb.FromEndpointURLString(ctx, endpoint)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	if _, err := db.SignIn(ctx, &surrealdb.Auth{
		Username: s.config.User,
		Password: s.config.Password,
	}); err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: signin failed: %v", ErrConnection, err)
	}

	if err := db.Use(ctx, s.config.Namespace, s.config.Database); err != nil {
		_ = db.Close(ctx)
		return fmt.Errorf("%w: use failed: %v", ErrConnection, err)
	}

	s.db = db
	return nil
}

// Close closes the connection.
func (s *SurrealDB) Close() error {
	if s.db != nil {
		return s.db.Close(context.Background())
	}
	return nil
}

// Ping verifies the connection is alive.
func (s *SurrealDB) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrConnection
	}
	if _, err := s.db.Version(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Query runs a statement and returns the rows of its first result set.
// A scalar result is returned as a single-element slice.
func (s *SurrealDB) Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
	if s.db == nil {
		return nil, ErrConnection
	}

	results, err := surrealdb.Query[interface{}](ctx, s.db, query, vars)
	if err != nil {
		if isIndexViolation(err.Error()) {
			return nil, fmt.Errorf("%w: %v", ErrDuplicate, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrQuery, err)
	}
	if results == nil || len(*results) == 0 {
		return nil, nil
	}

	first := (*results)[0]
	if first.Status != "OK" {
		if first.Error != nil {
			if isIndexViolation(first.Error.Message) {
				return nil, fmt.Errorf("%w: %s", ErrDuplicate, first.Error.Message)
			}
			return nil, fmt.Errorf("%w: %s", ErrQuery, first.Error.Message)
		}
		return nil, ErrQuery
	}

	switch rows := first.Result.(type) {
	case nil:
		return nil, nil
	case []interface{}:
		return rows, nil
	default:
		return []interface{}{rows}, nil
	}
}

// QueryOne runs a statement and returns its first row.
func (s *SurrealDB) QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
	rows, err := s.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0], nil
}

// Execute runs a mutation without returning rows.
func (s *SurrealDB) Execute(ctx context.Context, query string, vars map[string]interface{}) error {
	_, err := s.Query(ctx, query, vars)
	return err
}

// isIndexViolation recognizes SurrealDB's unique-index error text so
// repositories can surface ErrDuplicate instead of a generic query error.
func isIndexViolation(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "already contains") ||
		strings.Contains(lower, "index") && strings.Contains(lower, "unique")
}
