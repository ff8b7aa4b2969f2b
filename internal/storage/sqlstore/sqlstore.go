// Package sqlstore implements storage.Store on top of database/sql via sqlx.
// Queries are written with '?' placeholders and rebound for the driver in use,
// so the same code serves both the SQLite and the PostgreSQL backends.
package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/mmynk/dailydiet/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Dialect captures the few places where backends differ.
type Dialect struct {
	// Name identifies the backend in logs.
	Name string

	// MealOrder is the ORDER BY expression that yields insertion order.
	MealOrder string

	// IsUniqueViolation reports whether err is a unique constraint violation.
	IsUniqueViolation func(error) bool
}

// Store implements storage.Store over a *sqlx.DB.
type Store struct {
	db      *sqlx.DB
	dialect Dialect
}

// New wraps an open, migrated database.
func New(db *sqlx.DB, dialect Dialect) *Store {
	if dialect.IsUniqueViolation == nil {
		dialect.IsUniqueViolation = func(error) bool { return false }
	}
	if dialect.MealOrder == "" {
		dialect.MealOrder = "id"
	}
	return &Store{db: db, dialect: dialect}
}

// Dialect returns the backend name.
func (s *Store) Dialect() string {
	return s.dialect.Name
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return failure("ping database", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// failure wraps a driver error so callers can classify it as storage.ErrFailure.
func failure(op string, err error) error {
	return fmt.Errorf("failed to %s: %w: %w", op, storage.ErrFailure, err)
}
