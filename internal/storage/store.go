// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/dailydiet/internal/models"
)

var (
	// ErrNotFound is returned when a record does not exist or is not visible
	// to the requesting owner. The two cases are never distinguished.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a write violates a uniqueness constraint.
	ErrDuplicate = errors.New("record already exists")

	// ErrFailure marks faults of the persistence layer itself.
	// Callers treat it as fatal for the request and do not retry.
	ErrFailure = errors.New("storage failure")
)

// UserStore persists user accounts.
type UserStore interface {
	// CreateUser inserts a new user.
	// Returns ErrDuplicate if the email is already registered.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail returns ErrNotFound if no user has that email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns ErrNotFound if no user has that ID.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// MealStore persists meals. Every method is scoped to an owner: the owner is
// part of the lookup predicate, so a meal belonging to someone else behaves
// exactly like a meal that does not exist.
type MealStore interface {
	// CreateMeal inserts a meal. meal.UserID must already be set.
	CreateMeal(ctx context.Context, meal *models.Meal) error

	// GetMeal returns ErrNotFound if no meal with that ID is owned by ownerID.
	GetMeal(ctx context.Context, ownerID, mealID string) (*models.Meal, error)

	// ListMeals returns all meals owned by ownerID in insertion order.
	ListMeals(ctx context.Context, ownerID string) ([]models.Meal, error)

	// UpdateMeal merges patch into the stored meal and returns the result.
	// Returns ErrNotFound under the same rule as GetMeal.
	UpdateMeal(ctx context.Context, ownerID, mealID string, patch models.MealPatch) (*models.Meal, error)

	// DeleteMeal removes the meal. Returns ErrNotFound under the same rule as GetMeal.
	DeleteMeal(ctx context.Context, ownerID, mealID string) error
}

// Store combines all storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the service layer.
type Store interface {
	UserStore
	MealStore

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
