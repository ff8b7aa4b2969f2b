package models

import (
	"time"

	"github.com/google/uuid"
)

// Meal is a single meal recorded by a user.
type Meal struct {
	// ID is the unique identifier for the meal (UUID format).
	ID string `json:"id" db:"id"`

	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`

	// MealDate is when the meal was eaten, as supplied by the caller.
	MealDate time.Time `json:"meal_date" db:"meal_date"`

	// InDiet reports whether the meal was within the user's diet.
	InDiet bool `json:"in_diet" db:"in_diet"`

	// UserID is the owner of the meal. It is set on creation and never changes.
	UserID string `json:"user_id" db:"user_id"`
}

// MealFields holds the caller-supplied values for a new meal.
type MealFields struct {
	Name        string
	Description string
	MealDate    time.Time
	InDiet      bool
}

// NewMeal creates a meal owned by userID with a generated ID.
func NewMeal(userID string, f MealFields) *Meal {
	return &Meal{
		ID:          uuid.New().String(),
		Name:        f.Name,
		Description: f.Description,
		MealDate:    f.MealDate.UTC(),
		InDiet:      f.InDiet,
		UserID:      userID,
	}
}

// MealPatch is a partial update of a meal. Nil fields keep their stored value.
// It has no owner field: a meal cannot change hands.
type MealPatch struct {
	Name        *string
	Description *string
	MealDate    *time.Time
	InDiet      *bool
}

// IsEmpty reports whether the patch sets no field at all.
func (p MealPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.MealDate == nil && p.InDiet == nil
}
