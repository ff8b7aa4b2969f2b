package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mmynk/dailydiet/internal/models"
	"github.com/mmynk/dailydiet/internal/storage"
)

const mealColumns = "id, name, description, meal_date, in_diet, user_id"

// CreateMeal persists a new meal.
func (s *Store) CreateMeal(ctx context.Context, meal *models.Meal) error {
	query := s.db.Rebind(`
		INSERT INTO meals (id, name, description, meal_date, in_diet, user_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`)

	_, err := s.db.ExecContext(ctx, query,
		meal.ID,
		meal.Name,
		meal.Description,
		meal.MealDate,
		meal.InDiet,
		meal.UserID,
	)
	if err != nil {
		return failure("create meal", err)
	}

	return nil
}

// GetMeal retrieves a meal by ID, restricted to the given owner.
func (s *Store) GetMeal(ctx context.Context, ownerID, mealID string) (*models.Meal, error) {
	return getMeal(ctx, s.db, s.db.Rebind(selectMealQuery), ownerID, mealID)
}

const selectMealQuery = "SELECT " + mealColumns + " FROM meals WHERE id = ? AND user_id = ?"

func getMeal(ctx context.Context, q sqlxQueryer, query, ownerID, mealID string) (*models.Meal, error) {
	meal := &models.Meal{}
	err := q.GetContext(ctx, meal, query, mealID, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, failure("get meal", err)
	}
	return meal, nil
}

// ListMeals retrieves every meal owned by ownerID in insertion order.
func (s *Store) ListMeals(ctx context.Context, ownerID string) ([]models.Meal, error) {
	query := s.db.Rebind("SELECT " + mealColumns + " FROM meals WHERE user_id = ? ORDER BY " + s.dialect.MealOrder)

	meals := []models.Meal{}
	if err := s.db.SelectContext(ctx, &meals, query, ownerID); err != nil {
		return nil, failure("list meals", err)
	}

	return meals, nil
}

// UpdateMeal merges patch into the stored meal. Nil patch fields are passed
// as NULL and COALESCE keeps the stored value.
func (s *Store) UpdateMeal(ctx context.Context, ownerID, mealID string, patch models.MealPatch) (*models.Meal, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, failure("begin transaction", err)
	}
	defer tx.Rollback()

	var mealDate any
	if patch.MealDate != nil {
		mealDate = patch.MealDate.UTC()
	}

	res, err := tx.ExecContext(ctx, tx.Rebind(`
		UPDATE meals SET
			name = COALESCE(?, name),
			description = COALESCE(?, description),
			meal_date = COALESCE(?, meal_date),
			in_diet = COALESCE(?, in_diet)
		WHERE id = ? AND user_id = ?
	`),
		nullable(patch.Name),
		nullable(patch.Description),
		mealDate,
		nullable(patch.InDiet),
		mealID,
		ownerID,
	)
	if err != nil {
		return nil, failure("update meal", err)
	}
	if err := requireAffected(res, "update meal"); err != nil {
		return nil, err
	}

	meal, err := getMeal(ctx, tx, tx.Rebind(selectMealQuery), ownerID, mealID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, failure("commit transaction", err)
	}

	return meal, nil
}

// DeleteMeal removes a meal owned by ownerID.
func (s *Store) DeleteMeal(ctx context.Context, ownerID, mealID string) error {
	res, err := s.db.ExecContext(ctx,
		s.db.Rebind("DELETE FROM meals WHERE id = ? AND user_id = ?"),
		mealID, ownerID,
	)
	if err != nil {
		return failure("delete meal", err)
	}
	return requireAffected(res, "delete meal")
}

// sqlxQueryer is satisfied by both *sqlx.DB and *sqlx.Tx.
type sqlxQueryer interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
}

func requireAffected(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return failure(op, err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// nullable turns an optional field into a driver argument: NULL or the value.
func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
