package service

import (
	"context"
	"log/slog"

	"github.com/mmynk/dailydiet/internal/calculator"
	"github.com/mmynk/dailydiet/internal/metrics"
	"github.com/mmynk/dailydiet/internal/models"
	"github.com/mmynk/dailydiet/internal/storage"
)

// MealService exposes owner-scoped meal operations.
// Every method takes the authenticated owner's ID and never reaches meals
// belonging to anyone else.
type MealService struct {
	store storage.MealStore
}

// NewMealService creates a new MealService with the given storage backend.
func NewMealService(store storage.MealStore) *MealService {
	return &MealService{store: store}
}

// Create records a new meal for ownerID.
func (s *MealService) Create(ctx context.Context, ownerID string, fields models.MealFields) (*models.Meal, error) {
	meal := models.NewMeal(ownerID, fields)

	if err := s.store.CreateMeal(ctx, meal); err != nil {
		slog.Error("CreateMeal failed", "user_id", ownerID, "error", err)
		return nil, err
	}

	metrics.RecordMealCreated(meal.InDiet)
	slog.Info("Meal created", "user_id", ownerID, "meal_id", meal.ID)
	return meal, nil
}

// Get returns one of ownerID's meals.
func (s *MealService) Get(ctx context.Context, ownerID, mealID string) (*models.Meal, error) {
	meal, err := s.store.GetMeal(ctx, ownerID, mealID)
	if err != nil {
		slog.Warn("GetMeal failed", "user_id", ownerID, "meal_id", mealID, "error", err)
		return nil, err
	}
	return meal, nil
}

// List returns all of ownerID's meals in insertion order.
func (s *MealService) List(ctx context.Context, ownerID string) ([]models.Meal, error) {
	meals, err := s.store.ListMeals(ctx, ownerID)
	if err != nil {
		slog.Error("ListMeals failed", "user_id", ownerID, "error", err)
		return nil, err
	}
	slog.Debug("ListMeals successful", "user_id", ownerID, "count", len(meals))
	return meals, nil
}

// Update applies a partial update. An empty patch is rejected rather than
// treated as a successful no-op.
func (s *MealService) Update(ctx context.Context, ownerID, mealID string, patch models.MealPatch) (*models.Meal, error) {
	if patch.IsEmpty() {
		return nil, NewValidationError("at least one field must be provided")
	}

	meal, err := s.store.UpdateMeal(ctx, ownerID, mealID, patch)
	if err != nil {
		slog.Warn("UpdateMeal failed", "user_id", ownerID, "meal_id", mealID, "error", err)
		return nil, err
	}

	slog.Info("Meal updated", "user_id", ownerID, "meal_id", mealID)
	return meal, nil
}

// Delete removes one of ownerID's meals.
func (s *MealService) Delete(ctx context.Context, ownerID, mealID string) error {
	if err := s.store.DeleteMeal(ctx, ownerID, mealID); err != nil {
		slog.Warn("DeleteMeal failed", "user_id", ownerID, "meal_id", mealID, "error", err)
		return err
	}

	slog.Info("Meal deleted", "user_id", ownerID, "meal_id", mealID)
	return nil
}

// Summary computes adherence statistics over all of ownerID's meals.
func (s *MealService) Summary(ctx context.Context, ownerID string) (calculator.Summary, error) {
	meals, err := s.List(ctx, ownerID)
	if err != nil {
		return calculator.Summary{}, err
	}
	return calculator.Summarize(meals), nil
}
