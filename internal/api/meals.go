package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mmynk/dailydiet/internal/calculator"
	"github.com/mmynk/dailydiet/internal/middleware"
	"github.com/mmynk/dailydiet/internal/models"
)

type createMealRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	MealDate    string `json:"meal_date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	InDiet      *bool  `json:"in_diet" validate:"required"`
}

func (req createMealRequest) fields() models.MealFields {
	// Format already checked by the validator.
	date, _ := time.Parse(time.RFC3339, req.MealDate)
	return models.MealFields{
		Name:        req.Name,
		Description: req.Description,
		MealDate:    date,
		InDiet:      *req.InDiet,
	}
}

type updateMealRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	MealDate    *string `json:"meal_date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	InDiet      *bool   `json:"in_diet"`
}

func (req updateMealRequest) patch() models.MealPatch {
	patch := models.MealPatch{
		Name:        req.Name,
		Description: req.Description,
		InDiet:      req.InDiet,
	}
	if req.MealDate != nil {
		date, _ := time.Parse(time.RFC3339, *req.MealDate)
		patch.MealDate = &date
	}
	return patch
}

type mealResponse struct {
	Meal *models.Meal `json:"meal"`
}

type mealsResponse struct {
	Meals []models.Meal `json:"meals"`
}

type summaryResponse struct {
	Summary calculator.Summary `json:"summary"`
}

// createMeal handles POST /meals.
func (h *handler) createMeal(w http.ResponseWriter, r *http.Request) {
	var req createMealRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	meal, err := h.meals.Create(r.Context(), middleware.GetUserID(r.Context()), req.fields())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, mealResponse{Meal: meal})
}

// listMeals handles GET /meals.
func (h *handler) listMeals(w http.ResponseWriter, r *http.Request) {
	meals, err := h.meals.List(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mealsResponse{Meals: meals})
}

// getMeal handles GET /meals/{id}.
func (h *handler) getMeal(w http.ResponseWriter, r *http.Request) {
	meal, err := h.meals.Get(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mealResponse{Meal: meal})
}

// updateMeal handles PUT /meals/{id}.
func (h *handler) updateMeal(w http.ResponseWriter, r *http.Request) {
	var req updateMealRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	meal, err := h.meals.Update(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "id"), req.patch())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mealResponse{Meal: meal})
}

// deleteMeal handles DELETE /meals/{id}.
func (h *handler) deleteMeal(w http.ResponseWriter, r *http.Request) {
	if err := h.meals.Delete(r.Context(), middleware.GetUserID(r.Context()), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// summary handles GET /meals/summary.
func (h *handler) summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.meals.Summary(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summaryResponse{Summary: summary})
}
