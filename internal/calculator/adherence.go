// Package calculator computes diet adherence statistics over a user's meals.
package calculator

import "github.com/mmynk/dailydiet/internal/models"

// Summary holds the adherence statistics for one user.
type Summary struct {
	Total               int `json:"total"`
	OnDietCount         int `json:"onDietCount"`
	OffDietCount        int `json:"offDietCount"`
	LongestOnDietStreak int `json:"longestOnDietStreak"`
}

// Summarize computes the summary in a single pass over meals, taken in the
// order given (listing order, not meal date).
// The streak is the longest run of consecutive on-diet meals; any off-diet
// meal resets the current run to zero.
func Summarize(meals []models.Meal) Summary {
	var s Summary
	current := 0

	for _, meal := range meals {
		s.Total++
		if !meal.InDiet {
			s.OffDietCount++
			current = 0
			continue
		}

		s.OnDietCount++
		current++
		if current > s.LongestOnDietStreak {
			s.LongestOnDietStreak = current
		}
	}

	return s
}
