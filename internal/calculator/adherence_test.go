package calculator

import (
	"testing"

	"github.com/mmynk/dailydiet/internal/models"
)

func meals(flags ...bool) []models.Meal {
	out := make([]models.Meal, len(flags))
	for i, f := range flags {
		out[i] = models.Meal{InDiet: f}
	}
	return out
}

func allOnDiet(n int) []models.Meal {
	flags := make([]bool, n)
	for i := range flags {
		flags[i] = true
	}
	return meals(flags...)
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name  string
		meals []models.Meal
		want  Summary
	}{
		{
			name:  "empty history",
			meals: nil,
			want:  Summary{},
		},
		{
			name:  "mixed with reset",
			meals: meals(true, true, false, true),
			want:  Summary{Total: 4, OnDietCount: 3, OffDietCount: 1, LongestOnDietStreak: 2},
		},
		{
			name:  "all on diet",
			meals: allOnDiet(7),
			want:  Summary{Total: 7, OnDietCount: 7, LongestOnDietStreak: 7},
		},
		{
			name:  "all off diet",
			meals: meals(false, false, false),
			want:  Summary{Total: 3, OffDietCount: 3},
		},
		{
			name:  "longest run at the end",
			meals: meals(true, false, true, true, true),
			want:  Summary{Total: 5, OnDietCount: 4, OffDietCount: 1, LongestOnDietStreak: 3},
		},
		{
			name:  "earlier run stays the maximum",
			meals: meals(true, true, true, false, true, true),
			want:  Summary{Total: 6, OnDietCount: 5, OffDietCount: 1, LongestOnDietStreak: 3},
		},
		{
			name:  "single off diet meal",
			meals: meals(false),
			want:  Summary{Total: 1, OffDietCount: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.meals)
			if got != tt.want {
				t.Errorf("Summarize() = %+v, want %+v", got, tt.want)
			}
			if got.OnDietCount+got.OffDietCount != got.Total {
				t.Errorf("counts do not add up: %+v", got)
			}
		})
	}
}
