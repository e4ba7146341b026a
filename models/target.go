package models

import "fmt"

// MacroTarget holds the per-meal macro goals for one search. A zero value
// means the macro is unconstrained; calories and protein are the two goals
// callers normally set.
type MacroTarget struct {
	Calories float64 `json:"calorie_goal"`
	Protein  float64 `json:"protein_goal"`
	Carbs    float64 `json:"carb_goal,omitempty"`
	Fat      float64 `json:"fat_goal,omitempty"`
	Fiber    float64 `json:"fiber_goal,omitempty"`
}

// Validate rejects negative goals. Zero is fine (unconstrained).
func (t MacroTarget) Validate() error {
	for _, g := range []struct {
		name  string
		value float64
	}{
		{"calorie_goal", t.Calories},
		{"protein_goal", t.Protein},
		{"carb_goal", t.Carbs},
		{"fat_goal", t.Fat},
		{"fiber_goal", t.Fiber},
	} {
		if g.value < 0 {
			return &ValidationError{Field: g.name, Reason: "must not be negative"}
		}
	}
	return nil
}

// Active reports whether any goal is set at all.
func (t MacroTarget) Active() bool {
	return t.Calories > 0 || t.Protein > 0 || t.Carbs > 0 || t.Fat > 0 || t.Fiber > 0
}

func (t MacroTarget) String() string {
	return fmt.Sprintf("%.0f kcal, %.1f g protein", t.Calories, t.Protein)
}
