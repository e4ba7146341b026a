package models

// SuggestedItem is one catalog item with its serving count inside a
// proposed meal.
type SuggestedItem struct {
	Food     FoodItem `json:"food"`
	Servings int      `json:"servings"`
}

// MealCandidate is a scored combination. Alternatives on the final
// suggestion reuse this shape without nesting further.
type MealCandidate struct {
	Items  []SuggestedItem `json:"items"`
	Totals MacroSum        `json:"totals"`
	Score  float64         `json:"score"`
}

// MealSuggestion is the search result: the winning candidate, the tolerance
// band that accepted it, a formatted text block, and a few runner-ups.
type MealSuggestion struct {
	MealCandidate
	Tolerance    float64         `json:"tolerance"`
	Text         string          `json:"text"`
	Notes        []string        `json:"notes,omitempty"`
	Alternatives []MealCandidate `json:"alternatives,omitempty"`
}
