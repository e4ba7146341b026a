package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/catloaf567/boilergains/models"
	"github.com/catloaf567/boilergains/services"
)

type suggestRequest struct {
	models.MacroTarget
	Vegan         bool     `json:"vegan"`
	Allergen      string   `json:"allergen"`
	ExcludedItems []string `json:"excluded_items"`
	Shortlist     []string `json:"shortlist"`
	Path          string   `json:"path"`
}

// POST /suggest
func SuggestMeal(c *gin.Context) {
	var req suggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	catalog, err := _deps.catalog.Load(_deps.cfg.ResolveDataset(req.Path))
	if err != nil {
		respondError(c, err)
		return
	}

	pool := services.FilterPool(catalog, req.Vegan, req.Allergen, req.ExcludedItems)

	var meal *models.MealSuggestion
	if len(req.Shortlist) > 0 {
		meal, err = _deps.suggest.SuggestFrom(pool, req.Shortlist, req.MacroTarget)
	} else {
		meal, err = _deps.suggest.Suggest(pool, req.MacroTarget)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"text":         meal.Text,
		"items":        meal.Items,
		"totals":       meal.Totals,
		"tolerance":    meal.Tolerance,
		"notes":        meal.Notes,
		"alternatives": meal.Alternatives,
	})
}
