package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/catloaf567/boilergains/models"
)

type recommendResponse struct {
	Success bool `json:"success"`
	models.NutritionPlan
}

// POST /recommend
func RecommendTargets(c *gin.Context) {
	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	plan, err := _deps.recommend.Plan(profile)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recommendResponse{Success: true, NutritionPlan: *plan})
}
