package controllers

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/catloaf567/boilergains/config"
	"github.com/catloaf567/boilergains/models"
	"github.com/catloaf567/boilergains/services"
)

type appDeps struct {
	cfg       *config.Config
	catalog   *services.CatalogService
	suggest   *services.SuggestService
	recommend *services.RecommendService
}

var _deps appDeps

// Init wires the controllers to their services. Call once at startup,
// before the router takes traffic.
func Init(cfg *config.Config, catalog *services.CatalogService, suggest *services.SuggestService, recommend *services.RecommendService) {
	_deps = appDeps{cfg: cfg, catalog: catalog, suggest: suggest, recommend: recommend}
}

// respondError maps domain errors onto the transport. A no-match result is
// a normal outcome and stays HTTP 200; a dataset the client pointed at but
// the server cannot find is the client's mistake.
func respondError(c *gin.Context, err error) {
	var (
		vErr *models.ValidationError
		dErr *models.DataSourceError
	)
	switch {
	case errors.Is(err, models.ErrNoMatch):
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "No matching meal found."})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": vErr.Error()})
	case errors.As(err, &dErr):
		status := http.StatusInternalServerError
		if errors.Is(dErr, fs.ErrNotExist) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"success": false, "error": dErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
	}
}
