package controllers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/catloaf567/boilergains/services"
)

type datasetInfo struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// GET /datasets
func ListDatasets(c *gin.Context) {
	out := make([]datasetInfo, 0, len(_deps.cfg.Datasets))
	for name, path := range _deps.cfg.Datasets {
		out = append(out, datasetInfo{Name: name, Path: path})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"datasets": out,
		"default":  _deps.cfg.Default,
	})
}

// GET /items?path=&vegan=&allergen=&exclude=
func ListItems(c *gin.Context) {
	catalog, err := _deps.catalog.Load(_deps.cfg.ResolveDataset(c.Query("path")))
	if err != nil {
		respondError(c, err)
		return
	}

	vegan, _ := strconv.ParseBool(c.DefaultQuery("vegan", "false"))
	pool := services.FilterPool(catalog, vegan, c.Query("allergen"), c.QueryArray("exclude"))
	sort.Slice(pool, func(i, j int) bool { return pool[i].Name < pool[j].Name })

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(pool),
		"items":   pool,
	})
}
