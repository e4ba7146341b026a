package routes

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/catloaf567/boilergains/config"
	"github.com/catloaf567/boilergains/controllers"
	"github.com/catloaf567/boilergains/middlewares"
)

// SetupRouter builds the gin engine with all routes and middleware.
// controllers.Init must have run first.
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestLogger(), gin.Recovery())
	r.Use(corsMiddleware(cfg.Server.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/suggest", controllers.SuggestMeal)
	r.POST("/recommend", controllers.RecommendTargets)
	r.GET("/datasets", controllers.ListDatasets)
	r.GET("/items", controllers.ListItems)

	if dir := cfg.Server.StaticDir; dir != "" {
		if _, err := os.Stat(dir); err == nil {
			mountStatic(r, dir)
		}
	}
	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		return cors.Default() // allow all, like the kiosk page expects
	}
	c := cors.DefaultConfig()
	c.AllowOrigins = origins
	return cors.New(c)
}

// mountStatic serves index.html at / and any other file in dir for GETs the
// API does not claim.
func mountStatic(r *gin.Engine, dir string) {
	r.StaticFile("/", filepath.Join(dir, "index.html"))
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			p := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
			if info, err := os.Stat(p); err == nil && !info.IsDir() {
				c.File(p)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}
