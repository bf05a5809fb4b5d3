package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/nikita-rudenko/exercise-tracker/internal/response"
)

// NewRouter wires middleware and routes. Tests reuse it so the surface
// under test is the one served in production.
func NewRouter(app App) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(RequestLogger(app.Logger()))
	r.Use(cors.Default())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/api/exercise/new-user", PostUser(app))
	r.POST("/api/exercise/add/", PostExercise(app))
	r.GET("/api/exercise/log", GetLog(app))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.NotFound("not found"))
	})

	return r
}
