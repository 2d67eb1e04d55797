package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GetHome godoc
// @Summary Service banner
// @Description Returns service name, version and the available endpoint groups.
// @Tags home
// @Produce json
// @Success 200 {object} map[string]any
// @Router / [get]
func GetHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "AgriFusion API Server",
		"version": "1.0.0",
		"status":  "Running",
		"endpoints": gin.H{
			"users":     "/api/users",
			"diagnoses": "/api/diagnoses",
			"voice":     "/api/voice",
			"weather":   "/api/weather",
		},
	})
}

// GetHealth godoc
// @Summary Liveness check
// @Tags home
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
