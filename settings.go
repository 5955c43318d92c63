package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Settings handler functions

// @Summary Get workspace titles
// @Description Retrieve the workspace main and sub title strings
// @Tags settings
// @Produce json
// @Success 200 {object} Settings "Current titles"
// @Router /api/settings [get]
func getSettings(c *gin.Context) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	c.JSON(http.StatusOK, ws.Settings)
}

// @Summary Update workspace titles
// @Description Replace the workspace main and sub title strings
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body Settings true "New titles"
// @Success 200 {object} Settings "Updated titles"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Router /api/settings [put]
func updateSettings(c *gin.Context) {
	var in Settings
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ws.mu.Lock()
	defer ws.mu.Unlock()

	ws.Settings = in
	ws.persistSettings()

	c.JSON(http.StatusOK, ws.Settings)
}
