package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Note handler functions

// @Summary Get all notes
// @Description Retrieve all notes, newest first
// @Tags notes
// @Produce json
// @Success 200 {array} Note "List of notes"
// @Router /api/notes [get]
func getNotes(c *gin.Context) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	notes := make([]Note, len(ws.Notes))
	copy(notes, ws.Notes)

	c.JSON(http.StatusOK, notes)
}

// @Summary Create note
// @Description Add a note (content required), timestamped server-side
// @Tags notes
// @Accept json
// @Produce json
// @Param note body object{content=string} true "Note content"
// @Success 201 {object} Note "Created note"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Router /api/notes [post]
func createNote(c *gin.Context) {
	var request struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if strings.TrimSpace(request.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content cannot be empty"})
		return
	}

	now := time.Now().UTC()
	note := Note{ID: newID(), Content: request.Content, CreatedAt: now, UpdatedAt: now}

	ws.mu.Lock()
	defer ws.mu.Unlock()

	ws.Notes = append([]Note{note}, ws.Notes...)
	ws.persistNotes()

	c.JSON(http.StatusCreated, note)
}

// @Summary Update note
// @Description Replace a note's content and re-stamp it
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Note ID"
// @Param note body object{content=string} true "Note content"
// @Success 200 {object} Note "Updated note"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Note not found"
// @Router /api/notes/{id} [put]
func updateNote(c *gin.Context) {
	id := c.Param("id")
	var request struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if strings.TrimSpace(request.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content cannot be empty"})
		return
	}

	ws.mu.Lock()
	defer ws.mu.Unlock()

	for i := range ws.Notes {
		if ws.Notes[i].ID == id {
			ws.Notes[i].Content = request.Content
			ws.Notes[i].UpdatedAt = time.Now().UTC()
			ws.persistNotes()
			c.JSON(http.StatusOK, ws.Notes[i])
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
}

// @Summary Delete note
// @Description Remove a note
// @Tags notes
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} map[string]interface{} "Note deleted"
// @Failure 404 {object} map[string]interface{} "Note not found"
// @Router /api/notes/{id} [delete]
func deleteNote(c *gin.Context) {
	id := c.Param("id")

	ws.mu.Lock()
	defer ws.mu.Unlock()

	for i, n := range ws.Notes {
		if n.ID == id {
			ws.Notes = append(ws.Notes[:i], ws.Notes[i+1:]...)
			ws.persistNotes()
			c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
}
