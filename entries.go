package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ledger entry handler functions. Entries always belong to exactly one sheet;
// Add targets the active sheet, Edit and Delete find the entry wherever it
// lives.

// @Summary Add ledger entry
// @Description Append an entry to the active sheet. The kind decides which amount column is set; the balance is derived on the next view read.
// @Tags entries
// @Accept json
// @Produce json
// @Param entry body entryInput true "Entry data"
// @Success 201 {object} LedgerEntry "Created entry"
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Router /api/entries [post]
func createEntry(c *gin.Context) {
	var in entryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := validateEntryInput(in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ws.mu.Lock()
	defer ws.mu.Unlock()

	sheet := ws.activeSheet()
	entry := LedgerEntry{ID: newID()}
	applyEntryInput(&entry, in)
	sheet.Entries = append(sheet.Entries, entry)
	ws.persistSheets()

	c.JSON(http.StatusCreated, entry)
}

// @Summary Edit ledger entry
// @Description Replace an entry's date, time, kind, label and amount
// @Tags entries
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param entry body entryInput true "Entry data"
// @Success 200 {object} LedgerEntry "Updated entry"
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Failure 404 {object} map[string]interface{} "Entry not found"
// @Router /api/entries/{id} [put]
func updateEntry(c *gin.Context) {
	id := c.Param("id")
	var in entryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := validateEntryInput(in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ws.mu.Lock()
	defer ws.mu.Unlock()

	for _, sheet := range ws.Sheets {
		for i := range sheet.Entries {
			if sheet.Entries[i].ID == id {
				applyEntryInput(&sheet.Entries[i], in)
				ws.persistSheets()
				c.JSON(http.StatusOK, sheet.Entries[i])
				return
			}
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
}

// @Summary Delete ledger entry
// @Description Delete an entry. The deletion is undoable via POST /api/entries/undo.
// @Tags entries
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} map[string]interface{} "Entry deleted"
// @Failure 404 {object} map[string]interface{} "Entry not found"
// @Router /api/entries/{id} [delete]
func deleteEntry(c *gin.Context) {
	id := c.Param("id")

	ws.mu.Lock()
	defer ws.mu.Unlock()

	for _, sheet := range ws.Sheets {
		for i, entry := range sheet.Entries {
			if entry.ID == id {
				ws.entryUndo = append(ws.entryUndo, deletedEntry{SheetID: sheet.ID, Entry: entry})
				sheet.Entries = append(sheet.Entries[:i], sheet.Entries[i+1:]...)
				ws.persistSheets()
				c.JSON(http.StatusOK, gin.H{"message": "Entry deleted successfully"})
				return
			}
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
}

// @Summary Undo last entry deletion
// @Description Restore the most recently deleted entry to its sheet, or to the active sheet when the original sheet is gone
// @Tags entries
// @Produce json
// @Success 200 {object} LedgerEntry "Restored entry"
// @Failure 400 {object} map[string]interface{} "Nothing to undo"
// @Router /api/entries/undo [post]
func undoEntryDelete(c *gin.Context) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if len(ws.entryUndo) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to undo"})
		return
	}

	last := ws.entryUndo[len(ws.entryUndo)-1]
	ws.entryUndo = ws.entryUndo[:len(ws.entryUndo)-1]

	sheet := ws.sheetByID(last.SheetID)
	if sheet == nil {
		sheet = ws.activeSheet()
	}
	sheet.Entries = append(sheet.Entries, last.Entry)
	ws.persistSheets()

	c.JSON(http.StatusOK, last.Entry)
}
