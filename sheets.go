package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Sheet manager handler functions. The sheet collection never goes below one
// sheet, and exactly one sheet is active at any time.

// @Summary List sheets
// @Description Retrieve all ledger sheets with entry counts and the active flag
// @Tags sheets
// @Produce json
// @Success 200 {array} SheetInfo "List of sheets"
// @Router /api/sheets [get]
func getSheets(c *gin.Context) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	infos := make([]SheetInfo, 0, len(ws.Sheets))
	for _, sh := range ws.Sheets {
		infos = append(infos, SheetInfo{
			ID:         sh.ID,
			Name:       sh.Name,
			Active:     sh.ID == ws.ActiveSheetID,
			EntryCount: len(sh.Entries),
		})
	}

	c.JSON(http.StatusOK, infos)
}

// @Summary Create sheet
// @Description Create a new empty sheet. The new sheet becomes the active one.
// @Tags sheets
// @Accept json
// @Produce json
// @Param sheet body object{name=string} true "Sheet name"
// @Success 201 {object} SheetInfo "Created sheet"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Router /api/sheets [post]
func createSheet(c *gin.Context) {
	var request struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := validateName(request.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ws.mu.Lock()
	defer ws.mu.Unlock()

	sheet := &Sheet{ID: newID(), Name: request.Name, Entries: []LedgerEntry{}}
	ws.Sheets = append(ws.Sheets, sheet)
	ws.ActiveSheetID = sheet.ID
	ws.persistSheets()

	c.JSON(http.StatusCreated, SheetInfo{ID: sheet.ID, Name: sheet.Name, Active: true})
}

// @Summary Rename sheet
// @Description Rename a sheet. Blank names are rejected and leave the sheet untouched.
// @Tags sheets
// @Accept json
// @Produce json
// @Param id path string true "Sheet ID"
// @Param sheet body object{name=string} true "New name"
// @Success 200 {object} SheetInfo "Renamed sheet"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Sheet not found"
// @Router /api/sheets/{id} [put]
func renameSheet(c *gin.Context) {
	id := c.Param("id")
	var request struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := validateName(request.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ws.mu.Lock()
	defer ws.mu.Unlock()

	sheet := ws.sheetByID(id)
	if sheet == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sheet not found"})
		return
	}

	sheet.Name = request.Name
	ws.persistSheets()

	c.JSON(http.StatusOK, SheetInfo{
		ID:         sheet.ID,
		Name:       sheet.Name,
		Active:     sheet.ID == ws.ActiveSheetID,
		EntryCount: len(sheet.Entries),
	})
}

// @Summary Delete sheet
// @Description Delete a sheet and its entries. Deleting the last remaining sheet is refused. When the active sheet is deleted the first remaining sheet becomes active.
// @Tags sheets
// @Produce json
// @Param id path string true "Sheet ID"
// @Success 200 {object} map[string]interface{} "Sheet deleted"
// @Failure 400 {object} map[string]interface{} "Last sheet cannot be deleted"
// @Failure 404 {object} map[string]interface{} "Sheet not found"
// @Router /api/sheets/{id} [delete]
func deleteSheet(c *gin.Context) {
	id := c.Param("id")

	ws.mu.Lock()
	defer ws.mu.Unlock()

	if len(ws.Sheets) <= 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The last remaining sheet cannot be deleted"})
		return
	}

	idx := -1
	for i, sh := range ws.Sheets {
		if sh.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sheet not found"})
		return
	}

	ws.Sheets = append(ws.Sheets[:idx], ws.Sheets[idx+1:]...)
	if ws.ActiveSheetID == id {
		ws.ActiveSheetID = ws.Sheets[0].ID
	}
	ws.persistSheets()

	c.JSON(http.StatusOK, gin.H{"message": "Sheet deleted successfully", "active_id": ws.ActiveSheetID})
}

// @Summary Activate sheet
// @Description Make a sheet the active one
// @Tags sheets
// @Produce json
// @Param id path string true "Sheet ID"
// @Success 200 {object} map[string]interface{} "Sheet activated"
// @Failure 404 {object} map[string]interface{} "Sheet not found"
// @Router /api/sheets/{id}/activate [put]
func activateSheet(c *gin.Context) {
	id := c.Param("id")

	ws.mu.Lock()
	defer ws.mu.Unlock()

	if ws.sheetByID(id) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sheet not found"})
		return
	}

	ws.ActiveSheetID = id
	ws.persistSheets()

	c.JSON(http.StatusOK, gin.H{"message": "Sheet activated successfully"})
}

// @Summary Get sheet view
// @Description Retrieve a sheet's entries in chronological order with running balances
// @Tags sheets
// @Produce json
// @Param id path string true "Sheet ID"
// @Success 200 {array} LedgerRow "Chronological rows"
// @Failure 404 {object} map[string]interface{} "Sheet not found"
// @Router /api/sheets/{id}/entries [get]
func getSheetEntries(c *gin.Context) {
	id := c.Param("id")

	ws.mu.Lock()
	defer ws.mu.Unlock()

	sheet := ws.sheetByID(id)
	if sheet == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sheet not found"})
		return
	}

	c.JSON(http.StatusOK, deriveView(sheet.Entries))
}

// @Summary Get sheet summary
// @Description Retrieve total income, total expense and net balance for a sheet
// @Tags sheets
// @Produce json
// @Param id path string true "Sheet ID"
// @Success 200 {object} SheetSummary "Totals"
// @Failure 404 {object} map[string]interface{} "Sheet not found"
// @Router /api/sheets/{id}/summary [get]
func getSheetSummary(c *gin.Context) {
	id := c.Param("id")

	ws.mu.Lock()
	defer ws.mu.Unlock()

	sheet := ws.sheetByID(id)
	if sheet == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sheet not found"})
		return
	}

	c.JSON(http.StatusOK, summarize(sheet.Entries))
}
