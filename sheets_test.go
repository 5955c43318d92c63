package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSheetFloor tests that the workspace never drops below one sheet
func TestSheetFloor(t *testing.T) {
	resetWorkspace(t)

	var sheets []SheetInfo
	resp := makeRequest("GET", "/api/sheets", nil)
	assertStatusCode(t, http.StatusOK, resp.Code)
	assertNoError(t, parseJSONResponse(resp, &sheets))
	require.Len(t, sheets, 1, "a fresh workspace boots with one sheet")

	t.Run("deleting the only sheet is refused", func(t *testing.T) {
		resp := makeRequest("DELETE", "/api/sheets/"+sheets[0].ID, nil)
		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("after deleting a non-last sheet some sheet is active", func(t *testing.T) {
		create := makeJSONRequest(t, "POST", "/api/sheets", map[string]string{"name": "Savings"})
		assertStatusCode(t, http.StatusCreated, create.Code)
		var created SheetInfo
		assertNoError(t, parseJSONResponse(create, &created))
		assert.True(t, created.Active, "a new sheet becomes active")

		del := makeRequest("DELETE", "/api/sheets/"+created.ID, nil)
		assertStatusCode(t, http.StatusOK, del.Code)

		var after []SheetInfo
		list := makeRequest("GET", "/api/sheets", nil)
		assertNoError(t, parseJSONResponse(list, &after))
		require.Len(t, after, 1)
		assert.True(t, after[0].Active, "the first remaining sheet takes over")
	})
}

func TestRenameSheet(t *testing.T) {
	resetWorkspace(t)

	var sheets []SheetInfo
	resp := makeRequest("GET", "/api/sheets", nil)
	assertNoError(t, parseJSONResponse(resp, &sheets))
	require.Len(t, sheets, 1)
	id := sheets[0].ID

	t.Run("blank name is rejected and the sheet keeps its name", func(t *testing.T) {
		resp := makeJSONRequest(t, "PUT", "/api/sheets/"+id, map[string]string{"name": "   "})
		assertStatusCode(t, http.StatusBadRequest, resp.Code)

		var after []SheetInfo
		list := makeRequest("GET", "/api/sheets", nil)
		assertNoError(t, parseJSONResponse(list, &after))
		assert.Equal(t, sheets[0].Name, after[0].Name)
	})

	t.Run("valid rename sticks", func(t *testing.T) {
		resp := makeJSONRequest(t, "PUT", "/api/sheets/"+id, map[string]string{"name": "Household"})
		assertStatusCode(t, http.StatusOK, resp.Code)

		var renamed SheetInfo
		assertNoError(t, parseJSONResponse(resp, &renamed))
		assert.Equal(t, "Household", renamed.Name)
	})

	t.Run("unknown sheet is 404", func(t *testing.T) {
		resp := makeJSONRequest(t, "PUT", "/api/sheets/missing", map[string]string{"name": "x"})
		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})
}

func TestActivateSheet(t *testing.T) {
	resetWorkspace(t)

	first := currentSheets(t)[0]

	create := makeJSONRequest(t, "POST", "/api/sheets", map[string]string{"name": "Second"})
	assertStatusCode(t, http.StatusCreated, create.Code)

	resp := makeRequest("PUT", "/api/sheets/"+first.ID+"/activate", nil)
	assertStatusCode(t, http.StatusOK, resp.Code)

	for _, sh := range currentSheets(t) {
		assert.Equal(t, sh.ID == first.ID, sh.Active)
	}

	t.Run("unknown sheet is 404", func(t *testing.T) {
		resp := makeRequest("PUT", "/api/sheets/missing/activate", nil)
		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})
}

// TestDeleteSheetDiscardsEntries tests exclusive entry ownership
func TestDeleteSheetDiscardsEntries(t *testing.T) {
	resetWorkspace(t)

	create := makeJSONRequest(t, "POST", "/api/sheets", map[string]string{"name": "Doomed"})
	var doomed SheetInfo
	assertNoError(t, parseJSONResponse(create, &doomed))

	add := makeJSONRequest(t, "POST", "/api/entries", map[string]interface{}{
		"date": "2024-04-01", "hour": 9, "minute": 0,
		"kind": KindIncome, "label": "sale", "amount": "1000",
	})
	assertStatusCode(t, http.StatusCreated, add.Code)
	var added LedgerEntry
	assertNoError(t, parseJSONResponse(add, &added))

	del := makeRequest("DELETE", "/api/sheets/"+doomed.ID, nil)
	assertStatusCode(t, http.StatusOK, del.Code)

	// The entry died with its sheet; editing it is a 404.
	edit := makeJSONRequest(t, "PUT", "/api/entries/"+added.ID, map[string]interface{}{
		"date": "2024-04-01", "hour": 9, "minute": 0,
		"kind": KindIncome, "label": "sale", "amount": "1000",
	})
	assertStatusCode(t, http.StatusNotFound, edit.Code)
}

func currentSheets(t *testing.T) []SheetInfo {
	t.Helper()

	var sheets []SheetInfo
	resp := makeRequest("GET", "/api/sheets", nil)
	assertStatusCode(t, http.StatusOK, resp.Code)
	assertNoError(t, parseJSONResponse(resp, &sheets))
	return sheets
}
