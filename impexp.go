package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Import/export adapter. The tabular format is CSV with one exported table
// per sheet. Imports are lenient: a field's column is located by trying
// known header spellings in priority order, unparseable amounts coerce to 0
// and unparseable text coerces to empty, so a single bad cell never fails
// the file.

// exportHeader is the exported column order. The balance column is written
// for humans and ignored on import.
var exportHeader = []string{"날짜", "시간", "구분", "내역", "수입금액", "지출금액", "누계"}

// Korean kind labels used in the exported 구분 column.
const (
	kindLabelIncome  = "수입"
	kindLabelExpense = "지출"
)

// importFields maps each entry field to its header alias chain, first match
// wins. Aliases are compared after trimming and lowercasing.
var importFields = map[string][]string{
	"date":    {"날짜", "일자", "date"},
	"time":    {"시간", "time"},
	"label":   {"내역", "항목", "적요", "label", "description"},
	"income":  {"수입금액", "수입", "income", "incomeamount"},
	"expense": {"지출금액", "지출", "expense", "expenseamount"},
}

// resolveColumns locates each import field's column index in the header row.
// Fields whose aliases all miss are absent from the result.
func resolveColumns(header []string) map[string]int {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF")))
	}

	columns := make(map[string]int)
	for field, aliases := range importFields {
		for _, alias := range aliases {
			found := false
			for i, h := range normalized {
				if h == alias {
					columns[field] = i
					found = true
					break
				}
			}
			if found {
				break
			}
		}
	}
	return columns
}

// cell returns the row's value for a resolved field, or "" when the field's
// column is absent or the row is too short.
func cell(row []string, columns map[string]int, field string) string {
	idx, ok := columns[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseAmount parses a money cell, tolerating thousands separators and a
// currency marker. Anything unparseable coerces to zero.
func parseAmount(s string) decimal.Decimal {
	cleaned := strings.NewReplacer(",", "", "₩", "", " ", "").Replace(s)
	if cleaned == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil || amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

// parseImportDate normalizes the date cell to YYYY-MM-DD, trying the
// separators seen in the wild. Unparseable dates coerce to empty.
func parseImportDate(s string) string {
	for _, layout := range []string{"2006-01-02", "2006.01.02", "2006/01/02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

// parseImportTime splits an "HH:MM" cell into hour and minute, flooring the
// minute to the entry model's 10-minute granularity. Unparseable times
// coerce to midnight.
func parseImportTime(s string) (int, int) {
	mins, err := parseClock(s)
	if err != nil {
		return 0, 0
	}
	return mins / 60, (mins % 60) / 10 * 10
}

// entriesFromRecords converts parsed CSV records into ledger entries. The
// kind is never read from the source: income wins when its amount is
// positive, everything else is an expense. Rows with no positive amount on
// either side are dropped.
func entriesFromRecords(records [][]string) ([]LedgerEntry, int) {
	if len(records) == 0 {
		return nil, 0
	}

	columns := resolveColumns(records[0])
	skipped := 0
	entries := make([]LedgerEntry, 0, len(records)-1)

	for _, row := range records[1:] {
		income := parseAmount(cell(row, columns, "income"))
		expense := parseAmount(cell(row, columns, "expense"))
		if !income.IsPositive() && !expense.IsPositive() {
			skipped++
			continue
		}

		hour, minute := parseImportTime(cell(row, columns, "time"))
		entry := LedgerEntry{
			ID:     newID(),
			Date:   parseImportDate(cell(row, columns, "date")),
			Hour:   hour,
			Minute: minute,
			Label:  cell(row, columns, "label"),
		}
		if income.IsPositive() {
			entry.Kind = KindIncome
			entry.IncomeAmount = income
			entry.ExpenseAmount = decimal.Zero
		} else {
			entry.Kind = KindExpense
			entry.IncomeAmount = decimal.Zero
			entry.ExpenseAmount = expense
		}
		entries = append(entries, entry)
	}

	return entries, skipped
}

// writeSheetCSV writes a sheet's derived view as one CSV table.
func writeSheetCSV(out io.Writer, entries []LedgerEntry) error {
	w := csv.NewWriter(out)
	if err := w.Write(exportHeader); err != nil {
		return err
	}
	for _, row := range deriveView(entries) {
		kind := kindLabelExpense
		if row.Kind == KindIncome {
			kind = kindLabelIncome
		}
		record := []string{
			row.Date,
			fmt.Sprintf("%02d:%02d", row.Hour, row.Minute),
			kind,
			row.Label,
			row.IncomeAmount.String(),
			row.ExpenseAmount.String(),
			row.Balance.String(),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// @Summary Export sheet as CSV
// @Description Download a sheet's derived view (chronological order, running balance) as a CSV table
// @Tags impexp
// @Produce text/csv
// @Param id path string true "Sheet ID"
// @Success 200 {string} string "CSV data"
// @Failure 404 {object} map[string]interface{} "Sheet not found"
// @Router /api/sheets/{id}/export [get]
func exportSheet(c *gin.Context) {
	id := c.Param("id")

	ws.mu.Lock()
	sheet := ws.sheetByID(id)
	if sheet == nil {
		ws.mu.Unlock()
		c.JSON(http.StatusNotFound, gin.H{"error": "Sheet not found"})
		return
	}
	var sb strings.Builder
	err := writeSheetCSV(&sb, sheet.Entries)
	name := sheet.Name
	ws.mu.Unlock()

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error writing CSV"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".csv"))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(sb.String()))
}

// @Summary Import CSV into a sheet
// @Description Import tabular entries into a sheet. mode=overwrite replaces the sheet's entries, mode=append unions with them. Imported rows get fresh ids and balances are recomputed on the next read.
// @Tags impexp
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Sheet ID"
// @Param mode query string true "overwrite or append"
// @Param file formData file true "CSV file"
// @Success 200 {object} map[string]interface{} "Import result with imported and skipped counts"
// @Failure 400 {object} map[string]interface{} "Bad request or format error"
// @Failure 404 {object} map[string]interface{} "Sheet not found"
// @Router /api/sheets/{id}/import [post]
func importSheet(c *gin.Context) {
	id := c.Param("id")
	mode := c.Query("mode")
	if mode != "overwrite" && mode != "append" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be overwrite or append"})
		return
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // tolerate ragged rows
	records, err := reader.ReadAll()
	if err != nil || len(records) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File format error"})
		return
	}

	entries, skipped := entriesFromRecords(records)

	ws.mu.Lock()
	defer ws.mu.Unlock()

	sheet := ws.sheetByID(id)
	if sheet == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sheet not found"})
		return
	}

	if mode == "overwrite" {
		sheet.Entries = entries
	} else {
		sheet.Entries = append(sheet.Entries, entries...)
	}
	ws.persistSheets()

	c.JSON(http.StatusOK, gin.H{
		"message":      "CSV imported successfully",
		"imported":     len(entries),
		"skipped_rows": skipped,
	})
}
