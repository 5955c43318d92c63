package main

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry kinds. The kind decides which amount column an entry uses.
const (
	KindIncome  = "income"
	KindExpense = "expense"
)

// LedgerEntry represents one income or expense record on a sheet.
// Balance is never stored on the entry; it is derived per view.
type LedgerEntry struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"` // YYYY-MM-DD
	Hour          int             `json:"hour"`
	Minute        int             `json:"minute"` // 10-minute granularity
	Kind          string          `json:"kind"`
	Label         string          `json:"label"`
	IncomeAmount  decimal.Decimal `json:"income_amount"`
	ExpenseAmount decimal.Decimal `json:"expense_amount"`
}

// LedgerRow is a LedgerEntry in chronological position with its running balance.
type LedgerRow struct {
	LedgerEntry
	Balance decimal.Decimal `json:"balance"`
}

// Sheet is a named, independently managed ledger.
type Sheet struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Entries []LedgerEntry `json:"entries"`
}

// SheetInfo is the list representation of a sheet (entries elided).
type SheetInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Active     bool   `json:"active"`
	EntryCount int    `json:"entry_count"`
}

// SheetSummary holds whole-sheet totals.
type SheetSummary struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	NetBalance   decimal.Decimal `json:"net_balance"`
}

// ScheduleEvent represents a dated, time-ranged calendar event.
type ScheduleEvent struct {
	ID        string `json:"id"`
	Date      string `json:"date"`       // YYYY-MM-DD
	StartTime string `json:"start_time"` // HH:MM
	EndTime   string `json:"end_time"`   // HH:MM, "00:00" means end of day
	Title     string `json:"title"`
}

// Member represents a roster member.
type Member struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Note represents a free-form note.
type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Settings holds the two workspace title strings.
type Settings struct {
	MainTitle string `json:"main_title"`
	SubTitle  string `json:"sub_title"`
}
