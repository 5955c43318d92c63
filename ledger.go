package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Ledger core functions. The entry slice on a sheet keeps insertion order;
// every read derives the chronological view and running balance from scratch.

// deriveView sorts entries chronologically and computes the running balance.
// The sort is stable so entries sharing a timestamp keep insertion order.
func deriveView(entries []LedgerEntry) []LedgerRow {
	ordered := make([]LedgerEntry, len(entries))
	copy(ordered, entries)

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Date != ordered[j].Date {
			return ordered[i].Date < ordered[j].Date // ISO dates compare lexicographically
		}
		if ordered[i].Hour != ordered[j].Hour {
			return ordered[i].Hour < ordered[j].Hour
		}
		return ordered[i].Minute < ordered[j].Minute
	})

	rows := make([]LedgerRow, 0, len(ordered))
	balance := decimal.Zero
	for _, e := range ordered {
		balance = balance.Add(e.IncomeAmount).Sub(e.ExpenseAmount)
		rows = append(rows, LedgerRow{LedgerEntry: e, Balance: balance})
	}
	return rows
}

// summarize totals a sheet's full entry set.
func summarize(entries []LedgerEntry) SheetSummary {
	income := decimal.Zero
	expense := decimal.Zero
	for _, e := range entries {
		income = income.Add(e.IncomeAmount)
		expense = expense.Add(e.ExpenseAmount)
	}
	return SheetSummary{
		TotalIncome:  income,
		TotalExpense: expense,
		NetBalance:   income.Sub(expense),
	}
}

// entryInput is the wire shape for adding or editing an entry.
type entryInput struct {
	Date   string          `json:"date" binding:"required"`
	Hour   int             `json:"hour"`
	Minute int             `json:"minute"`
	Kind   string          `json:"kind" binding:"required"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// validateEntryInput checks an entry payload before it touches a sheet.
func validateEntryInput(in entryInput) error {
	if _, err := parseISODate(in.Date); err != nil {
		return fmt.Errorf("invalid date %q", in.Date)
	}
	if in.Hour < 0 || in.Hour > 23 {
		return fmt.Errorf("hour must be between 0 and 23")
	}
	if in.Minute < 0 || in.Minute > 50 || in.Minute%10 != 0 {
		return fmt.Errorf("minute must be one of 0, 10, 20, 30, 40, 50")
	}
	if in.Kind != KindIncome && in.Kind != KindExpense {
		return fmt.Errorf("kind must be %q or %q", KindIncome, KindExpense)
	}
	if strings.TrimSpace(in.Label) == "" {
		return fmt.Errorf("label cannot be empty")
	}
	if !in.Amount.IsPositive() {
		return fmt.Errorf("amount must be greater than zero")
	}
	return nil
}

// applyEntryInput writes the payload onto an entry. The kind decides which
// amount column receives the value; the other is forced to zero.
func applyEntryInput(e *LedgerEntry, in entryInput) {
	e.Date = in.Date
	e.Hour = in.Hour
	e.Minute = in.Minute
	e.Kind = in.Kind
	e.Label = in.Label
	if in.Kind == KindIncome {
		e.IncomeAmount = in.Amount
		e.ExpenseAmount = decimal.Zero
	} else {
		e.IncomeAmount = decimal.Zero
		e.ExpenseAmount = in.Amount
	}
}
