package main

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s := newMemoryStore()
	ctx := context.Background()

	t.Run("absent key reports errNoBlob", func(t *testing.T) {
		_, err := s.Load(ctx, "missing")
		assert.ErrorIs(t, err, errNoBlob)
	})

	t.Run("save then load round-trips", func(t *testing.T) {
		require.NoError(t, s.Save(ctx, "k", []byte(`{"a":1}`)))
		blob, err := s.Load(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(blob))
	})

	t.Run("loaded blob is a copy", func(t *testing.T) {
		blob, err := s.Load(ctx, "k")
		require.NoError(t, err)
		blob[0] = 'X'

		again, err := s.Load(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(again))
	})
}

func TestLoadWorkspaceDefaults(t *testing.T) {
	w, err := loadWorkspace(context.Background(), newMemoryStore())
	require.NoError(t, err)

	require.Len(t, w.Sheets, 1, "a fresh workspace boots with one sheet")
	assert.Equal(t, w.Sheets[0].ID, w.ActiveSheetID)
	assert.Empty(t, w.Schedules)
	assert.NotNil(t, w.Shortlinks)
	assert.Equal(t, "Workdesk", w.Settings.MainTitle)
}

func TestLoadWorkspaceFromBlobs(t *testing.T) {
	s := newMemoryStore()
	ctx := context.Background()

	sheets := sheetsBlob{
		ActiveID: "s2",
		Sheets: []*Sheet{
			{ID: "s1", Name: "First", Entries: []LedgerEntry{
				{ID: "e1", Date: "2024-01-01", Hour: 9, Kind: KindIncome,
					Label: "sale", IncomeAmount: decimal.NewFromInt(1000), ExpenseAmount: decimal.Zero},
			}},
			{ID: "s2", Name: "Second", Entries: []LedgerEntry{}},
		},
	}
	blob, err := json.Marshal(sheets)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, keySheets, blob))

	events := []ScheduleEvent{{ID: "ev1", Date: "2024-01-01", StartTime: "09:00", EndTime: "10:00", Title: "t"}}
	blob, err = json.Marshal(events)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, keySchedules, blob))

	w, err := loadWorkspace(ctx, s)
	require.NoError(t, err)

	require.Len(t, w.Sheets, 2)
	assert.Equal(t, "s2", w.ActiveSheetID)
	assert.Equal(t, "1000", w.Sheets[0].Entries[0].IncomeAmount.String())
	require.Len(t, w.Schedules, 1)
	assert.Equal(t, "ev1", w.Schedules[0].ID)
}

func TestLoadWorkspaceRepairsActiveID(t *testing.T) {
	s := newMemoryStore()
	ctx := context.Background()

	blob, err := json.Marshal(sheetsBlob{
		ActiveID: "gone",
		Sheets:   []*Sheet{{ID: "s1", Name: "Only", Entries: []LedgerEntry{}}},
	})
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, keySheets, blob))

	w, err := loadWorkspace(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, "s1", w.ActiveSheetID, "a dangling active id falls back to the first sheet")
}

func TestLoadWorkspaceCorruptBlob(t *testing.T) {
	s := newMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, keySheets, []byte("not json")))

	_, err := loadWorkspace(ctx, s)
	assert.Error(t, err)
}
