package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var wsLogger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "workspace").Logger()

// deletedEntry remembers which sheet a deleted ledger entry came from so an
// undo can put it back.
type deletedEntry struct {
	SheetID string
	Entry   LedgerEntry
}

// Workspace is the whole in-memory state, loaded from the store at boot.
// One mutex serializes every mutation; the original system is driven by a
// single UI thread and nothing here needs finer grain.
type Workspace struct {
	mu sync.Mutex

	Sheets        []*Sheet
	ActiveSheetID string
	Schedules     []ScheduleEvent
	Members       []Member
	Notes         []Note
	Settings      Settings
	Shortlinks    map[string]string

	// Session-scoped undo stacks for deletions, not persisted.
	entryUndo    []deletedEntry
	scheduleUndo [][]ScheduleEvent
}

// sheetsBlob is the persisted shape of the sheet collection.
type sheetsBlob struct {
	ActiveID string   `json:"active_id"`
	Sheets   []*Sheet `json:"sheets"`
}

// loadWorkspace reads every collection from the store, substituting defaults
// for absent keys. A workspace always boots with at least one sheet.
func loadWorkspace(ctx context.Context, s Store) (*Workspace, error) {
	w := &Workspace{
		Shortlinks: make(map[string]string),
		Settings:   Settings{MainTitle: "Workdesk"},
	}

	var sb sheetsBlob
	if err := loadBlob(ctx, s, keySheets, &sb); err != nil {
		return nil, err
	}
	w.Sheets = sb.Sheets
	w.ActiveSheetID = sb.ActiveID
	if len(w.Sheets) == 0 {
		first := &Sheet{ID: newID(), Name: "Sheet 1", Entries: []LedgerEntry{}}
		w.Sheets = []*Sheet{first}
		w.ActiveSheetID = first.ID
	}
	if w.sheetByID(w.ActiveSheetID) == nil {
		w.ActiveSheetID = w.Sheets[0].ID
	}

	if err := loadBlob(ctx, s, keySchedules, &w.Schedules); err != nil {
		return nil, err
	}
	if err := loadBlob(ctx, s, keyMembers, &w.Members); err != nil {
		return nil, err
	}
	if err := loadBlob(ctx, s, keyNotes, &w.Notes); err != nil {
		return nil, err
	}
	if err := loadBlob(ctx, s, keySettings, &w.Settings); err != nil {
		return nil, err
	}
	if err := loadBlob(ctx, s, keyShortlinks, &w.Shortlinks); err != nil {
		return nil, err
	}
	if w.Shortlinks == nil {
		w.Shortlinks = make(map[string]string)
	}

	return w, nil
}

// loadBlob unmarshals the blob under key into target, leaving target
// untouched when the key is absent.
func loadBlob(ctx context.Context, s Store, key string, target interface{}) error {
	blob, err := s.Load(ctx, key)
	if err == errNoBlob {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading %q: %w", key, err)
	}
	if err := json.Unmarshal(blob, target); err != nil {
		return fmt.Errorf("decoding %q: %w", key, err)
	}
	return nil
}

// sheetByID returns the sheet with the given id, or nil. Caller holds the lock.
func (w *Workspace) sheetByID(id string) *Sheet {
	for _, sh := range w.Sheets {
		if sh.ID == id {
			return sh
		}
	}
	return nil
}

// activeSheet returns the currently active sheet. Caller holds the lock.
func (w *Workspace) activeSheet() *Sheet {
	return w.sheetByID(w.ActiveSheetID)
}

// Write-behind persistence. Each persist* call marshals the collection under
// the caller's lock and hands the bytes to a goroutine, so the mutation path
// never waits on the store. Failures are logged; in-memory state stays
// authoritative for the session.

func (w *Workspace) persistSheets() {
	w.persist(keySheets, sheetsBlob{ActiveID: w.ActiveSheetID, Sheets: w.Sheets})
}

func (w *Workspace) persistSchedules() {
	w.persist(keySchedules, w.Schedules)
}

func (w *Workspace) persistMembers() {
	w.persist(keyMembers, w.Members)
}

func (w *Workspace) persistNotes() {
	w.persist(keyNotes, w.Notes)
}

func (w *Workspace) persistSettings() {
	w.persist(keySettings, w.Settings)
}

func (w *Workspace) persistShortlinks() {
	w.persist(keyShortlinks, w.Shortlinks)
}

func (w *Workspace) persist(key string, collection interface{}) {
	blob, err := json.Marshal(collection)
	if err != nil {
		wsLogger.Error().Err(err).Str("key", key).Msg("marshal failed, blob not saved")
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Save(ctx, key, blob); err != nil {
			wsLogger.Error().Err(err).Str("key", key).Msg("save failed, in-memory state still authoritative")
		}
	}()
}
