package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		mins    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		mins, err := parseClock(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
		} else {
			require.NoError(t, err, tt.in)
			assert.Equal(t, tt.mins, mins, tt.in)
		}
	}
}

func TestEndClockMidnightSubstitution(t *testing.T) {
	mins, err := endClock("00:00")
	require.NoError(t, err)
	assert.Equal(t, 1440, mins)

	mins, err = endClock("00:01")
	require.NoError(t, err)
	assert.Equal(t, 1, mins)
}

func TestValidateEventOrdering(t *testing.T) {
	ev := ScheduleEvent{ID: "x", Date: "2024-06-01", StartTime: "10:00", EndTime: "09:00"}
	assert.ErrorIs(t, validateEvent(ev, nil), errEndNotAfterStart)

	ev.EndTime = "10:00"
	assert.ErrorIs(t, validateEvent(ev, nil), errEndNotAfterStart)

	// An event running to midnight is valid: "00:00" means minute 1440.
	ev.StartTime = "23:00"
	ev.EndTime = "00:00"
	assert.NoError(t, validateEvent(ev, nil))
}

func TestValidateEventOverlap(t *testing.T) {
	existing := []ScheduleEvent{
		{ID: "a", Date: "2024-06-01", StartTime: "09:00", EndTime: "10:00", Title: "standup"},
	}

	t.Run("overlapping event is rejected", func(t *testing.T) {
		ev := ScheduleEvent{ID: "b", Date: "2024-06-01", StartTime: "09:30", EndTime: "10:30"}
		assert.ErrorIs(t, validateEvent(ev, existing), errScheduleOverlap)
	})

	t.Run("adjacent event is accepted", func(t *testing.T) {
		ev := ScheduleEvent{ID: "b", Date: "2024-06-01", StartTime: "10:00", EndTime: "11:00"}
		assert.NoError(t, validateEvent(ev, existing))
	})

	t.Run("same times on another date are accepted", func(t *testing.T) {
		ev := ScheduleEvent{ID: "b", Date: "2024-06-02", StartTime: "09:00", EndTime: "10:00"}
		assert.NoError(t, validateEvent(ev, existing))
	})

	t.Run("event is not compared against itself", func(t *testing.T) {
		ev := ScheduleEvent{ID: "a", Date: "2024-06-01", StartTime: "09:00", EndTime: "10:00"}
		assert.NoError(t, validateEvent(ev, existing))
	})

	t.Run("midnight end blocks late evening overlap", func(t *testing.T) {
		others := []ScheduleEvent{
			{ID: "n", Date: "2024-06-01", StartTime: "23:00", EndTime: "00:00"},
		}
		ev := ScheduleEvent{ID: "b", Date: "2024-06-01", StartTime: "23:30", EndTime: "23:45"}
		assert.ErrorIs(t, validateEvent(ev, others), errScheduleOverlap)
	})
}

func TestDefaultTimes(t *testing.T) {
	t.Run("no events falls back to nine o'clock", func(t *testing.T) {
		start, end := defaultTimes("2024-06-01", nil)
		assert.Equal(t, "09:00", start)
		assert.Equal(t, "10:00", end)
	})

	t.Run("start picks up the latest end", func(t *testing.T) {
		events := []ScheduleEvent{
			{ID: "a", Date: "2024-06-01", StartTime: "09:00", EndTime: "10:30"},
			{ID: "b", Date: "2024-06-01", StartTime: "08:00", EndTime: "09:00"},
			{ID: "c", Date: "2024-06-02", StartTime: "12:00", EndTime: "20:00"},
		}
		start, end := defaultTimes("2024-06-01", events)
		assert.Equal(t, "10:30", start)
		assert.Equal(t, "11:30", end)
	})

	t.Run("latest end at midnight falls back to nine o'clock", func(t *testing.T) {
		events := []ScheduleEvent{
			{ID: "a", Date: "2024-06-01", StartTime: "23:00", EndTime: "00:00"},
		}
		start, end := defaultTimes("2024-06-01", events)
		assert.Equal(t, "09:00", start)
		assert.Equal(t, "10:00", end)
	})

	t.Run("derived end wraps to midnight", func(t *testing.T) {
		events := []ScheduleEvent{
			{ID: "a", Date: "2024-06-01", StartTime: "22:00", EndTime: "23:30"},
		}
		start, end := defaultTimes("2024-06-01", events)
		assert.Equal(t, "23:30", start)
		assert.Equal(t, "00:00", end)
	})
}

// Handler tests

func TestCreateScheduleHandler(t *testing.T) {
	resetWorkspace(t)

	t.Run("empty times are pre-filled from defaults", func(t *testing.T) {
		resp := makeJSONRequest(t, "POST", "/api/schedules", map[string]interface{}{
			"date":  "2024-06-01",
			"title": "first",
		})
		assertStatusCode(t, http.StatusCreated, resp.Code)

		var ev ScheduleEvent
		assertNoError(t, parseJSONResponse(resp, &ev))
		assert.Equal(t, "09:00", ev.StartTime)
		assert.Equal(t, "10:00", ev.EndTime)
	})

	t.Run("second event starts where the first ended", func(t *testing.T) {
		resp := makeJSONRequest(t, "POST", "/api/schedules", map[string]interface{}{
			"date":  "2024-06-01",
			"title": "second",
		})
		assertStatusCode(t, http.StatusCreated, resp.Code)

		var ev ScheduleEvent
		assertNoError(t, parseJSONResponse(resp, &ev))
		assert.Equal(t, "10:00", ev.StartTime)
		assert.Equal(t, "11:00", ev.EndTime)
	})

	t.Run("overlapping event is rejected", func(t *testing.T) {
		resp := makeJSONRequest(t, "POST", "/api/schedules", map[string]interface{}{
			"date":       "2024-06-01",
			"start_time": "09:30",
			"end_time":   "10:30",
			"title":      "clash",
		})
		assertStatusCode(t, http.StatusBadRequest, resp.Code)

		var errorResp map[string]interface{}
		assertNoError(t, parseJSONResponse(resp, &errorResp))
		assert.Equal(t, "overlaps another schedule", errorResp["error"])
	})
}

func TestUpdateScheduleStartChangeResetsEnd(t *testing.T) {
	resetWorkspace(t)

	resp := makeJSONRequest(t, "POST", "/api/schedules", map[string]interface{}{
		"date":       "2024-06-03",
		"start_time": "09:00",
		"end_time":   "12:00",
		"title":      "workshop",
	})
	assertStatusCode(t, http.StatusCreated, resp.Code)
	var ev ScheduleEvent
	assertNoError(t, parseJSONResponse(resp, &ev))

	// Submitting a new start discards the submitted end, valid as it is.
	resp = makeJSONRequest(t, "PUT", "/api/schedules/"+ev.ID, map[string]interface{}{
		"date":       "2024-06-03",
		"start_time": "10:00",
		"end_time":   "12:00",
		"title":      "workshop",
	})
	assertStatusCode(t, http.StatusOK, resp.Code)

	var updated ScheduleEvent
	assertNoError(t, parseJSONResponse(resp, &updated))
	assert.Equal(t, "10:00", updated.StartTime)
	assert.Equal(t, "11:00", updated.EndTime)

	// An unchanged start keeps the submitted end.
	resp = makeJSONRequest(t, "PUT", "/api/schedules/"+ev.ID, map[string]interface{}{
		"date":       "2024-06-03",
		"start_time": "10:00",
		"end_time":   "12:00",
		"title":      "workshop",
	})
	assertStatusCode(t, http.StatusOK, resp.Code)
	assertNoError(t, parseJSONResponse(resp, &updated))
	assert.Equal(t, "12:00", updated.EndTime)
}

func TestUpdateScheduleRejectsBadDate(t *testing.T) {
	resetWorkspace(t)

	resp := makeJSONRequest(t, "POST", "/api/schedules", map[string]interface{}{
		"date": "2024-06-03", "start_time": "09:00", "end_time": "10:00", "title": "standup",
	})
	assertStatusCode(t, http.StatusCreated, resp.Code)
	var ev ScheduleEvent
	assertNoError(t, parseJSONResponse(resp, &ev))

	// An edit holds the same calendar-date rule as creation.
	resp = makeJSONRequest(t, "PUT", "/api/schedules/"+ev.ID, map[string]interface{}{
		"date": "not-a-date", "start_time": "09:00", "end_time": "10:00", "title": "standup",
	})
	assertStatusCode(t, http.StatusBadRequest, resp.Code)

	var after []ScheduleEvent
	get := makeRequest("GET", "/api/schedules?date=2024-06-03", nil)
	assertNoError(t, parseJSONResponse(get, &after))
	require.Len(t, after, 1, "the rejected edit leaves the event on its date")
	assert.Equal(t, "2024-06-03", after[0].Date)
}

func TestConfirmScheduleDateBatch(t *testing.T) {
	resetWorkspace(t)

	makeJSONRequest(t, "POST", "/api/schedules", map[string]interface{}{
		"date": "2024-06-05", "start_time": "09:00", "end_time": "10:00", "title": "a",
	})
	makeJSONRequest(t, "POST", "/api/schedules", map[string]interface{}{
		"date": "2024-06-05", "start_time": "10:00", "end_time": "11:00", "title": "b",
	})

	var events []ScheduleEvent
	resp := makeRequest("GET", "/api/schedules?date=2024-06-05", nil)
	assertNoError(t, parseJSONResponse(resp, &events))
	require.Len(t, events, 2)

	t.Run("swapping two slots passes against in-progress values", func(t *testing.T) {
		batch := []map[string]interface{}{
			{"id": events[0].ID, "start_time": "10:00", "end_time": "11:00", "title": "a", "date": "2024-06-05"},
			{"id": events[1].ID, "start_time": "09:00", "end_time": "10:00", "title": "b", "date": "2024-06-05"},
		}
		resp := makeJSONRequest(t, "PUT", "/api/schedules/date/2024-06-05", batch)
		assertStatusCode(t, http.StatusOK, resp.Code)
	})

	t.Run("one bad event rejects the whole batch", func(t *testing.T) {
		batch := []map[string]interface{}{
			{"id": events[0].ID, "start_time": "09:00", "end_time": "10:00", "title": "a", "date": "2024-06-05"},
			{"id": events[1].ID, "start_time": "09:30", "end_time": "10:30", "title": "b", "date": "2024-06-05"},
		}
		resp := makeJSONRequest(t, "PUT", "/api/schedules/date/2024-06-05", batch)
		assertStatusCode(t, http.StatusBadRequest, resp.Code)

		// The committed state is the previous batch, untouched.
		var after []ScheduleEvent
		get := makeRequest("GET", "/api/schedules?date=2024-06-05", nil)
		assertNoError(t, parseJSONResponse(get, &after))
		require.Len(t, after, 2)
		for _, ev := range after {
			if ev.Title == "a" {
				assert.Equal(t, "10:00", ev.StartTime)
			}
		}
	})

	t.Run("duplicated ids cannot smuggle in an overlap", func(t *testing.T) {
		// Two events sharing an id would skip each other's overlap check.
		batch := []map[string]interface{}{
			{"id": events[0].ID, "start_time": "09:00", "end_time": "10:00", "title": "a", "date": "2024-06-05"},
			{"id": events[0].ID, "start_time": "09:30", "end_time": "10:30", "title": "b", "date": "2024-06-05"},
		}
		resp := makeJSONRequest(t, "PUT", "/api/schedules/date/2024-06-05", batch)
		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})
}

func TestScheduleDeleteUndo(t *testing.T) {
	resetWorkspace(t)

	makeJSONRequest(t, "POST", "/api/schedules", map[string]interface{}{
		"date": "2024-06-07", "start_time": "09:00", "end_time": "10:00", "title": "a",
	})
	makeJSONRequest(t, "POST", "/api/schedules", map[string]interface{}{
		"date": "2024-06-07", "start_time": "10:00", "end_time": "11:00", "title": "b",
	})

	resp := makeRequest("DELETE", "/api/schedules/date/2024-06-07", nil)
	assertStatusCode(t, http.StatusOK, resp.Code)

	var remaining []ScheduleEvent
	get := makeRequest("GET", "/api/schedules?date=2024-06-07", nil)
	assertNoError(t, parseJSONResponse(get, &remaining))
	assert.Empty(t, remaining)

	resp = makeRequest("POST", "/api/schedules/undo", nil)
	assertStatusCode(t, http.StatusOK, resp.Code)

	get = makeRequest("GET", "/api/schedules?date=2024-06-07", nil)
	assertNoError(t, parseJSONResponse(get, &remaining))
	assert.Len(t, remaining, 2)

	t.Run("empty undo stack reports nothing to undo", func(t *testing.T) {
		resp := makeRequest("POST", "/api/schedules/undo", nil)
		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})
}
