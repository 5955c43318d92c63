package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Schedule time arithmetic and confirm-time validation.
//
// Times are "HH:MM" strings. A literal "00:00" end time means end of day and
// is treated as minute 1440 so ranges running to midnight compare correctly.

const (
	minutesPerDay   = 1440
	defaultStart    = "09:00"
	defaultSpanMins = 60
)

var (
	errEndNotAfterStart = errors.New("end time must be later than start time")
	errScheduleOverlap  = errors.New("overlaps another schedule")
)

// parseClock parses "HH:MM" into minutes since midnight.
func parseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return h*60 + m, nil
}

// endClock parses an end time, substituting 1440 for a literal "00:00".
func endClock(s string) (int, error) {
	mins, err := parseClock(s)
	if err != nil {
		return 0, err
	}
	if mins == 0 {
		return minutesPerDay, nil
	}
	return mins, nil
}

// formatClock renders minutes since midnight as "HH:MM". Minute 1440 wraps
// back to "00:00".
func formatClock(mins int) string {
	if mins >= minutesPerDay {
		return "00:00"
	}
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// validateEvent runs the confirm-time checks for ev against every other
// event on the same date. Order matters: the start<end check fires before
// any overlap check, and both use the end-of-day substitution.
func validateEvent(ev ScheduleEvent, others []ScheduleEvent) error {
	start, err := parseClock(ev.StartTime)
	if err != nil {
		return err
	}
	end, err := endClock(ev.EndTime)
	if err != nil {
		return err
	}
	if start >= end {
		return errEndNotAfterStart
	}

	for _, o := range others {
		if o.ID == ev.ID || o.Date != ev.Date {
			continue
		}
		oStart, err := parseClock(o.StartTime)
		if err != nil {
			continue // a malformed committed event cannot block new ones
		}
		oEnd, err := endClock(o.EndTime)
		if err != nil {
			continue
		}
		// Half-open ranges: touching at an endpoint is not an overlap.
		if start < oEnd && end > oStart {
			return errScheduleOverlap
		}
	}
	return nil
}

// defaultTimes derives the pre-filled times for a new event on date: start is
// the latest end among the date's events (09:00 when there are none or that
// end is already end-of-day), end is start plus one hour.
func defaultTimes(date string, events []ScheduleEvent) (string, string) {
	latest := 0
	for _, ev := range events {
		if ev.Date != date {
			continue
		}
		end, err := endClock(ev.EndTime)
		if err != nil {
			continue
		}
		if end > latest {
			latest = end
		}
	}

	start := defaultStart
	if latest > 0 && latest < minutesPerDay {
		start = formatClock(latest)
	}
	startMins, _ := parseClock(start)
	return start, formatClock(startMins + defaultSpanMins)
}

// Schedule handler functions

// scheduleInput is the wire shape for creating or editing an event.
type scheduleInput struct {
	ID        string `json:"id"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Title     string `json:"title"`
}

// @Summary List schedule events
// @Description Retrieve all schedule events, optionally filtered to one date
// @Tags schedules
// @Produce json
// @Param date query string false "YYYY-MM-DD date filter"
// @Success 200 {array} ScheduleEvent "List of events"
// @Router /api/schedules [get]
func getSchedules(c *gin.Context) {
	date := c.Query("date")

	ws.mu.Lock()
	defer ws.mu.Unlock()

	events := make([]ScheduleEvent, 0)
	for _, ev := range ws.Schedules {
		if date == "" || ev.Date == date {
			events = append(events, ev)
		}
	}

	c.JSON(http.StatusOK, events)
}

// @Summary Get derived default times
// @Description Derive the pre-filled start/end times for a new event on a date
// @Tags schedules
// @Produce json
// @Param date query string true "YYYY-MM-DD date"
// @Success 200 {object} map[string]string "start_time and end_time"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Router /api/schedules/defaults [get]
func getScheduleDefaults(c *gin.Context) {
	date := c.Query("date")
	if _, err := parseISODate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	ws.mu.Lock()
	defer ws.mu.Unlock()

	start, end := defaultTimes(date, ws.Schedules)
	c.JSON(http.StatusOK, gin.H{"start_time": start, "end_time": end})
}

// @Summary Create schedule event
// @Description Create a new event. Empty times are pre-filled from the date's derived defaults. The event must pass the start<end and non-overlap checks.
// @Tags schedules
// @Accept json
// @Produce json
// @Param event body scheduleInput true "Event data"
// @Success 201 {object} ScheduleEvent "Created event"
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Router /api/schedules [post]
func createSchedule(c *gin.Context) {
	var in scheduleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if _, err := parseISODate(in.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	ws.mu.Lock()
	defer ws.mu.Unlock()

	if in.StartTime == "" || in.EndTime == "" {
		start, end := defaultTimes(in.Date, ws.Schedules)
		if in.StartTime == "" {
			in.StartTime = start
		}
		if in.EndTime == "" {
			in.EndTime = end
		}
	}

	ev := ScheduleEvent{
		ID:        newID(),
		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Title:     in.Title,
	}
	if err := validateEvent(ev, ws.Schedules); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ws.Schedules = append(ws.Schedules, ev)
	ws.persistSchedules()

	c.JSON(http.StatusCreated, ev)
}

// @Summary Update schedule event
// @Description Edit an event. Changing the start time always resets the end time to start plus one hour, discarding any submitted end time. The result must pass the confirm-time checks or the stored event stays untouched.
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param event body scheduleInput true "Event data"
// @Success 200 {object} ScheduleEvent "Updated event"
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Failure 404 {object} map[string]interface{} "Event not found"
// @Router /api/schedules/{id} [put]
func updateSchedule(c *gin.Context) {
	id := c.Param("id")
	var in scheduleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if _, err := parseISODate(in.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	ws.mu.Lock()
	defer ws.mu.Unlock()

	idx := -1
	for i, ev := range ws.Schedules {
		if ev.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	updated := ws.Schedules[idx]
	updated.Date = in.Date
	updated.Title = in.Title
	if in.StartTime != "" && in.StartTime != updated.StartTime {
		// A start change always re-derives the end, whatever was submitted.
		startMins, err := parseClock(in.StartTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updated.StartTime = in.StartTime
		updated.EndTime = formatClock(startMins + defaultSpanMins)
	} else if in.EndTime != "" {
		updated.EndTime = in.EndTime
	}

	if err := validateEvent(updated, ws.Schedules); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ws.Schedules[idx] = updated
	ws.persistSchedules()

	c.JSON(http.StatusOK, updated)
}

// @Summary Confirm a date's events as a batch
// @Description Replace all events on a date with the submitted set. Each event is validated against the in-progress values of the others, not their committed ones; any failure rejects the whole batch.
// @Tags schedules
// @Accept json
// @Produce json
// @Param date path string true "YYYY-MM-DD date"
// @Param events body []scheduleInput true "The date's full event set"
// @Success 200 {array} ScheduleEvent "Committed events"
// @Failure 400 {object} map[string]interface{} "Validation failure"
// @Router /api/schedules/date/{date} [put]
func confirmScheduleDate(c *gin.Context) {
	date := c.Param("date")
	if _, err := parseISODate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	var inputs []scheduleInput
	if err := c.ShouldBindJSON(&inputs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	batch := make([]ScheduleEvent, 0, len(inputs))
	seen := make(map[string]bool, len(inputs))
	for _, in := range inputs {
		ev := ScheduleEvent{
			ID:        in.ID,
			Date:      date,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
			Title:     in.Title,
		}
		if ev.ID == "" {
			ev.ID = newID()
		}
		// A duplicated id would let two events skip each other's overlap check.
		if seen[ev.ID] {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("duplicate event id %q", ev.ID)})
			return
		}
		seen[ev.ID] = true
		batch = append(batch, ev)
	}

	// Validate each event against the in-progress values of its batch mates.
	for i, ev := range batch {
		others := make([]ScheduleEvent, 0, len(batch)-1)
		others = append(others, batch[:i]...)
		others = append(others, batch[i+1:]...)
		if err := validateEvent(ev, others); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%q: %s", ev.Title, err)})
			return
		}
	}

	ws.mu.Lock()
	defer ws.mu.Unlock()

	kept := make([]ScheduleEvent, 0, len(ws.Schedules))
	for _, ev := range ws.Schedules {
		if ev.Date != date {
			kept = append(kept, ev)
		}
	}
	ws.Schedules = append(kept, batch...)
	ws.persistSchedules()

	c.JSON(http.StatusOK, batch)
}

// @Summary Delete schedule event
// @Description Delete one event. The deletion is undoable via POST /api/schedules/undo.
// @Tags schedules
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]interface{} "Event deleted"
// @Failure 404 {object} map[string]interface{} "Event not found"
// @Router /api/schedules/{id} [delete]
func deleteSchedule(c *gin.Context) {
	id := c.Param("id")

	ws.mu.Lock()
	defer ws.mu.Unlock()

	for i, ev := range ws.Schedules {
		if ev.ID == id {
			ws.scheduleUndo = append(ws.scheduleUndo, []ScheduleEvent{ev})
			ws.Schedules = append(ws.Schedules[:i], ws.Schedules[i+1:]...)
			ws.persistSchedules()
			c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
}

// @Summary Delete all events on a date
// @Description Delete a date's events as one undoable batch
// @Tags schedules
// @Produce json
// @Param date path string true "YYYY-MM-DD date"
// @Success 200 {object} map[string]interface{} "Deleted count"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Router /api/schedules/date/{date} [delete]
func deleteScheduleDate(c *gin.Context) {
	date := c.Param("date")
	if _, err := parseISODate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	ws.mu.Lock()
	defer ws.mu.Unlock()

	var removed []ScheduleEvent
	kept := make([]ScheduleEvent, 0, len(ws.Schedules))
	for _, ev := range ws.Schedules {
		if ev.Date == date {
			removed = append(removed, ev)
		} else {
			kept = append(kept, ev)
		}
	}
	if len(removed) > 0 {
		ws.scheduleUndo = append(ws.scheduleUndo, removed)
		ws.Schedules = kept
		ws.persistSchedules()
	}

	c.JSON(http.StatusOK, gin.H{"deleted": len(removed)})
}

// @Summary Undo last schedule deletion
// @Description Restore the most recently deleted event or date batch
// @Tags schedules
// @Produce json
// @Success 200 {array} ScheduleEvent "Restored events"
// @Failure 400 {object} map[string]interface{} "Nothing to undo"
// @Router /api/schedules/undo [post]
func undoScheduleDelete(c *gin.Context) {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if len(ws.scheduleUndo) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to undo"})
		return
	}

	batch := ws.scheduleUndo[len(ws.scheduleUndo)-1]
	ws.scheduleUndo = ws.scheduleUndo[:len(ws.scheduleUndo)-1]
	ws.Schedules = append(ws.Schedules, batch...)
	ws.persistSchedules()

	c.JSON(http.StatusOK, batch)
}
