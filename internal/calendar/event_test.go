package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/aionhq/aion-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)

func TestNewEvent(t *testing.T) {
	event, err := NewEvent(model.EventDraft{
		Title:  "Study session",
		Start:  testDay.Add(10 * time.Hour),
		End:    testDay.Add(12 * time.Hour),
		Source: model.SourceSchool,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(event.ID, "user-"))
	assert.Equal(t, "Study session", event.Title)
	assert.Equal(t, model.StatusNone, event.Status)
}

func TestNewEventRejectsInvalidRange(t *testing.T) {
	_, err := NewEvent(model.EventDraft{
		Title:  "Backwards",
		Start:  testDay.Add(12 * time.Hour),
		End:    testDay.Add(10 * time.Hour),
		Source: model.SourceSocial,
	})
	require.ErrorIs(t, err, model.ErrInvalidRange)
}

func TestNewEventClearsStatusForNonHealth(t *testing.T) {
	event, err := NewEvent(model.EventDraft{
		Title:  "Lunch",
		Start:  testDay.Add(12 * time.Hour),
		End:    testDay.Add(13 * time.Hour),
		Source: model.SourceSocial,
		Status: model.StatusPlanned,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusNone, event.Status)

	workout, err := NewEvent(model.EventDraft{
		Title:  "Gym",
		Start:  testDay.Add(9 * time.Hour),
		End:    testDay.Add(10 * time.Hour),
		Source: model.SourceHealth,
		Status: model.StatusPlanned,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPlanned, workout.Status)
}

func TestIsMultiDay(t *testing.T) {
	single := &model.Event{EventDraft: model.EventDraft{
		Start: testDay.Add(10 * time.Hour),
		End:   testDay.Add(11 * time.Hour),
	}}
	assert.False(t, IsMultiDay(single))

	spanning := &model.Event{EventDraft: model.EventDraft{
		Start: testDay.Add(23 * time.Hour),
		End:   testDay.Add(25 * time.Hour),
	}}
	assert.True(t, IsMultiDay(spanning))
}

func TestClampToDaySingleDay(t *testing.T) {
	e := &model.Event{EventDraft: model.EventDraft{
		Start: testDay.Add(15 * time.Hour),
		End:   testDay.Add(16*time.Hour + 30*time.Minute),
	}}

	span, ok := ClampToDay(e, testDay)
	require.True(t, ok)
	assert.InDelta(t, 15.0, span.StartHour, 1e-9)
	assert.InDelta(t, 16.5, span.EndHour, 1e-9)
}

func TestClampToDaySpanningEvent(t *testing.T) {
	// Covers three calendar days: 15:00 on day one until 11:00 on day three.
	e := &model.Event{EventDraft: model.EventDraft{
		Start: testDay.Add(15 * time.Hour),
		End:   testDay.AddDate(0, 0, 2).Add(11 * time.Hour),
	}}

	first, ok := ClampToDay(e, testDay)
	require.True(t, ok)
	assert.InDelta(t, 15.0, first.StartHour, 1e-9)
	assert.InDelta(t, 24.0, first.EndHour, 1e-9)

	middle, ok := ClampToDay(e, testDay.AddDate(0, 0, 1))
	require.True(t, ok)
	assert.InDelta(t, 0.0, middle.StartHour, 1e-9)
	assert.InDelta(t, 24.0, middle.EndHour, 1e-9)

	last, ok := ClampToDay(e, testDay.AddDate(0, 0, 2))
	require.True(t, ok)
	assert.InDelta(t, 0.0, last.StartHour, 1e-9)
	assert.InDelta(t, 11.0, last.EndHour, 1e-9)

	// The per-day spans add up to the full duration, nothing lost or
	// double-counted at the midnight cuts.
	total := (first.EndHour - first.StartHour) +
		(middle.EndHour - middle.StartHour) +
		(last.EndHour - last.StartHour)
	assert.InDelta(t, e.End.Sub(e.Start).Hours(), total, 1e-9)
}

func TestClampToDayMidnightEnd(t *testing.T) {
	// Ends exactly at midnight: belongs to the previous day only.
	e := &model.Event{EventDraft: model.EventDraft{
		Start: testDay.Add(22 * time.Hour),
		End:   testDay.AddDate(0, 0, 1),
	}}

	span, ok := ClampToDay(e, testDay)
	require.True(t, ok)
	assert.InDelta(t, 24.0, span.EndHour, 1e-9)

	_, ok = ClampToDay(e, testDay.AddDate(0, 0, 1))
	assert.False(t, ok)
}

func TestClampToDayNoIntersection(t *testing.T) {
	e := &model.Event{EventDraft: model.EventDraft{
		Start: testDay.Add(10 * time.Hour),
		End:   testDay.Add(11 * time.Hour),
	}}

	_, ok := ClampToDay(e, testDay.AddDate(0, 0, 1))
	assert.False(t, ok)
	_, ok = ClampToDay(e, testDay.AddDate(0, 0, -1))
	assert.False(t, ok)
}
