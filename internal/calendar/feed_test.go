package calendar

import (
	"strconv"
	"testing"
	"time"

	"github.com/aionhq/aion-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedByID(t *testing.T, events []*model.Event, id string) *model.Event {
	t.Helper()
	for _, e := range events {
		if e.ID == id {
			return e
		}
	}
	t.Fatalf("event %s not in feed", id)
	return nil
}

func TestFeedGoogleEvents(t *testing.T) {
	now := testDay.Add(8 * time.Hour)

	events, err := Feed(now)
	require.NoError(t, err)

	dentist := feedByID(t, events, "g-1")
	assert.Equal(t, model.SourceGoogle, dentist.Source)
	assert.Equal(t, testDay.Add(15*time.Hour), dentist.Start)
	assert.Equal(t, testDay.Add(16*time.Hour), dentist.End)
	assert.True(t, dentist.IsFixed)

	meeting := feedByID(t, events, "g-2")
	assert.Equal(t, testDay.Add(17*time.Hour), meeting.Start)
	assert.Equal(t, testDay.Add(18*time.Hour), meeting.End)
}

func TestFeedLecturesRecurWeekly(t *testing.T) {
	now := testDay.Add(8 * time.Hour)

	events, err := Feed(now)
	require.NoError(t, err)

	var lectures []*model.Event
	for _, e := range events {
		if e.Source == model.SourceTUM {
			lectures = append(lectures, e)
		}
	}
	// Two slots, four weekly occurrences each inside the +-14 day window.
	require.Len(t, lectures, 8)

	for _, e := range lectures {
		assert.True(t, e.Start.After(now.Add(-feedWindowBefore-time.Second)))
		assert.True(t, e.Start.Before(now.Add(feedWindowAfter)))
		assert.Equal(t, 90*time.Minute, e.End.Sub(e.Start))
	}

	// Both slots have an occurrence today.
	feedByID(t, events, "tum-1-"+timestamp(testDay.Add(11*time.Hour)))
	feedByID(t, events, "tum-2-"+timestamp(testDay.Add(18*time.Hour)))
}

func TestFeedCyclePhase(t *testing.T) {
	now := testDay.Add(8 * time.Hour)

	events, err := Feed(now)
	require.NoError(t, err)

	phaseStart := testDay.AddDate(0, 0, -1)
	phase := feedByID(t, events, "flo-"+timestamp(phaseStart))
	assert.Equal(t, model.SourceFlo, phase.Source)
	assert.Equal(t, phaseStart, phase.Start)
	assert.Equal(t, phaseStart.AddDate(0, 0, cyclePhaseDays).Add(-time.Second), phase.End)

	// The phase band covers yesterday through three days from now.
	for offset := -1; offset <= 3; offset++ {
		assert.True(t, IsPhaseDay(events, testDay.AddDate(0, 0, offset)), "offset %d", offset)
	}
	assert.False(t, IsPhaseDay(events, testDay.AddDate(0, 0, 4)))
}

func TestFeedWorkoutHistory(t *testing.T) {
	now := testDay.Add(8 * time.Hour)

	events, err := Feed(now)
	require.NoError(t, err)

	run := feedByID(t, events, "w-past-1")
	assert.Equal(t, model.SourceHealth, run.Source)
	assert.Equal(t, model.StatusCompleted, run.Status)
	assert.Equal(t, model.WorkoutCardio, run.WorkoutType)
	assert.Equal(t, testDay.AddDate(0, 0, -1).Add(7*time.Hour), run.Start)

	yoga := feedByID(t, events, "w-past-2")
	assert.Equal(t, model.StatusMissed, yoga.Status)
	assert.Equal(t, model.WorkoutYoga, yoga.WorkoutType)
}

func timestamp(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}
