package memory

import (
	"testing"
	"time"

	"github.com/aionhq/aion-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore() *Store {
	return NewStore(zap.NewNop().Sugar())
}

func poolEvent(id string) *model.Event {
	start := time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC)
	return &model.Event{ID: id, EventDraft: model.EventDraft{
		Title:  id,
		Start:  start,
		End:    start.Add(time.Hour),
		Source: model.SourceSocial,
	}}
}

func TestStoreEventCRUD(t *testing.T) {
	s := newTestStore()

	e := poolEvent("user-abc1234")
	s.AddEvent(e)

	got, err := s.GetEvent("user-abc1234")
	require.NoError(t, err)
	assert.Same(t, e, got)

	_, err = s.GetEvent("user-missing")
	assert.ErrorIs(t, err, model.ErrNoRecord)

	updated := *e
	updated.Title = "renamed"
	require.NoError(t, s.UpdateEvent(&updated))

	got, err = s.GetEvent("user-abc1234")
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)

	require.NoError(t, s.DeleteEvent("user-abc1234"))
	_, err = s.GetEvent("user-abc1234")
	assert.ErrorIs(t, err, model.ErrNoRecord)
}

func TestStoreEventsReturnsCopy(t *testing.T) {
	s := newTestStore()
	s.AddEvent(poolEvent("user-a"))
	s.AddEvent(poolEvent("workout-b"))

	events := s.Events()
	require.Len(t, events, 2)

	events[0] = poolEvent("user-swapped")
	fresh := s.Events()
	assert.Equal(t, "user-a", fresh[0].ID)
}

func TestStoreDeleteOnlyUserNamespaces(t *testing.T) {
	s := newTestStore()

	for _, id := range []string{"user-a", "workout-b", "ai-c"} {
		s.AddEvent(poolEvent(id))
		require.NoError(t, s.DeleteEvent(id), id)
	}

	// Feed identifiers are rejected outright.
	for _, id := range []string{"g-1", "tum-1-123", "flo-123", "w-past-1"} {
		assert.ErrorIs(t, s.DeleteEvent(id), model.ErrNoRecord, id)
	}
}

func TestStoreUpdateMissing(t *testing.T) {
	s := newTestStore()
	assert.ErrorIs(t, s.UpdateEvent(poolEvent("user-x")), model.ErrNoRecord)
}

func TestStorePersonaDefault(t *testing.T) {
	s := newTestStore()
	assert.Equal(t, model.PersonaNeutral, s.Persona())

	s.SetPersona(model.PersonaToxic)
	assert.Equal(t, model.PersonaToxic, s.Persona())
}

func TestStoreAcceptSuggestion(t *testing.T) {
	s := newTestStore()
	s.SetAnalysis(&model.DayAnalysis{ID: "a1"})

	require.NoError(t, s.AcceptSuggestion("sug-0", poolEvent("ai-one")))

	accepted := s.Accepted()
	assert.Contains(t, accepted, "sug-0")
	require.Len(t, s.Events(), 1)

	err := s.AcceptSuggestion("sug-0", poolEvent("ai-two"))
	assert.ErrorIs(t, err, model.ErrSuggestionAccepted)
	// The duplicate accept added nothing.
	assert.Len(t, s.Events(), 1)
}

func TestStoreSetAnalysisResetsAccepted(t *testing.T) {
	s := newTestStore()
	s.SetAnalysis(&model.DayAnalysis{ID: "a1"})
	require.NoError(t, s.AcceptSuggestion("sug-0", poolEvent("ai-one")))

	s.SetAnalysis(&model.DayAnalysis{ID: "a2"})
	assert.Empty(t, s.Accepted())
	// Accepted events stay in the pool across analyses.
	assert.Len(t, s.Events(), 1)
}

func TestStoreClearAnalysis(t *testing.T) {
	s := newTestStore()
	s.SetMetrics(model.WellnessMetrics{SleepHours: 7, StressLevel: 3, Mood: model.MoodOkay})
	s.SetAnalysis(&model.DayAnalysis{ID: "a1"})
	require.NoError(t, s.AcceptSuggestion("sug-0", poolEvent("ai-one")))

	s.ClearAnalysis()
	assert.Nil(t, s.Analysis())
	assert.Nil(t, s.Metrics())
	assert.Empty(t, s.Accepted())
	assert.Len(t, s.Events(), 1)
}
