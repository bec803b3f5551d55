package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/aionhq/aion-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sourcedEvent(id string, source model.EventSource) *model.Event {
	return &model.Event{ID: id, EventDraft: model.EventDraft{
		Title:  id,
		Start:  testDay.Add(10 * time.Hour),
		End:    testDay.Add(11 * time.Hour),
		Source: source,
	}}
}

func staticFeed(events ...*model.Event) FeedFunc {
	return func(time.Time) ([]*model.Event, error) {
		return events, nil
	}
}

func TestReconcileFiltersBySourceFlags(t *testing.T) {
	feed := staticFeed(
		sourcedEvent("g-1", model.SourceGoogle),
		sourcedEvent("tum-1", model.SourceTUM),
		sourcedEvent("flo-1", model.SourceFlo),
		sourcedEvent("w-past-1", model.SourceHealth),
	)
	r := NewReconciler(zap.NewNop().Sugar(), feed)

	cases := []struct {
		name  string
		flags model.ConnectionFlags
		want  []string
	}{
		{"all connected", model.ConnectionFlags{Google: true, TUM: true, HasCycle: true}, []string{"g-1", "tum-1", "flo-1", "w-past-1"}},
		{"nothing connected", model.ConnectionFlags{}, []string{"w-past-1"}},
		{"google only", model.ConnectionFlags{Google: true}, []string{"g-1", "w-past-1"}},
		{"cycle only", model.ConnectionFlags{HasCycle: true}, []string{"flo-1", "w-past-1"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			events := r.Reconcile(testDay, tc.flags, nil)
			ids := make([]string, len(events))
			for i, e := range events {
				ids[i] = e.ID
			}
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestReconcilePoolUnfilteredAndLast(t *testing.T) {
	feed := staticFeed(sourcedEvent("g-1", model.SourceGoogle))
	r := NewReconciler(zap.NewNop().Sugar(), feed)

	pool := []*model.Event{
		sourcedEvent("user-abc", model.SourceSchool),
		sourcedEvent("ai-def", model.SourceAI),
	}

	events := r.Reconcile(testDay, model.ConnectionFlags{Google: true}, pool)
	require.Len(t, events, 3)
	assert.Equal(t, "g-1", events[0].ID)
	assert.Equal(t, "user-abc", events[1].ID)
	assert.Equal(t, "ai-def", events[2].ID)

	// Flags never hide user-owned events.
	events = r.Reconcile(testDay, model.ConnectionFlags{}, pool)
	require.Len(t, events, 2)
}

func TestReconcileDegradesOnFeedError(t *testing.T) {
	r := NewReconciler(zap.NewNop().Sugar(), func(time.Time) ([]*model.Event, error) {
		return nil, errors.New("generator broken")
	})

	pool := []*model.Event{sourcedEvent("user-abc", model.SourceSchool)}
	events := r.Reconcile(testDay, model.ConnectionFlags{Google: true}, pool)

	require.Len(t, events, 1)
	assert.Equal(t, "user-abc", events[0].ID)
}

func TestReconcileDegradesOnFeedPanic(t *testing.T) {
	r := NewReconciler(zap.NewNop().Sugar(), func(time.Time) ([]*model.Event, error) {
		panic("boom")
	})

	pool := []*model.Event{sourcedEvent("user-abc", model.SourceSchool)}

	var events []*model.Event
	require.NotPanics(t, func() {
		events = r.Reconcile(testDay, model.ConnectionFlags{}, pool)
	})
	require.Len(t, events, 1)
	assert.Equal(t, "user-abc", events[0].ID)
}
