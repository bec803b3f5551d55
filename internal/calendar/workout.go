package calendar

import (
	"fmt"
	"time"

	"github.com/aionhq/aion-backend/internal/model"
	"github.com/aionhq/aion-backend/internal/pkg/ids"
)

// Workout logging defaults to a morning slot when the caller supplies no
// explicit time.
const (
	defaultWorkoutHour     = 9
	defaultWorkoutDuration = time.Hour
)

// LogWorkout creates a Health event in the planned state. Logging never
// implies completion; the user marks the outcome explicitly later.
func LogWorkout(date time.Time, activity string, category model.WorkoutCategory, at *time.Time) *model.Event {
	start := time.Date(date.Year(), date.Month(), date.Day(), defaultWorkoutHour, 0, 0, 0, date.Location())
	if at != nil {
		start = *at
	}

	return &model.Event{
		ID: ids.New(ids.PrefixWorkout),
		EventDraft: model.EventDraft{
			Title:       activity,
			Start:       start,
			End:         start.Add(defaultWorkoutDuration),
			Source:      model.SourceHealth,
			IsFixed:     true,
			Status:      model.StatusPlanned,
			WorkoutType: category,
		},
	}
}

// MarkCompleted transitions a planned workout to completed. Completed and
// missed are both terminal.
func MarkCompleted(e *model.Event) (*model.Event, error) {
	return transition(e, model.StatusCompleted)
}

// MarkMissed transitions a planned workout to missed.
func MarkMissed(e *model.Event) (*model.Event, error) {
	return transition(e, model.StatusMissed)
}

func transition(e *model.Event, to model.WorkoutStatus) (*model.Event, error) {
	if e.Source != model.SourceHealth || e.Status != model.StatusPlanned {
		return nil, fmt.Errorf("%w: %s -> %s", model.ErrInvalidTransition, e.Status, to)
	}

	updated := *e
	updated.Status = to
	return &updated, nil
}

// DisplayStyle is how a workout's status renders on the grid.
type DisplayStyle int

const (
	StyleSolid  DisplayStyle = iota // completed, and every non-workout event
	StyleDashed                     // planned outline
	StyleFaded                      // missed: faded and struck through
)

func (s DisplayStyle) String() string {
	switch s {
	case StyleDashed:
		return "dashed"
	case StyleFaded:
		return "faded"
	default:
		return "solid"
	}
}

// StyleFor derives the render style strictly from status. A past-dated
// planned workout stays "planned" until the user marks it; wall-clock time
// never changes the style.
func StyleFor(e *model.Event) DisplayStyle {
	switch e.Status {
	case model.StatusPlanned:
		return StyleDashed
	case model.StatusMissed:
		return StyleFaded
	default:
		return StyleSolid
	}
}
