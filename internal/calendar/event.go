package calendar

import (
	"fmt"
	"math"
	"time"

	"github.com/aionhq/aion-backend/internal/model"
	"github.com/aionhq/aion-backend/internal/pkg/ids"
)

// NewEvent validates a draft and materializes it as an event. The range
// invariant (Start <= End) is enforced here and nowhere else; a draft with
// End before Start is rejected, never silently corrected. A workout status
// is only meaningful on Health events and is cleared for every other source.
func NewEvent(draft model.EventDraft) (*model.Event, error) {
	if draft.End.Before(draft.Start) {
		return nil, fmt.Errorf("%w: start %v, end %v", model.ErrInvalidRange, draft.Start, draft.End)
	}

	if draft.Source != model.SourceHealth {
		draft.Status = model.StatusNone
	}

	return &model.Event{
		ID:         ids.New(ids.PrefixUser),
		EventDraft: draft,
	}, nil
}

// IsMultiDay reports whether the event's end falls on a later calendar day
// than its start.
func IsMultiDay(e *model.Event) bool {
	sy, sm, sd := e.Start.Date()
	ey, em, ed := e.End.Date()
	return sy != ey || sm != em || sd != ed
}

// DaySpan is a fractional-hour interval within one day's 0-24h window.
type DaySpan struct {
	StartHour float64
	EndHour   float64
}

// ClampToDay returns the event's intersection with the given day as
// fractional hours since that day's midnight, clamped to [0, 24]. It is the
// single authority for how spanning events are cut at day boundaries; every
// grid renderer must go through it. The second return is false when the
// event does not intersect the day at all.
func ClampToDay(e *model.Event, day time.Time) (DaySpan, bool) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	if !e.Start.Before(dayEnd) || e.End.Before(dayStart) {
		return DaySpan{}, false
	}
	// An event ending exactly at this day's midnight belongs to the previous
	// day only, unless it is a zero-duration event starting there too.
	if e.End.Equal(dayStart) && e.Start.Before(dayStart) {
		return DaySpan{}, false
	}

	return DaySpan{
		StartHour: math.Max(0, e.Start.Sub(dayStart).Hours()),
		EndHour:   math.Min(24, e.End.Sub(dayStart).Hours()),
	}, true
}
