package planner

import (
	"fmt"
	"time"

	"github.com/aionhq/aion-backend/internal/model"
	"github.com/aionhq/aion-backend/internal/pkg/ids"
)

// Pending listings filter by the accepted set rather than deleting
// anything: the suggestion and the event it produced carry different
// identifiers, so exclusion is the only way to keep acceptance idempotent.

// PendingSchedule returns the analysis' proposed schedule entries that have
// not been accepted yet. Pure function.
func PendingSchedule(a *model.DayAnalysis, accepted map[string]struct{}) []*model.Event {
	if a == nil {
		return nil
	}

	var res []*model.Event
	for _, e := range a.Schedule {
		if _, ok := accepted[e.ID]; !ok {
			res = append(res, e)
		}
	}
	return res
}

// PendingSuggestions returns the advisory suggestions not accepted yet.
func PendingSuggestions(a *model.DayAnalysis, accepted map[string]struct{}) []*model.Suggestion {
	if a == nil {
		return nil
	}

	var res []*model.Suggestion
	for _, s := range a.Suggestions {
		if _, ok := accepted[s.ID]; !ok {
			res = append(res, s)
		}
	}
	return res
}

// AcceptOverrides carries the edits made in the confirmation modal. Edits
// are draft-local: the pending suggestion itself is never mutated, only the
// converted event reflects them.
type AcceptOverrides struct {
	Title           *string
	Start           *time.Time
	DurationMinutes *int
}

// AcceptProposal converts a proposed schedule entry into a committed event:
// fresh identifier, origin forced to AI, fixed, no workout status. The
// caller is responsible for recording the proposal's ID in the accepted set
// and appending the event to the pool in one step.
func AcceptProposal(p *model.Event, ov *AcceptOverrides) (*model.Event, error) {
	return convert(p.ID, p.Title, p.Description, p.Start, p.End, ov)
}

// AcceptSuggestion converts a timed advisory suggestion the same way. A
// suggestion that carries no concrete slot needs a start time override.
func AcceptSuggestion(s *model.Suggestion, ov *AcceptOverrides) (*model.Event, error) {
	if !s.Timed() && (ov == nil || ov.Start == nil) {
		return nil, fmt.Errorf("accept %s: %w", s.ID, model.ErrNoTimeSlot)
	}
	return convert(s.ID, s.Title, s.Description, s.Start, s.End, ov)
}

func convert(sourceID, title, description string, start, end time.Time, ov *AcceptOverrides) (*model.Event, error) {
	if ov != nil {
		if ov.Title != nil {
			title = *ov.Title
		}
		if ov.Start != nil {
			duration := end.Sub(start)
			start = *ov.Start
			end = start.Add(duration)
		}
		if ov.DurationMinutes != nil && *ov.DurationMinutes > 0 {
			end = start.Add(time.Duration(*ov.DurationMinutes) * time.Minute)
		}
	}

	if end.Before(start) {
		return nil, fmt.Errorf("accept %s: %w", sourceID, model.ErrInvalidRange)
	}

	if description == "" {
		description = "Added from suggestions"
	}

	return &model.Event{
		ID: ids.New(ids.PrefixAI),
		EventDraft: model.EventDraft{
			Title:            title,
			Start:            start,
			End:              end,
			Source:           model.SourceAI,
			Description:      description,
			IsFixed:          true,
			FromSuggestionID: sourceID,
		},
	}, nil
}
