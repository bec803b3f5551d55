package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/aionhq/aion-backend/internal/model"
	"github.com/aionhq/aion-backend/internal/planner"
	"github.com/go-chi/chi/v5"
)

// listSuggestionsHandler returns what is still pending from the current
// analysis: proposed schedule entries and advisory suggestions, minus
// anything already accepted.
func (a *Api) listSuggestionsHandler(w http.ResponseWriter, r *http.Request) {
	analysis := a.store.Analysis()
	accepted := a.store.Accepted()

	resp := map[string]interface{}{
		"schedule":    mapSlice(planner.PendingSchedule(analysis, accepted), mapToEventResp),
		"suggestions": mapSlice(planner.PendingSuggestions(analysis, accepted), mapToSuggestionResp),
	}
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

// acceptSuggestionHandler converts a pending proposal or suggestion into a
// committed calendar event. The body carries the confirmation-modal edits
// and may be omitted entirely.
func (a *Api) acceptSuggestionHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "suggestionID")

	var input struct {
		Title           *string    `json:"title"`
		Start           *time.Time `json:"start"`
		DurationMinutes *int       `json:"duration_minutes"`
	}

	if r.ContentLength != 0 {
		if err := a.readJSON(w, r, &input); err != nil {
			a.badRequestResponse(w, r, err)
			return
		}
	}

	overrides := &planner.AcceptOverrides{
		Title:           input.Title,
		Start:           input.Start,
		DurationMinutes: input.DurationMinutes,
	}

	analysis := a.store.Analysis()
	if analysis == nil {
		a.notFoundResponse(w, r)
		return
	}

	event, err := a.convertPending(analysis, id, overrides)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.notFoundResponse(w, r)
		case errors.Is(err, model.ErrNoTimeSlot):
			a.failedValidationResponse(w, r, map[string]string{"start": "suggestion has no time slot, a start time is required"})
		case errors.Is(err, model.ErrInvalidRange):
			a.failedValidationResponse(w, r, map[string]string{"duration_minutes": "must produce a valid time range"})
		default:
			a.serverErrorResponse(w, r, err)
		}
		return
	}

	if err := a.store.AcceptSuggestion(id, event); err != nil {
		if errors.Is(err, model.ErrSuggestionAccepted) {
			a.conflictResponse(w, r, err)
			return
		}
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusCreated, mapToEventResp(event), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) convertPending(analysis *model.DayAnalysis, id string, ov *planner.AcceptOverrides) (*model.Event, error) {
	for _, p := range analysis.Schedule {
		if p.ID == id {
			return planner.AcceptProposal(p, ov)
		}
	}
	for _, s := range analysis.Suggestions {
		if s.ID == id {
			return planner.AcceptSuggestion(s, ov)
		}
	}
	return nil, model.ErrNoRecord
}
