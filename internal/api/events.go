package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/aionhq/aion-backend/internal/calendar"
	"github.com/aionhq/aion-backend/internal/model"
	"github.com/aionhq/aion-backend/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// manual creation is limited to the user categories; integration sources
// and Health events come in through their own paths.
func userCategory(s string) (model.EventSource, bool) {
	src, err := model.ParseEventSource(s)
	if err != nil {
		return 0, false
	}
	switch src {
	case model.SourceSchool, model.SourceWellness, model.SourceSocial:
		return src, true
	default:
		return 0, false
	}
}

func (a *Api) createEventHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Title       string    `json:"title"`
		Start       time.Time `json:"start"`
		End         time.Time `json:"end"`
		Category    string    `json:"category"`
		Description string    `json:"description"`
		Location    string    `json:"location"`
		Color       string    `json:"color"`
		IsFixed     bool      `json:"is_fixed"`
	}

	if err := a.readJSON(w, r, &input); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	source, sourceOK := userCategory(input.Category)
	rgb, colorErr := parseColor(input.Color)

	v := validator.New()
	v.Check(input.Title != "", "title", "must be provided")
	v.Check(!input.Start.IsZero(), "start", "must be provided")
	v.Check(!input.End.IsZero(), "end", "must be provided")
	v.Check(sourceOK, "category", "must be one of school, wellness, social")
	v.Check(colorErr == nil, "color", "must be a hex color")
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	event, err := calendar.NewEvent(model.EventDraft{
		Title:       input.Title,
		Start:       input.Start,
		End:         input.End,
		Source:      source,
		Description: input.Description,
		Location:    input.Location,
		Color:       rgb,
		IsFixed:     input.IsFixed,
	})
	if err != nil {
		if errors.Is(err, model.ErrInvalidRange) {
			a.failedValidationResponse(w, r, map[string]string{"end": "must not be before start"})
			return
		}
		a.serverErrorResponse(w, r, err)
		return
	}

	a.store.AddEvent(event)

	if err := a.writeJSON(w, http.StatusCreated, mapToEventResp(event), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

// updateEventHandler edits a pooled event in place. Feed events never enter
// the pool, so they come back not found here.
func (a *Api) updateEventHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "eventID")

	event, err := a.store.GetEvent(id)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			a.notFoundResponse(w, r)
			return
		}
		a.serverErrorResponse(w, r, err)
		return
	}

	var input struct {
		Title       string    `json:"title"`
		Start       time.Time `json:"start"`
		End         time.Time `json:"end"`
		Description string    `json:"description"`
		Location    string    `json:"location"`
		Color       string    `json:"color"`
		IsFixed     bool      `json:"is_fixed"`
	}

	if err := a.readJSON(w, r, &input); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	rgb, colorErr := parseColor(input.Color)

	v := validator.New()
	v.Check(input.Title != "", "title", "must be provided")
	v.Check(!input.Start.IsZero(), "start", "must be provided")
	v.Check(!input.End.IsZero(), "end", "must be provided")
	v.Check(!input.End.Before(input.Start), "end", "must not be before start")
	v.Check(colorErr == nil, "color", "must be a hex color")
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	updated := *event
	updated.Title = input.Title
	updated.Start = input.Start
	updated.End = input.End
	updated.Description = input.Description
	updated.Location = input.Location
	updated.Color = rgb
	updated.IsFixed = input.IsFixed

	if err := a.store.UpdateEvent(&updated); err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			a.notFoundResponse(w, r)
			return
		}
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, mapToEventResp(&updated), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "eventID")

	if err := a.store.DeleteEvent(id); err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			a.notFoundResponse(w, r)
			return
		}
		a.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
