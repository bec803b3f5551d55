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

func (a *Api) logWorkoutHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Date     string     `json:"date"`
		Activity string     `json:"activity"`
		At       *time.Time `json:"at"`
	}

	if err := a.readJSON(w, r, &input); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	date, dateErr := time.ParseInLocation("2006-01-02", input.Date, a.now().Location())

	v := validator.New()
	v.Check(input.Activity != "", "activity", "must be provided")
	v.Check(dateErr == nil, "date", "must be a YYYY-MM-DD date")
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	event := calendar.LogWorkout(date, input.Activity, model.ParseWorkoutCategory(input.Activity), input.At)
	a.store.AddEvent(event)

	if err := a.writeJSON(w, http.StatusCreated, mapToEventResp(event), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) completeWorkoutHandler(w http.ResponseWriter, r *http.Request) {
	a.transitionWorkout(w, r, calendar.MarkCompleted)
}

func (a *Api) missWorkoutHandler(w http.ResponseWriter, r *http.Request) {
	a.transitionWorkout(w, r, calendar.MarkMissed)
}

func (a *Api) transitionWorkout(w http.ResponseWriter, r *http.Request, mark func(*model.Event) (*model.Event, error)) {
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

	updated, err := mark(event)
	if err != nil {
		if errors.Is(err, model.ErrInvalidTransition) {
			a.conflictResponse(w, r, err)
			return
		}
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.store.UpdateEvent(updated); err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, mapToEventResp(updated), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
