package api

import (
	"errors"
	"net/http"

	"github.com/aionhq/aion-backend/internal/model"
	"github.com/aionhq/aion-backend/internal/planner"
	"github.com/aionhq/aion-backend/internal/pkg/validator"
)

// submitCheckinHandler runs the daily wellness check-in. At most one
// analysis exists at a time: repeat submissions are rejected until the
// current one is reset, and concurrent submissions collapse to a single
// planning call.
func (a *Api) submitCheckinHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		SleepHours  float64 `json:"sleep_hours"`
		StressLevel int     `json:"stress_level"`
		Mood        string  `json:"mood"`
		Note        string  `json:"note"`
	}

	if err := a.readJSON(w, r, &input); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	mood, moodErr := model.ParseMood(input.Mood)

	v := validator.New()
	v.Check(input.SleepHours >= 0, "sleep_hours", "must not be negative")
	v.Check(input.SleepHours <= 24, "sleep_hours", "must be at most 24")
	v.Check(input.StressLevel >= 1 && input.StressLevel <= 10, "stress_level", "must be between 1 and 10")
	v.Check(moodErr == nil, "mood", "must be one of Great, Okay, Stressed, Tired, Anxious")
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	analysis, err := a.checkin.Submit(r.Context(), model.WellnessMetrics{
		SleepHours:  input.SleepHours,
		StressLevel: input.StressLevel,
		Mood:        mood,
		Note:        input.Note,
	})
	if err != nil {
		var serviceErr *planner.ServiceError
		switch {
		case errors.Is(err, model.ErrAnalysisInFlight), errors.Is(err, model.ErrCheckinComplete):
			a.conflictResponse(w, r, err)
		case errors.As(err, &serviceErr):
			a.badGatewayResponse(w, r, err)
		default:
			a.serverErrorResponse(w, r, err)
		}
		return
	}

	resp := mapToAnalysisResp(analysis, analysis.Schedule, analysis.Suggestions)
	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) resetCheckinHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.checkin.Reset(); err != nil {
		if errors.Is(err, model.ErrAnalysisInFlight) {
			a.conflictResponse(w, r, err)
			return
		}
		a.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// getAnalysisHandler returns the current analysis with accepted entries
// filtered out, plus the check-in machine state so the client knows whether
// a new check-in is allowed.
func (a *Api) getAnalysisHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{
		"state": a.checkin.State().String(),
	}

	if analysis := a.store.Analysis(); analysis != nil {
		accepted := a.store.Accepted()
		resp["analysis"] = mapToAnalysisResp(
			analysis,
			planner.PendingSchedule(analysis, accepted),
			planner.PendingSuggestions(analysis, accepted),
		)
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
