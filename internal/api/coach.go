package api

import (
	"errors"
	"net/http"

	"github.com/aionhq/aion-backend/internal/model"
	"github.com/aionhq/aion-backend/internal/planner"
	"github.com/aionhq/aion-backend/internal/pkg/validator"
)

// postCoachMessageHandler relays one chat turn to the coaching service. The
// conversation history is client-owned and passed back in full on each turn.
func (a *Api) postCoachMessageHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		History []struct {
			Role string `json:"role"`
			Text string `json:"text"`
		} `json:"history"`
		Message string `json:"message"`
	}

	if err := a.readJSON(w, r, &input); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(input.Message != "", "message", "must be provided")
	for _, m := range input.History {
		v.Check(m.Role == "user" || m.Role == "coach", "history", "roles must be user or coach")
	}
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	history := make([]model.ChatMessage, 0, len(input.History))
	for _, m := range input.History {
		history = append(history, model.ChatMessage{Role: m.Role, Text: m.Text})
	}

	reply, err := a.planner.CoachReply(r.Context(), history, input.Message, a.store.Persona())
	if err != nil {
		var serviceErr *planner.ServiceError
		if errors.As(err, &serviceErr) {
			a.badGatewayResponse(w, r, err)
			return
		}
		a.serverErrorResponse(w, r, err)
		return
	}

	resp := map[string]interface{}{"reply": reply}
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
