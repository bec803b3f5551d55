package api

import (
	"net/http"

	"github.com/aionhq/aion-backend/internal/model"
	"github.com/aionhq/aion-backend/internal/pkg/validator"
)

func (a *Api) getProfileHandler(w http.ResponseWriter, r *http.Request) {
	resp := mapToProfileResp(a.store.Profile(), a.store.Persona())
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateProfileHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name               string   `json:"name"`
		Age                string   `json:"age"`
		HasCycle           bool     `json:"has_cycle"`
		RelationshipStatus string   `json:"relationship_status"`
		KidsCount          int      `json:"kids_count"`
		CareerRoles        []string `json:"career_roles"`
		AvatarSeed         string   `json:"avatar_seed"`
		ConnectedApps      []string `json:"connected_apps"`
		GoogleConnected    bool     `json:"google_connected"`
	}

	if err := a.readJSON(w, r, &input); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(input.Name != "", "name", "must be provided")
	v.Check(input.KidsCount >= 0, "kids_count", "must not be negative")
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	a.store.SetProfile(model.UserProfile{
		Name:               input.Name,
		Age:                input.Age,
		HasCycle:           input.HasCycle,
		RelationshipStatus: input.RelationshipStatus,
		KidsCount:          input.KidsCount,
		CareerRoles:        input.CareerRoles,
		AvatarSeed:         input.AvatarSeed,
		ConnectedApps:      input.ConnectedApps,
		GoogleConnected:    input.GoogleConnected,
	})

	resp := mapToProfileResp(a.store.Profile(), a.store.Persona())
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updatePersonaHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Persona string `json:"persona"`
	}

	if err := a.readJSON(w, r, &input); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	persona, err := model.ParsePersona(input.Persona)
	if err != nil {
		a.failedValidationResponse(w, r, map[string]string{"persona": err.Error()})
		return
	}

	a.store.SetPersona(persona)

	resp := map[string]interface{}{"persona": string(persona)}
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
