package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aionhq/aion-backend/internal/model"
	"go.uber.org/zap"
)

// Client is the boundary to the external AI planning service. The service
// is opaque to the core: it receives the check-in context and returns a
// structured plan which the core validates and coerces before use.
type Client interface {
	AnalyzeDay(ctx context.Context, profile model.UserProfile, metrics model.WellnessMetrics, persona model.Persona) (*PlanResponse, error)
	CoachReply(ctx context.Context, history []model.ChatMessage, message string, persona model.Persona) (string, error)
}

// PlanResponse is the planner's wire schema. Fields are coerced, never
// trusted: see BuildAnalysis.
type PlanResponse struct {
	BurnoutLevel  string           `json:"burnoutLevel"`
	BurnoutScore  float64          `json:"burnoutScore"`
	Advice        string           `json:"advice"`
	ScheduleItems []ScheduleItem   `json:"scheduleItems"`
	Suggestions   []SuggestionItem `json:"suggestions"`
}

type ScheduleItem struct {
	Title            string  `json:"title"`
	Category         string  `json:"category"`
	DayOffset        int     `json:"dayOffset"`
	StartOffsetHours float64 `json:"startOffsetHours"`
	DurationMinutes  int     `json:"durationMinutes"`
	Description      string  `json:"description"`
}

type SuggestionItem struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Type             string   `json:"type"`
	Priority         string   `json:"priority"`
	TimeSlot         string   `json:"timeSlot,omitempty"`
	StartOffsetHours *float64 `json:"startOffsetHours,omitempty"`
	DurationMinutes  *int     `json:"durationMinutes,omitempty"`
}

// ServiceError marks any planner failure (network, bad status, malformed
// response). The check-in boundary recovers from it; everything else treats
// it as opaque.
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("planner %s: %v", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// HTTPClient talks JSON over HTTP to the planning service.
type HTTPClient struct {
	logger  *zap.SugaredLogger
	baseURL string
	apiKey  string
	httpc   *http.Client
}

func NewHTTPClient(logger *zap.SugaredLogger, baseURL, apiKey string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		logger:  logger,
		baseURL: baseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: timeout},
	}
}

type planRequest struct {
	Profile      profilePayload `json:"profile"`
	Metrics      metricsPayload `json:"metrics"`
	Persona      string         `json:"persona"`
	Instructions string         `json:"instructions"`
}

type profilePayload struct {
	Name               string   `json:"name"`
	Age                string   `json:"age"`
	RelationshipStatus string   `json:"relationship_status"`
	KidsCount          int      `json:"kids_count"`
	CareerRoles        []string `json:"career_roles"`
	HasCycle           bool     `json:"has_cycle"`
}

type metricsPayload struct {
	SleepHours  float64 `json:"sleep_hours"`
	StressLevel int     `json:"stress_level"`
	Mood        string  `json:"mood"`
	Note        string  `json:"note,omitempty"`
}

func (c *HTTPClient) AnalyzeDay(ctx context.Context, profile model.UserProfile, metrics model.WellnessMetrics, persona model.Persona) (*PlanResponse, error) {
	req := planRequest{
		Profile: profilePayload{
			Name:               profile.Name,
			Age:                profile.Age,
			RelationshipStatus: profile.RelationshipStatus,
			KidsCount:          profile.KidsCount,
			CareerRoles:        profile.CareerRoles,
			HasCycle:           profile.HasCycle,
		},
		Metrics: metricsPayload{
			SleepHours:  metrics.SleepHours,
			StressLevel: metrics.StressLevel,
			Mood:        string(metrics.Mood),
			Note:        metrics.Note,
		},
		Persona:      string(persona),
		Instructions: personaTone(persona),
	}

	resp := &PlanResponse{}
	if err := c.post(ctx, "/v1/plan", req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

type coachRequest struct {
	History []coachMessage `json:"history"`
	Message string         `json:"message"`
	Persona string         `json:"persona"`
	Tone    string         `json:"tone"`
}

type coachMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type coachResponse struct {
	Reply string `json:"reply"`
}

func (c *HTTPClient) CoachReply(ctx context.Context, history []model.ChatMessage, message string, persona model.Persona) (string, error) {
	req := coachRequest{
		History: make([]coachMessage, 0, len(history)),
		Message: message,
		Persona: string(persona),
		Tone:    personaTone(persona),
	}
	for _, m := range history {
		req.History = append(req.History, coachMessage{Role: m.Role, Text: m.Text})
	}

	resp := &coachResponse{}
	if err := c.post(ctx, "/v1/coach", req, resp); err != nil {
		return "", err
	}
	return resp.Reply, nil
}

func (c *HTTPClient) post(ctx context.Context, path string, body, dst interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &ServiceError{Op: "encode request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &ServiceError{Op: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &ServiceError{Op: "call", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &ServiceError{Op: "call", Err: fmt.Errorf("unexpected status %v", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return &ServiceError{Op: "decode response", Err: err}
	}

	return nil
}

// personaTone reproduces the three fixed tone presets the planner is asked
// to answer in.
func personaTone(p model.Persona) string {
	switch p {
	case model.PersonaToxic:
		return "TONE: aggressive drill sergeant. Command the user, use caps, playfully harsh about laziness."
	case model.PersonaSoft:
		return "TONE: gentle, validating, warm. Prioritize feelings over productivity, suggest rest."
	default:
		return "TONE: practical and stoic. Facts and balance, no fluff."
	}
}
