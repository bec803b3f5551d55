package api

import (
	"time"

	"github.com/aionhq/aion-backend/internal/calendar"
	"github.com/aionhq/aion-backend/internal/model"
	"github.com/gerow/go-color"
)

type eventResp struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Source      string    `json:"source"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Color       string    `json:"color,omitempty"`
	IsFixed     bool      `json:"is_fixed"`
	Status      string    `json:"status,omitempty"`
	WorkoutType string    `json:"workout_type,omitempty"`
	Style       string    `json:"style"`
	MultiDay    bool      `json:"multi_day"`
}

func mapToEventResp(e *model.Event) eventResp {
	resp := eventResp{
		ID:          e.ID,
		Title:       e.Title,
		Start:       e.Start,
		End:         e.End,
		Source:      e.Source.String(),
		Description: e.Description,
		Location:    e.Location,
		IsFixed:     e.IsFixed,
		Status:      e.Status.String(),
		Style:       calendar.StyleFor(e).String(),
		MultiDay:    calendar.IsMultiDay(e),
	}
	if e.Color != nil {
		resp.Color = "#" + e.Color.ToHTML()
	}
	if e.WorkoutType != model.WorkoutNone {
		resp.WorkoutType = e.WorkoutType.String()
	}

	return resp
}

func parseColor(s string) (*color.RGB, error) {
	if s == "" {
		return nil, nil
	}
	rgb, err := color.HTMLToRGB(s)
	if err != nil {
		return nil, err
	}
	return &rgb, nil
}

type suggestionResp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Start       *time.Time `json:"start,omitempty"`
	End         *time.Time `json:"end,omitempty"`
	Category    string     `json:"category"`
	Type        string     `json:"type"`
	Priority    string     `json:"priority"`
	TimeSlot    string     `json:"time_slot,omitempty"`
}

func mapToSuggestionResp(s *model.Suggestion) suggestionResp {
	resp := suggestionResp{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Category:    s.Category.String(),
		Type:        s.Type.String(),
		Priority:    s.Priority.String(),
		TimeSlot:    s.TimeSlot,
	}
	if s.Timed() {
		start, end := s.Start, s.End
		resp.Start, resp.End = &start, &end
	}

	return resp
}

type analysisResp struct {
	ID           string           `json:"id"`
	BurnoutLevel string           `json:"burnout_level"`
	BurnoutScore int              `json:"burnout_score"`
	Advice       string           `json:"advice"`
	Schedule     []eventResp      `json:"schedule"`
	Suggestions  []suggestionResp `json:"suggestions"`
	CreatedAt    time.Time        `json:"created_at"`
}

func mapToAnalysisResp(a *model.DayAnalysis, pendingSchedule []*model.Event, pendingSuggestions []*model.Suggestion) analysisResp {
	return analysisResp{
		ID:           a.ID,
		BurnoutLevel: a.BurnoutLevel.String(),
		BurnoutScore: a.BurnoutScore,
		Advice:       a.Advice,
		Schedule:     mapSlice(pendingSchedule, mapToEventResp),
		Suggestions:  mapSlice(pendingSuggestions, mapToSuggestionResp),
		CreatedAt:    a.CreatedAt,
	}
}

type placementResp struct {
	Event  eventResp `json:"event"`
	Top    float64   `json:"top"`
	Height float64   `json:"height"`
	ZIndex int       `json:"z_index"`
}

func mapToPlacementResp(p calendar.Placement) placementResp {
	return placementResp{
		Event:  mapToEventResp(p.Event),
		Top:    p.Top,
		Height: p.Height,
		ZIndex: p.ZIndex,
	}
}

type dayColumnResp struct {
	Date       string          `json:"date"`
	PhaseDay   bool            `json:"phase_day"`
	Placements []placementResp `json:"placements"`
}

func mapToDayColumnResp(c calendar.DayColumn) dayColumnResp {
	return dayColumnResp{
		Date:       c.Date.Format("2006-01-02"),
		PhaseDay:   c.PhaseDay,
		Placements: mapSlice(c.Placements, mapToPlacementResp),
	}
}

type monthCellResp struct {
	Day      int         `json:"day"`
	Date     string      `json:"date"`
	Events   []eventResp `json:"events"`
	Overflow int         `json:"overflow"`
	PhaseDay bool        `json:"phase_day"`
}

func mapToMonthCellResp(c calendar.MonthCell) monthCellResp {
	return monthCellResp{
		Day:      c.Day,
		Date:     c.Date.Format("2006-01-02"),
		Events:   mapSlice(c.Events, mapToEventResp),
		Overflow: c.Overflow,
		PhaseDay: c.PhaseDay,
	}
}

type profileResp struct {
	Name               string   `json:"name"`
	Age                string   `json:"age"`
	HasCycle           bool     `json:"has_cycle"`
	RelationshipStatus string   `json:"relationship_status"`
	KidsCount          int      `json:"kids_count"`
	CareerRoles        []string `json:"career_roles"`
	AvatarSeed         string   `json:"avatar_seed"`
	ConnectedApps      []string `json:"connected_apps"`
	GoogleConnected    bool     `json:"google_connected"`
	Persona            string   `json:"persona"`
}

func mapToProfileResp(p model.UserProfile, persona model.Persona) profileResp {
	return profileResp{
		Name:               p.Name,
		Age:                p.Age,
		HasCycle:           p.HasCycle,
		RelationshipStatus: p.RelationshipStatus,
		KidsCount:          p.KidsCount,
		CareerRoles:        p.CareerRoles,
		AvatarSeed:         p.AvatarSeed,
		ConnectedApps:      p.ConnectedApps,
		GoogleConnected:    p.GoogleConnected,
		Persona:            string(persona),
	}
}
