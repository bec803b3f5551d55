package planner

import (
	"fmt"
	"math"
	"time"

	"github.com/aionhq/aion-backend/internal/model"
	"github.com/aionhq/aion-backend/internal/pkg/ids"
	"github.com/google/uuid"
)

// BuildAnalysis validates and coerces a raw planner response into a
// DayAnalysis anchored at now. The planner supplies offsets and no stable
// identifiers; absolute times and IDs are minted here. Schedule items with
// a non-positive duration are dropped rather than guessed at.
func BuildAnalysis(resp *PlanResponse, now time.Time) *model.DayAnalysis {
	score := clampScore(resp.BurnoutScore)

	level, ok := model.ParseBurnoutLevel(resp.BurnoutLevel)
	if !ok {
		level = levelForScore(score)
	}

	analysis := &model.DayAnalysis{
		ID:           uuid.NewString(),
		BurnoutLevel: level,
		BurnoutScore: score,
		Advice:       resp.Advice,
		CreatedAt:    now,
	}

	for i, item := range resp.ScheduleItems {
		if item.DurationMinutes <= 0 {
			continue
		}

		start := offsetTime(now, item.DayOffset, item.StartOffsetHours)
		analysis.Schedule = append(analysis.Schedule, &model.Event{
			ID: fmt.Sprintf("%s-%v-%v", ids.PrefixPlan, now.Unix(), i),
			EventDraft: model.EventDraft{
				Title:       item.Title,
				Start:       start,
				End:         start.Add(time.Duration(item.DurationMinutes) * time.Minute),
				Source:      scheduleSource(item.Category),
				Description: item.Description,
			},
		})
	}

	for i, item := range resp.Suggestions {
		s := &model.Suggestion{
			ID:          fmt.Sprintf("%s-%v", ids.PrefixSuggestion, i),
			Title:       item.Title,
			Description: item.Description,
			Category:    model.SourceWellness,
			TimeSlot:    item.TimeSlot,
		}

		s.Type, ok = model.ParseSuggestionType(item.Type)
		if !ok {
			s.Type = model.SuggestionInsight
		}
		s.Priority, ok = model.ParsePriority(item.Priority)
		if !ok {
			s.Priority = model.PriorityMedium
		}

		if item.StartOffsetHours != nil && item.DurationMinutes != nil && *item.DurationMinutes > 0 {
			s.Start = offsetTime(now, 0, *item.StartOffsetHours)
			s.End = s.Start.Add(time.Duration(*item.DurationMinutes) * time.Minute)
		}

		analysis.Suggestions = append(analysis.Suggestions, s)
	}

	return analysis
}

func clampScore(score float64) int {
	return int(math.Round(math.Min(100, math.Max(0, score))))
}

// levelForScore is only a fallback when the planner returns an unknown
// level; the thresholds themselves are the planner's call.
func levelForScore(score int) model.BurnoutLevel {
	switch {
	case score < 34:
		return model.BurnoutLow
	case score < 67:
		return model.BurnoutMedium
	default:
		return model.BurnoutHigh
	}
}

func scheduleSource(category string) model.EventSource {
	switch category {
	case "SCHOOL":
		return model.SourceSchool
	case "WELLNESS":
		return model.SourceWellness
	default:
		return model.SourceSocial
	}
}

// offsetTime anchors an hour-of-day offset to the day dayOffset days after
// now, clamping the offset into [0, 24).
func offsetTime(now time.Time, dayOffset int, offsetHours float64) time.Time {
	offsetHours = math.Min(24-1e-9, math.Max(0, offsetHours))

	day := now.AddDate(0, 0, dayOffset)
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return dayStart.Add(time.Duration(offsetHours * float64(time.Hour)))
}
