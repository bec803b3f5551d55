package planner

import (
	"strings"
	"testing"
	"time"

	"github.com/aionhq/aion-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.March, 4, 8, 0, 0, 0, time.UTC)

func TestBuildAnalysisBurnout(t *testing.T) {
	a := BuildAnalysis(&PlanResponse{
		BurnoutLevel: "High",
		BurnoutScore: 82.4,
		Advice:       "Slow down.",
	}, testNow)

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, model.BurnoutHigh, a.BurnoutLevel)
	assert.Equal(t, 82, a.BurnoutScore)
	assert.Equal(t, "Slow down.", a.Advice)
	assert.Equal(t, testNow, a.CreatedAt)
}

func TestBuildAnalysisClampsScore(t *testing.T) {
	a := BuildAnalysis(&PlanResponse{BurnoutLevel: "Low", BurnoutScore: 250}, testNow)
	assert.Equal(t, 100, a.BurnoutScore)

	a = BuildAnalysis(&PlanResponse{BurnoutLevel: "Low", BurnoutScore: -12}, testNow)
	assert.Equal(t, 0, a.BurnoutScore)
}

func TestBuildAnalysisLevelFallback(t *testing.T) {
	cases := []struct {
		score float64
		want  model.BurnoutLevel
	}{
		{10, model.BurnoutLow},
		{50, model.BurnoutMedium},
		{80, model.BurnoutHigh},
	}

	for _, tc := range cases {
		a := BuildAnalysis(&PlanResponse{BurnoutLevel: "catastrophic", BurnoutScore: tc.score}, testNow)
		assert.Equal(t, tc.want, a.BurnoutLevel, "score %v", tc.score)
	}
}

func TestBuildAnalysisSchedule(t *testing.T) {
	a := BuildAnalysis(&PlanResponse{
		BurnoutLevel: "Medium",
		ScheduleItems: []ScheduleItem{
			{Title: "Deep work", Category: "SCHOOL", StartOffsetHours: 9.5, DurationMinutes: 90, Description: "Thesis block"},
			{Title: "Walk", Category: "WELLNESS", DayOffset: 1, StartOffsetHours: 17, DurationMinutes: 30},
			{Title: "Broken", Category: "WELLNESS", StartOffsetHours: 12, DurationMinutes: 0},
			{Title: "Dinner", Category: "whatever", StartOffsetHours: 19, DurationMinutes: 60},
		},
	}, testNow)

	// The zero-duration item is dropped, not guessed at.
	require.Len(t, a.Schedule, 3)

	deep := a.Schedule[0]
	assert.True(t, strings.HasPrefix(deep.ID, "plan-"))
	assert.Equal(t, model.SourceSchool, deep.Source)
	assert.Equal(t, time.Date(2026, time.March, 4, 9, 30, 0, 0, time.UTC), deep.Start)
	assert.Equal(t, 90*time.Minute, deep.End.Sub(deep.Start))
	assert.False(t, deep.IsFixed)

	walk := a.Schedule[1]
	assert.Equal(t, model.SourceWellness, walk.Source)
	assert.Equal(t, time.Date(2026, time.March, 5, 17, 0, 0, 0, time.UTC), walk.Start)

	// Unknown categories land in the catch-all user bucket.
	assert.Equal(t, model.SourceSocial, a.Schedule[2].Source)
}

func TestBuildAnalysisScheduleClampsOffsets(t *testing.T) {
	a := BuildAnalysis(&PlanResponse{
		BurnoutLevel: "Low",
		ScheduleItems: []ScheduleItem{
			{Title: "Too early", Category: "WELLNESS", StartOffsetHours: -3, DurationMinutes: 30},
		},
	}, testNow)

	require.Len(t, a.Schedule, 1)
	assert.Equal(t, time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC), a.Schedule[0].Start)
}

func TestBuildAnalysisSuggestions(t *testing.T) {
	offset := 16.0
	duration := 45

	a := BuildAnalysis(&PlanResponse{
		BurnoutLevel: "Medium",
		Suggestions: []SuggestionItem{
			{Title: "Wind down", Description: "Screens off", Type: "optimization", Priority: "High", TimeSlot: "Evening"},
			{Title: "Stretch", Type: "bogus", Priority: "Urgent", StartOffsetHours: &offset, DurationMinutes: &duration},
		},
	}, testNow)

	require.Len(t, a.Suggestions, 2)

	wind := a.Suggestions[0]
	assert.Equal(t, "sug-0", wind.ID)
	assert.Equal(t, model.SuggestionOptimization, wind.Type)
	assert.Equal(t, model.PriorityHigh, wind.Priority)
	assert.Equal(t, "Evening", wind.TimeSlot)
	assert.False(t, wind.Timed())

	stretch := a.Suggestions[1]
	// Unknown type and priority coerce to the defaults.
	assert.Equal(t, model.SuggestionInsight, stretch.Type)
	assert.Equal(t, model.PriorityMedium, stretch.Priority)
	require.True(t, stretch.Timed())
	assert.Equal(t, time.Date(2026, time.March, 4, 16, 0, 0, 0, time.UTC), stretch.Start)
	assert.Equal(t, 45*time.Minute, stretch.End.Sub(stretch.Start))
}
