package model

import "time"

type SuggestionType int

const (
	SuggestionWarning SuggestionType = iota
	SuggestionOptimization
	SuggestionOpportunity
	SuggestionInsight
)

var suggestionTypeNames = map[SuggestionType]string{
	SuggestionWarning:      "warning",
	SuggestionOptimization: "optimization",
	SuggestionOpportunity:  "opportunity",
	SuggestionInsight:      "insight",
}

func (t SuggestionType) String() string {
	return suggestionTypeNames[t]
}

func ParseSuggestionType(s string) (SuggestionType, bool) {
	for t, name := range suggestionTypeNames {
		if name == s {
			return t, true
		}
	}
	return 0, false
}

type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	default:
		return "Low"
	}
}

func ParsePriority(s string) (Priority, bool) {
	switch s {
	case "High":
		return PriorityHigh, true
	case "Medium":
		return PriorityMedium, true
	case "Low":
		return PriorityLow, true
	default:
		return 0, false
	}
}

// Suggestion is an AI-proposed calendar item awaiting the user's decision.
// It never materializes on the calendar itself; acceptance converts it into
// a fresh Event with its own identifier. Start/End are zero when the planner
// only supplied a free-text time-slot label.
type Suggestion struct {
	ID          string
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Category    EventSource
	Type        SuggestionType
	Priority    Priority
	TimeSlot    string
}

// Timed reports whether the suggestion carries a concrete slot.
func (s *Suggestion) Timed() bool {
	return !s.Start.IsZero() && !s.End.IsZero()
}

type BurnoutLevel int

const (
	BurnoutLow BurnoutLevel = iota
	BurnoutMedium
	BurnoutHigh
)

func (l BurnoutLevel) String() string {
	switch l {
	case BurnoutHigh:
		return "High"
	case BurnoutMedium:
		return "Medium"
	default:
		return "Low"
	}
}

func ParseBurnoutLevel(s string) (BurnoutLevel, bool) {
	switch s {
	case "Low":
		return BurnoutLow, true
	case "Medium":
		return BurnoutMedium, true
	case "High":
		return BurnoutHigh, true
	default:
		return 0, false
	}
}

// DayAnalysis is the outcome of one wellness check-in: the burnout
// assessment plus the planner's proposed schedule and advisory suggestions.
// Schedule entries are proposed events, not yet part of the user pool.
type DayAnalysis struct {
	ID           string
	BurnoutLevel BurnoutLevel
	BurnoutScore int
	Advice       string
	Schedule     []*Event
	Suggestions  []*Suggestion
	CreatedAt    time.Time
}
