package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/gerow/go-color"
)

// EventSource tags an event with its provenance. Feed events carry the
// integration sources (Google, TUM, Flo), workout logs carry Health, accepted
// suggestions carry AI, and manually added events use one of the free-form
// user categories.
type EventSource int

const (
	SourceSchool EventSource = iota
	SourceWellness
	SourceSocial
	SourceAI
	SourceGoogle
	SourceHealth
	SourceFlo
	SourceTUM
)

var sourceNames = map[EventSource]string{
	SourceSchool:   "school",
	SourceWellness: "wellness",
	SourceSocial:   "social",
	SourceAI:       "ai",
	SourceGoogle:   "google",
	SourceHealth:   "health",
	SourceFlo:      "flo",
	SourceTUM:      "tum",
}

func (s EventSource) String() string {
	if name, ok := sourceNames[s]; ok {
		return name
	}
	return fmt.Sprintf("source(%d)", int(s))
}

func ParseEventSource(s string) (EventSource, error) {
	for src, name := range sourceNames {
		if name == s {
			return src, nil
		}
	}
	return 0, fmt.Errorf("unknown event source %q", s)
}

// WorkoutStatus is the lifecycle status of a Health event. All other sources
// keep StatusNone.
type WorkoutStatus int

const (
	StatusNone WorkoutStatus = iota
	StatusPlanned
	StatusCompleted
	StatusMissed
)

func (s WorkoutStatus) String() string {
	switch s {
	case StatusPlanned:
		return "planned"
	case StatusCompleted:
		return "completed"
	case StatusMissed:
		return "missed"
	default:
		return ""
	}
}

func ParseWorkoutStatus(s string) (WorkoutStatus, error) {
	switch s {
	case "":
		return StatusNone, nil
	case "planned":
		return StatusPlanned, nil
	case "completed":
		return StatusCompleted, nil
	case "missed":
		return StatusMissed, nil
	default:
		return 0, fmt.Errorf("unknown workout status %q", s)
	}
}

// WorkoutCategory is the closed set of workout kinds used for icon selection.
// Free-text input is normalized through ParseWorkoutCategory; anything
// unrecognized maps to WorkoutOther.
type WorkoutCategory int

const (
	WorkoutNone WorkoutCategory = iota
	WorkoutYoga
	WorkoutStrength
	WorkoutCardio
	WorkoutFullBody
	WorkoutRest
	WorkoutPilates
	WorkoutOther
)

var workoutNames = map[WorkoutCategory]string{
	WorkoutYoga:     "yoga",
	WorkoutStrength: "strength",
	WorkoutCardio:   "cardio",
	WorkoutFullBody: "full_body",
	WorkoutRest:     "rest",
	WorkoutPilates:  "pilates",
	WorkoutOther:    "other",
}

func (c WorkoutCategory) String() string {
	return workoutNames[c]
}

// ParseWorkoutCategory maps free-text workout descriptions onto the closed
// category set.
func ParseWorkoutCategory(s string) WorkoutCategory {
	t := strings.ToLower(strings.TrimSpace(s))
	switch {
	case t == "":
		return WorkoutNone
	case strings.Contains(t, "yoga"), strings.Contains(t, "flexibility"):
		return WorkoutYoga
	case strings.Contains(t, "strength"), strings.Contains(t, "glutes"),
		strings.Contains(t, "upper"), strings.Contains(t, "lift"):
		return WorkoutStrength
	case strings.Contains(t, "cardio"), strings.Contains(t, "run"), strings.Contains(t, "cycling"):
		return WorkoutCardio
	case strings.Contains(t, "full"):
		return WorkoutFullBody
	case strings.Contains(t, "rest"):
		return WorkoutRest
	case strings.Contains(t, "pilates"):
		return WorkoutPilates
	default:
		return WorkoutOther
	}
}

// EventDraft holds the user-editable fields of an event. It is the single
// value object shared by manual creation, suggestion conversion and workout
// logging.
type EventDraft struct {
	Title       string
	Start       time.Time
	End         time.Time
	Source      EventSource
	Description string
	Location    string
	Color       *color.RGB
	IsFixed     bool
	Status      WorkoutStatus
	WorkoutType WorkoutCategory

	// FromSuggestionID links a draft created by editing a pending suggestion
	// back to the suggestion it converts.
	FromSuggestionID string
}

type Event struct {
	ID string
	EventDraft
}
