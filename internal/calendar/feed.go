package calendar

import (
	"fmt"
	"time"

	"github.com/aionhq/aion-backend/internal/model"
	"github.com/gerow/go-color"
	"github.com/teambition/rrule-go"
)

// The demo feed stands in for the external calendar integrations. It is
// regenerated on every reconciliation and fully determined by "now", so feed
// events are never persisted and never deletable.

const (
	feedWindowBefore = 14 * 24 * time.Hour
	feedWindowAfter  = 14 * 24 * time.Hour

	cycleLengthDays = 28
	cyclePhaseDays  = 5
)

var (
	colorGoogle = color.RGB{R: 0.976, G: 0.451, B: 0.086}
	colorTUM    = color.RGB{R: 0.145, G: 0.388, B: 0.922}
	colorFlo    = color.RGB{R: 0.984, G: 0.812, B: 0.910}
	colorHealth = color.RGB{R: 0.937, G: 0.267, B: 0.267}
)

// Feed produces the demo events for the window around now: two Google
// items today, the weekly university lectures, the current cycle phase block
// and a few past workout logs.
func Feed(now time.Time) ([]*model.Event, error) {
	var events []*model.Event

	events = append(events,
		feedEvent("g-1", "Go to dentist at 3", at(now, 0, 15, 0), at(now, 0, 16, 0), model.EventDraft{
			Source:      model.SourceGoogle,
			Location:    "Dr. Smith Clinic",
			Description: "Routine checkup.",
			Color:       &colorGoogle,
		}),
		feedEvent("g-2", "Meeting at 5", at(now, 0, 17, 0), at(now, 0, 18, 0), model.EventDraft{
			Source:      model.SourceGoogle,
			Location:    "Conference Room B",
			Description: "Project Sync.",
			Color:       &colorGoogle,
		}),
	)

	lectures, err := tumLectures(now)
	if err != nil {
		return nil, err
	}
	events = append(events, lectures...)

	phases, err := cyclePhases(now)
	if err != nil {
		return nil, err
	}
	events = append(events, phases...)

	events = append(events, workoutHistory(now)...)

	return events, nil
}

// tumLectures expands the two weekly university slots over the feed window,
// anchored so both have an occurrence today.
func tumLectures(now time.Time) ([]*model.Event, error) {
	type slot struct {
		key      string
		title    string
		location string
		desc     string
		hour     int
		minutes  int
		duration time.Duration
	}

	slots := []slot{
		{"tum-1", "Lecture in Garching at 11", "Garching", "Informatics 101", 11, 0, 90 * time.Minute},
		{"tum-2", "Seminar in Main Campus at 6", "Main Campus", "Advanced Topics Seminar", 18, 0, 90 * time.Minute},
	}

	var events []*model.Event
	for _, s := range slots {
		anchor := at(now, 0, s.hour, s.minutes)

		rule, err := rrule.NewRRule(rrule.ROption{
			Freq:     rrule.WEEKLY,
			Interval: 1,
			Dtstart:  anchor.Add(-feedWindowBefore),
		})
		if err != nil {
			return nil, fmt.Errorf("lecture rule %s: %w", s.key, err)
		}

		for _, start := range rule.Between(now.Add(-feedWindowBefore), now.Add(feedWindowAfter), true) {
			events = append(events, feedEvent(
				fmt.Sprintf("%s-%v", s.key, start.Unix()),
				s.title, start, start.Add(s.duration),
				model.EventDraft{
					Source:      model.SourceTUM,
					Location:    s.location,
					Description: s.desc,
					Color:       &colorTUM,
				},
			))
		}
	}

	return events, nil
}

// cyclePhases emits the multi-day phase blocks on a 28-day rhythm; the
// current one started yesterday so the phase band is visible right away.
func cyclePhases(now time.Time) ([]*model.Event, error) {
	phaseStart := startOfDay(now.AddDate(0, 0, -1))

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:     rrule.DAILY,
		Interval: cycleLengthDays,
		Dtstart:  phaseStart.AddDate(0, 0, -2*cycleLengthDays),
	})
	if err != nil {
		return nil, fmt.Errorf("cycle rule: %w", err)
	}

	var events []*model.Event
	for _, start := range rule.Between(now.Add(-feedWindowBefore), now.Add(feedWindowAfter), true) {
		end := startOfDay(start).AddDate(0, 0, cyclePhaseDays).Add(-time.Second)
		events = append(events, feedEvent(
			fmt.Sprintf("flo-%v", start.Unix()),
			"Period", start, end,
			model.EventDraft{
				Source:      model.SourceFlo,
				Description: "Menstruation phase.",
				Color:       &colorFlo,
			},
		))
	}

	return events, nil
}

func workoutHistory(now time.Time) []*model.Event {
	type log struct {
		key      string
		title    string
		location string
		daysAgo  int
		hour     int
		minutes  int
		duration time.Duration
		status   model.WorkoutStatus
		category model.WorkoutCategory
	}

	logs := []log{
		{"w-past-1", "Morning Run", "Park", 1, 7, 0, 45 * time.Minute, model.StatusCompleted, model.WorkoutCardio},
		{"w-past-2", "Evening Yoga", "Living Room", 2, 19, 0, time.Hour, model.StatusMissed, model.WorkoutYoga},
		{"w-past-3", "Upper Body Power", "Gym", 3, 18, 0, time.Hour, model.StatusCompleted, model.WorkoutStrength},
		{"w-past-4", "5k Run", "Outdoors", 4, 7, 0, 45 * time.Minute, model.StatusMissed, model.WorkoutCardio},
	}

	events := make([]*model.Event, 0, len(logs))
	for _, l := range logs {
		start := at(now, -l.daysAgo, l.hour, l.minutes)
		events = append(events, feedEvent(l.key, l.title, start, start.Add(l.duration), model.EventDraft{
			Source:      model.SourceHealth,
			Location:    l.location,
			Status:      l.status,
			WorkoutType: l.category,
			Color:       &colorHealth,
		}))
	}

	return events
}

func feedEvent(id, title string, start, end time.Time, draft model.EventDraft) *model.Event {
	draft.Title = title
	draft.Start = start
	draft.End = end
	draft.IsFixed = true
	return &model.Event{ID: id, EventDraft: draft}
}

func at(now time.Time, daysOffset, hour, minutes int) time.Time {
	d := now.AddDate(0, 0, daysOffset)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minutes, 0, 0, d.Location())
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
