package calendar

import (
	"fmt"
	"time"

	"github.com/aionhq/aion-backend/internal/model"
)

type ViewMode int

const (
	ViewDay ViewMode = iota
	ViewWeek
	ViewMonth
)

func (m ViewMode) String() string {
	switch m {
	case ViewDay:
		return "day"
	case ViewWeek:
		return "week"
	default:
		return "month"
	}
}

func ParseViewMode(s string) (ViewMode, error) {
	switch s {
	case "day":
		return ViewDay, nil
	case "week":
		return ViewWeek, nil
	case "month":
		return ViewMonth, nil
	default:
		return 0, fmt.Errorf("unknown view mode %q", s)
	}
}

type Direction int

const (
	Prev Direction = iota
	Next
)

// Cursor is the view state machine: a mode and a single reference date.
type Cursor struct {
	Mode ViewMode
	Date time.Time
}

// Navigate shifts the reference date by one unit of the current mode.
func (c *Cursor) Navigate(dir Direction) {
	step := 1
	if dir == Prev {
		step = -1
	}

	switch c.Mode {
	case ViewDay:
		c.Date = c.Date.AddDate(0, 0, step)
	case ViewWeek:
		c.Date = c.Date.AddDate(0, 0, 7*step)
	case ViewMonth:
		c.Date = c.Date.AddDate(0, step, 0)
	}
}

func (c *Cursor) GoToToday(now time.Time) {
	c.Date = now
}

// The day/week track is 1200 display units tall (24 hours at 50 units); a
// short event never renders thinner than 35 units of it.
const (
	gridTrackUnits    = 1200.0
	minPlacementUnits = 35.0

	// MinHeightFraction is the minimum visible height of a placement as a
	// fraction of the day track.
	MinHeightFraction = minPlacementUnits / gridTrackUnits
)

// Placement is the geometric position of one event within a day column,
// expressed as fractions of the 24h track.
type Placement struct {
	Event  *model.Event
	Top    float64
	Height float64

	// ZIndex preserves the reconciliation order: overlapping events are not
	// packed side by side, later placements simply stack above earlier ones.
	ZIndex int
}

// DayColumn is one rendered day of the day/week grid.
type DayColumn struct {
	Date       time.Time
	PhaseDay   bool
	Placements []Placement
}

// LayoutDay places every event intersecting the given day. Phase events are
// excluded from the grid body (they live in the header strip), and
// placements keep the input order as their z-order.
func LayoutDay(events []*model.Event, day time.Time) DayColumn {
	col := DayColumn{
		Date:     startOfDay(day),
		PhaseDay: IsPhaseDay(events, day),
	}

	for _, e := range events {
		if e.Source == model.SourceFlo {
			continue
		}
		span, ok := ClampToDay(e, day)
		if !ok {
			continue
		}

		height := (span.EndHour - span.StartHour) / 24
		if height < MinHeightFraction {
			height = MinHeightFraction
		}

		col.Placements = append(col.Placements, Placement{
			Event:  e,
			Top:    span.StartHour / 24,
			Height: height,
			ZIndex: len(col.Placements),
		})
	}

	return col
}

// WeekDays returns the Monday-first week containing date.
func WeekDays(date time.Time) []time.Time {
	monday := startOfDay(date).AddDate(0, 0, -mondayOffset(date.Weekday()))

	days := make([]time.Time, 7)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

func LayoutWeek(events []*model.Event, date time.Time) []DayColumn {
	days := WeekDays(date)
	cols := make([]DayColumn, len(days))
	for i, d := range days {
		cols[i] = LayoutDay(events, d)
	}
	return cols
}

// monthCellCap is the number of events listed per month cell before the
// "+N more" overflow indicator kicks in.
const monthCellCap = 3

type MonthCell struct {
	Day      int
	Date     time.Time
	Events   []*model.Event
	Overflow int
	PhaseDay bool
}

type MonthGrid struct {
	// LeadingBlanks is the number of empty cells before day 1 in a
	// Monday-first week row.
	LeadingBlanks int
	Cells         []MonthCell
}

func LayoutMonth(events []*model.Event, date time.Time) MonthGrid {
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	grid := MonthGrid{
		LeadingBlanks: mondayOffset(first.Weekday()),
		Cells:         make([]MonthCell, daysInMonth),
	}

	for d := 0; d < daysInMonth; d++ {
		day := first.AddDate(0, 0, d)
		cell := MonthCell{
			Day:      d + 1,
			Date:     day,
			PhaseDay: IsPhaseDay(events, day),
		}

		for _, e := range events {
			if e.Source == model.SourceFlo {
				continue
			}
			if _, ok := ClampToDay(e, day); !ok {
				continue
			}
			if len(cell.Events) < monthCellCap {
				cell.Events = append(cell.Events, e)
			} else {
				cell.Overflow++
			}
		}

		grid.Cells[d] = cell
	}

	return grid
}

// mondayOffset converts Go's Sunday-first weekday into a Monday-first
// column offset (Mon 0 .. Sun 6).
func mondayOffset(w time.Weekday) int {
	if w == time.Sunday {
		return 6
	}
	return int(w) - 1
}
