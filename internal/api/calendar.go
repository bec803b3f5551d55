package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/aionhq/aion-backend/internal/calendar"
)

// getCalendarGridHandler renders one view of the time grid. The display set
// is recomputed on every request: feed events are regenerated for "now",
// filtered by the profile's connection flags and merged with the user pool.
func (a *Api) getCalendarGridHandler(w http.ResponseWriter, r *http.Request) {
	view := calendar.ViewDay
	if s := r.URL.Query().Get("view"); s != "" {
		var err error
		if view, err = calendar.ParseViewMode(s); err != nil {
			a.badRequestResponse(w, r, err)
			return
		}
	}

	date := a.now()
	if s := r.URL.Query().Get("date"); s != "" {
		var err error
		if date, err = time.ParseInLocation("2006-01-02", s, date.Location()); err != nil {
			a.badRequestResponse(w, r, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s))
			return
		}
	}

	profile := a.store.Profile()
	events := a.reconciler.Reconcile(a.now(), profile.Flags(), a.store.Events())

	resp := map[string]interface{}{
		"view": view.String(),
		"date": date.Format("2006-01-02"),
	}

	switch view {
	case calendar.ViewDay:
		resp["column"] = mapToDayColumnResp(calendar.LayoutDay(events, date))
	case calendar.ViewWeek:
		resp["columns"] = mapSlice(calendar.LayoutWeek(events, date), mapToDayColumnResp)
	case calendar.ViewMonth:
		grid := calendar.LayoutMonth(events, date)
		resp["leading_blanks"] = grid.LeadingBlanks
		resp["cells"] = mapSlice(grid.Cells, mapToMonthCellResp)
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

// getCalendarEventsHandler returns the flat reconciled display set, in
// z-order (feed first, user pool last).
func (a *Api) getCalendarEventsHandler(w http.ResponseWriter, r *http.Request) {
	profile := a.store.Profile()
	events := a.reconciler.Reconcile(a.now(), profile.Flags(), a.store.Events())

	resp := map[string]interface{}{
		"events": mapSlice(events, mapToEventResp),
	}
	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
