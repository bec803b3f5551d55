package api

import (
	"net/http"
	"time"

	"github.com/aionhq/aion-backend/internal/calendar"
	"github.com/aionhq/aion-backend/internal/planner"
	"github.com/aionhq/aion-backend/internal/store/memory"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Api struct {
	handler http.Handler
	logger  *zap.SugaredLogger

	store      *memory.Store
	reconciler *calendar.Reconciler
	checkin    *planner.Checkin
	planner    planner.Client
	now        func() time.Time
}

func NewApi(
	logger *zap.SugaredLogger,
	store *memory.Store,
	reconciler *calendar.Reconciler,
	checkin *planner.Checkin,
	plannerClient planner.Client,
	now func() time.Time,
) *Api {
	if now == nil {
		now = time.Now
	}

	a := &Api{
		logger:     logger,
		store:      store,
		reconciler: reconciler,
		checkin:    checkin,
		planner:    plannerClient,
		now:        now,
	}
	a.setupHandler()

	return a
}

func (a *Api) setupHandler() {
	middleware.DefaultLogger = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(middleware.Logger, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/calendar", func(r chi.Router) {
		r.Get("/grid", a.getCalendarGridHandler)
		r.Get("/events", a.getCalendarEventsHandler)
	})

	r.Route("/events", func(r chi.Router) {
		r.Post("/", a.createEventHandler)
		r.Put("/{eventID}", a.updateEventHandler)
		r.Delete("/{eventID}", a.deleteEventHandler)
	})

	r.Route("/workouts", func(r chi.Router) {
		r.Post("/", a.logWorkoutHandler)
		r.Post("/{eventID}/complete", a.completeWorkoutHandler)
		r.Post("/{eventID}/miss", a.missWorkoutHandler)
	})

	r.Route("/suggestions", func(r chi.Router) {
		r.Get("/", a.listSuggestionsHandler)
		r.Post("/{suggestionID}/accept", a.acceptSuggestionHandler)
	})

	r.Route("/checkin", func(r chi.Router) {
		r.Post("/", a.submitCheckinHandler)
		r.Post("/reset", a.resetCheckinHandler)
	})
	r.Get("/analysis", a.getAnalysisHandler)

	r.Route("/profile", func(r chi.Router) {
		r.Get("/", a.getProfileHandler)
		r.Put("/", a.updateProfileHandler)
		r.Put("/persona", a.updatePersonaHandler)
	})

	r.Post("/coach/messages", a.postCoachMessageHandler)

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}
