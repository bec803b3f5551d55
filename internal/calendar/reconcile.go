package calendar

import (
	"time"

	"github.com/aionhq/aion-backend/internal/model"
	"go.uber.org/zap"
)

// FeedFunc produces the ambient feed events for "now". Swappable in tests.
type FeedFunc func(now time.Time) ([]*model.Event, error)

// Reconciler merges feed events with the user-owned pool into the single
// display set, applying the per-source visibility flags.
type Reconciler struct {
	logger *zap.SugaredLogger
	feed   FeedFunc
}

func NewReconciler(logger *zap.SugaredLogger, feed FeedFunc) *Reconciler {
	return &Reconciler{
		logger: logger,
		feed:   feed,
	}
}

// Reconcile returns the ordered display set: flag-filtered feed events
// first, then the user pool unfiltered. The concatenation order doubles as
// the z-order downstream, so user events always render above feed events.
// No deduplication happens here; feed and user IDs live in disjoint
// namespaces.
//
// Losing the demo feed is non-critical while losing user data is not: if
// the generator fails or panics, reconciliation degrades to the user pool
// alone instead of propagating.
func (r *Reconciler) Reconcile(now time.Time, flags model.ConnectionFlags, pool []*model.Event) []*model.Event {
	feed := r.safeFeed(now)

	res := make([]*model.Event, 0, len(feed)+len(pool))
	for _, e := range feed {
		switch e.Source {
		case model.SourceGoogle:
			if !flags.Google {
				continue
			}
		case model.SourceTUM:
			if !flags.TUM {
				continue
			}
		case model.SourceFlo:
			if !flags.HasCycle {
				continue
			}
		}
		res = append(res, e)
	}

	return append(res, pool...)
}

func (r *Reconciler) safeFeed(now time.Time) (feed []*model.Event) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Errorw("feed generator panicked, degrading to user pool", "panic", p)
			feed = nil
		}
	}()

	feed, err := r.feed(now)
	if err != nil {
		r.logger.Errorw("feed generator failed, degrading to user pool", "err", err)
		return nil
	}
	return feed
}

// IsPhaseDay reports whether any cycle-phase event covers the given date at
// day granularity. Phase events never enter the time grid body; they are
// surfaced as a per-day header indicator instead.
func IsPhaseDay(events []*model.Event, date time.Time) bool {
	day := startOfDay(date)
	for _, e := range events {
		if e.Source != model.SourceFlo {
			continue
		}
		if !day.Before(startOfDay(e.Start)) && !day.After(startOfDay(e.End)) {
			return true
		}
	}
	return false
}
