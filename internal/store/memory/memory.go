// Package memory holds the session state. Everything the core owns lives
// in memory for the lifetime of the process; there is no persistence layer
// by design.
package memory

import (
	"fmt"
	"strings"
	"sync"

	"github.com/aionhq/aion-backend/internal/model"
	"github.com/aionhq/aion-backend/internal/pkg/ids"
	"go.uber.org/zap"
)

type Store struct {
	logger *zap.SugaredLogger

	mu       sync.RWMutex
	profile  model.UserProfile
	persona  model.Persona
	metrics  *model.WellnessMetrics
	analysis *model.DayAnalysis
	pool     []*model.Event
	accepted map[string]struct{}
}

func NewStore(logger *zap.SugaredLogger) *Store {
	return &Store{
		logger:   logger,
		persona:  model.PersonaNeutral,
		accepted: map[string]struct{}{},
	}
}

func (s *Store) Profile() model.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

func (s *Store) SetProfile(p model.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
}

func (s *Store) Persona() model.Persona {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persona
}

func (s *Store) SetPersona(p model.Persona) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persona = p
}

func (s *Store) Metrics() *model.WellnessMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.metrics
}

func (s *Store) SetMetrics(m model.WellnessMetrics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics = &m
}

// Events returns a copy of the user-owned pool in insertion order.
func (s *Store) Events() []*model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*model.Event(nil), s.pool...)
}

func (s *Store) AddEvent(e *model.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pool = append(s.pool, e)
}

func (s *Store) GetEvent(id string) (*model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.pool {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, model.ErrNoRecord
}

// UpdateEvent replaces the pooled event with the same ID.
func (s *Store) UpdateEvent(e *model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, old := range s.pool {
		if old.ID == e.ID {
			s.pool[i] = e
			return nil
		}
	}
	return model.ErrNoRecord
}

// DeleteEvent removes an event from the user-owned pool. Feed events never
// enter the pool (they regenerate per render), so only user namespaces can
// ever be deleted.
func (s *Store) DeleteEvent(id string) error {
	if !userOwnedID(id) {
		return fmt.Errorf("delete %s: %w", id, model.ErrNoRecord)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.pool {
		if e.ID == id {
			s.pool = append(s.pool[:i], s.pool[i+1:]...)
			return nil
		}
	}
	return model.ErrNoRecord
}

func userOwnedID(id string) bool {
	for _, prefix := range []string{ids.PrefixUser, ids.PrefixWorkout, ids.PrefixAI} {
		if strings.HasPrefix(id, prefix+"-") {
			return true
		}
	}
	return false
}

func (s *Store) Analysis() *model.DayAnalysis {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.analysis
}

// SetAnalysis atomically replaces the current analysis and resets the
// accepted-suggestion set, which is scoped to one analysis.
func (s *Store) SetAnalysis(a *model.DayAnalysis) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analysis = a
	s.accepted = map[string]struct{}{}
}

func (s *Store) ClearAnalysis() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analysis = nil
	s.metrics = nil
	s.accepted = map[string]struct{}{}
}

// Accepted returns a copy of the accepted-suggestion ID set.
func (s *Store) Accepted() map[string]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make(map[string]struct{}, len(s.accepted))
	for id := range s.accepted {
		res[id] = struct{}{}
	}
	return res
}

// AcceptSuggestion records the suggestion as accepted and appends its
// converted event to the pool under one lock, so there is no intermediate
// state where the suggestion is both pending and materialized. A second
// accept of the same suggestion is rejected.
func (s *Store) AcceptSuggestion(suggestionID string, e *model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accepted[suggestionID]; ok {
		return fmt.Errorf("suggestion %s: %w", suggestionID, model.ErrSuggestionAccepted)
	}

	s.accepted[suggestionID] = struct{}{}
	s.pool = append(s.pool, e)

	s.logger.Infow("suggestion accepted", "suggestion_id", suggestionID, "event_id", e.ID)
	return nil
}
