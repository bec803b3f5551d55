package model

import "errors"

var ErrNoRecord = errors.New("no record")
var ErrInvalidRange = errors.New("event end precedes start")
var ErrInvalidTransition = errors.New("invalid workout status transition")
var ErrAnalysisInFlight = errors.New("analysis request already in flight")
var ErrCheckinComplete = errors.New("check-in already completed")
var ErrSuggestionAccepted = errors.New("suggestion already accepted")
var ErrNoTimeSlot = errors.New("suggestion carries no time slot")
