package gallery

import (
	"slices"

	"github.com/dmitrijs2005/medianest/internal/client/models"
)

// Status is the fetch lifecycle of the gallery.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// State is the gallery as last fetched plus UI status flags.
type State struct {
	Items          []models.MediaItem
	Status         Status
	Err            string
	UploadInFlight bool
	Refreshing     bool
}

func (s State) clone() State {
	s.Items = slices.Clone(s.Items)
	return s
}

// Transition is one explicit change of State.
type Transition func(*State)

// FetchStarted marks a list request as outstanding.
func FetchStarted() Transition {
	return func(s *State) {
		s.Status = StatusLoading
		s.Err = ""
	}
}

// FetchSucceeded replaces the items wholesale with the store's sequence.
func FetchSucceeded(items []models.MediaItem) Transition {
	items = slices.Clone(items)
	if items == nil {
		items = []models.MediaItem{}
	}
	return func(s *State) {
		s.Items = items
		s.Status = StatusReady
		s.Err = ""
		s.Refreshing = false
	}
}

// FetchFailed records the failure message. Items are left as they were.
func FetchFailed(msg string) Transition {
	return func(s *State) {
		s.Status = StatusError
		s.Err = msg
		s.Refreshing = false
	}
}

// RefreshStarted flags a user-initiated refresh.
func RefreshStarted() Transition {
	return func(s *State) {
		s.Refreshing = true
	}
}

// UploadFinished releases the upload flag.
func UploadFinished() Transition {
	return func(s *State) {
		s.UploadInFlight = false
	}
}
