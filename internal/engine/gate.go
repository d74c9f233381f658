package engine

import "github.com/napolitain/citysim/internal/models"

// Phase is the state of the event gate
type Phase int

const (
	// PhaseOpen accepts a new set of choices
	PhaseOpen Phase = iota
	// PhaseAwaitingResponse holds the year until the pending event is answered
	PhaseAwaitingResponse
	// PhaseCompleted is Open past the horizon; nothing more can be applied
	PhaseCompleted
)

// String returns a string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseOpen:
		return "Open"
	case PhaseAwaitingResponse:
		return "AwaitingResponse"
	case PhaseCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// CanApply reports whether choices may be submitted
func (p Phase) CanApply() bool {
	return p == PhaseOpen
}

// CanResolve reports whether a response may be submitted
func (p Phase) CanResolve() bool {
	return p == PhaseAwaitingResponse
}

// PhaseOf derives the gate phase of a state. A nil state accepts neither
// transition and reports PhaseCompleted.
func PhaseOf(s *models.CityState, horizon int) Phase {
	if s == nil {
		return PhaseCompleted
	}
	if s.PendingEvent != nil {
		return PhaseAwaitingResponse
	}
	if s.Year > horizon {
		return PhaseCompleted
	}
	return PhaseOpen
}
