// Package engine resolves turns of the city simulation.
//
// A turn is two transitions: ApplyChoices charges the four chosen policies and
// samples a random event, then ResolveEvent applies the chosen branch of that
// event and moves to the next year. The event gate in between refuses new
// choices until the event is answered.
package engine

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/napolitain/citysim/internal/models"
)

// Source picks the random event; *rand.Rand satisfies it
type Source interface {
	IntN(n int) int
}

// Engine applies choices and resolves events against a catalog
type Engine struct {
	catalog  *models.Catalog
	settings models.Settings
	rng      Source
	logger   *slog.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithRand sets the source used to sample events
func WithRand(r Source) Option {
	return func(e *Engine) {
		e.rng = r
	}
}

// WithSeed samples events from a PCG generator seeded with seed
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithLogger sets the logger for state transitions
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an engine after validating the catalog and settings
func New(catalog *models.Catalog, settings models.Settings, opts ...Option) (*Engine, error) {
	if catalog == nil {
		return nil, fmt.Errorf("%w: nil catalog", models.ErrInvalidCatalog)
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	if err := models.ValidateSettings(settings); err != nil {
		return nil, err
	}

	e := &Engine{
		catalog:  catalog,
		settings: settings,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if e.logger == nil {
		e.logger = slog.New(slog.DiscardHandler)
	}
	return e, nil
}

// Catalog returns the configuration tables
func (e *Engine) Catalog() *models.Catalog { return e.catalog }

// Settings returns the game settings
func (e *Engine) Settings() models.Settings { return e.settings }

// Horizon returns the number of years in a playthrough
func (e *Engine) Horizon() int { return e.settings.Horizon }

// NewState returns the starting state for these settings
func (e *Engine) NewState() *models.CityState {
	return models.NewCityState(e.settings)
}

// Phase returns the gate phase of s
func (e *Engine) Phase(s *models.CityState) Phase {
	return PhaseOf(s, e.settings.Horizon)
}

// IsGameComplete reports whether no event is pending and the horizon has passed.
// A nil state has no playthrough and is never complete.
func (e *Engine) IsGameComplete(s *models.CityState) bool {
	return s != nil && e.Phase(s) == PhaseCompleted
}

// ApplyChoices charges the selected policies, records the year and samples the
// event that must be resolved before the year can close. The year is not
// advanced. Nothing is changed when an error is returned.
func (e *Engine) ApplyChoices(s *models.CityState, sel models.Selections) (models.RandomEvent, error) {
	if s == nil {
		return models.RandomEvent{}, fmt.Errorf("%w: nil state", models.ErrPreconditionViolated)
	}

	switch e.Phase(s) {
	case PhaseAwaitingResponse:
		return models.RandomEvent{}, fmt.Errorf("%w: event %q is still pending", models.ErrPreconditionViolated, s.PendingEvent.Description)
	case PhaseCompleted:
		// Past the horizon is both the end of the game and an out-of-sequence call
		return models.RandomEvent{}, fmt.Errorf("%w: %w: year %d is past horizon %d",
			models.ErrGameComplete, models.ErrPreconditionViolated, s.Year, e.settings.Horizon)
	}

	opts, err := e.catalog.Resolve(sel)
	if err != nil {
		return models.RandomEvent{}, err
	}

	n := len(e.catalog.Events)
	idx := e.rng.IntN(n)
	if idx < 0 || idx >= n {
		return models.RandomEvent{}, fmt.Errorf("%w: event source returned %d of %d", models.ErrPreconditionViolated, idx, n)
	}

	// All four policies land before the event is set pending
	s.ApplyOptions(opts...)
	s.History = append(s.History, models.TurnRecord{
		Year:       s.Year,
		Transport:  sel.Transport,
		Energy:     sel.Energy,
		Waste:      sel.Waste,
		GreenSpace: sel.GreenSpace,
	})

	ev := e.catalog.Events[idx]
	s.PendingEvent = &ev

	e.logger.Debug("choices applied",
		"year", s.Year,
		"transport", sel.Transport,
		"energy", sel.Energy,
		"waste", sel.Waste,
		"green_space", sel.GreenSpace,
		"sustainability", s.Sustainability,
		"happiness", s.Happiness,
		"budget", s.Budget,
		"event", ev.Description,
	)

	return ev, nil
}

// ResolveEvent applies the branch of the pending event picked by r, clears the
// event and moves to the next year.
func (e *Engine) ResolveEvent(s *models.CityState, r models.Response) (models.Impact, error) {
	if s == nil {
		return models.Impact{}, fmt.Errorf("%w: nil state", models.ErrPreconditionViolated)
	}
	if s.PendingEvent == nil {
		return models.Impact{}, fmt.Errorf("%w: no event is pending", models.ErrPreconditionViolated)
	}
	if !r.Valid() {
		return models.Impact{}, fmt.Errorf("%w: unknown response %d", models.ErrPreconditionViolated, int(r))
	}

	ev := s.PendingEvent
	impact := ev.Branch(r)
	s.ApplyImpact(impact)
	s.PendingEvent = nil
	s.Year++

	e.logger.Debug("event resolved",
		"event", ev.Description,
		"response", r.String(),
		"year", s.Year,
		"sustainability", s.Sustainability,
		"happiness", s.Happiness,
		"budget", s.Budget,
	)

	return impact, nil
}
