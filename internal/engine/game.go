package engine

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/napolitain/citysim/internal/models"
)

// Game owns the state of a single playthrough. It is not safe for concurrent use;
// the presentation layer drives it one call at a time.
type Game struct {
	ID     string
	engine *Engine
	state  *models.CityState
	logger *slog.Logger
}

// NewGame starts a playthrough
func NewGame(e *Engine) *Game {
	g := &Game{engine: e}
	g.Reset()
	return g
}

// Reset discards the current playthrough and starts a new one
func (g *Game) Reset() {
	g.ID = uuid.NewString()
	g.state = g.engine.NewState()
	g.logger = g.engine.logger.With("game_id", g.ID)
	g.logger.Info("game started",
		"horizon", g.engine.Horizon(),
		"sustainability", g.state.Sustainability,
		"happiness", g.state.Happiness,
		"budget", g.state.Budget,
	)
}

// Engine returns the engine driving this game
func (g *Game) Engine() *Engine { return g.engine }

// State returns a copy of the current state
func (g *Game) State() *models.CityState {
	return g.state.Clone()
}

// Phase returns the current gate phase
func (g *Game) Phase() Phase {
	return g.engine.Phase(g.state)
}

// Complete reports whether the playthrough has ended
func (g *Game) Complete() bool {
	return g.engine.IsGameComplete(g.state)
}

// Apply submits this year's choices and returns the event to answer
func (g *Game) Apply(sel models.Selections) (models.RandomEvent, error) {
	ev, err := g.engine.ApplyChoices(g.state, sel)
	if err != nil {
		g.logger.Warn("choices rejected", "year", g.state.Year, "error", err)
		return ev, err
	}
	g.logger.Info("event drawn", "year", g.state.Year, "severity", ev.Severity.String(), "event", ev.Description)
	return ev, nil
}

// Resolve answers the pending event and closes the year
func (g *Game) Resolve(r models.Response) (models.Impact, error) {
	impact, err := g.engine.ResolveEvent(g.state, r)
	if err != nil {
		g.logger.Warn("response rejected", "year", g.state.Year, "error", err)
		return impact, err
	}
	if g.Complete() {
		g.logger.Info("game complete",
			"sustainability", g.state.Sustainability,
			"happiness", g.state.Happiness,
			"budget", g.state.Budget,
		)
	}
	return impact, nil
}

// Strategy decides choices and responses for an unattended playthrough
type Strategy interface {
	Choose(s *models.CityState) models.Selections
	Respond(s *models.CityState, ev models.RandomEvent) models.Response
}

// FixedStrategy picks the same policies and the same response every year
type FixedStrategy struct {
	Selections models.Selections
	Response   models.Response
}

// Choose returns the fixed selections
func (f FixedStrategy) Choose(*models.CityState) models.Selections { return f.Selections }

// Respond returns the fixed response
func (f FixedStrategy) Respond(*models.CityState, models.RandomEvent) models.Response {
	return f.Response
}

// Turn summarises one completed year
type Turn struct {
	Record   models.TurnRecord
	Event    models.RandomEvent
	Response models.Response
	Impact   models.Impact
	// After is the state once the year has closed
	After models.CityState
}

// PlayOut drives the game with s until it completes
func (g *Game) PlayOut(s Strategy) ([]Turn, error) {
	var turns []Turn
	for !g.Complete() {
		if g.Phase() != PhaseOpen {
			return turns, fmt.Errorf("%w: cannot play out from phase %s", models.ErrPreconditionViolated, g.Phase())
		}

		ev, err := g.Apply(s.Choose(g.State()))
		if err != nil {
			return turns, err
		}
		record := g.state.History[len(g.state.History)-1]

		resp := s.Respond(g.State(), ev)
		impact, err := g.Resolve(resp)
		if err != nil {
			return turns, err
		}

		after := g.State()
		after.History = nil
		turns = append(turns, Turn{
			Record:   record,
			Event:    ev,
			Response: resp,
			Impact:   impact,
			After:    *after,
		})
	}
	return turns, nil
}
