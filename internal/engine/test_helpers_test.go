package engine

import (
	"testing"

	"github.com/napolitain/citysim/internal/loader"
	"github.com/napolitain/citysim/internal/models"
)

// fixedSource always samples the same event index
type fixedSource int

func (f fixedSource) IntN(n int) int { return int(f) % n }

// sequenceSource samples indices in order, wrapping around
type sequenceSource struct {
	seq []int
	pos int
}

func (s *sequenceSource) IntN(n int) int {
	if len(s.seq) == 0 {
		return 0
	}
	v := s.seq[s.pos%len(s.seq)] % n
	s.pos++
	return v
}

// newTestEngine creates an engine over the default catalog that always draws event idx
func newTestEngine(t testing.TB, idx int) *Engine {
	t.Helper()

	catalog, err := loader.DefaultCatalog()
	if err != nil {
		t.Fatalf("Failed to load default catalog: %v", err)
	}
	e, err := New(catalog, models.DefaultSettings(), WithRand(fixedSource(idx)))
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	return e
}

var greenSelections = models.Selections{
	Transport:  "Expand bike lanes",
	Energy:     "Install solar panels",
	Waste:      "Start compost program",
	GreenSpace: "Plant urban forests",
}
