package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/napolitain/citysim/internal/models"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

const minimalPolicies = `{
  "transport": [{"label": "Walk", "cost": 0, "sustainability": 1, "happiness": 1}],
  "energy": [{"label": "Sun", "cost": 10, "sustainability": 2, "happiness": 0}],
  "waste": [{"label": "Sort", "cost": 5, "sustainability": 1, "happiness": -1}],
  "green_space": [{"label": "Trees", "cost": 20, "sustainability": 3, "happiness": 2}]
}`

const minimalEvents = `[
  {"description": "Storm", "type": "error",
   "yes": {"sustainability": 1, "happiness": 1, "cost": 7},
   "no": {"sustainability": -2, "happiness": -2, "cost": 0}}
]`

func TestDefaultCatalog(t *testing.T) {
	catalog, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("Failed to load default catalog: %v", err)
	}

	for _, cat := range models.AllCategories() {
		if got := len(catalog.Options(cat)); got != 3 {
			t.Errorf("%s: expected 3 options, got %d", cat, got)
		}
	}

	if len(catalog.Events) != 5 {
		t.Fatalf("Expected 5 events, got %d", len(catalog.Events))
	}

	bike, ok := catalog.Lookup(models.Transport, "Expand bike lanes")
	if !ok {
		t.Fatal("Expand bike lanes not found")
	}
	if bike.Cost != 500_000 || bike.SustainabilityDelta != 5 || bike.HappinessDelta != 3 {
		t.Errorf("Expand bike lanes: got %+v", bike)
	}

	wildfire := catalog.Events[0]
	if wildfire.Severity != models.SeverityWarning {
		t.Errorf("Wildfire severity: got %s, want warning", wildfire.Severity)
	}
	if wildfire.OnIgnore != (models.Impact{SustainabilityDelta: -4, HappinessDelta: -3}) {
		t.Errorf("Wildfire ignore branch: got %+v", wildfire.OnIgnore)
	}
	if wildfire.OnRespond.Cost != 800_000 {
		t.Errorf("Wildfire respond cost: got %d, want 800000", wildfire.OnRespond.Cost)
	}
}

func TestDefaultCatalogKeepsDeclarationOrder(t *testing.T) {
	catalog := MustDefaultCatalog()

	want := []string{"Install solar panels", "Invest in wind energy", "Keep coal plants running"}
	got := catalog.Options(models.Energy)
	for i, label := range want {
		if got[i].Label != label {
			t.Errorf("Energy option %d: got %q, want %q", i, got[i].Label, label)
		}
	}

	if catalog.Events[4].Severity != models.SeverityError {
		t.Errorf("Sea level event should be error severity, got %s", catalog.Events[4].Severity)
	}
}

func TestLoadCatalogFromDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "policies.json", minimalPolicies)
	writeFile(t, dir, "events.json", minimalEvents)

	catalog, err := LoadCatalog(dir)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}

	if opt, ok := catalog.Lookup(models.GreenSpace, "Trees"); !ok || opt.Cost != 20 {
		t.Errorf("Trees: got %+v, found=%v", opt, ok)
	}
	if len(catalog.Events) != 1 || catalog.Events[0].OnRespond.Cost != 7 {
		t.Errorf("Unexpected events: %+v", catalog.Events)
	}
}

func TestLoadCatalogErrors(t *testing.T) {
	tests := []struct {
		name     string
		policies string
		events   string
		wantErr  error
	}{
		{
			name:     "unknown category",
			policies: `{"transport": [], "housing": [{"label": "x"}]}`,
			events:   minimalEvents,
			wantErr:  models.ErrInvalidCatalog,
		},
		{
			name:     "empty category",
			policies: `{"transport": [{"label": "Walk"}], "energy": [{"label": "Sun"}], "waste": [{"label": "Sort"}]}`,
			events:   minimalEvents,
			wantErr:  models.ErrInvalidCatalog,
		},
		{
			name: "negative policy cost",
			policies: `{
  "transport": [{"label": "Walk", "cost": -1}],
  "energy": [{"label": "Sun"}], "waste": [{"label": "Sort"}], "green_space": [{"label": "Trees"}]}`,
			events:  minimalEvents,
			wantErr: models.ErrInvalidCatalog,
		},
		{
			name:     "no events",
			policies: minimalPolicies,
			events:   `[]`,
			wantErr:  models.ErrInvalidCatalog,
		},
		{
			name:     "unknown severity",
			policies: minimalPolicies,
			events:   `[{"description": "Odd", "type": "panic"}]`,
			wantErr:  models.ErrInvalidCatalog,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "policies.json", tc.policies)
			writeFile(t, dir, "events.json", tc.events)

			_, err := LoadCatalog(dir)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("got error %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestLoadCatalogMissingDir(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("Expected error for missing data directory")
	}
}
