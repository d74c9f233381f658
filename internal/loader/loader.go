package loader

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/napolitain/citysim/internal/models"
)

//go:embed defaults/*.json
var defaultFiles embed.FS

const (
	policiesFile = "policies.json"
	eventsFile   = "events.json"
)

// PolicyOptionJSON represents the JSON structure for a policy option
type PolicyOptionJSON struct {
	Label          string `json:"label"`
	Cost           int64  `json:"cost"`
	Sustainability int    `json:"sustainability"`
	Happiness      int    `json:"happiness"`
}

// ImpactJSON represents the JSON structure for one branch of an event
type ImpactJSON struct {
	Sustainability int   `json:"sustainability"`
	Happiness      int   `json:"happiness"`
	Cost           int64 `json:"cost"`
}

// EventJSON represents the JSON structure for a random event
type EventJSON struct {
	Description string     `json:"description"`
	Type        string     `json:"type"`
	Yes         ImpactJSON `json:"yes"`
	No          ImpactJSON `json:"no"`
}

// DefaultCatalog returns the built-in policy and event tables
func DefaultCatalog() (*models.Catalog, error) {
	sub, err := fs.Sub(defaultFiles, "defaults")
	if err != nil {
		return nil, err
	}
	return loadFS(sub)
}

// MustDefaultCatalog is DefaultCatalog for callers that treat a broken build as fatal
func MustDefaultCatalog() *models.Catalog {
	c, err := DefaultCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// LoadCatalog loads policies.json and events.json from a data directory
func LoadCatalog(dataDir string) (*models.Catalog, error) {
	if _, err := os.Stat(filepath.Join(dataDir, policiesFile)); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", policiesFile, err)
	}
	return loadFS(os.DirFS(dataDir))
}

func loadFS(fsys fs.FS) (*models.Catalog, error) {
	catalog := models.NewCatalog()

	if err := loadPolicies(fsys, catalog); err != nil {
		return nil, err
	}
	if err := loadEvents(fsys, catalog); err != nil {
		return nil, err
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}

func loadPolicies(fsys fs.FS, catalog *models.Catalog) error {
	data, err := fs.ReadFile(fsys, policiesFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", policiesFile, err)
	}

	var raw map[string][]PolicyOptionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse %s: %w", policiesFile, err)
	}

	known := make(map[models.Category]bool)
	for _, cat := range models.AllCategories() {
		known[cat] = true
	}

	for name := range raw {
		if !known[models.Category(name)] {
			return fmt.Errorf("%w: unknown policy category %q in %s", models.ErrInvalidCatalog, name, policiesFile)
		}
	}

	// Walk categories in fixed order so tables come out the same on every load
	for _, cat := range models.AllCategories() {
		for _, o := range raw[string(cat)] {
			catalog.AddOption(cat, models.PolicyOption{
				Label:               o.Label,
				Cost:                o.Cost,
				SustainabilityDelta: o.Sustainability,
				HappinessDelta:      o.Happiness,
			})
		}
	}

	return nil
}

func loadEvents(fsys fs.FS, catalog *models.Catalog) error {
	data, err := fs.ReadFile(fsys, eventsFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", eventsFile, err)
	}

	var raw []EventJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse %s: %w", eventsFile, err)
	}

	for _, e := range raw {
		severity, err := models.ParseSeverity(e.Type)
		if err != nil {
			return fmt.Errorf("%w: event %q: %v", models.ErrInvalidCatalog, e.Description, err)
		}
		catalog.Events = append(catalog.Events, models.RandomEvent{
			Description: e.Description,
			Severity:    severity,
			OnRespond:   toImpact(e.Yes),
			OnIgnore:    toImpact(e.No),
		})
	}

	return nil
}

func toImpact(i ImpactJSON) models.Impact {
	return models.Impact{
		SustainabilityDelta: i.Sustainability,
		HappinessDelta:      i.Happiness,
		Cost:                i.Cost,
	}
}
