// Package converter turns engine state into display-ready values
package converter

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/napolitain/citysim/internal/models"
)

// StatsView is the display form of a CityState. Percentages are clamped to
// [0,100]; the raw values are kept alongside for text.
type StatsView struct {
	YearLabel      string
	Sustainability int
	Happiness      int
	// Ratios are in [0,1] for progress bars
	SustainabilityRatio float64
	HappinessRatio      float64
	BudgetRatio         float64
	Budget              string
	RawSustainability   int
	RawHappiness        int
	RawBudget           int64
}

// ClampPercent clamps a stat to [0,100] for display
func ClampPercent(v int) int {
	return max(0, min(v, 100))
}

// Ratio scales v against ref and clamps to [0,1]
func Ratio(v, ref int64) float64 {
	if ref <= 0 {
		return 0
	}
	return max(0, min(float64(v)/float64(ref), 1))
}

// FormatMoney formats an amount as dollars with thousands separators
func FormatMoney(amount int64) string {
	if amount < 0 {
		return "-$" + humanize.Comma(-amount)
	}
	return "$" + humanize.Comma(amount)
}

// FormatDelta formats a stat change with an explicit sign
func FormatDelta(d int) string {
	return fmt.Sprintf("%+d", d)
}

// YearLabel returns "Year: N/H", holding at the horizon once the game has ended
func YearLabel(year, horizon int) string {
	return fmt.Sprintf("Year: %d/%d", min(year, horizon), horizon)
}

// ToStatsView converts a state to its display form
func ToStatsView(s *models.CityState, settings models.Settings) StatsView {
	sus := ClampPercent(s.Sustainability)
	hap := ClampPercent(s.Happiness)
	return StatsView{
		YearLabel:           YearLabel(s.Year, settings.Horizon),
		Sustainability:      sus,
		Happiness:           hap,
		SustainabilityRatio: float64(sus) / 100,
		HappinessRatio:      float64(hap) / 100,
		BudgetRatio:         Ratio(s.Budget, settings.BudgetReference),
		Budget:              FormatMoney(s.Budget),
		RawSustainability:   s.Sustainability,
		RawHappiness:        s.Happiness,
		RawBudget:           s.Budget,
	}
}
