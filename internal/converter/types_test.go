package converter

import (
	"testing"

	"github.com/napolitain/citysim/internal/models"
)

func TestClampPercent(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-15, 0},
		{0, 0},
		{62, 62},
		{100, 100},
		{320, 100},
	}
	for _, tc := range tests {
		if got := ClampPercent(tc.in); got != tc.want {
			t.Errorf("ClampPercent(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "$0"},
		{800_000, "$800,000"},
		{10_000_000, "$10,000,000"},
		{-13_000_000, "-$13,000,000"},
	}
	for _, tc := range tests {
		if got := FormatMoney(tc.in); got != tc.want {
			t.Errorf("FormatMoney(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestToStatsView(t *testing.T) {
	settings := models.DefaultSettings()
	s := &models.CityState{Year: 3, Sustainability: 120, Happiness: -4, Budget: 2_500_000}

	v := ToStatsView(s, settings)

	if v.YearLabel != "Year: 3/10" {
		t.Errorf("YearLabel: got %q", v.YearLabel)
	}
	if v.Sustainability != 100 || v.SustainabilityRatio != 1 {
		t.Errorf("Sustainability: got %d (%.2f), want clamped 100", v.Sustainability, v.SustainabilityRatio)
	}
	if v.Happiness != 0 || v.HappinessRatio != 0 {
		t.Errorf("Happiness: got %d (%.2f), want clamped 0", v.Happiness, v.HappinessRatio)
	}
	if v.BudgetRatio != 0.5 {
		t.Errorf("BudgetRatio: got %.2f, want 0.5", v.BudgetRatio)
	}
	if v.RawSustainability != 120 || v.RawHappiness != -4 {
		t.Errorf("Raw values must be kept: got %d/%d", v.RawSustainability, v.RawHappiness)
	}
	if s.Sustainability != 120 {
		t.Error("Conversion must not clamp the stored state")
	}
}

func TestBudgetRatioBounds(t *testing.T) {
	if r := Ratio(10_000_000, 5_000_000); r != 1 {
		t.Errorf("Over reference: got %.2f, want 1", r)
	}
	if r := Ratio(-1, 5_000_000); r != 0 {
		t.Errorf("Negative budget: got %.2f, want 0", r)
	}
	if r := Ratio(100, 0); r != 0 {
		t.Errorf("Zero reference: got %.2f, want 0", r)
	}
}

func TestYearLabelHoldsAtHorizon(t *testing.T) {
	if got := YearLabel(11, 10); got != "Year: 10/10" {
		t.Errorf("got %q", got)
	}
}
