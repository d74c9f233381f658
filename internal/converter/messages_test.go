package converter

import (
	"strings"
	"testing"

	"github.com/napolitain/citysim/internal/models"
)

func TestImpactLine(t *testing.T) {
	got := ImpactLine(models.Impact{SustainabilityDelta: 2, HappinessDelta: -3, Cost: 800_000})
	want := "Sustainability +2 | Happiness -3 | Cost $800,000"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestOptionLine(t *testing.T) {
	got := OptionLine(models.PolicyOption{Label: "Expand bike lanes", Cost: 500_000, SustainabilityDelta: 5, HappinessDelta: 3})
	want := "Expand bike lanes ($500,000, sustainability +5, happiness +3)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestHistoryRows(t *testing.T) {
	history := []models.TurnRecord{
		{Year: 1, Transport: "Bike", Energy: "Solar", Waste: "Compost", GreenSpace: "Forest"},
		{Year: 2, Transport: "Bus", Energy: "Wind", Waste: "Ban", GreenSpace: "Roof"},
	}

	rows := HistoryRows(history)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if strings.Join(rows[1], ",") != "2,Bus,Wind,Ban,Roof" {
		t.Errorf("Row 2: got %v", rows[1])
	}
	if len(HistoryHeader()) != len(rows[0]) {
		t.Errorf("Header has %d columns, rows have %d", len(HistoryHeader()), len(rows[0]))
	}
}

func TestToFinalReport(t *testing.T) {
	s := &models.CityState{
		Year:           11,
		Sustainability: 73,
		Happiness:      59,
		Budget:         -200_000,
		History:        make([]models.TurnRecord, 10),
	}

	r := ToFinalReport(s)
	if r.YearsServed != 10 {
		t.Errorf("YearsServed: got %d", r.YearsServed)
	}
	if r.Sustainability != "73/100" || r.Happiness != "59/100" {
		t.Errorf("Stats: got %s / %s", r.Sustainability, r.Happiness)
	}
	if r.Budget != "-$200,000" {
		t.Errorf("Budget: got %s", r.Budget)
	}
	if !strings.Contains(r.Message, "10 years") {
		t.Errorf("Message: got %q", r.Message)
	}
}

func TestResponseMessage(t *testing.T) {
	if ResponseMessage(models.Respond) == ResponseMessage(models.Ignore) {
		t.Error("Respond and ignore should read differently")
	}
}
