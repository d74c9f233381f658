package converter

import (
	"fmt"

	"github.com/napolitain/citysim/internal/models"
)

// ImpactLine describes an event branch
func ImpactLine(i models.Impact) string {
	return fmt.Sprintf("Sustainability %s | Happiness %s | Cost %s",
		FormatDelta(i.SustainabilityDelta), FormatDelta(i.HappinessDelta), FormatMoney(i.Cost))
}

// OptionLine describes a policy option
func OptionLine(o models.PolicyOption) string {
	return fmt.Sprintf("%s (%s, sustainability %s, happiness %s)",
		o.Label, FormatMoney(o.Cost), FormatDelta(o.SustainabilityDelta), FormatDelta(o.HappinessDelta))
}

// ResponseMessage is shown after the mayor answers an event
func ResponseMessage(r models.Response) string {
	if r == models.Respond {
		return "You responded to the event."
	}
	return "You ignored the event."
}

// HistoryRows converts turn records to table rows: year then one column per category
func HistoryRows(history []models.TurnRecord) [][]string {
	rows := make([][]string, 0, len(history))
	for _, rec := range history {
		row := []string{fmt.Sprintf("%d", rec.Year)}
		for _, cat := range models.AllCategories() {
			row = append(row, rec.Choice(cat))
		}
		rows = append(rows, row)
	}
	return rows
}

// HistoryHeader returns the column titles matching HistoryRows
func HistoryHeader() []string {
	header := []string{"Year"}
	for _, cat := range models.AllCategories() {
		header = append(header, cat.Title())
	}
	return header
}

// FinalReport is the end-of-game summary
type FinalReport struct {
	YearsServed    int
	Sustainability string
	Happiness      string
	Budget         string
	Message        string
}

// ToFinalReport summarises a finished playthrough
func ToFinalReport(s *models.CityState) FinalReport {
	return FinalReport{
		YearsServed:    len(s.History),
		Sustainability: fmt.Sprintf("%d/100", s.Sustainability),
		Happiness:      fmt.Sprintf("%d/100", s.Happiness),
		Budget:         FormatMoney(s.Budget),
		Message: fmt.Sprintf("Game over! You completed %d years as mayor. "+
			"Thank you for playing! Your city's future depends on your choices!", len(s.History)),
	}
}
