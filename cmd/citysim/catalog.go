package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/napolitain/citysim/internal/converter"
	"github.com/napolitain/citysim/internal/models"
)

func printCatalog(w io.Writer, catalog *models.Catalog) {
	infoColor := color.New(color.FgYellow)

	infoColor.Fprintln(w, "📋 Policy options:")
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Category", "Option", "Cost", "Sustainability", "Happiness"}),
	)
	for _, cat := range models.AllCategories() {
		for _, opt := range catalog.Options(cat) {
			_ = table.Append([]string{
				cat.Title(),
				opt.Label,
				converter.FormatMoney(opt.Cost),
				converter.FormatDelta(opt.SustainabilityDelta),
				converter.FormatDelta(opt.HappinessDelta),
			})
		}
	}
	_ = table.Render()

	fmt.Fprintln(w)
	infoColor.Fprintln(w, "🔔 Random events:")
	events := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Event", "Type", "Respond", "Ignore"}),
	)
	for _, ev := range catalog.Events {
		_ = events.Append([]string{
			ev.Description,
			ev.Severity.String(),
			converter.ImpactLine(ev.OnRespond),
			converter.ImpactLine(ev.OnIgnore),
		})
	}
	_ = events.Render()
}
