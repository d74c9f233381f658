package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/citysim/internal/converter"
	"github.com/napolitain/citysim/internal/engine"
	"github.com/napolitain/citysim/internal/models"
)

type simulateOptions struct {
	choices  map[models.Category]*string
	response string
}

func newSimulateCmd() *cobra.Command {
	opts := &simulateOptions{choices: make(map[models.Category]*string)}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play every year with fixed choices and print the outcome",
		Long: `Runs a whole playthrough unattended: the same policy is chosen in every
category each year and every event gets the same response. Options left
empty default to the first option of their category.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd.OutOrStdout(), opts)
		},
	}

	for _, cat := range models.AllCategories() {
		opts.choices[cat] = new(string)
		cmd.Flags().StringVar(opts.choices[cat], flagName(cat), "", fmt.Sprintf("%s option label", cat.Title()))
	}
	cmd.Flags().StringVarP(&opts.response, "response", "r", "respond", "Response to every event: respond or ignore")

	return cmd
}

func flagName(c models.Category) string {
	if c == models.GreenSpace {
		return "green-space"
	}
	return string(c)
}

func runSimulate(w io.Writer, opts *simulateOptions) error {
	game, err := newGame()
	if err != nil {
		return err
	}

	response, err := models.ParseResponse(opts.response)
	if err != nil {
		return err
	}

	sel := game.Engine().Catalog().DefaultSelections()
	for cat, label := range opts.choices {
		if *label != "" {
			sel.Set(cat, *label)
		}
	}

	if !quiet {
		printBanner(w)
	}

	turns, err := game.PlayOut(engine.FixedStrategy{Selections: sel, Response: response})
	if err != nil {
		return err
	}

	if !quiet {
		printTurns(w, turns)
	}
	printReport(w, game.State())
	return nil
}

func printBanner(w io.Writer) {
	titleColor := color.New(color.FgCyan, color.Bold)
	titleColor.Fprintln(w, "\n╭───────────────────────────────╮")
	titleColor.Fprintln(w, "│  🌱 Sustainable City Simulator │")
	titleColor.Fprintln(w, "╰───────────────────────────────╯")
	fmt.Fprintln(w)
}

func severityColor(s models.Severity) *color.Color {
	switch s {
	case models.SeveritySuccess:
		return color.New(color.FgGreen)
	case models.SeverityWarning:
		return color.New(color.FgYellow)
	case models.SeverityError:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgBlue)
	}
}

func printTurns(w io.Writer, turns []engine.Turn) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Year", "Transport", "Energy", "Waste", "Green Space", "Event", "Response", "Sustainability", "Happiness", "Budget"}),
	)

	for _, t := range turns {
		row := []string{
			fmt.Sprintf("%d", t.Record.Year),
			t.Record.Transport,
			t.Record.Energy,
			t.Record.Waste,
			t.Record.GreenSpace,
			severityColor(t.Event.Severity).Sprint(t.Event.Description),
			t.Response.String(),
			fmt.Sprintf("%d", t.After.Sustainability),
			fmt.Sprintf("%d", t.After.Happiness),
			converter.FormatMoney(t.After.Budget),
		}
		_ = table.Append(row)
	}

	_ = table.Render()
}

func printReport(w io.Writer, state *models.CityState) {
	successColor := color.New(color.FgGreen, color.Bold)
	errorColor := color.New(color.FgRed, color.Bold)

	report := converter.ToFinalReport(state)

	fmt.Fprintln(w)
	successColor.Fprintln(w, report.Message)
	fmt.Fprintf(w, "   🌿 Final Sustainability Score: %s\n", report.Sustainability)
	fmt.Fprintf(w, "   😊 Final Happiness: %s\n", report.Happiness)
	if state.Budget < 0 {
		errorColor.Fprintf(w, "   💰 Final Budget: %s\n", report.Budget)
	} else {
		fmt.Fprintf(w, "   💰 Final Budget: %s\n", report.Budget)
	}
}
