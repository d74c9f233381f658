// Package tui is an interactive terminal front end for a playthrough
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/napolitain/citysim/internal/converter"
	"github.com/napolitain/citysim/internal/engine"
	"github.com/napolitain/citysim/internal/models"
)

// Model is the bubbletea model for one game
type Model struct {
	game *engine.Game

	// cursor is the focused category; picks holds the option index per category
	cursor int
	picks  []int

	notice  string
	err     error
	quitted bool
}

// New creates a model driving g
func New(g *engine.Game) Model {
	return Model{
		game:  g,
		picks: make([]int, len(models.AllCategories())),
	}
}

// Run starts the interactive program and blocks until the player quits
func Run(g *engine.Game) error {
	p := tea.NewProgram(New(g), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Selections returns the currently highlighted option of every category
func (m Model) Selections() models.Selections {
	catalog := m.game.Engine().Catalog()
	var sel models.Selections
	for i, cat := range models.AllCategories() {
		opts := catalog.Options(cat)
		sel.Set(cat, opts[m.picks[i]].Label)
	}
	return sel
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q":
		m.quitted = true
		return m, tea.Quit
	}

	switch m.game.Phase() {
	case engine.PhaseOpen:
		m = m.updateChoosing(key)
	case engine.PhaseAwaitingResponse:
		m = m.updateEvent(key)
	case engine.PhaseCompleted:
		if key.String() == "r" {
			m.game.Reset()
			m.picks = make([]int, len(models.AllCategories()))
			m.cursor = 0
			m.notice = ""
			m.err = nil
		}
	}
	return m, nil
}

func (m Model) updateChoosing(key tea.KeyMsg) Model {
	cats := models.AllCategories()
	catalog := m.game.Engine().Catalog()
	n := len(catalog.Options(cats[m.cursor]))

	switch key.String() {
	case "up", "k":
		m.cursor = (m.cursor + len(cats) - 1) % len(cats)
	case "down", "j", "tab":
		m.cursor = (m.cursor + 1) % len(cats)
	case "left", "h":
		m.picks[m.cursor] = (m.picks[m.cursor] + n - 1) % n
	case "right", "l":
		m.picks[m.cursor] = (m.picks[m.cursor] + 1) % n
	case "enter", " ":
		if _, err := m.game.Apply(m.Selections()); err != nil {
			m.err = err
			return m
		}
		m.notice = ""
		m.err = nil
	}
	return m
}

func (m Model) updateEvent(key tea.KeyMsg) Model {
	var r models.Response
	switch key.String() {
	case "y":
		r = models.Respond
	case "n", "i":
		r = models.Ignore
	default:
		return m
	}

	impact, err := m.game.Resolve(r)
	if err != nil {
		m.err = err
		return m
	}
	m.notice = converter.ResponseMessage(r) + " " + converter.ImpactLine(impact)
	m.err = nil
	return m
}

func (m Model) View() string {
	if m.quitted {
		return ""
	}

	state := m.game.State()
	settings := m.game.Engine().Settings()
	view := converter.ToStatsView(state, settings)

	var b strings.Builder
	b.WriteString(titleStyle.Render("🌱 Sustainable City Simulator"))
	b.WriteString("\n\n")

	b.WriteString(headingStyle.Render("📆 " + view.YearLabel))
	b.WriteString("\n")
	fmt.Fprintf(&b, "🌿 Sustainability %s %d/100\n", progressBar(view.SustainabilityRatio), view.RawSustainability)
	fmt.Fprintf(&b, "😊 Happiness      %s %d/100\n", progressBar(view.HappinessRatio), view.RawHappiness)
	fmt.Fprintf(&b, "💰 Budget         %s %s\n\n", progressBar(view.BudgetRatio), view.Budget)

	switch m.game.Phase() {
	case engine.PhaseOpen:
		m.viewChoices(&b)
	case engine.PhaseAwaitingResponse:
		m.viewEvent(&b, state.PendingEvent)
	case engine.PhaseCompleted:
		m.viewReport(&b, state)
	}

	if m.notice != "" {
		b.WriteString("\n" + selectedStyle.Render(m.notice) + "\n")
	}
	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render(m.err.Error()) + "\n")
	}

	if len(state.History) > 0 {
		b.WriteString("\n" + headingStyle.Render("📜 History") + "\n")
		for _, row := range converter.HistoryRows(state.History) {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  %s: %s", row[0], strings.Join(row[1:], " · "))) + "\n")
		}
	}

	return b.String()
}

func (m Model) viewChoices(b *strings.Builder) {
	catalog := m.game.Engine().Catalog()
	for i, cat := range models.AllCategories() {
		marker := "  "
		title := headingStyle.Render(cat.Title())
		if i == m.cursor {
			marker = cursorStyle.Render("▶ ")
		}
		b.WriteString(marker + title + "\n")

		for j, opt := range catalog.Options(cat) {
			line := "    " + converter.OptionLine(opt)
			if j == m.picks[i] {
				line = selectedStyle.Render("  ● " + converter.OptionLine(opt))
			}
			b.WriteString(line + "\n")
		}
	}
	b.WriteString("\n" + dimStyle.Render("↑/↓ category · ←/→ option · enter next year · q quit") + "\n")
}

func (m Model) viewEvent(b *strings.Builder, ev *models.RandomEvent) {
	if ev == nil {
		return
	}
	box := eventBox.BorderForeground(severityColor(ev.Severity))
	body := fmt.Sprintf("🔔 %s\n\n✅ Respond: %s\n❌ Ignore:  %s",
		ev.Description, converter.ImpactLine(ev.OnRespond), converter.ImpactLine(ev.OnIgnore))
	b.WriteString(box.Render(body))
	b.WriteString("\n" + dimStyle.Render("y respond · n ignore · q quit") + "\n")
}

func (m Model) viewReport(b *strings.Builder, state *models.CityState) {
	report := converter.ToFinalReport(state)
	b.WriteString(titleStyle.Render(report.Message) + "\n")
	fmt.Fprintf(b, "Final Sustainability Score: %s\n", report.Sustainability)
	fmt.Fprintf(b, "Final Happiness: %s\n", report.Happiness)
	fmt.Fprintf(b, "Final Budget: %s\n", report.Budget)
	b.WriteString("\n" + dimStyle.Render("r play again · q quit") + "\n")
}
