package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/napolitain/citysim/internal/models"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	headingStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	barFull       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	barEmpty      = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
	eventBox      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

const barWidth = 30

func severityColor(s models.Severity) lipgloss.Color {
	switch s {
	case models.SeveritySuccess:
		return lipgloss.Color("10")
	case models.SeverityWarning:
		return lipgloss.Color("11")
	case models.SeverityError:
		return lipgloss.Color("9")
	default:
		return lipgloss.Color("12")
	}
}

// progressBar renders ratio in [0,1] as a fixed-width bar
func progressBar(ratio float64) string {
	filled := int(ratio*barWidth + 0.5)
	filled = max(0, min(filled, barWidth))
	return barFull.Render(strings.Repeat("█", filled)) + barEmpty.Render(strings.Repeat("░", barWidth-filled))
}
