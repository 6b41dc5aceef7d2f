package main

import (
	"fmt"

	"tickerpulse/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// consoleReporter prints per-phase progress as the batch runs.
type consoleReporter struct{}

func (consoleReporter) PhaseStarted(category domain.Category, instruments int) {
	fmt.Println(headerStyle.Render(fmt.Sprintf("Collecting %s for %d instruments", category, instruments)))
}

func (consoleReporter) Completed(category domain.Category, symbol string, err error) {
	if err != nil {
		fmt.Printf("  %s %s %s: %v\n", failStyle.Render("✗"), symbol, category, err)
		return
	}
	fmt.Printf("  %s %s %s\n", okStyle.Render("✓"), symbol, category)
}
