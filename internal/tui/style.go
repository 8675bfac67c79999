package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	tipStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	fileStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func init() {
	// Respect NO_COLOR and non-TTY output
	lipgloss.SetColorProfile(termenv.ColorProfile())
}
