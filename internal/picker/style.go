package picker

import "github.com/charmbracelet/lipgloss"

var (
	numberStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	labelStyle  = lipgloss.NewStyle()
)
