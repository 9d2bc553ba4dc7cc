package viz

import "github.com/charmbracelet/lipgloss"

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))

	// Header is exported for the CLI's section titles.
	Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	// Label styles a metric name in CLI output.
	Label = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	// Value styles a metric value in CLI output.
	Value = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
)
