package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Deck columns
	ColumnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(16)
	SelectedColumnStyle = ColumnStyle.
				BorderForeground(lipgloss.Color("170"))

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	// Cards
	CardStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	LiftedCardStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Faint(true)
	EmptyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// Event log
	LogStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)
	SandboxStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)
