package report

import "github.com/charmbracelet/lipgloss"

var (
	// SuccessColor indicates passing files.
	SuccessColor = lipgloss.Color("#4ECDC4") // Teal
	// WarningColor indicates borderline files.
	WarningColor = lipgloss.Color("#FFE66D") // Yellow
	// ErrorColor indicates flagged files and errors.
	ErrorColor = lipgloss.Color("#FF6B6B") // Red
	// SubtleColor indicates less prominent text.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#95E1D3")).
			MarginBottom(1)

	// SuccessStyle formats passing lines.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats borderline lines.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats flagged lines and error entries.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats secondary detail.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)
)
