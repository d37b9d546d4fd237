package picker

import "github.com/charmbracelet/lipgloss"

var (
	// Colours
	colAccent  = lipgloss.Color("#06B6D4") // cyan
	colInput   = lipgloss.Color("#F59E0B") // amber
	colText    = lipgloss.Color("#E5E7EB")
	colSubtext = lipgloss.Color("#6B7280")
	colBorder  = lipgloss.Color("#374151")

	styleTitle = lipgloss.NewStyle().
			Foreground(colAccent).
			Bold(true)

	styleSubtitle = lipgloss.NewStyle().
			Foreground(colSubtext)

	styleHeader = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(colBorder)

	styleItem = lipgloss.NewStyle().
			Foreground(colText)

	styleItemSelected = lipgloss.NewStyle().
				Background(colAccent).
				Foreground(lipgloss.Color("#111827")).
				Bold(true)

	styleItemDimmed = lipgloss.NewStyle().
			Foreground(colSubtext)

	styleFooter = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(colBorder)

	styleFooterInput = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderTop(true).
				BorderForeground(colInput)

	styleKey = lipgloss.NewStyle().
			Foreground(colAccent)

	stylePromptLabel = lipgloss.NewStyle().
				Foreground(colInput).
				Bold(true)

	styleInputText = lipgloss.NewStyle().
			Foreground(colText).
			Bold(true)

	styleCursor = lipgloss.NewStyle().
			Foreground(colInput)
)
