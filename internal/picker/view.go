package picker

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) View() string {
	if m.width == 0 {
		return "initialising..."
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	listHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if listHeight < 0 {
		listHeight = 0
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.renderList(listHeight),
		footer,
	)
}

func (m Model) renderHeader() string {
	title := styleTitle.Render("  zpick") +
		styleSubtitle.Render("  —  pick or create a session")
	return styleHeader.Width(m.width).Render(title)
}

// renderList draws the session list into exactly height rows, scrolling
// so the cursor stays visible. While a new session name is being typed
// the list is dimmed and the cursor highlight is dropped, since focus
// has moved to the footer input.
func (m Model) renderList(height int) string {
	rows := make([]string, 0, height)

	start := 0
	if m.selected >= height && height > 0 {
		start = m.selected - height + 1
	}
	end := start + height
	if end > len(m.sessions) {
		end = len(m.sessions)
	}

	for i := start; i < end; i++ {
		s := m.sessions[i]
		var row string
		switch {
		case m.mode == ModeNewSession:
			row = styleItemDimmed.Render("  " + s)
		case i == m.selected:
			row = styleItemSelected.Width(m.width).Render("› " + s)
		default:
			row = styleItem.Render("  " + s)
		}
		rows = append(rows, ansi.Truncate(row, m.width, ""))
	}

	for len(rows) < height {
		rows = append(rows, "")
	}

	return strings.Join(rows, "\n")
}

func (m Model) renderFooter() string {
	if m.mode == ModeNewSession {
		prompt := stylePromptLabel.Render("  new session name: ") +
			styleInputText.Render(m.nameInput.Value()) +
			styleCursor.Render("▎")
		return styleFooterInput.Width(m.width).Render(ansi.Truncate(prompt, m.width, ""))
	}

	legend := strings.Join([]string{
		styleKey.Render("↑/↓") + " navigate",
		styleKey.Render("enter") + " attach",
		styleKey.Render("n") + " new session",
		styleKey.Render("d") + " kill and delete session",
		styleKey.Render("q") + " quit",
	}, "   ")
	return styleFooter.Width(m.width).Render(ansi.Truncate("  "+legend, m.width, ""))
}
