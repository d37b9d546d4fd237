// Package picker implements the interactive session picker: a bubbletea
// model over a fixed session list that runs until it records exactly one
// Action for the caller to execute.
package picker

import (
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the root bubbletea model: the session list, a cursor, and an
// optional in-progress new-session name.
type Model struct {
	// Dimensions
	width  int
	height int

	// Session list, display-form names in list-sessions order.
	sessions []string
	selected int

	// Input
	mode      Mode
	nameInput textinput.Model

	// Result, set once when the picker decides.
	action Action
	done   bool
}

// New returns a Model over the given display-form session names.
func New(sessions []string) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 100

	return Model{
		sessions:  sessions,
		nameInput: ti,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Action returns the decision recorded when the picker quit.
// Meaningful only after the program has finished.
func (m Model) Action() Action {
	return m.action
}

// selectedSession returns the display-form name under the cursor, or ""
// when the list is empty.
func (m Model) selectedSession() string {
	if len(m.sessions) == 0 {
		return ""
	}
	return m.sessions[m.selected]
}

// moveUp retreats the cursor by one, wrapping to the last entry.
func (m Model) moveUp() Model {
	if len(m.sessions) == 0 {
		return m
	}
	if m.selected == 0 {
		m.selected = len(m.sessions) - 1
	} else {
		m.selected--
	}
	return m
}

// moveDown advances the cursor by one, wrapping to the first entry.
func (m Model) moveDown() Model {
	if len(m.sessions) == 0 {
		return m
	}
	m.selected = (m.selected + 1) % len(m.sessions)
	return m
}

// decide records the picker's single terminal decision and quits.
func (m Model) decide(a Action) (Model, tea.Cmd) {
	m.action = a
	m.done = true
	return m, tea.Quit
}

// nameRune reports whether r may appear in a session name.
func nameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_'
}
