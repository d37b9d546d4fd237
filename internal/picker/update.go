package picker

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// A resize needs no handling of its own; the next View call renders
	// into the new dimensions.
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.mode == ModeNewSession {
			return m.updateNewSession(msg)
		}
		return m.updateNavigate(msg)
	}

	return m, nil
}

// updateNavigate handles keys while the cursor moves through the list.
func (m Model) updateNavigate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m.decide(Action{Kind: ActionQuit})

	case key.Matches(msg, keys.Up):
		return m.moveUp(), nil

	case key.Matches(msg, keys.Down):
		return m.moveDown(), nil

	case key.Matches(msg, keys.Delete):
		if name := m.selectedSession(); name != "" {
			return m.decide(Action{Kind: ActionDelete, Name: name})
		}

	case key.Matches(msg, keys.Attach):
		if name := m.selectedSession(); name != "" {
			return m.decide(Action{Kind: ActionAttach, Name: name})
		}

	case key.Matches(msg, keys.New):
		m.mode = ModeNewSession
		m.nameInput.Reset()
		m.nameInput.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

// updateNewSession handles keys while collecting a new session name.
// The input absorbs all character input until enter or esc; nothing in
// this mode navigates or quits.
func (m Model) updateNewSession(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNavigate
		m.nameInput.Blur()
		m.nameInput.Reset()
		return m, nil

	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		m.nameInput.Blur()
		m.nameInput.Reset()
		if name == "" {
			// An empty name is a cancellation, not an unnamed session.
			m.mode = ModeNavigate
			return m, nil
		}
		return m.decide(Action{Kind: ActionCreate, Name: name})
	}

	// Only session-name-safe characters reach the input; everything else
	// is dropped so the buffer never needs sanitising on confirm.
	if msg.Type == tea.KeySpace {
		return m, nil
	}
	if msg.Type == tea.KeyRunes {
		allowed := msg.Runes[:0:0]
		for _, r := range msg.Runes {
			if nameRune(r) {
				allowed = append(allowed, r)
			}
		}
		if len(allowed) == 0 {
			return m, nil
		}
		msg.Runes = allowed
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}
