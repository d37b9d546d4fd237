package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// press feeds one message through Update and returns the concrete model.
func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// typeString feeds each rune of s as its own key press.
func typeString(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = press(t, m, keyRune(r))
	}
	return m
}

func TestNavigationKeys(t *testing.T) {
	m := New([]string{"alpha", "beta", "gamma"})

	m, _ = press(t, m, keyRune('j'))
	if m.selected != 1 {
		t.Fatalf("after j: selected = %d, want 1", m.selected)
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.selected != 0 {
		t.Fatalf("after wrapping down: selected = %d, want 0", m.selected)
	}
	m, _ = press(t, m, keyRune('k'))
	if m.selected != 2 {
		t.Fatalf("after k from top: selected = %d, want 2", m.selected)
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.selected != 1 {
		t.Fatalf("after up: selected = %d, want 1", m.selected)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{keyRune('q'), {Type: tea.KeyEsc}} {
		m := New([]string{"alpha"})
		m, cmd := press(t, m, msg)
		if !m.done || m.action.Kind != ActionQuit {
			t.Errorf("%s: expected quit decision, got %+v", msg, m.action)
		}
		if cmd == nil {
			t.Errorf("%s: expected tea.Quit command", msg)
		} else if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: command did not produce QuitMsg", msg)
		}
	}
}

func TestAttachDecision(t *testing.T) {
	m := New([]string{"alpha", "beta"})
	m, _ = press(t, m, keyRune('j'))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.action.Kind != ActionAttach || m.action.Name != "beta" {
		t.Fatalf("action = %+v, want Attach(beta)", m.action)
	}
	if cmd == nil {
		t.Fatal("expected tea.Quit command")
	}
}

func TestDeleteDecision(t *testing.T) {
	m := New([]string{"alpha", "beta"})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := press(t, m, keyRune('d'))

	if m.action.Kind != ActionDelete || m.action.Name != "beta" {
		t.Fatalf("action = %+v, want Delete(beta)", m.action)
	}
	if cmd == nil {
		t.Fatal("expected tea.Quit command")
	}
}

func TestEnterAndDeleteIgnoredOnEmptyList(t *testing.T) {
	m := New(nil)
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.done || cmd != nil {
		t.Fatal("enter on empty list should not decide")
	}
	m, cmd = press(t, m, keyRune('d'))
	if m.done || cmd != nil {
		t.Fatal("d on empty list should not decide")
	}
}

func TestNewSessionFlow(t *testing.T) {
	m := New([]string{"alpha"})

	m, _ = press(t, m, keyRune('n'))
	if m.mode != ModeNewSession {
		t.Fatal("n did not enter new-session mode")
	}

	m = typeString(t, m, "work-1")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.action.Kind != ActionCreate || m.action.Name != "work-1" {
		t.Fatalf("action = %+v, want Create(work-1)", m.action)
	}
	if cmd == nil {
		t.Fatal("expected tea.Quit command")
	}
}

func TestNewSessionRejectsUnsafeRunes(t *testing.T) {
	m := New([]string{"alpha"})
	m, _ = press(t, m, keyRune('n'))

	// The '!' and the space must be silently dropped.
	m, _ = press(t, m, keyRune('x'))
	m, _ = press(t, m, keyRune('!'))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = press(t, m, keyRune('y'))

	if got := m.nameInput.Value(); got != "xy" {
		t.Fatalf("buffer = %q, want %q", got, "xy")
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.action.Kind != ActionCreate || m.action.Name != "xy" {
		t.Fatalf("action = %+v, want Create(xy)", m.action)
	}
}

func TestNewSessionBackspace(t *testing.T) {
	m := New([]string{"alpha"})
	m, _ = press(t, m, keyRune('n'))
	m = typeString(t, m, "ab")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.nameInput.Value(); got != "a" {
		t.Fatalf("buffer = %q, want %q", got, "a")
	}
	// Backspacing past empty is a no-op.
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.nameInput.Value(); got != "" {
		t.Fatalf("buffer = %q, want empty", got)
	}
}

func TestNewSessionEmptyConfirmCancels(t *testing.T) {
	m := New([]string{"alpha"})
	m, _ = press(t, m, keyRune('n'))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.mode != ModeNavigate {
		t.Fatal("empty confirm did not return to navigation")
	}
	if m.done || cmd != nil {
		t.Fatal("empty confirm must not decide")
	}
}

func TestNewSessionEscCancels(t *testing.T) {
	m := New([]string{"alpha"})
	m, _ = press(t, m, keyRune('n'))
	m = typeString(t, m, "scratch")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.mode != ModeNavigate || m.done {
		t.Fatal("esc did not cancel entry mode")
	}
	if got := m.nameInput.Value(); got != "" {
		t.Fatalf("buffer not discarded, still %q", got)
	}
}

func TestEntryModeAbsorbsNavigationKeys(t *testing.T) {
	m := New([]string{"alpha", "beta"})
	m, _ = press(t, m, keyRune('n'))

	// q, j, k and d are ordinary name characters while editing.
	m = typeString(t, m, "qjkd")

	if m.done {
		t.Fatal("entry mode produced a decision from navigation keys")
	}
	if m.selected != 0 {
		t.Fatalf("entry mode moved the cursor to %d", m.selected)
	}
	if got := m.nameInput.Value(); got != "qjkd" {
		t.Fatalf("buffer = %q, want %q", got, "qjkd")
	}
}
