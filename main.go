package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"zpick/internal/dispatch"
	"zpick/internal/picker"
	"zpick/internal/zellij"
)

const usage = `zpick — interactive zellij session picker

Usage:
  zpick    Launch the picker (takes no flags or arguments)

Key bindings:
  j / k / ↑ / ↓    Navigate sessions
  enter            Attach to the selected session
  n                Create a new named session
  d                Kill and delete the selected session
  q / esc          Quit
`

func main() {
	if len(os.Args) > 1 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "zpick must be run interactively from a terminal")
		os.Exit(1)
	}

	client := &zellij.Client{}
	sessions := client.ListSessions()

	action, ok := fastPath(sessions)
	if !ok {
		p := tea.NewProgram(picker.New(sessions), tea.WithAltScreen())
		final, err := p.Run()
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		action = final.(picker.Model).Action()
	}

	os.Exit(dispatch.Run(action, client, os.Stdout, os.Stderr))
}

// fastPath returns the decision to take without running the TUI, and
// whether one applies. With no sessions there is nothing to navigate, so
// the picker degrades to starting a fresh unnamed session.
func fastPath(sessions []string) (picker.Action, bool) {
	if len(sessions) == 0 {
		return picker.Action{Kind: picker.ActionCreate}, true
	}
	return picker.Action{}, false
}
