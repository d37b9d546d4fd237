// Package dispatch executes the picker's final decision against zellij.
package dispatch

import (
	"fmt"
	"io"

	"zpick/internal/picker"
	"zpick/internal/zellij"
)

// Run performs the external operation for a single picker decision and
// returns the process exit code. Attach and Create hand the terminal to
// zellij and forward the child's exit status; Delete runs kill-session
// then delete-session in sequence. Every operation is attempted exactly
// once.
func Run(action picker.Action, client zellij.ClientIface, stdout, stderr io.Writer) int {
	switch action.Kind {

	case picker.ActionAttach:
		name := zellij.Canonical(action.Name)
		code, err := client.Attach(name)
		if err != nil {
			fmt.Fprintf(stderr, "failed to attach to session %q: %v\n", name, err)
			return 1
		}
		return code

	case picker.ActionCreate:
		code, err := client.Create(action.Name)
		if err != nil {
			if action.Name == "" {
				fmt.Fprintf(stderr, "failed to create session: %v\n", err)
			} else {
				fmt.Fprintf(stderr, "failed to create session %q: %v\n", action.Name, err)
			}
			return 1
		}
		return code

	case picker.ActionDelete:
		name := zellij.Canonical(action.Name)
		fmt.Fprintf(stdout, "Killing session: %s\n", name)
		if err := client.Kill(name); err != nil {
			// A session that already died cannot be killed but can still
			// be deleted, so a kill failure does not stop the delete.
			fmt.Fprintf(stderr, "failed to kill session %q: %v\n", name, err)
		} else {
			fmt.Fprintln(stdout, "Session killed successfully")
		}
		fmt.Fprintf(stdout, "Deleting session: %s\n", name)
		if err := client.Delete(name); err != nil {
			fmt.Fprintf(stderr, "failed to delete session %q: %v\n", name, err)
			return 1
		}
		fmt.Fprintln(stdout, "Session deleted successfully")
		return 0
	}

	// picker.ActionQuit
	return 0
}
