// Package zellij drives the zellij binary for session operations.
// Everything goes through subprocess invocations; zellij exposes no
// library interface.
package zellij

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ListSessions returns the display-form names of all running sessions,
// one per non-empty line of `zellij list-sessions` output, in zellij's
// order. Lines keep their colour codes and status suffix; strip them
// with Canonical before passing a name back to zellij.
//
// Any failure to run zellij is treated as "no sessions" so the picker
// degrades to the create-new path instead of surfacing an error.
func ListSessions() []string {
	out, err := exec.Command("zellij", "list-sessions").Output()
	if err != nil {
		return nil
	}
	return parseSessions(string(out))
}

func parseSessions(out string) []string {
	var sessions []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			sessions = append(sessions, line)
		}
	}
	return sessions
}

// Attach hands the terminal to `zellij attach <name>` and returns the
// child's exit status once the session detaches or ends. The name must
// already be canonical.
func Attach(name string) (int, error) {
	return handoff("attach", name)
}

// Create starts a new session and attaches to it. An empty name starts
// an unnamed session, letting zellij pick one.
func Create(name string) (int, error) {
	if name == "" {
		return handoff()
	}
	return handoff("--session", name)
}

// Kill stops a running session.
func Kill(name string) error {
	if err := exec.Command("zellij", "kill-session", name).Run(); err != nil {
		return fmt.Errorf("zellij kill-session %s: %w", name, err)
	}
	return nil
}

// Delete removes a stopped session's record.
func Delete(name string) error {
	if err := exec.Command("zellij", "delete-session", name).Run(); err != nil {
		return fmt.Errorf("zellij delete-session %s: %w", name, err)
	}
	return nil
}

// handoff runs zellij attached to this process's terminal and forwards
// its exit status. The picker has already left the alternate screen by
// the time this runs, so the child owns the terminal until it exits.
// A non-nil error means the child could not even be started.
func handoff(args ...string) (int, error) {
	cmd := exec.Command("zellij", args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, fmt.Errorf("zellij %s: %w", strings.Join(args, " "), err)
}
