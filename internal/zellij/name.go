package zellij

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Canonical converts a display-form session name, as printed by
// `zellij list-sessions`, into the identifier zellij commands accept.
// List output decorates names with SGR colour codes and a bracketed
// status suffix ("work [Created 2mins ago]"); both are stripped.
func Canonical(display string) string {
	name := display
	if i := strings.Index(name, " ["); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(ansi.Strip(name))
}
