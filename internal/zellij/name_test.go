package zellij

import "testing"

func TestCanonical(t *testing.T) {
	tests := []struct {
		name    string
		display string
		want    string
	}{
		{"plain", "work", "work"},
		{"status suffix", "work [Created 2mins ago]", "work"},
		{"ansi and suffix", "\x1b[1mwork\x1b[0m [Created 2 mins ago]", "work"},
		{"ansi only", "\x1b[32mmain\x1b[0m", "main"},
		{"surrounding whitespace", "  work  ", "work"},
		{"exited suffix", "side-project [EXITED - attach to resurrect]", "side-project"},
		{"underscores kept", "my_session-2", "my_session-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Canonical(tt.display); got != tt.want {
				t.Errorf("Canonical(%q) = %q, want %q", tt.display, got, tt.want)
			}
		})
	}
}
