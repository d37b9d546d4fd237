package picker

// ActionKind enumerates the terminal decisions a picker run can produce.
type ActionKind int

const (
	ActionQuit ActionKind = iota
	ActionAttach
	ActionCreate
	ActionDelete
)

// Action is the single decision handed back to the caller when the
// picker exits. Name carries the display-form session name for Attach
// and Delete; for Create it is the chosen name, or empty to start an
// unnamed session.
type Action struct {
	Kind ActionKind
	Name string
}
