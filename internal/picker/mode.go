package picker

// Mode represents the current input mode of the picker.
// Exactly one mode is active at a time: either keys move the cursor
// through the session list, or they edit a new session name.
type Mode int

const (
	ModeNavigate Mode = iota
	ModeNewSession
)
