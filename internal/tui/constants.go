package tui

// Key constants for event handling.
const (
	keyEnter  = "enter"
	keyEscape = "esc"
)
