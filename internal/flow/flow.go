// Package flow holds the screen-bound operation sequences: authentication
// and note editing. Flows talk to stores and return a navigation signal;
// they never reference the presentation layer.
package flow

// Signal tells the coordinating layer where to go after a user action.
type Signal int

const (
	// Stay keeps the current screen, usually with an error to display.
	Stay Signal = iota
	// GoLogin transitions to the login entry point.
	GoLogin
	// GoNoteList transitions to the note list.
	GoNoteList
)
