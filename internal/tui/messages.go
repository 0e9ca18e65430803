package tui

import (
	"github.com/dukerupert/jot/internal/flow"
	"github.com/dukerupert/jot/internal/model"
)

// Navigation messages, emitted by screens and handled by the root model.
type (
	gotoLoginMsg  struct{}
	gotoSignupMsg struct{}
	// openEditorMsg opens the editor, for an existing note or (nil) a
	// new draft.
	openEditorMsg struct{ note *model.Note }
	// closeEditorMsg leaves the editor without a completed mutation.
	closeEditorMsg struct{}
)

// Operation result messages. Each dispatched store operation completes
// with exactly one of these.
type (
	loginResultMsg struct {
		sig flow.Signal
		err error
	}
	signupResultMsg struct {
		sig flow.Signal
		err error
	}
	editorResultMsg struct {
		sig flow.Signal
		err error
	}
)
