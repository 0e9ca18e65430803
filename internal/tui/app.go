// Package tui is the terminal presentation layer: four screens (login,
// signup, note list, editor) coordinated by a root Bubble Tea model.
// Store operations run inside commands and complete with exactly one
// result message; navigation decisions live here, not in the flows.
package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dukerupert/jot/internal/flow"
	"github.com/dukerupert/jot/internal/store"
	"github.com/dukerupert/jot/internal/viewmodel"
)

type screen int

const (
	screenLogin screen = iota
	screenSignup
	screenNoteList
	screenEditor
)

type App struct {
	auth   *flow.Auth
	notes  *store.NoteStore
	list   *viewmodel.NoteList
	logger *slog.Logger

	active   screen
	login    loginModel
	signup   signupModel
	noteList noteListModel
	editor   editorModel
}

func NewApp(auth *flow.Auth, notes *store.NoteStore, list *viewmodel.NoteList, logger *slog.Logger) App {
	return App{
		auth:   auth,
		notes:  notes,
		list:   list,
		logger: logger,
		active: screenLogin,
		login:  newLoginModel(auth),
	}
}

func (a App) Init() tea.Cmd {
	return textinput.Blink
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch msg := msg.(type) {
	case gotoSignupMsg:
		a.active = screenSignup
		a.signup = newSignupModel(a.auth)
		return a, textinput.Blink

	case gotoLoginMsg:
		a.active = screenLogin
		a.login = newLoginModel(a.auth)
		return a, textinput.Blink

	case loginResultMsg:
		a.login.busy = false
		if msg.err != nil {
			a.login.errMsg = loginErrorMessage(msg.err)
			return a, nil
		}
		if msg.sig == flow.GoNoteList {
			return a.showNoteList(), nil
		}
		return a, nil

	case signupResultMsg:
		a.signup.busy = false
		if msg.err != nil {
			a.signup.errMsg = signupErrorMessage(msg.err)
			return a, nil
		}
		if msg.sig == flow.GoLogin {
			a.active = screenLogin
			a.login = newLoginModel(a.auth)
			return a, textinput.Blink
		}
		return a, nil

	case openEditorMsg:
		a.active = screenEditor
		if msg.note != nil {
			a.editor = newEditorModel(flow.EditDraft(a.notes, a.logger, *msg.note))
		} else {
			a.editor = newEditorModel(flow.NewDraft(a.notes, a.logger))
		}
		return a, textinput.Blink

	case closeEditorMsg:
		// Back without saving: no mutation happened, no refresh.
		a.active = screenNoteList
		return a, nil

	case editorResultMsg:
		a.editor.busy = false
		if msg.err != nil {
			a.editor.errMsg = editorErrorMessage(msg.err)
			return a, nil
		}
		if msg.sig == flow.GoNoteList {
			return a.showNoteList(), nil
		}
		return a, nil
	}

	var cmd tea.Cmd
	switch a.active {
	case screenLogin:
		a.login, cmd = a.login.update(msg)
	case screenSignup:
		a.signup, cmd = a.signup.update(msg)
	case screenNoteList:
		a.noteList, cmd = a.noteList.update(msg)
	case screenEditor:
		a.editor, cmd = a.editor.update(msg)
	}
	return a, cmd
}

// showNoteList re-pulls the full list and switches to the list screen,
// keeping the search and favorites filters as they were.
func (a App) showNoteList() App {
	if a.active != screenNoteList {
		a.noteList = newNoteListModel(a.list)
	}
	a.active = screenNoteList
	if err := a.list.Refresh(); err != nil {
		a.logger.Error("refresh notes", "error", err)
		a.noteList.errMsg = "Error loading notes"
	}
	a.noteList = a.noteList.clampCursor()
	return a
}

func (a App) View() string {
	var s string
	switch a.active {
	case screenLogin:
		s = a.login.view()
	case screenSignup:
		s = a.signup.view()
	case screenNoteList:
		s = a.noteList.view()
	case screenEditor:
		s = a.editor.view()
	}
	return appStyle.Render(s)
}
