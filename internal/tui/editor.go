package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dukerupert/jot/internal/apperr"
	"github.com/dukerupert/jot/internal/flow"
)

const (
	focusTitle = iota
	focusDescription
)

type editorModel struct {
	editor  *flow.Editor
	title   textinput.Model
	desc    textarea.Model
	focus   int
	editing bool
	errMsg  string
	busy    bool
	// favorite is the screen's copy of the draft flag. The draft itself
	// is written only at dispatch time, while no command holds it.
	favorite bool
}

func newEditorModel(editor *flow.Editor) editorModel {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 128
	title.SetValue(editor.Title)
	title.Focus()

	desc := textarea.New()
	desc.Placeholder = "Description"
	desc.SetValue(editor.Description)

	return editorModel{
		editor:   editor,
		title:    title,
		desc:     desc,
		editing:  editor.Editing(),
		favorite: editor.Favorite,
	}
}

func (m editorModel) update(msg tea.Msg) (editorModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab":
			return m.setFocus((m.focus + 1) % 2)
		case "shift+tab":
			return m.setFocus((m.focus - 1 + 2) % 2)
		case "ctrl+f":
			if m.busy {
				return m, nil
			}
			m.favorite = !m.favorite
			return m, nil
		case "ctrl+s":
			return m.save()
		case "ctrl+d":
			return m.delete()
		case "esc":
			if m.busy {
				return m, nil
			}
			return m, func() tea.Msg { return closeEditorMsg{} }
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
	case focusDescription:
		m.desc, cmd = m.desc.Update(msg)
	}
	return m, cmd
}

func (m editorModel) setFocus(focus int) (editorModel, tea.Cmd) {
	m.focus = focus
	if focus == focusTitle {
		m.desc.Blur()
		return m, m.title.Focus()
	}
	m.title.Blur()
	return m, m.desc.Focus()
}

// save copies the inputs into the draft and dispatches the commit. The
// draft stays untouched by the command itself, so a failed save leaves
// the screen exactly as it was.
func (m editorModel) save() (editorModel, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.busy = true
	m.errMsg = ""
	m.editor.Title = m.title.Value()
	m.editor.Description = m.desc.Value()
	m.editor.Favorite = m.favorite

	editor := m.editor
	return m, func() tea.Msg {
		sig, err := editor.Save()
		return editorResultMsg{sig: sig, err: err}
	}
}

func (m editorModel) delete() (editorModel, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.busy = true
	m.errMsg = ""

	editor := m.editor
	return m, func() tea.Msg {
		sig, err := editor.Delete()
		return editorResultMsg{sig: sig, err: err}
	}
}

func (m editorModel) view() string {
	header := "New Note"
	if m.editing {
		header = "Edit Note"
	}
	s := titleStyle.Render(header)
	if m.favorite {
		s += " " + favoriteOnStyle.Render("♥")
	} else {
		s += " " + favoriteOffStyle.Render("♡")
	}
	s += "\n\n"
	s += m.title.View() + "\n\n"
	s += m.desc.View() + "\n"

	if m.errMsg != "" {
		s += "\n" + errorStyle.Render(m.errMsg)
	}
	if m.busy {
		s += "\n" + busyStyle.Render("Saving...")
	}

	keys := []string{
		"ctrl+s", "save",
		"ctrl+f", "favorite",
		"tab", "switch field",
		"esc", "back",
	}
	if m.editing {
		keys = append(keys, "ctrl+d", "delete")
	}
	s += "\n" + help(keys...)
	return s
}

func editorErrorMessage(err error) string {
	switch {
	case apperr.IsValidation(err):
		return "Please fill in both title and description"
	case errors.Is(err, apperr.ErrNoTarget):
		return "No note to delete"
	case errors.Is(err, apperr.ErrNotFound):
		return "Note no longer exists"
	default:
		return "Error saving note"
	}
}
