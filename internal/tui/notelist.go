package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dukerupert/jot/internal/viewmodel"
)

type noteListModel struct {
	list      *viewmodel.NoteList
	search    textinput.Model
	cursor    int
	searching bool
	errMsg    string
}

func newNoteListModel(list *viewmodel.NoteList) noteListModel {
	search := textinput.New()
	search.Placeholder = "Search"
	search.Prompt = "🔍 "
	search.CharLimit = 64
	search.SetValue(list.SearchText())

	return noteListModel{
		list:   list,
		search: search,
	}
}

func (m noteListModel) update(msg tea.Msg) (noteListModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.searching {
		switch key.String() {
		case "enter", "esc":
			m.searching = false
			m.search.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.list.SetSearchText(m.search.Value())
			return m.clampCursor(), cmd
		}
	}

	switch key.String() {
	case "/":
		m.searching = true
		m.errMsg = ""
		return m, m.search.Focus()
	case "up", "k":
		m.cursor--
		return m.clampCursor(), nil
	case "down", "j":
		m.cursor++
		return m.clampCursor(), nil
	case "tab":
		m.list.SetShowFavoritesOnly(!m.list.ShowFavoritesOnly())
		m.cursor = 0
		return m.clampCursor(), nil
	case "f":
		return m.toggleFavorite(), nil
	case "n":
		return m, func() tea.Msg { return openEditorMsg{} }
	case "enter":
		visible := m.list.Visible()
		if m.cursor < len(visible) {
			note := visible[m.cursor]
			return m, func() tea.Msg { return openEditorMsg{note: &note} }
		}
		return m, nil
	}
	return m, nil
}

// toggleFavorite flips the flag on the note under the cursor. This is the
// one mutation done synchronously: the view-model re-pulls the full list
// before the next frame renders.
func (m noteListModel) toggleFavorite() noteListModel {
	visible := m.list.Visible()
	if m.cursor >= len(visible) {
		return m
	}
	m.errMsg = ""
	if err := m.list.ToggleFavorite(visible[m.cursor]); err != nil {
		m.errMsg = "Error updating note"
	}
	return m.clampCursor()
}

func (m noteListModel) clampCursor() noteListModel {
	n := len(m.list.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m
}

func (m noteListModel) view() string {
	s := titleStyle.Render("My Notes") + "\n"
	s += m.search.View() + "\n\n"

	if m.list.ShowFavoritesOnly() {
		s += tabInactiveStyle.Render("All Notes") + tabActiveStyle.Render("Favorites")
	} else {
		s += tabActiveStyle.Render("All Notes") + tabInactiveStyle.Render("Favorites")
	}
	s += "\n\n"

	visible := m.list.Visible()
	if len(visible) == 0 {
		s += labelStyle.Render("No notes yet. Press n to add one.") + "\n"
	}
	for i, note := range visible {
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		mark := favoriteOffStyle.Render("♡")
		if note.Favorite {
			mark = favoriteOnStyle.Render("♥")
		}
		s += fmt.Sprintf("%s%s %s %s\n", prefix,
			noteTimestampStyle.Render(note.Timestamp),
			noteTitleStyle.Render(note.Title),
			mark)
		s += "    " + noteDescStyle.Render(note.Description) + "\n"
	}

	if m.errMsg != "" {
		s += "\n" + errorStyle.Render(m.errMsg)
	}
	s += "\n" + help(
		"n", "new note",
		"enter", "open",
		"f", "favorite",
		"tab", "all/favorites",
		"/", "search",
		"ctrl+c", "quit",
	)
	return s
}
