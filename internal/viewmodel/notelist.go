// Package viewmodel projects persisted notes into what the screens show.
package viewmodel

import (
	"fmt"
	"strings"

	"github.com/dukerupert/jot/internal/model"
	"github.com/dukerupert/jot/internal/store"
)

// NoteList holds the last full snapshot from the note store and applies a
// search filter and a favorites filter on read. Filtering never mutates
// the snapshot.
type NoteList struct {
	notes *store.NoteStore

	allNotes          []model.Note
	searchText        string
	showFavoritesOnly bool
}

func NewNoteList(notes *store.NoteStore) *NoteList {
	return &NoteList{notes: notes}
}

// Refresh replaces the snapshot wholesale with a fresh ListAll.
func (l *NoteList) Refresh() error {
	notes, err := l.notes.ListAll()
	if err != nil {
		return fmt.Errorf("refresh notes: %w", err)
	}
	l.allNotes = notes
	return nil
}

func (l *NoteList) SetSearchText(text string) { l.searchText = text }

func (l *NoteList) SearchText() string { return l.searchText }

func (l *NoteList) SetShowFavoritesOnly(on bool) { l.showFavoritesOnly = on }

func (l *NoteList) ShowFavoritesOnly() bool { return l.showFavoritesOnly }

// Visible returns the notes whose title or description contains the
// search text (case-insensitive), restricted to favorites when the
// favorites filter is on. Re-evaluated on every call.
func (l *NoteList) Visible() []model.Note {
	query := strings.ToLower(l.searchText)

	var visible []model.Note
	for _, n := range l.allNotes {
		if !strings.Contains(strings.ToLower(n.Title), query) &&
			!strings.Contains(strings.ToLower(n.Description), query) {
			continue
		}
		if l.showFavoritesOnly && !n.Favorite {
			continue
		}
		visible = append(visible, n)
	}
	return visible
}

// ToggleFavorite flips the note's favorite flag in the store and, on
// success, re-pulls the full list rather than patching the snapshot.
func (l *NoteList) ToggleFavorite(n model.Note) error {
	if err := l.notes.SetFavorite(n.ID, !n.Favorite); err != nil {
		return err
	}
	return l.Refresh()
}
