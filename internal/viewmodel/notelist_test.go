package viewmodel

import (
	"testing"

	"github.com/dukerupert/jot/internal/database"
	"github.com/dukerupert/jot/internal/store"
)

func setupNoteList(t *testing.T) (*NoteList, *store.NoteStore) {
	t.Helper()
	db, err := database.Open(":memory:", database.SetNotes)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	ns := store.NewNoteStore(db)
	return NewNoteList(ns), ns
}

func titles(l *NoteList) []string {
	var out []string
	for _, n := range l.Visible() {
		out = append(out, n.Title)
	}
	return out
}

func TestNoteListSearchFilter(t *testing.T) {
	l, ns := setupNoteList(t)

	ns.Create("Cat food", "buy kibble", false)
	ns.Create("Groceries", "milk for the cat", true)
	ns.Create("Work", "quarterly report", false)

	if err := l.Refresh(); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	// Matches title or description, case-insensitively, regardless of
	// favorite status.
	l.SetSearchText("cat")
	got := titles(l)
	if len(got) != 2 {
		t.Fatalf("visible = %v, want 2 notes", got)
	}
	for _, title := range got {
		if title == "Work" {
			t.Errorf("%q should be filtered out", title)
		}
	}

	// Favorites filter additionally excludes non-favorited matches.
	l.SetShowFavoritesOnly(true)
	got = titles(l)
	if len(got) != 1 || got[0] != "Groceries" {
		t.Errorf("visible = %v, want [Groceries]", got)
	}

	// Empty search matches everything.
	l.SetSearchText("")
	l.SetShowFavoritesOnly(false)
	if got := titles(l); len(got) != 3 {
		t.Errorf("visible = %v, want 3 notes", got)
	}
}

func TestNoteListFilterIsPure(t *testing.T) {
	l, ns := setupNoteList(t)

	ns.Create("One", "first", false)
	ns.Create("Two", "second", false)

	if err := l.Refresh(); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	l.SetSearchText("one")
	if got := titles(l); len(got) != 1 {
		t.Fatalf("visible = %v, want 1 note", got)
	}

	// Clearing the filter restores the full snapshot: filtering never
	// mutated allNotes.
	l.SetSearchText("")
	if got := titles(l); len(got) != 2 {
		t.Errorf("visible = %v, want 2 notes", got)
	}
}

func TestNoteListRefreshReplacesSnapshot(t *testing.T) {
	l, ns := setupNoteList(t)

	note, _ := ns.Create("Stale", "gone soon", false)
	if err := l.Refresh(); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if got := titles(l); len(got) != 1 {
		t.Fatalf("visible = %v, want 1 note", got)
	}

	// External delete is invisible until the next refresh.
	if err := ns.Delete(note.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := titles(l); len(got) != 1 {
		t.Errorf("visible = %v, want stale snapshot of 1 note", got)
	}

	if err := l.Refresh(); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if got := titles(l); len(got) != 0 {
		t.Errorf("visible = %v, want empty", got)
	}
}

func TestNoteListToggleFavorite(t *testing.T) {
	l, ns := setupNoteList(t)

	note, _ := ns.Create("Groceries", "milk, eggs", false)
	if err := l.Refresh(); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	if err := l.ToggleFavorite(*note); err != nil {
		t.Fatalf("toggle favorite: %v", err)
	}

	// The toggle re-pulled the list, so the snapshot reflects the store.
	visible := l.Visible()
	if len(visible) != 1 {
		t.Fatalf("expected 1 note, got %d", len(visible))
	}
	if !visible[0].Favorite {
		t.Error("expected favorite after toggle")
	}

	// Toggling the refreshed note flips it back.
	if err := l.ToggleFavorite(visible[0]); err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if l.Visible()[0].Favorite {
		t.Error("expected not favorite after second toggle")
	}
}
