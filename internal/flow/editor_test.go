package flow

import (
	"errors"
	"testing"

	"github.com/dukerupert/jot/internal/apperr"
	"github.com/dukerupert/jot/internal/database"
	"github.com/dukerupert/jot/internal/store"
)

func setupEditorStore(t *testing.T) *store.NoteStore {
	t.Helper()
	db, err := database.Open(":memory:", database.SetNotes)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return store.NewNoteStore(db)
}

func TestEditorNewDraftSave(t *testing.T) {
	ns := setupEditorStore(t)

	e := NewDraft(ns, discardLogger())
	if e.Editing() {
		t.Error("new draft should not be bound")
	}
	if e.Title != "" || e.Description != "" || e.Favorite {
		t.Error("new draft fields should start empty")
	}

	e.Title = "Groceries"
	e.Description = "milk, eggs"
	e.ToggleFavorite()

	sig, err := e.Save()
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if sig != GoNoteList {
		t.Errorf("signal = %v, want GoNoteList", sig)
	}
	if !e.Editing() {
		t.Error("draft should be bound after first save")
	}

	notes, err := ns.ListAll()
	if err != nil {
		t.Fatalf("list notes: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(notes))
	}
	if notes[0].Title != "Groceries" || !notes[0].Favorite {
		t.Errorf("stored note = %+v, want favorited Groceries", notes[0])
	}
}

func TestEditorEditDraftSave(t *testing.T) {
	ns := setupEditorStore(t)

	note, err := ns.Create("Old", "old body", false)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	e := EditDraft(ns, discardLogger(), *note)
	if !e.Editing() {
		t.Error("edit draft should be bound")
	}
	if e.Title != "Old" || e.Description != "old body" || e.Favorite {
		t.Errorf("draft = %+v, want fields from note", e)
	}

	e.Title = "New"
	sig, err := e.Save()
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if sig != GoNoteList {
		t.Errorf("signal = %v, want GoNoteList", sig)
	}

	got, err := ns.GetByID(note.ID)
	if err != nil {
		t.Fatalf("get note: %v", err)
	}
	if got.Title != "New" {
		t.Errorf("title = %q, want %q", got.Title, "New")
	}

	// Same row mutated in place, not a second one created.
	notes, _ := ns.ListAll()
	if len(notes) != 1 {
		t.Errorf("expected 1 note, got %d", len(notes))
	}
}

func TestEditorSaveValidation(t *testing.T) {
	ns := setupEditorStore(t)

	e := NewDraft(ns, discardLogger())
	e.Title = "   "
	e.Description = "body"

	sig, err := e.Save()
	if !apperr.IsValidation(err) {
		t.Errorf("save err = %v, want validation error", err)
	}
	if sig != Stay {
		t.Errorf("signal = %v, want Stay", sig)
	}

	// Draft preserved, nothing written.
	if e.Title != "   " || e.Description != "body" {
		t.Error("draft fields should be preserved on failure")
	}
	notes, _ := ns.ListAll()
	if len(notes) != 0 {
		t.Errorf("expected no notes written, got %d", len(notes))
	}
}

func TestEditorToggleFavoriteIsLocal(t *testing.T) {
	ns := setupEditorStore(t)

	note, _ := ns.Create("Test", "body", false)
	e := EditDraft(ns, discardLogger(), *note)

	e.ToggleFavorite()
	if !e.Favorite {
		t.Error("expected draft favorite flipped")
	}

	// Not persisted until save.
	got, _ := ns.GetByID(note.ID)
	if got.Favorite {
		t.Error("store favorite should be unchanged before save")
	}

	if _, err := e.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, _ = ns.GetByID(note.ID)
	if !got.Favorite {
		t.Error("store favorite should be set after save")
	}
}

func TestEditorDelete(t *testing.T) {
	ns := setupEditorStore(t)

	note, _ := ns.Create("Doomed", "body", false)
	e := EditDraft(ns, discardLogger(), *note)

	sig, err := e.Delete()
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if sig != GoNoteList {
		t.Errorf("signal = %v, want GoNoteList", sig)
	}

	notes, _ := ns.ListAll()
	if len(notes) != 0 {
		t.Errorf("expected no notes, got %d", len(notes))
	}
}

func TestEditorDeleteUnboundDraft(t *testing.T) {
	ns := setupEditorStore(t)

	e := NewDraft(ns, discardLogger())
	sig, err := e.Delete()
	if !errors.Is(err, apperr.ErrNoTarget) {
		t.Errorf("delete err = %v, want ErrNoTarget", err)
	}
	if sig != Stay {
		t.Errorf("signal = %v, want Stay", sig)
	}
}
