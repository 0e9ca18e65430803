package flow

import (
	"log/slog"

	"github.com/dukerupert/jot/internal/apperr"
	"github.com/dukerupert/jot/internal/model"
	"github.com/dukerupert/jot/internal/store"
)

// Editor holds a single note's draft fields, either for a brand-new note
// or one loaded for editing. The draft is disposable; nothing persists
// until Save.
type Editor struct {
	notes  *store.NoteStore
	logger *slog.Logger

	noteID      int64 // 0 until the draft is bound to a stored note
	Title       string
	Description string
	Favorite    bool
}

// NewDraft returns an editor with empty fields and no note bound.
func NewDraft(notes *store.NoteStore, logger *slog.Logger) *Editor {
	return &Editor{notes: notes, logger: logger}
}

// EditDraft returns an editor initialized from an existing note's current
// values, bound to that note's id.
func EditDraft(notes *store.NoteStore, logger *slog.Logger, n model.Note) *Editor {
	return &Editor{
		notes:       notes,
		logger:      logger,
		noteID:      n.ID,
		Title:       n.Title,
		Description: n.Description,
		Favorite:    n.Favorite,
	}
}

// Editing reports whether the draft is bound to a stored note.
func (e *Editor) Editing() bool { return e.noteID != 0 }

// ToggleFavorite flips the draft's favorite flag only; the store is not
// touched until Save.
func (e *Editor) ToggleFavorite() { e.Favorite = !e.Favorite }

// Save validates the draft and commits it: an update when a note is
// bound, a create otherwise. On failure the draft is preserved and the
// signal is Stay.
func (e *Editor) Save() (Signal, error) {
	if err := store.ValidateFields(e.Title, e.Description); err != nil {
		return Stay, err
	}

	if e.noteID != 0 {
		if _, err := e.notes.Update(e.noteID, e.Title, e.Description, e.Favorite); err != nil {
			e.logger.Error("update note", "id", e.noteID, "error", err)
			return Stay, err
		}
		e.logger.Info("note updated", "id", e.noteID)
		return GoNoteList, nil
	}

	n, err := e.notes.Create(e.Title, e.Description, e.Favorite)
	if err != nil {
		e.logger.Error("create note", "error", err)
		return Stay, err
	}
	e.noteID = n.ID
	e.logger.Info("note created", "id", n.ID)
	return GoNoteList, nil
}

// Delete removes the bound note. Invoked on an unbound draft it fails
// with apperr.ErrNoTarget and nothing is written.
func (e *Editor) Delete() (Signal, error) {
	if e.noteID == 0 {
		return Stay, apperr.ErrNoTarget
	}

	if err := e.notes.Delete(e.noteID); err != nil {
		e.logger.Error("delete note", "id", e.noteID, "error", err)
		return Stay, err
	}
	e.logger.Info("note deleted", "id", e.noteID)
	return GoNoteList, nil
}
