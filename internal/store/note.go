package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/dukerupert/jot/internal/apperr"
	"github.com/dukerupert/jot/internal/model"
)

// timestampLayout renders the save time as localized hour:minute, e.g.
// "09:30 AM". Timestamps are stored as text and ordered lexicographically,
// which does not match chronological order across AM/PM boundaries.
const timestampLayout = "03:04 PM"

type NoteStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewNoteStore(db *sql.DB) *NoteStore {
	return &NoteStore{db: db, now: time.Now}
}

func scanNote(scanner interface{ Scan(...any) error }) (*model.Note, error) {
	var n model.Note
	var favorite int

	err := scanner.Scan(&n.ID, &n.Title, &n.Description, &favorite, &n.Timestamp)
	if err != nil {
		return nil, err
	}

	n.Favorite = favorite != 0
	return &n, nil
}

const noteCols = `id, title, description, favorite, timestamp`

// ValidateFields checks that title and description are non-empty after
// trimming whitespace. Create and Update run it before touching the
// database.
func ValidateFields(title, description string) error {
	return validation.Errors{
		"title":       validation.Validate(strings.TrimSpace(title), validation.Required),
		"description": validation.Validate(strings.TrimSpace(description), validation.Required),
	}.Filter()
}

func (s *NoteStore) Create(title, description string, favorite bool) (*model.Note, error) {
	if err := ValidateFields(title, description); err != nil {
		return nil, err
	}

	var fav int
	if favorite {
		fav = 1
	}

	result, err := s.db.Exec(
		`INSERT INTO notes (title, description, favorite, timestamp) VALUES (?, ?, ?, ?)`,
		title, description, fav, s.now().Format(timestampLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

func (s *NoteStore) GetByID(id int64) (*model.Note, error) {
	row := s.db.QueryRow(`SELECT `+noteCols+` FROM notes WHERE id = ?`, id)
	n, err := scanNote(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}
	return n, nil
}

// ListAll returns every note, most recently stamped first. Ordering is
// lexicographic on the stored timestamp text.
func (s *NoteStore) ListAll() ([]model.Note, error) {
	rows, err := s.db.Query(`SELECT ` + noteCols + ` FROM notes ORDER BY timestamp DESC`)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, *n)
	}
	return notes, rows.Err()
}

// Update overwrites all mutable fields, including the timestamp, which is
// refreshed to the current time. Returns apperr.ErrNotFound when no row
// has the given id.
func (s *NoteStore) Update(id int64, title, description string, favorite bool) (*model.Note, error) {
	if err := ValidateFields(title, description); err != nil {
		return nil, err
	}

	var fav int
	if favorite {
		fav = 1
	}

	result, err := s.db.Exec(
		`UPDATE notes SET title = ?, description = ?, favorite = ?, timestamp = ? WHERE id = ?`,
		title, description, fav, s.now().Format(timestampLayout), id,
	)
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return nil, apperr.ErrNotFound
	}
	return s.GetByID(id)
}

// SetFavorite updates only the favorite flag; title, description, and
// timestamp are untouched.
func (s *NoteStore) SetFavorite(id int64, favorite bool) error {
	var fav int
	if favorite {
		fav = 1
	}

	result, err := s.db.Exec(`UPDATE notes SET favorite = ? WHERE id = ?`, fav, id)
	if err != nil {
		return fmt.Errorf("set favorite: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (s *NoteStore) Delete(id int64) error {
	result, err := s.db.Exec(`DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
