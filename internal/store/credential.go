package store

import (
	"database/sql"
	"fmt"

	"github.com/dukerupert/jot/internal/apperr"
	"github.com/dukerupert/jot/internal/model"
)

// CredentialStore persists username/password pairs. It performs no
// uniqueness check and no hashing: Authenticate matches both fields
// exactly, case-sensitively, and succeeds if at least one row matches.
type CredentialStore struct {
	db *sql.DB
}

func NewCredentialStore(db *sql.DB) *CredentialStore {
	return &CredentialStore{db: db}
}

func scanCredential(scanner interface{ Scan(...any) error }) (*model.Credential, error) {
	var c model.Credential
	err := scanner.Scan(&c.ID, &c.Username, &c.Password)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

const credentialCols = `id, username, password`

// Register inserts a credential row. An insert error and a zero-row
// insert are reported as the same kind, apperr.ErrWriteFailed.
func (s *CredentialStore) Register(username, password string) error {
	result, err := s.db.Exec(
		`INSERT INTO users (username, password) VALUES (?, ?)`,
		username, password,
	)
	if err != nil {
		return fmt.Errorf("insert credential: %v: %w", err, apperr.ErrWriteFailed)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return apperr.ErrWriteFailed
	}
	return nil
}

// Authenticate returns the first credential matching both fields, or
// apperr.ErrAuthMismatch when none does. I/O faults surface as distinct
// wrapped errors so callers can tell a broken store from a bad password.
func (s *CredentialStore) Authenticate(username, password string) (*model.Credential, error) {
	row := s.db.QueryRow(
		`SELECT `+credentialCols+` FROM users WHERE username = ? AND password = ? LIMIT 1`,
		username, password,
	)
	c, err := scanCredential(row)
	if err == sql.ErrNoRows {
		return nil, apperr.ErrAuthMismatch
	}
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	return c, nil
}
