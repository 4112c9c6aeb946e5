package credentials

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// tokenName is the fixed key the admin token is stored under.
const tokenName = "admin_token"

// Store persists the bearer token in a local sqlite database so it survives
// between invocations of the tool.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS tokens (
			name TEXT PRIMARY KEY NOT NULL,
			token TEXT NOT NULL
		);
	`)
	if err != nil {
		return nil, fmt.Errorf("error creating tokens table: %w", err)
	}

	return &Store{db: db}, nil
}

// Get returns the stored token, or the empty string when none is held.
func (s *Store) Get() (string, error) {
	row := s.db.QueryRow(`SELECT token FROM tokens WHERE name = ?`, tokenName)

	var token string
	err := row.Scan(&token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	return token, nil
}

func (s *Store) Set(token string) error {
	query := `
		INSERT INTO tokens (name, token) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET token = excluded.token;
	`
	_, err := s.db.Exec(query, tokenName, token)
	if err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	return nil
}

func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM tokens WHERE name = ?`, tokenName)
	if err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
