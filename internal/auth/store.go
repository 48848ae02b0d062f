package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

var (
	ErrUserExists         = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const usersSchema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT UNIQUE NOT NULL,
	password_hash TEXT NOT NULL,
	email TEXT UNIQUE NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);`

// UserStore persists user credentials in sqlite.
type UserStore struct {
	db *sql.DB
}

// OpenUserStore opens (and if needed initializes) the user database at path.
func OpenUserStore(path string) (*UserStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open user db: %w", err)
	}
	if _, err := db.Exec(usersSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init user schema: %w", err)
	}
	return &UserStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *UserStore) Close() error {
	return s.db.Close()
}

// CreateUser inserts a new user row. Duplicate usernames or emails surface
// as ErrUserExists.
func (s *UserStore) CreateUser(ctx context.Context, username, passwordHash, email string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (username, password_hash, email, created_at) VALUES (?, ?, ?, ?)",
		username, passwordHash, email, time.Now().UTC())
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// PasswordHash returns the stored hash for a username, or
// ErrInvalidCredentials when the user is unknown.
func (s *UserStore) PasswordHash(ctx context.Context, username string) (string, error) {
	var hash string
	err := s.db.QueryRowContext(ctx,
		"SELECT password_hash FROM users WHERE username = ?", username).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("query user: %w", err)
	}
	return hash, nil
}
