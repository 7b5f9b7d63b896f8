package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"messagely/internal/apperr"
	"messagely/internal/models"
	"messagely/internal/utils"
)

// UserStore persists user records and owns the password hashing scheme.
// The stored hash never leaves this package except inside models.User,
// which refuses to serialize it.
type UserStore struct {
	DB         *sql.DB
	BcryptCost int
}

type RegisterParams struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// Register hashes the plaintext password and inserts a new user with
// join_at and last_login_at set to now. A taken username maps to
// apperr.ErrDuplicate.
func (s *UserStore) Register(ctx context.Context, p RegisterParams) (*models.User, error) {
	hash, err := utils.HashPassword(p.Password, s.BcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	_, err = s.DB.ExecContext(ctx,
		`INSERT INTO users (username, password, first_name, last_name, phone, join_at, last_login_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.Username, hash, p.FirstName, p.LastName, p.Phone, now, now)
	if err != nil {
		if isDuplicate(err) {
			return nil, fmt.Errorf("user %q: %w", p.Username, apperr.ErrDuplicate)
		}
		return nil, err
	}

	return &models.User{
		Username:    p.Username,
		Password:    hash,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Phone:       p.Phone,
		JoinAt:      now,
		LastLoginAt: now,
	}, nil
}

// Authenticate compares plaintext against the stored hash. A mismatch is
// (false, nil); only a missing user or a store failure is an error.
func (s *UserStore) Authenticate(ctx context.Context, username, password string) (bool, error) {
	var hash string
	err := s.DB.QueryRowContext(ctx,
		`SELECT password FROM users WHERE username = ?`, username).Scan(&hash)
	if err == sql.ErrNoRows {
		return false, fmt.Errorf("user %q: %w", username, apperr.ErrNotFound)
	}
	if err != nil {
		return false, err
	}
	return utils.CheckPassword(password, hash), nil
}

// TouchLogin stamps last_login_at with the current time.
func (s *UserStore) TouchLogin(ctx context.Context, username string) error {
	res, err := s.DB.ExecContext(ctx,
		`UPDATE users SET last_login_at = ? WHERE username = ?`,
		time.Now().UTC(), username)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("user %q: %w", username, apperr.ErrNotFound)
	}
	return nil
}

// Get returns the full profile for username.
func (s *UserStore) Get(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := s.DB.QueryRowContext(ctx,
		`SELECT username, first_name, last_name, phone, join_at, last_login_at
		 FROM users WHERE username = ?`, username).
		Scan(&u.Username, &u.FirstName, &u.LastName, &u.Phone, &u.JoinAt, &u.LastLoginAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user %q: %w", username, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// All returns public summaries for every user, ordered by username so
// repeated queries are deterministic.
func (s *UserStore) All(ctx context.Context) ([]models.UserSummary, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT username, first_name, last_name, phone FROM users ORDER BY username`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.UserSummary{}
	for rows.Next() {
		var u models.UserSummary
		if err := rows.Scan(&u.Username, &u.FirstName, &u.LastName, &u.Phone); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
