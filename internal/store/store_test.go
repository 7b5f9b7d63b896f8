package store

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"messagely/internal/models"
)

// The production queries use ? placeholders and Go-side timestamps, so
// they run unchanged against in-memory sqlite.
const testSchema = `
CREATE TABLE users (
	username      TEXT PRIMARY KEY,
	password      TEXT NOT NULL,
	first_name    TEXT NOT NULL,
	last_name     TEXT NOT NULL,
	phone         TEXT NOT NULL,
	join_at       TIMESTAMP NOT NULL,
	last_login_at TIMESTAMP NOT NULL
);
CREATE TABLE messages (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	from_username TEXT NOT NULL REFERENCES users(username),
	to_username   TEXT NOT NULL REFERENCES users(username),
	body          TEXT NOT NULL,
	sent_at       TIMESTAMP NOT NULL,
	read_at       TIMESTAMP NULL
);`

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err)
	// every :memory: connection is its own database
	db.SetMaxOpenConns(1)

	_, err = db.Exec(testSchema)
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })
	return db
}

func newUserStore(t *testing.T) *UserStore {
	t.Helper()
	return &UserStore{DB: newTestDB(t), BcryptCost: 4} // min cost keeps tests fast
}

func mustRegister(t *testing.T, s *UserStore, username string) *models.User {
	t.Helper()
	u, err := s.Register(context.Background(), RegisterParams{
		Username:  username,
		Password:  "secret-" + username,
		FirstName: "First",
		LastName:  "Last",
		Phone:     "555-0100",
	})
	require.NoError(t, err)
	return u
}
