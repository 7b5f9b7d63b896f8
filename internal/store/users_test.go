package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"messagely/internal/apperr"
)

func TestRegisterThenAuthenticate(t *testing.T) {
	s := newUserStore(t)
	ctx := context.Background()

	u, err := s.Register(ctx, RegisterParams{
		Username:  "alice",
		Password:  "pw1",
		FirstName: "A",
		LastName:  "L",
		Phone:     "123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.NotEqual(t, "pw1", u.Password, "plaintext must never be stored")
	assert.False(t, u.JoinAt.IsZero())
	assert.Equal(t, u.JoinAt, u.LastLoginAt)

	ok, err := s.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	s := newUserStore(t)
	mustRegister(t, s, "alice")

	ok, err := s.Authenticate(context.Background(), "alice", "wrong")
	require.NoError(t, err, "a mismatch is a negative result, not an error")
	assert.False(t, ok)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	s := newUserStore(t)

	ok, err := s.Authenticate(context.Background(), "ghost", "pw")
	assert.False(t, ok)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	s := newUserStore(t)
	mustRegister(t, s, "alice")

	_, err := s.Register(context.Background(), RegisterParams{
		Username:  "alice",
		Password:  "other",
		FirstName: "A",
		LastName:  "L",
		Phone:     "123",
	})
	assert.ErrorIs(t, err, apperr.ErrDuplicate)
}

func TestTouchLogin(t *testing.T) {
	s := newUserStore(t)
	ctx := context.Background()
	u := mustRegister(t, s, "alice")

	require.NoError(t, s.TouchLogin(ctx, "alice"))

	got, err := s.Get(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, got.LastLoginAt.Before(u.JoinAt))

	assert.ErrorIs(t, s.TouchLogin(ctx, "ghost"), apperr.ErrNotFound)
}

func TestGetNotFound(t *testing.T) {
	s := newUserStore(t)

	_, err := s.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestAll(t *testing.T) {
	s := newUserStore(t)
	ctx := context.Background()

	users, err := s.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	mustRegister(t, s, "bob")
	mustRegister(t, s, "alice")

	users, err = s.All(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
	assert.Equal(t, "First", users[0].FirstName)
}
