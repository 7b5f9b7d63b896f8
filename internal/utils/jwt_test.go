package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateJWT("alice", testSecret, 0)
	require.NoError(t, err)

	username, err := ParseJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestParseWrongSecret(t *testing.T) {
	token, err := GenerateJWT("alice", testSecret, 0)
	require.NoError(t, err)

	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	_, err := ParseJWT("not.a.token", testSecret)
	assert.Error(t, err)
}

func TestParseRejectsUnsignedToken(t *testing.T) {
	// alg=none tokens must never verify
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"username": "alice"})
	s, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseJWT(s, testSecret)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "alice",
		"iat":      time.Now().Add(-2 * time.Hour).Unix(),
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})
	s, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseJWT(s, testSecret)
	assert.Error(t, err)
}

func TestParseRejectsMissingUsername(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"iat": time.Now().Unix()})
	s, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseJWT(s, testSecret)
	assert.Error(t, err)
}

func TestTTLSetsExpiry(t *testing.T) {
	token, err := GenerateJWT("alice", testSecret, 1)
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	exp, err := parsed.Claims.GetExpirationTime()
	require.NoError(t, err)
	require.NotNil(t, exp)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp.Time, time.Minute)
}
