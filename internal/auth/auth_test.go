package auth

import (
	"strings"
	"testing"
	"time"

	"devconnector/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-for-hs256"

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestToken_RoundTrip(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	token, err := svc.Issue(42)
	require.NoError(t, err)

	id, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestToken_ClaimsShape(t *testing.T) {
	issued := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := NewTokenService(testSecret, 100*time.Hour).WithClock(fixedClock(issued))

	token, err := svc.Issue(7)
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.User.ID)
	assert.Equal(t, issued.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, issued.Add(100*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestToken_Expiry(t *testing.T) {
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := NewTokenService(testSecret, time.Hour).WithClock(fixedClock(issued))

	token, err := svc.Issue(1)
	require.NoError(t, err)

	svc.WithClock(fixedClock(issued.Add(59 * time.Minute)))
	_, err = svc.Verify(token)
	assert.NoError(t, err)

	svc.WithClock(fixedClock(issued.Add(61 * time.Minute)))
	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.True(t, models.HasCode(err, models.CodeUnauthorized))
}

func TestToken_Rejections(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)
	good, err := svc.Issue(5)
	require.NoError(t, err)

	otherKey, err := NewTokenService("a-completely-different-secret-value", time.Hour).Issue(5)
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{User: ClaimsUser{ID: "5"}}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		User:             ClaimsUser{ID: "5"},
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		User:             ClaimsUser{ID: "not-a-number"},
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	parts := strings.Split(good, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	tests := []struct {
		name    string
		token   string
		wantErr error
		wantMsg string
	}{
		{"empty", "", ErrMissingToken, "No token, authorization denied"},
		{"garbage", "not.a.jwt", ErrInvalidToken, "Token is not valid"},
		{"wrong key", otherKey, ErrInvalidToken, "Token is not valid"},
		{"tampered payload", tampered, ErrInvalidToken, "Token is not valid"},
		{"missing exp", noExp, ErrInvalidToken, "Token is not valid"},
		{"wrong algorithm", hs512, ErrInvalidToken, "Token is not valid"},
		{"bad subject", badSubject, ErrInvalidToken, "Token is not valid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := svc.Verify(tt.token)
			require.Error(t, err)
			assert.Zero(t, id)
			assert.ErrorIs(t, err, tt.wantErr)

			appErr := models.AsAppError(err)
			assert.Equal(t, models.CodeUnauthorized, appErr.Code)
			assert.Equal(t, tt.wantMsg, appErr.Message)
		})
	}
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$10$"))
	assert.True(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword(hash, "secret124"))
	assert.False(t, CheckPassword("not-a-hash", "secret123"))
}

func TestGravatarURL(t *testing.T) {
	// md5("alice@example.com")
	want := "//www.gravatar.com/avatar/c160f8cc69a4f0bf2b0362752353d060?s=200&r=pg&d=mm"
	assert.Equal(t, want, GravatarURL("alice@example.com"))
	assert.Equal(t, want, GravatarURL("  Alice@Example.COM "))
}
