// Package auth issues and verifies session tokens and handles password
// hashing and avatar derivation.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"devconnector/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingToken means the request carried no token.
	ErrMissingToken = errors.New("auth: missing token")
	// ErrExpiredToken means the token's exp has passed.
	ErrExpiredToken = errors.New("auth: token expired")
	// ErrInvalidToken covers malformed, mis-signed or otherwise unacceptable tokens.
	ErrInvalidToken = errors.New("auth: invalid token")
)

// Claims is the JWT payload: {"user": {"id": "<id>"}, "exp", "iat"}.
type Claims struct {
	User ClaimsUser `json:"user"`
	jwt.RegisteredClaims
}

// ClaimsUser identifies the token's subject.
type ClaimsUser struct {
	ID string `json:"id"`
}

// TokenVerifier resolves a token to the user id it was issued for.
type TokenVerifier interface {
	Verify(token string) (uint, error)
}

// TokenService signs HS256 tokens with a shared secret.
type TokenService struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewTokenService creates a TokenService whose tokens live for expiry.
func NewTokenService(secret string, expiry time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}
}

// WithClock overrides the time source used for issuing and verifying.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// Issue returns a signed token for userID.
func (s *TokenService) Issue(userID uint) (string, error) {
	now := s.now()
	claims := Claims{
		User: ClaimsUser{ID: strconv.FormatUint(uint64(userID), 10)},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Verify checks the signature, algorithm and expiry of token and returns the
// user id it carries. Every failure is an UNAUTHORIZED AppError.
func (s *TokenService) Verify(token string) (uint, error) {
	if token == "" {
		return 0, &models.AppError{
			Code:    models.CodeUnauthorized,
			Message: "No token, authorization denied",
			Err:     ErrMissingToken,
		}
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(_ *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		cause := ErrInvalidToken
		if errors.Is(err, jwt.ErrTokenExpired) {
			cause = ErrExpiredToken
		}
		return 0, invalidToken(fmt.Errorf("%w: %v", cause, err))
	}

	id, err := strconv.ParseUint(claims.User.ID, 10, 64)
	if err != nil || id == 0 {
		return 0, invalidToken(fmt.Errorf("%w: bad subject %q", ErrInvalidToken, claims.User.ID))
	}
	return uint(id), nil
}

func invalidToken(err error) *models.AppError {
	return &models.AppError{
		Code:    models.CodeUnauthorized,
		Message: "Token is not valid",
		Err:     err,
	}
}
