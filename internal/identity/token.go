package identity

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// accessClaims are the claims the provider puts in its access tokens.
type accessClaims struct {
	Email        string `json:"email"`
	UserMetadata struct {
		Name string `json:"name"`
	} `json:"user_metadata"`
	jwt.RegisteredClaims
}

// TokenVerifier validates provider access tokens (HS256) and extracts the
// user projection from their claims.
type TokenVerifier struct {
	secret []byte
}

// NewTokenVerifier creates a verifier for the given signing secret.
func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret)}
}

// Verify checks signature and expiry and returns the token's user.
// Any failure, including an empty token, maps to ErrNoSession.
func (v *TokenVerifier) Verify(tokenString string) (User, error) {
	if tokenString == "" || len(v.secret) == 0 {
		return User{}, ErrNoSession
	}

	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return User{}, ErrNoSession
	}

	name := claims.UserMetadata.Name
	if name == "" {
		name = "User"
	}

	return User{
		ID:    claims.Subject,
		Email: claims.Email,
		Name:  name,
	}, nil
}
