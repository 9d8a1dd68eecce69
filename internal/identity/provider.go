// Package identity is the boundary to the external identity provider.
// The service never stores passwords or issues tokens itself; it only
// consumes sign-in, sign-up, sign-out and session-verification
// capabilities, behind an interface so the provider is swappable.
package identity

import (
	"context"
	"errors"
)

// ErrNoSession is returned when a token is absent, expired or invalid.
// The route guard treats it as "not logged in", never as a failure to
// surface.
var ErrNoSession = errors.New("no valid session")

// User is the minimal authenticated-user projection the UI needs.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session is the result of a successful sign-in or sign-up.
type Session struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// Provider exposes the identity operations the site consumes.
type Provider interface {
	// SignIn exchanges credentials for a session. The returned error
	// message may be shown on the login form.
	SignIn(ctx context.Context, email, password string) (Session, error)
	// SignUp registers a new account and returns its session.
	SignUp(ctx context.Context, email, password string) (Session, error)
	// SignOut revokes the session behind the given access token.
	SignOut(ctx context.Context, accessToken string) error
	// UserFromToken verifies an access token and returns its user
	// projection, or ErrNoSession.
	UserFromToken(ctx context.Context, accessToken string) (User, error)
}
