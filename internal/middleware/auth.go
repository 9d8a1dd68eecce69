// Package middleware holds the gin middleware shared by the API and page
// routes: session resolution, the route guard, CORS, request logging and
// metrics.
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/patentwire/patentwire/internal/identity"
	"github.com/patentwire/patentwire/internal/session"
)

const (
	ctxKeyUser  = "currentUser"
	ctxKeyToken = "sessionToken"
)

// Authenticate resolves the session from the access-token cookie on every
// request. Verification is delegated to the identity provider; any failure
// or absent cookie means "no session" and the request proceeds
// unauthenticated. The session cache only enriches the display projection;
// the authenticated/unauthenticated decision always comes from the
// provider.
func Authenticate(provider identity.Provider, sessions *session.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		user, err := provider.UserFromToken(c.Request.Context(), token)
		if err != nil {
			c.Next()
			return
		}

		if cached, ok := sessions.User(token); ok {
			user = cached
		}

		c.Set(ctxKeyUser, user)
		c.Set(ctxKeyToken, token)
		c.Next()
	}
}

// CurrentUser returns the authenticated user for the request, if any.
func CurrentUser(c *gin.Context) (identity.User, bool) {
	v, ok := c.Get(ctxKeyUser)
	if !ok {
		return identity.User{}, false
	}
	user, ok := v.(identity.User)
	return user, ok
}

// SessionToken returns the verified access token for the request, if any.
func SessionToken(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxKeyToken)
	if !ok {
		return "", false
	}
	token, ok := v.(string)
	return token, ok
}
