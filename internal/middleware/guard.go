package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// GuardConfig configures the route guard.
type GuardConfig struct {
	// ProtectedPrefixes are path prefixes that require a session.
	ProtectedPrefixes []string
	// HomePath is the redirect target for both guard rules.
	HomePath string
	// LoginPath and SignupPath are hidden from already-authenticated users.
	LoginPath  string
	SignupPath string
}

// RouteGuard redirects between protected and public navigable routes. It
// must run after Authenticate:
//
//   - a protected path without a session redirects to home;
//   - the login or signup path with a session redirects to home;
//   - everything else passes through unmodified.
func RouteGuard(cfg GuardConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		_, authenticated := CurrentUser(c)

		if !authenticated && isProtected(path, cfg.ProtectedPrefixes) {
			c.Redirect(http.StatusFound, cfg.HomePath)
			c.Abort()
			return
		}

		if authenticated && (path == cfg.LoginPath || path == cfg.SignupPath) {
			c.Redirect(http.StatusFound, cfg.HomePath)
			c.Abort()
			return
		}

		c.Next()
	}
}

func isProtected(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
