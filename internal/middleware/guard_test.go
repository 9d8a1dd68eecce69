package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/patentwire/patentwire/internal/identity"
	"github.com/patentwire/patentwire/internal/middleware"
	"github.com/patentwire/patentwire/internal/session"
)

const (
	cookieName = "pw_session"
	goodToken  = "good-token"
)

// fakeProvider accepts exactly one token and rejects everything else.
type fakeProvider struct{}

func (fakeProvider) SignIn(context.Context, string, string) (identity.Session, error) {
	return identity.Session{}, identity.ErrNoSession
}

func (fakeProvider) SignUp(context.Context, string, string) (identity.Session, error) {
	return identity.Session{}, identity.ErrNoSession
}

func (fakeProvider) SignOut(context.Context, string) error { return nil }

func (fakeProvider) UserFromToken(_ context.Context, token string) (identity.User, error) {
	if token == goodToken {
		return identity.User{ID: "u1", Email: "a@example.com", Name: "Alice"}, nil
	}
	return identity.User{}, identity.ErrNoSession
}

func guardedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.Authenticate(fakeProvider{}, session.NewStore(time.Minute), cookieName))
	r.Use(middleware.RouteGuard(middleware.GuardConfig{
		ProtectedPrefixes: []string{"/profile"},
		HomePath:          "/",
		LoginPath:         "/login",
		SignupPath:        "/signup",
	}))

	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	r.GET("/", ok)
	r.GET("/articles", ok)
	r.GET("/profile", ok)
	r.GET("/login", ok)
	r.GET("/signup", ok)

	return r
}

func request(t *testing.T, r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGuardRedirectsAnonymousFromProtectedPath(t *testing.T) {
	r := guardedRouter(t)

	w := request(t, r, "/profile", "")
	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}
}

func TestGuardRejectsInvalidToken(t *testing.T) {
	r := guardedRouter(t)

	// A bad token is "no session", not an error.
	w := request(t, r, "/profile", "tampered")
	if w.Code != http.StatusFound {
		t.Fatalf("expected 302 for invalid token, got %d", w.Code)
	}
}

func TestGuardAllowsAuthenticatedProtectedPath(t *testing.T) {
	r := guardedRouter(t)

	w := request(t, r, "/profile", goodToken)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestGuardRedirectsAuthenticatedFromAuthForms(t *testing.T) {
	r := guardedRouter(t)

	for _, path := range []string{"/login", "/signup"} {
		w := request(t, r, path, goodToken)
		if w.Code != http.StatusFound {
			t.Fatalf("%s: expected 302, got %d", path, w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/" {
			t.Fatalf("%s: expected redirect to /, got %q", path, loc)
		}
	}
}

func TestGuardPassesPublicPathsThrough(t *testing.T) {
	r := guardedRouter(t)

	for _, token := range []string{"", goodToken} {
		for _, path := range []string{"/", "/articles"} {
			w := request(t, r, path, token)
			if w.Code != http.StatusOK {
				t.Fatalf("%s (token=%q): expected 200, got %d", path, token, w.Code)
			}
		}
	}

	// Anonymous users may see the auth forms.
	for _, path := range []string{"/login", "/signup"} {
		w := request(t, r, path, "")
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
	}
}
