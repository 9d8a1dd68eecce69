// Package api implements the JSON surface: article listings, single
// articles and the auth endpoints backed by the identity provider.
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/patentwire/patentwire/internal/content"
	"github.com/patentwire/patentwire/internal/domain"
	"github.com/patentwire/patentwire/internal/i18n"
	"github.com/patentwire/patentwire/internal/identity"
	"github.com/patentwire/patentwire/internal/logger"
	"github.com/patentwire/patentwire/internal/session"
)

// sessionCookieMaxAge bounds the session cookie lifetime; the token inside
// carries its own expiry and is re-verified on every request.
const sessionCookieMaxAge = 7 * 24 * 60 * 60

// Handler holds the API request handlers.
type Handler struct {
	gateway       content.Gateway
	provider      identity.Provider
	sessions      *session.Store
	log           logger.Logger
	sessionCookie string
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(
	gateway content.Gateway,
	provider identity.Provider,
	sessions *session.Store,
	log logger.Logger,
	sessionCookie string,
) *Handler {
	return &Handler{
		gateway:       gateway,
		provider:      provider,
		sessions:      sessions,
		log:           log,
		sessionCookie: sessionCookie,
	}
}

// ListArticles handles GET /api/articles?category&locale.
func (h *Handler) ListArticles(c *gin.Context) {
	category := i18n.ParseCategory(c.Query("category"))

	var locale i18n.Locale
	if raw := c.Query("locale"); raw != "" {
		locale = i18n.ParseLocale(raw)
	}

	articles, err := h.gateway.ListArticles(c.Request.Context(), category, locale)
	if err != nil {
		h.log.Error("List articles failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load articles"})
		return
	}

	c.JSON(http.StatusOK, articles)
}

// GetArticle handles GET /api/articles/:id.
func (h *Handler) GetArticle(c *gin.Context) {
	article, err := h.gateway.GetArticle(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		h.log.Error("Get article failed", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load article"})
		return
	}

	c.JSON(http.StatusOK, article)
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type sessionEnvelope struct {
	Session identity.Session `json:"session"`
}

// Login handles POST /api/login. On failure the upstream provider message
// is passed through so the login form can show it; credentials themselves
// are never logged.
func (h *Handler) Login(c *gin.Context) {
	h.authenticate(c, h.provider.SignIn)
}

// Signup handles POST /api/signup.
func (h *Handler) Signup(c *gin.Context) {
	h.authenticate(c, h.provider.SignUp)
}

func (h *Handler) authenticate(c *gin.Context, fn func(ctx context.Context, email, password string) (identity.Session, error)) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	sess, err := fn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	h.sessions.SetUser(sess.AccessToken, sess.User)
	h.setSessionCookie(c, sess.AccessToken, sessionCookieMaxAge)

	c.JSON(http.StatusOK, sessionEnvelope{Session: sess})
}

// Logout handles POST /api/logout.
func (h *Handler) Logout(c *gin.Context) {
	token := h.requestToken(c)
	if token != "" {
		if err := h.provider.SignOut(c.Request.Context(), token); err != nil {
			// The local session is cleared regardless; sign-out must not
			// strand the user logged in because the provider hiccuped.
			h.log.Warn("Provider sign-out failed", logger.Error(err))
		}
		h.sessions.ClearUser(token)
	}

	h.setSessionCookie(c, "", -1)
	c.Status(http.StatusNoContent)
}

// requestToken extracts the access token from the Authorization header or
// the session cookie.
func (h *Handler) requestToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	token, err := c.Cookie(h.sessionCookie)
	if err != nil {
		return ""
	}
	return token
}

func (h *Handler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.sessionCookie, token, maxAge, "/", "", false, true)
}
