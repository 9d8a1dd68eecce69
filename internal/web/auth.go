package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// LoginPage renders the login form.
func (h *Handler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login", gin.H{"Page": h.page(c)})
}

// LoginSubmit signs the user in via the identity provider and sets the
// session cookie. On failure the form is re-rendered with the provider's
// message; credentials are never logged.
func (h *Handler) LoginSubmit(c *gin.Context) {
	page := h.page(c)
	email := c.PostForm("email")
	password := c.PostForm("password")

	if msg, ok := validateCredentials(page, email, password); !ok {
		c.HTML(http.StatusOK, "login", gin.H{"Page": page, "Error": msg})
		return
	}

	sess, err := h.provider.SignIn(c.Request.Context(), email, password)
	if err != nil {
		c.HTML(http.StatusUnauthorized, "login", gin.H{"Page": page, "Error": err.Error()})
		return
	}

	h.establishSession(c, sess.AccessToken)
	h.sessions.SetUser(sess.AccessToken, sess.User)
	c.Redirect(http.StatusFound, "/")
}

// SignupPage renders the signup form.
func (h *Handler) SignupPage(c *gin.Context) {
	c.HTML(http.StatusOK, "signup", gin.H{"Page": h.page(c)})
}

// SignupSubmit registers a new account and signs it in.
func (h *Handler) SignupSubmit(c *gin.Context) {
	page := h.page(c)
	email := c.PostForm("email")
	password := c.PostForm("password")
	confirm := c.PostForm("confirm_password")

	if msg, ok := validateCredentials(page, email, password); !ok {
		c.HTML(http.StatusOK, "signup", gin.H{"Page": page, "Error": msg})
		return
	}
	if password != confirm {
		c.HTML(http.StatusOK, "signup", gin.H{"Page": page, "Error": page.Dict.Auth.PasswordMismatch})
		return
	}

	sess, err := h.provider.SignUp(c.Request.Context(), email, password)
	if err != nil {
		c.HTML(http.StatusUnauthorized, "signup", gin.H{"Page": page, "Error": err.Error()})
		return
	}

	h.establishSession(c, sess.AccessToken)
	h.sessions.SetUser(sess.AccessToken, sess.User)
	c.Redirect(http.StatusFound, "/")
}

// Logout signs the user out at the provider, clears the local session and
// returns home.
func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.sessionCookie); err == nil && token != "" {
		if err := h.provider.SignOut(c.Request.Context(), token); err != nil {
			h.log.Warn("Provider sign-out failed")
		}
		h.sessions.ClearUser(token)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.sessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// Profile renders the profile page. The route guard ensures a session is
// present before this handler runs.
func (h *Handler) Profile(c *gin.Context) {
	c.HTML(http.StatusOK, "profile", gin.H{"Page": h.page(c)})
}

func (h *Handler) establishSession(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.sessionCookie, token, sessionCookieAge, "/", "", false, true)
}

func validateCredentials(page pageData, email, password string) (string, bool) {
	if email == "" {
		return page.Dict.Auth.EmailRequired, false
	}
	if password == "" {
		return page.Dict.Auth.PasswordRequired, false
	}
	return "", true
}
