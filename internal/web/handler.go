// Package web serves the navigable pages: home, article listings, article
// detail behind the view gate, the auth forms and the profile page.
// Markup is deliberately plain; the interesting behavior is the gate and
// the route guard.
package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/patentwire/patentwire/internal/content"
	"github.com/patentwire/patentwire/internal/domain"
	"github.com/patentwire/patentwire/internal/i18n"
	"github.com/patentwire/patentwire/internal/identity"
	"github.com/patentwire/patentwire/internal/logger"
	"github.com/patentwire/patentwire/internal/middleware"
	"github.com/patentwire/patentwire/internal/session"
	"github.com/patentwire/patentwire/internal/viewgate"
)

const (
	localeCookie       = "locale"
	localeCookieMaxAge = 365 * 24 * 60 * 60
	visitorCookieAge   = 365 * 24 * 60 * 60
	sessionCookieAge   = 7 * 24 * 60 * 60

	relatedArticleLimit = 4
)

// Handler holds the page handlers and their dependencies.
type Handler struct {
	gateway       content.Gateway
	gate          *viewgate.Policy
	provider      identity.Provider
	sessions      *session.Store
	log           logger.Logger
	visitorCookie string
	sessionCookie string
}

// NewHandler creates a page Handler.
func NewHandler(
	gateway content.Gateway,
	gate *viewgate.Policy,
	provider identity.Provider,
	sessions *session.Store,
	log logger.Logger,
	visitorCookie, sessionCookie string,
) *Handler {
	return &Handler{
		gateway:       gateway,
		gate:          gate,
		provider:      provider,
		sessions:      sessions,
		log:           log,
		visitorCookie: visitorCookie,
		sessionCookie: sessionCookie,
	}
}

// Register wires the navigable routes onto the given group. The group is
// expected to carry the Authenticate and RouteGuard middleware.
func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/", h.Home)
	r.GET("/articles", h.Articles)
	r.GET("/articles/:id", h.Article)
	r.GET("/category/:slug", h.Category)
	r.GET("/login", h.LoginPage)
	r.POST("/login", h.LoginSubmit)
	r.GET("/signup", h.SignupPage)
	r.POST("/signup", h.SignupSubmit)
	r.POST("/logout", h.Logout)
	r.GET("/profile", h.Profile)
	r.GET("/lang/:locale", h.SetLocale)
}

// pageData is the common payload every template receives.
type pageData struct {
	Dict     *i18n.Dictionary
	Locale   i18n.Locale
	Locales  []i18n.Locale
	Names    map[i18n.Locale]string
	User     *identity.User
	LoggedIn bool
}

func (h *Handler) page(c *gin.Context) pageData {
	locale := h.locale(c)
	data := pageData{
		Dict:    i18n.ForLocale(locale),
		Locale:  locale,
		Locales: i18n.Locales,
		Names:   i18n.LocaleNames,
	}
	if user, ok := middleware.CurrentUser(c); ok {
		data.User = &user
		data.LoggedIn = true
	}
	return data
}

// locale reads the visitor's locale preference cookie, falling back to en.
func (h *Handler) locale(c *gin.Context) i18n.Locale {
	raw, err := c.Cookie(localeCookie)
	if err != nil {
		return i18n.LocaleEN
	}
	return i18n.ParseLocale(raw)
}

// visitorID returns the browser-profile visitor ID, minting and setting
// the cookie on first visit.
func (h *Handler) visitorID(c *gin.Context) string {
	if id, err := c.Cookie(h.visitorCookie); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.visitorCookie, id, visitorCookieAge, "/", "", false, true)
	return id
}

// Home renders the landing page.
func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home", gin.H{"Page": h.page(c)})
}

// Articles renders the article listing, optionally category-filtered via
// the query string.
func (h *Handler) Articles(c *gin.Context) {
	h.renderListing(c, i18n.ParseCategory(c.Query("category")))
}

// Category renders the listing for one category path.
func (h *Handler) Category(c *gin.Context) {
	h.renderListing(c, i18n.ParseCategory(c.Param("slug")))
}

func (h *Handler) renderListing(c *gin.Context, category i18n.Category) {
	page := h.page(c)

	articles, err := h.gateway.ListArticles(c.Request.Context(), category, "")
	if err != nil {
		// Only context cancellation reaches here; the client is gone.
		return
	}

	c.HTML(http.StatusOK, "articles", gin.H{
		"Page":       page,
		"Category":   category,
		"Categories": categoryLinks(page.Locale),
		"Articles":   h.cards(articles, page.Locale),
	})
}

// categoryLink is one sidebar entry: the category path slug and its label
// resolved for the page locale.
type categoryLink struct {
	Slug  i18n.Category
	Label string
}

func categoryLinks(locale i18n.Locale) []categoryLink {
	links := make([]categoryLink, 0, len(i18n.Categories)-1)
	for _, cat := range i18n.Categories {
		if cat == i18n.CategoryAll {
			continue
		}
		links = append(links, categoryLink{Slug: cat, Label: i18n.CategoryLabel(locale, cat)})
	}
	return links
}

// articleCard is the listing projection of an article, resolved for the
// page locale.
type articleCard struct {
	ID            string
	Title         string
	Summary       string
	CoverImage    string
	PublishedDate string
	Category      i18n.Category
	Author        string
	Tags          []string
}

func (h *Handler) cards(articles []domain.Article, locale i18n.Locale) []articleCard {
	cards := make([]articleCard, 0, len(articles))
	for _, a := range articles {
		cards = append(cards, articleCard{
			ID:            a.ID,
			Title:         a.Title.Resolve(locale),
			Summary:       a.Summary.Resolve(locale),
			CoverImage:    a.CoverImage,
			PublishedDate: a.PublishedDate,
			Category:      a.Category,
			Author:        a.Author,
			Tags:          a.Tags,
		})
	}
	return cards
}

// Article renders the article detail page. The view gate is consulted
// first: a denied open renders the restriction screen instead of the
// article, and an allowed anonymous open is recorded exactly once.
func (h *Handler) Article(c *gin.Context) {
	page := h.page(c)
	visitorID := h.visitorID(c)
	articleID := c.Param("id")

	article, err := h.gateway.GetArticle(c.Request.Context(), articleID)
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			c.HTML(http.StatusNotFound, "notfound", gin.H{"Page": page})
			return
		}
		return
	}

	allowed, err := h.gate.CanView(c.Request.Context(), visitorID, articleID, page.LoggedIn)
	if err != nil {
		h.log.Error("View gate check failed", logger.Error(err))
		// An unreadable gate store fails open for this render; nothing is
		// recorded, so the visitor's free open is not consumed.
		allowed = true
	} else if allowed && !page.LoggedIn {
		if err := h.gate.RecordView(c.Request.Context(), visitorID, articleID); err != nil {
			h.log.Error("Recording view failed", logger.Error(err))
		}
	}

	if !allowed {
		c.HTML(http.StatusOK, "restricted", gin.H{"Page": page})
		return
	}

	// Related articles are fetched only once the article resolved and
	// yielded a category.
	var related []articleCard
	if article.Category != "" {
		if sameCategory, err := h.gateway.ListArticles(c.Request.Context(), article.Category, ""); err == nil {
			for _, a := range sameCategory {
				if a.ID == article.ID {
					continue
				}
				related = append(related, h.cards([]domain.Article{a}, page.Locale)...)
				if len(related) == relatedArticleLimit {
					break
				}
			}
		}
	}

	c.HTML(http.StatusOK, "article", gin.H{
		"Page":       page,
		"Article":    h.cards([]domain.Article{article}, page.Locale)[0],
		"Properties": article.Properties.Resolve(page.Locale),
		"Related":    related,
	})
}

// SetLocale stores the locale preference cookie and bounces back.
func (h *Handler) SetLocale(c *gin.Context) {
	locale := i18n.ParseLocale(c.Param("locale"))
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(localeCookie, string(locale), localeCookieMaxAge, "/", "", false, false)

	// Only same-site paths; "//host" is a protocol-relative redirect.
	next := c.Query("next")
	if next == "" || next[0] != '/' || strings.HasPrefix(next, "//") {
		next = "/"
	}
	c.Redirect(http.StatusFound, next)
}

// NotFound renders the localized not-found page for unmatched routes.
func (h *Handler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "notfound", gin.H{"Page": h.page(c)})
}
