package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/patentwire/patentwire/internal/config"
	"github.com/patentwire/patentwire/internal/identity"
	"github.com/patentwire/patentwire/internal/logger"
	"github.com/patentwire/patentwire/internal/middleware"
	"github.com/patentwire/patentwire/internal/server"
	"github.com/patentwire/patentwire/internal/session"
	"github.com/patentwire/patentwire/internal/web"
)

// NewRouter assembles the full route table: the JSON API, health and
// metrics, and the navigable pages behind the session middleware and the
// route guard.
func NewRouter(
	cfg *config.Config,
	log logger.Logger,
	apiHandler *Handler,
	pages *web.Handler,
	provider identity.Provider,
	sessions *session.Store,
) *gin.Engine {
	if !cfg.Service.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.SetHTMLTemplate(web.Templates())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Metrics())

	RegisterRoutes(router, apiHandler)

	authenticate := middleware.Authenticate(provider, sessions, cfg.Session.CookieName)
	guard := middleware.RouteGuard(middleware.GuardConfig{
		ProtectedPrefixes: cfg.Guard.ProtectedPrefixes,
		HomePath:          cfg.Guard.HomePath,
		LoginPath:         cfg.Guard.LoginPath,
		SignupPath:        cfg.Guard.SignupPath,
	})

	navigable := router.Group("", authenticate, guard)
	pages.Register(navigable)

	router.NoRoute(authenticate, pages.NotFound)

	return router
}

// NewServer wraps the router in an HTTP server with the configured
// timeouts.
func NewServer(cfg *config.Config, router *gin.Engine) *http.Server {
	return server.New(server.Config{
		Address:      cfg.Address(),
		ReadTimeout:  cfg.Service.ReadTimeout,
		WriteTimeout: cfg.Service.WriteTimeout,
		IdleTimeout:  cfg.Service.IdleTimeout,
	}, router)
}
