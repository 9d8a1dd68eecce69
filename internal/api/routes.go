package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes wires the JSON API, health and metrics endpoints.
func RegisterRoutes(router *gin.Engine, h *Handler) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := router.Group("/api")
	apiGroup.GET("/articles", h.ListArticles)
	apiGroup.GET("/articles/:id", h.GetArticle)
	apiGroup.POST("/login", h.Login)
	apiGroup.POST("/signup", h.Signup)
	apiGroup.POST("/logout", h.Logout)
}
