package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/patentwire/patentwire/internal/api"
	"github.com/patentwire/patentwire/internal/config"
	"github.com/patentwire/patentwire/internal/content"
	"github.com/patentwire/patentwire/internal/identity"
	"github.com/patentwire/patentwire/internal/logger"
	"github.com/patentwire/patentwire/internal/server"
	"github.com/patentwire/patentwire/internal/session"
	"github.com/patentwire/patentwire/internal/viewgate"
	"github.com/patentwire/patentwire/internal/web"
)

func main() {
	// Local development convenience; absence of a .env file is fine.
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting patentwire",
		logger.String("name", cfg.Service.Name),
		logger.Int("port", cfg.Service.Port),
		logger.Bool("debug", cfg.Service.Debug),
		logger.Bool("content_source_configured", cfg.Content.Token != "" && cfg.Content.DatabaseID != ""),
	)

	gateway := content.NewNotionGateway(content.Config{
		BaseURL:    cfg.Content.BaseURL,
		Token:      cfg.Content.Token,
		DatabaseID: cfg.Content.DatabaseID,
		Version:    cfg.Content.Version,
		Timeout:    cfg.Content.Timeout,
	}, log)

	provider := identity.NewGoTrueProvider(identity.GoTrueConfig{
		BaseURL:   cfg.Identity.BaseURL,
		AnonKey:   cfg.Identity.AnonKey,
		JWTSecret: cfg.Identity.JWTSecret,
	})

	var gateStore viewgate.Store
	if cfg.Redis.Address != "" {
		redisStore, err := viewgate.NewRedisStore(viewgate.RedisConfig{
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Error("Failed to connect to Redis", logger.Error(err))
			os.Exit(1)
		}
		defer redisStore.Close()
		gateStore = redisStore
		log.Info("View gate using Redis store", logger.String("address", cfg.Redis.Address))
	} else {
		gateStore = viewgate.NewMemoryStore()
		log.Info("View gate using in-memory store")
	}

	gate := viewgate.NewPolicy(gateStore)
	sessions := session.NewStore(cfg.Session.CacheTTL)

	apiHandler := api.NewHandler(gateway, provider, sessions, log, cfg.Session.CookieName)
	pages := web.NewHandler(gateway, gate, provider, sessions, log,
		cfg.Session.VisitorCookieName, cfg.Session.CookieName)

	router := api.NewRouter(cfg, log, apiHandler, pages, provider, sessions)
	srv := api.NewServer(cfg, router)

	if err := server.RunWithGracefulShutdown(context.Background(), srv, log, server.DefaultShutdownTimeout); err != nil {
		log.Error("Server error", logger.Error(err))
		os.Exit(1)
	}
}
