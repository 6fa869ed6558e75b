package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	"inventory-management/config"
	_ "inventory-management/docs" // Swagger docs
	"inventory-management/internal/httpserver"
	"inventory-management/pkg/docstore"
	"inventory-management/pkg/docstore/firestore"
	"inventory-management/pkg/docstore/memory"
	"inventory-management/pkg/docstore/postgres"
	"inventory-management/pkg/docstore/redis"
	"inventory-management/pkg/identity"
	"inventory-management/pkg/log"
	"inventory-management/pkg/scope"
)

// @title       Inventory Management API
// @description Categories, items and search over a hosted document store.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration (.env is optional)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Inventory Management API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Document store
	store, err := openStore(ctx, cfg.Store)
	if err != nil {
		logger.Error(ctx, "Failed to open document store: ", err)
		return
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warnf(ctx, "Failed to close document store: %v", err)
		}
	}()
	logger.Infof(ctx, "Document store: %s", cfg.Store.Driver)

	// 4. Identity and sessions
	provider, err := openIdentity(ctx, cfg.Auth.Identity)
	if err != nil {
		logger.Error(ctx, "Failed to initialize identity provider: ", err)
		return
	}
	logger.Infof(ctx, "Identity provider: %s", cfg.Auth.Identity.Provider)

	sessions := scope.New(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL, scope.WithMaxRevoked(cfg.Auth.MaxRevokedSessions))

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Store:           store,
		Identity:        provider,
		Sessions:        sessions,
		LoginRatePerMin: cfg.Auth.LoginRatePerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func openStore(ctx context.Context, cfg config.StoreConfig) (docstore.Store, error) {
	switch cfg.Driver {
	case config.StoreDriverFirestore:
		return firestore.New(ctx, firestore.Config{
			ProjectID:       cfg.Firestore.ProjectID,
			CredentialsPath: cfg.Firestore.CredentialsPath,
		})
	case config.StoreDriverRedis:
		return redis.New(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
	case config.StoreDriverPostgres:
		return postgres.New(ctx, cfg.Postgres.DSN)
	case config.StoreDriverMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

func openIdentity(ctx context.Context, cfg config.IdentityConfig) (identity.Provider, error) {
	switch cfg.Provider {
	case config.IdentityProviderFirebase:
		return identity.NewFirebase(ctx, option.WithAPIKey(cfg.FirebaseAPIKey))
	case config.IdentityProviderStatic:
		users := make([]identity.StaticUser, 0, len(cfg.Users))
		for _, u := range cfg.Users {
			users = append(users, identity.StaticUser{ID: u.ID, Email: u.Email, PasswordHash: u.PasswordHash})
		}
		return identity.NewStatic(users), nil
	default:
		return nil, fmt.Errorf("unknown identity provider %q", cfg.Provider)
	}
}
