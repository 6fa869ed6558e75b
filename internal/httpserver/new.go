package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"inventory-management/pkg/docstore"
	"inventory-management/pkg/identity"
	"inventory-management/pkg/log"
	"inventory-management/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Domain dependencies
	store           docstore.Store
	identity        identity.Provider
	sessions        scope.Manager
	loginRatePerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	Store           docstore.Store
	Identity        identity.Provider
	Sessions        scope.Manager
	LoginRatePerMin int
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		store:           cfg.Store,
		identity:        cfg.Identity,
		sessions:        cfg.Sessions,
		loginRatePerMin: cfg.LoginRatePerMin,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.store == nil {
		return errors.New("store is required")
	}
	if srv.identity == nil {
		return errors.New("identity provider is required")
	}
	if srv.sessions == nil {
		return errors.New("session manager is required")
	}
	return nil
}
