package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Environment: EnvironmentConfig{Name: "development"},
		HTTPServer:  HTTPServerConfig{Port: 8080, Mode: "debug"},
		Logger:      LoggerConfig{Level: "debug", Encoding: "console"},
		Store:       StoreConfig{Driver: StoreDriverMemory},
		Auth: AuthConfig{
			JWTSecret:          "0123456789abcdef",
			SessionTTL:         time.Hour,
			LoginRatePerMin:    10,
			MaxRevokedSessions: 100,
			Identity: IdentityConfig{
				Provider: IdentityProviderStatic,
				Users:    []UserConfig{{Email: "ana@example.com", PasswordHash: "$2a$10$x"}},
			},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.Store.Driver = "mongo" }, wantErr: "Driver"},
		{name: "no revocation capacity", mutate: func(c *Config) { c.Auth.MaxRevokedSessions = 0 }, wantErr: "MaxRevokedSessions"},
		{name: "short secret", mutate: func(c *Config) { c.Auth.JWTSecret = "short" }, wantErr: "JWTSecret"},
		{name: "redis without addr", mutate: func(c *Config) { c.Store.Driver = StoreDriverRedis }, wantErr: "store.redis.addr"},
		{name: "postgres without dsn", mutate: func(c *Config) { c.Store.Driver = StoreDriverPostgres }, wantErr: "store.postgres.dsn"},
		{name: "firestore without project", mutate: func(c *Config) { c.Store.Driver = StoreDriverFirestore }, wantErr: "project_id"},
		{name: "firebase without key", mutate: func(c *Config) { c.Auth.Identity.Provider = IdentityProviderFirebase }, wantErr: "firebase_api_key"},
		{name: "static without users", mutate: func(c *Config) { c.Auth.Identity.Users = nil }, wantErr: "at least one user"},
		{name: "static in production", mutate: func(c *Config) { c.Environment.Name = "production" }, wantErr: "not allowed in production"},
		{name: "bad user email", mutate: func(c *Config) { c.Auth.Identity.Users[0].Email = "nope" }, wantErr: "Email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "0123456789abcdef0123")
	t.Setenv("AUTH_IDENTITY_PROVIDER", "static")
	t.Setenv("AUTH_IDENTITY_USERS", "ana@example.com:$2a$10$abc, bob@example.com:$2a$10$def")
	t.Setenv("STORE_DRIVER", "memory")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Auth.SessionTTL != 24*time.Hour {
		t.Errorf("expected default ttl 24h, got %v", cfg.Auth.SessionTTL)
	}
	if cfg.Auth.MaxRevokedSessions != 10000 {
		t.Errorf("expected default revocation capacity 10000, got %d", cfg.Auth.MaxRevokedSessions)
	}
	if len(cfg.Auth.Identity.Users) != 2 || cfg.Auth.Identity.Users[1].Email != "bob@example.com" {
		t.Errorf("unexpected users: %+v", cfg.Auth.Identity.Users)
	}
}
