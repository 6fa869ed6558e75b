package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Inventory
	Store StoreConfig
	Auth  AuthConfig
}

type EnvironmentConfig struct {
	Name string `validate:"oneof=development staging production"`
}

type HTTPServerConfig struct {
	Port            int    `validate:"min=1,max=65535"`
	Mode            string `validate:"oneof=debug release test"`
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string `validate:"oneof=debug info warn error"`
	Mode         string
	Encoding     string `validate:"oneof=console json"`
	ColorEnabled bool
}

// Store drivers.
const (
	StoreDriverMemory    = "memory"
	StoreDriverFirestore = "firestore"
	StoreDriverRedis     = "redis"
	StoreDriverPostgres  = "postgres"
)

type StoreConfig struct {
	Driver    string `validate:"oneof=memory firestore redis postgres"`
	Firestore FirestoreConfig
	Redis     RedisConfig
	Postgres  PostgresConfig
}

type FirestoreConfig struct {
	ProjectID       string
	CredentialsPath string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int `validate:"min=0"`
	Prefix   string
}

type PostgresConfig struct {
	DSN string
}

// Identity providers.
const (
	IdentityProviderFirebase = "firebase"
	IdentityProviderStatic   = "static"
)

type AuthConfig struct {
	JWTSecret       string        `validate:"required,min=16"`
	SessionTTL      time.Duration `validate:"gt=0"`
	LoginRatePerMin int           `validate:"min=1"`

	// MaxRevokedSessions is how many sign-outs are remembered within one SessionTTL.
	MaxRevokedSessions int `validate:"min=1"`

	Identity IdentityConfig
}

type IdentityConfig struct {
	Provider       string `validate:"oneof=firebase static"`
	FirebaseAPIKey string
	Users          []UserConfig `validate:"dive"`
}

// UserConfig is a dev-only account for the static identity provider.
type UserConfig struct {
	ID           string
	Email        string `validate:"required,email"`
	PasswordHash string `validate:"required"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Store
	cfg.Store.Driver = strings.ToLower(viper.GetString("store.driver"))
	cfg.Store.Firestore.ProjectID = viper.GetString("store.firestore.project_id")
	cfg.Store.Firestore.CredentialsPath = viper.GetString("store.firestore.credentials_path")
	cfg.Store.Redis.Addr = viper.GetString("store.redis.addr")
	cfg.Store.Redis.Password = viper.GetString("store.redis.password")
	cfg.Store.Redis.DB = viper.GetInt("store.redis.db")
	cfg.Store.Redis.Prefix = viper.GetString("store.redis.prefix")
	cfg.Store.Postgres.DSN = viper.GetString("store.postgres.dsn")

	// Auth
	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	cfg.Auth.SessionTTL = viper.GetDuration("auth.session_ttl")
	cfg.Auth.LoginRatePerMin = viper.GetInt("auth.login_rate_per_min")
	cfg.Auth.MaxRevokedSessions = viper.GetInt("auth.max_revoked_sessions")
	cfg.Auth.Identity.Provider = strings.ToLower(viper.GetString("auth.identity.provider"))
	cfg.Auth.Identity.FirebaseAPIKey = viper.GetString("auth.identity.firebase_api_key")
	cfg.Auth.Identity.Users = loadUsers()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("store.driver", StoreDriverMemory)
	viper.SetDefault("store.redis.prefix", "inventory")
	viper.SetDefault("auth.session_ttl", "24h")
	viper.SetDefault("auth.login_rate_per_min", 10)
	viper.SetDefault("auth.max_revoked_sessions", 10000)
	viper.SetDefault("auth.identity.provider", IdentityProviderFirebase)
}

// loadUsers reads auth.identity.users either as a YAML list of maps or, from the
// environment, as "email:hash" pairs separated by commas.
func loadUsers() []UserConfig {
	if !viper.IsSet("auth.identity.users") {
		return nil
	}

	var users []UserConfig
	switch raw := viper.Get("auth.identity.users").(type) {
	case []interface{}:
		for _, u := range raw {
			if m, ok := u.(map[string]interface{}); ok {
				users = append(users, UserConfig{
					ID:           getStringFromMap(m, "id"),
					Email:        getStringFromMap(m, "email"),
					PasswordHash: getStringFromMap(m, "password_hash"),
				})
			}
		}
	case string:
		for _, pair := range strings.Split(raw, ",") {
			email, hash, ok := strings.Cut(strings.TrimSpace(pair), ":")
			if !ok {
				continue
			}
			users = append(users, UserConfig{Email: strings.TrimSpace(email), PasswordHash: strings.TrimSpace(hash)})
		}
	}
	return users
}

// Validate checks struct tags first, then the rules that depend on the chosen driver.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	switch c.Store.Driver {
	case StoreDriverFirestore:
		if c.Store.Firestore.ProjectID == "" {
			return errors.New("store.firestore.project_id is required for the firestore driver")
		}
	case StoreDriverRedis:
		if c.Store.Redis.Addr == "" {
			return errors.New("store.redis.addr is required for the redis driver")
		}
	case StoreDriverPostgres:
		if c.Store.Postgres.DSN == "" {
			return errors.New("store.postgres.dsn is required for the postgres driver")
		}
	}

	switch c.Auth.Identity.Provider {
	case IdentityProviderFirebase:
		if c.Auth.Identity.FirebaseAPIKey == "" {
			return errors.New("auth.identity.firebase_api_key is required for the firebase provider")
		}
	case IdentityProviderStatic:
		if len(c.Auth.Identity.Users) == 0 {
			return errors.New("auth.identity.users must list at least one user for the static provider")
		}
		if c.Environment.Name == "production" {
			return errors.New("the static identity provider is not allowed in production")
		}
	}

	return nil
}

func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
