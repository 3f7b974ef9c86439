package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Backend selectors.
const (
	SessionMemory = "memory"
	SessionRedis  = "redis"

	IdentityDemo    = "demo"
	IdentityAccount = "account"

	CatalogSeed  = "seed"
	CatalogFile  = "file"
	CatalogMongo = "mongo"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET, default=dev-secret"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`
	LogPretty bool          `env:"LOG_PRETTY, default=false"`

	// SimulatedLatency is the artificial delay of demo identity, catalog
	// and stats calls.
	SimulatedLatency time.Duration `env:"SIMULATED_LATENCY, default=1s"`

	// SessionIdleTTL is how long an unused profile's session stays cached
	// in memory before it is reloaded from storage on demand.
	SessionIdleTTL time.Duration `env:"SESSION_IDLE_TTL, default=30m"`

	SessionBackend   string `env:"SESSION_BACKEND,   default=memory"`
	IdentityProvider string `env:"IDENTITY_PROVIDER, default=demo"`
	CatalogBackend   string `env:"CATALOG_BACKEND,   default=seed"`
	CatalogFile      string `env:"CATALOG_FILE"`

	Chat  ChatConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type ChatConfig struct {
	ReplyDelay time.Duration `env:"CHAT_REPLY_DELAY, default=1s"`
	Workers    int           `env:"CHAT_WORKERS,     default=4"`

	// IdleTTL is how long an untouched conversation is kept.
	IdleTTL time.Duration `env:"CHAT_IDLE_TTL, default=1h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=research_nexus"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// NeedsMongo reports whether any configured backend talks to MongoDB.
func (c *Config) NeedsMongo() bool {
	return c.CatalogBackend == CatalogMongo || c.IdentityProvider == IdentityAccount
}

// NeedsRedis reports whether any configured backend talks to Redis.
func (c *Config) NeedsRedis() bool {
	return c.SessionBackend == SessionRedis
}

// Validate rejects unknown backend selectors.
func (c *Config) Validate() error {
	switch c.SessionBackend {
	case SessionMemory, SessionRedis:
	default:
		return fmt.Errorf("config: unknown SESSION_BACKEND %q", c.SessionBackend)
	}
	switch c.IdentityProvider {
	case IdentityDemo, IdentityAccount:
	default:
		return fmt.Errorf("config: unknown IDENTITY_PROVIDER %q", c.IdentityProvider)
	}
	switch c.CatalogBackend {
	case CatalogSeed, CatalogMongo:
	case CatalogFile:
		if c.CatalogFile == "" {
			return fmt.Errorf("config: CATALOG_FILE is required when CATALOG_BACKEND=file")
		}
	default:
		return fmt.Errorf("config: unknown CATALOG_BACKEND %q", c.CatalogBackend)
	}
	return nil
}

// Load reads an optional .env file, then configuration from environment
// variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	// A missing .env is fine; the process environment still applies.
	_ = godotenv.Load()
	return Process(ctx, envconfig.OsLookuper())
}

// Process builds a Config from the given lookuper.
func Process(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
