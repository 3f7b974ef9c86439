package main

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/researchnexus/nexus/internal/core/ports"
	"github.com/researchnexus/nexus/internal/core/service"
	"github.com/researchnexus/nexus/internal/infrastructure/catalog"
	"github.com/researchnexus/nexus/internal/infrastructure/db/mongo"
	"github.com/researchnexus/nexus/internal/infrastructure/db/redis"
	"github.com/researchnexus/nexus/internal/infrastructure/http/handlers"
	"github.com/researchnexus/nexus/internal/infrastructure/storage/memory"
	"github.com/researchnexus/nexus/internal/pkg/config"
)

// backends holds the external connections the configuration asks for. A
// nil field means that backend is not in use.
type backends struct {
	mongoClient *mongodriver.Client
	mongoDB     *mongodriver.Database
	redis       *goredis.Client
}

func connectBackends(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*backends, error) {
	b := &backends{}

	if cfg.NeedsMongo() {
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		b.mongoClient, b.mongoDB = client, db
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")
	}

	if cfg.NeedsRedis() {
		client, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			b.close(log)
			return nil, err
		}
		b.redis = client
		log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")
	}

	return b, nil
}

func (b *backends) close(log zerolog.Logger) {
	if b.redis != nil {
		if err := b.redis.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close failed")
		}
	}
	if b.mongoClient != nil {
		if err := mongo.Disconnect(b.mongoClient); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}
}

// readiness returns a probe for every backend in use.
func (b *backends) readiness() map[string]handlers.Pinger {
	deps := make(map[string]handlers.Pinger)
	if b.mongoClient != nil {
		client := b.mongoClient
		deps["mongodb"] = handlers.PingFunc(func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		})
	}
	if b.redis != nil {
		client := b.redis
		deps["redis"] = handlers.PingFunc(func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		})
	}
	return deps
}

func (b *backends) catalogSource(cfg *config.Config) (ports.CatalogSource, error) {
	switch cfg.CatalogBackend {
	case config.CatalogSeed:
		return catalog.NewSeed(cfg.SimulatedLatency), nil
	case config.CatalogFile:
		return catalog.NewFile(cfg.CatalogFile), nil
	case config.CatalogMongo:
		if b.mongoDB == nil {
			return nil, fmt.Errorf("catalog backend %q needs mongodb", cfg.CatalogBackend)
		}
		return mongo.NewCatalogRepository(b.mongoDB), nil
	}
	return nil, fmt.Errorf("unknown catalog backend %q", cfg.CatalogBackend)
}

func (b *backends) sessionStorage(cfg *config.Config) ports.SessionStorage {
	if cfg.SessionBackend == config.SessionRedis && b.redis != nil {
		return redis.NewSessionStorage(b.redis)
	}
	return memory.NewKV()
}

func (b *backends) dedup() service.DedupChecker {
	if b.redis != nil {
		return redis.NewDedupChecker(b.redis)
	}
	return memory.NewDedupChecker()
}

func (b *backends) identityProvider(ctx context.Context, cfg *config.Config) (ports.IdentityProvider, error) {
	if cfg.IdentityProvider != config.IdentityAccount {
		return service.NewDemoIdentityProvider(cfg.SimulatedLatency), nil
	}
	if b.mongoDB == nil {
		return nil, fmt.Errorf("identity provider %q needs mongodb", cfg.IdentityProvider)
	}
	repo := mongo.NewAccountRepository(b.mongoDB)
	if err := repo.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("account indexes: %w", err)
	}
	return service.NewAccountIdentityProvider(repo), nil
}
