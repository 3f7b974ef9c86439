package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	_ "github.com/researchnexus/nexus/docs"
	"github.com/researchnexus/nexus/internal/api"
	"github.com/researchnexus/nexus/internal/core/service"
	"github.com/researchnexus/nexus/internal/infrastructure/queue"
	"github.com/researchnexus/nexus/internal/infrastructure/stats"
	"github.com/researchnexus/nexus/pkg/logger"
)

const (
	shutdownTimeout = 10 * time.Second
	sweepInterval   = time.Minute
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	log := logger.Get()

	b, err := connectBackends(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer b.close(log)

	source, err := b.catalogSource(cfg)
	if err != nil {
		return err
	}
	provider, err := b.identityProvider(ctx, cfg)
	if err != nil {
		return err
	}

	dispatcher := queue.NewDispatcher(cfg.Chat.Workers, log)
	chat := service.NewChatService(dispatcher, b.dedup(), service.ChatOptions{
		ReplyDelay: cfg.Chat.ReplyDelay,
	}, log)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	dispatcher.Start(workerCtx, chat)

	sessions := service.NewSessionRegistry(b.sessionStorage(cfg), provider, log)
	go sweepIdle(workerCtx, sessions, chat)

	e := api.NewRouter(api.Deps{
		Sessions:  sessions,
		Tokens:    service.NewJWTIssuer(cfg.JWTSecret, cfg.TokenTTL),
		Catalog:   service.NewCatalogService(source, log),
		Dashboard: service.NewDashboardService(stats.NewStatic(cfg.SimulatedLatency)),
		Chat:      chat,
		Readiness: b.readiness(),
		JWTSecret: cfg.JWTSecret,
		Log:       log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("env", cfg.Env).
			Str("catalog", cfg.CatalogBackend).
			Str("sessions", cfg.SessionBackend).
			Str("identity", cfg.IdentityProvider).
			Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		stopWorkers()
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	stopWorkers()
	dispatcher.Wait()
	log.Info().Msg("server stopped")
	return nil
}

// sweepIdle evicts idle sessions and conversations until ctx is done.
func sweepIdle(ctx context.Context, sessions *service.SessionRegistry, chat *service.ChatService) {
	log := logger.Get()
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s := sessions.Sweep(cfg.SessionIdleTTL)
			c := chat.Sweep(cfg.Chat.IdleTTL)
			if s > 0 || c > 0 {
				log.Debug().Int("sessions", s).Int("conversations", c).Msg("idle state evicted")
			}
		}
	}
}
