package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/nestandloomco/intentra/config"
	httpLayer "github.com/nestandloomco/intentra/http"
	"github.com/nestandloomco/intentra/repository"
	"github.com/nestandloomco/intentra/service"
)

const redisKeyPrefix = "intentra:"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	config.LoadEnvFile()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var (
		cache    repository.CacheRepository
		sessions repository.SessionRepository
	)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("failed to reach redis")
		}
		cache = repository.NewRedisCache(rdb, redisKeyPrefix, cfg.CacheTTL)
		sessions = repository.NewSessionRepositoryRedis(rdb, redisKeyPrefix, cfg.SessionTTL)
		log.Info().Str("addr", cfg.RedisAddr).Msg("using redis for cache and sessions")
	} else {
		cache = repository.NewMemoryCache(cfg.CacheTTL)
		memSessions := repository.NewSessionRepositoryMemory(cfg.SessionTTL)
		sessions = memSessions
		go sweepSessions(ctx, memSessions, cfg.SessionTTL)
		log.Info().Msg("using in-memory cache and sessions")
	}

	clock := service.SystemClock{}
	interestService := service.NewInterestService(clock, cache, cfg.Strict)
	leadService := service.NewLeadService(cfg.FormEndpoint, cfg.FormName, cfg.FormTimeout)
	sessionService := service.NewSessionService(
		sessions,
		interestService,
		leadService,
		service.Pacing{
			Delayer:      service.TimerDelayer{},
			ResultsDelay: cfg.ResultsDelay,
			SuccessDelay: cfg.SuccessDelay,
		},
		clock,
	)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer rateLimiter.Stop()

	handler := httpLayer.NewRouter(httpLayer.Handlers{
		Interest: httpLayer.NewInterestHandler(interestService),
		Sessions: httpLayer.NewSessionHandler(sessionService),
		Page:     httpLayer.NewPageHandler(sessionService, interestService, cfg.SecureCookies),
		Limiter:  rateLimiter,

		TrustProxy: cfg.TrustProxy,
	})

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", cfg.Addr).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
	log.Info().Msg("server exited")
}

func sweepSessions(ctx context.Context, repo *repository.SessionRepositoryMemory, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := repo.Sweep(); n > 0 {
				log.Debug().Int("removed", n).Msg("expired sessions swept")
			}
		case <-ctx.Done():
			return
		}
	}
}
