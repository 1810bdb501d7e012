package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inquiry_portal_backend/internal/adapters"
	apphttp "inquiry_portal_backend/internal/http"
	"inquiry_portal_backend/internal/http/router"
	"inquiry_portal_backend/internal/inquiries"
	inquiryrepo "inquiry_portal_backend/internal/inquiries/repository"
	"inquiry_portal_backend/internal/locations"
	locationsrepo "inquiry_portal_backend/internal/locations/repository"
	usersrepo "inquiry_portal_backend/internal/users/repository"
	"inquiry_portal_backend/migrations"
	"inquiry_portal_backend/platform/config"
	"inquiry_portal_backend/platform/db"
	"inquiry_portal_backend/platform/httpkit"
	"inquiry_portal_backend/platform/logger"
	"inquiry_portal_backend/platform/metrics"
	"inquiry_portal_backend/platform/phone"
	"inquiry_portal_backend/platform/validator"

	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	sentryEnabled := initSentry(cfg, log)
	if sentryEnabled {
		defer sentry.Flush(2 * time.Second)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, migrations.FS)
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete", "enabled", cfg.GetMigrationsEnabled())

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	limiter, closeLimiter := initRateLimiter(ctx, cfg, log)
	if closeLimiter != nil {
		defer closeLimiter()
	}

	locationProvider, err := locationsrepo.Load(cfg.GetLocationsDataPath())
	if err != nil {
		log.Error("failed to load location dataset", "error", err)
		panic("failed to load location dataset: " + err.Error())
	}

	// Shared instances for dependency injection
	val := validator.New()
	m := metrics.New()
	normalizer := phone.NewNormalizer(cfg.GetPhoneDefaultRegion())

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	users := usersrepo.New(pool)
	creatorChecker := adapters.NewInquiryCreatorChecker(users)

	inquiriesModule := inquiries.NewModule(inquiryrepo.New(pool), creatorChecker, normalizer, val, log, m)
	locationsModule := locations.NewModule(locationProvider)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:        cfg,
		Logger:        log,
		Health:        db.NewPoolAdapter(pool),
		Metrics:       m,
		RateLimiter:   limiter,
		SentryEnabled: sentryEnabled,
		Modules: []apphttp.Module{
			inquiriesModule,
			locationsModule,
		},
	}

	srv := &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           router.New(app),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		panic("server error: " + err.Error())
	}
	log.Info("server stopped")
}

func initSentry(cfg config.ObservabilityConfig, log *logger.Logger) bool {
	if cfg.GetSentryDSN() == "" {
		log.Info("SENTRY_DSN not configured; error tracking disabled")
		return false
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.GetSentryDSN(),
		Environment:      cfg.GetEnv(),
		AttachStacktrace: true,
	}); err != nil {
		log.Error("failed to initialize sentry", "error", err)
		return false
	}
	log.Info("sentry initialized", "environment", cfg.GetEnv())
	return true
}

// initRateLimiter prefers Redis so limits hold across replicas, and falls
// back to the in-process limiter when Redis is absent or unreachable.
func initRateLimiter(ctx context.Context, cfg config.RateLimitConfig, log *logger.Logger) (httpkit.RateLimiter, func()) {
	perMinute := cfg.GetRateLimitPerMinute()
	if perMinute == 0 {
		log.Warn("RATE_LIMIT_PER_MINUTE is 0; rate limiting disabled")
		return nil, nil
	}

	if cfg.GetRedisURL() == "" {
		log.Info("REDIS_URL not configured; using in-memory rate limiter")
		return httpkit.NewPerMinuteLimiter(perMinute, log), nil
	}

	opts, err := redis.ParseURL(cfg.GetRedisURL())
	if err != nil {
		log.Error("invalid REDIS_URL; using in-memory rate limiter", "error", err)
		return httpkit.NewPerMinuteLimiter(perMinute, log), nil
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		log.Error("redis unreachable; using in-memory rate limiter", "error", err)
		return httpkit.NewPerMinuteLimiter(perMinute, log), nil
	}

	log.Info("redis rate limiter initialized", "perMinute", perMinute)
	return httpkit.NewRedisRateLimiter(client, perMinute, time.Minute, log), func() {
		_ = client.Close()
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return fmt.Errorf("%s: %w", name, lastErr)
}
