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

	"softhouse_backend/internal/auth"
	"softhouse_backend/internal/contact"
	"softhouse_backend/internal/events"
	apphttp "softhouse_backend/internal/http"
	"softhouse_backend/internal/http/router"
	"softhouse_backend/internal/projects"
	"softhouse_backend/internal/quotes"
	"softhouse_backend/platform/config"
	"softhouse_backend/platform/db"
	"softhouse_backend/platform/logger"
	"softhouse_backend/platform/ratelimit"
	"softhouse_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

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

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)
	registerEventLogging(eventBus, log)

	// Shared validator instance for dependency injection
	val := validator.New()

	submitLimiter, closeLimiter := initSubmitLimiter(cfg, log)
	if closeLimiter != nil {
		defer closeLimiter()
	}

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	authModule := auth.NewModule(pool, cfg, val, log)
	quotesModule := quotes.NewModule(pool, eventBus, val, submitLimiter, log)
	contactModule := contact.NewModule(pool, eventBus, val, submitLimiter, log)
	projectsModule := projects.NewModule(pool, val)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Health: db.NewPoolAdapter(pool),
		Modules: []apphttp.Module{
			authModule,
			quotesModule,
			contactModule,
			projectsModule,
		},
	}

	engine := router.New(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.RequestTimeout,
		WriteTimeout:      cfg.RequestTimeout,
		IdleTimeout:       60 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		panic("server error: " + err.Error())
	}
	log.Info("server stopped")
}

// initSubmitLimiter picks the public form throttle backend: Redis when
// configured so limits hold across replicas, in-process otherwise.
func initSubmitLimiter(cfg *config.Config, log *logger.Logger) (ratelimit.Limiter, func()) {
	if cfg.RedisURL == "" {
		log.Warn("REDIS_URL not configured; using in-memory submission limiter")
		return ratelimit.NewMemory(cfg.SubmitLimit, cfg.SubmitWindow), nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Error("invalid REDIS_URL; using in-memory submission limiter", "error", err)
		return ratelimit.NewMemory(cfg.SubmitLimit, cfg.SubmitWindow), nil
	}

	client := redis.NewClient(opt)
	return ratelimit.NewRedis(client, "submit", cfg.SubmitLimit, cfg.SubmitWindow), func() {
		_ = client.Close()
	}
}

// registerEventLogging records every domain event. This is also the seam
// where outbound notifications would subscribe.
func registerEventLogging(bus *events.InMemoryBus, log *logger.Logger) {
	bus.Subscribe("quotes.submitted", events.HandlerFunc(func(_ context.Context, event events.Event) error {
		if e, ok := event.(events.QuoteSubmitted); ok {
			log.Info("quote submitted", "quoteId", e.QuoteID, "projectType", e.ProjectType)
		}
		return nil
	}))
	bus.Subscribe("quotes.status_changed", events.HandlerFunc(func(_ context.Context, event events.Event) error {
		if e, ok := event.(events.QuoteStatusChanged); ok {
			log.Info("quote status changed", "quoteId", e.QuoteID, "from", e.FromStatus, "to", e.ToStatus)
		}
		return nil
	}))
	bus.Subscribe("contact.message_received", events.HandlerFunc(func(_ context.Context, event events.Event) error {
		if e, ok := event.(events.ContactMessageReceived); ok {
			log.Info("contact message received", "messageId", e.MessageID)
		}
		return nil
	}))
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

	return errors.New(name + ": " + lastErr.Error())
}
