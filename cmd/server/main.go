package main // Entry point package

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/poweracademy/academy-server/internal/config"
	"github.com/poweracademy/academy-server/internal/handler"
	"github.com/poweracademy/academy-server/internal/logger"
	"github.com/poweracademy/academy-server/internal/middleware"
	"github.com/poweracademy/academy-server/internal/queue"
	"github.com/poweracademy/academy-server/internal/repository"
	"github.com/poweracademy/academy-server/internal/router"
	"github.com/poweracademy/academy-server/internal/session"
	"github.com/poweracademy/academy-server/internal/store"
)

func main() {
	// Load a .env file if present; real environments set variables
	// directly and the file is simply absent.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Redis is the durable home of every collection.  When it is not
	// reachable the console still runs: collections live in memory,
	// seeded with the demo roster, and saves report the degradation.
	rdb := config.NewRedisClient()
	var st store.Store
	if rdb != nil {
		st = store.NewRedisStore(rdb)
		defer rdb.Close()
	} else {
		log.Warn().Msg("redis unavailable; collections will not survive a restart")
		st = store.NewMemoryStore()
	}

	clock := clockwork.NewRealClock()
	registry := repository.NewRegistry(ctx, st, cfg.StoreKeyPrefix, clock, log)
	sessions := session.NewManager()

	// Change events are opt-in: with no broker URL the publisher is a
	// no-op and the consumer never starts.
	events := queue.NewPublisher(cfg.RabbitURL, log)
	if cfg.RabbitURL != "" {
		go queue.StartChangeConsumer(cfg.RabbitURL, log)
	}

	console := handler.NewConsole(registry, sessions, events, clock, cfg.MediaMaxBytes, log)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())

	router.RegisterRoutes(e)
	router.RegisterConsole(e, console, middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}

	// One last write-through so nothing typed just before the signal
	// is lost to an unlucky race with a failed earlier save.
	if err := registry.Flush(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("final flush")
	}
}
