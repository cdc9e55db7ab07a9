package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/sproutly/matchengine/internal/adapters/http/api"
	"github.com/sproutly/matchengine/internal/app"
	"github.com/sproutly/matchengine/internal/config"
	"github.com/sproutly/matchengine/internal/domain/model"
	"github.com/sproutly/matchengine/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Disable default Go metrics collection; the engine registers its own
	// metrics on a custom registry.
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env).
	cfg, err := config.Load(ctx)
	if err != nil {
		log.Error(ctx, "failed to load config", logger.Error(err))
		return
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log level, keeping info", logger.String("log_level", cfg.LogLevel))
	}

	engine := app.NewEngine(
		app.WithLogger(log.Named("engine")),
		app.WithTrainerService(app.NewTrainerService(
			app.WithDefaultWeights(model.Weights{
				Rating:     cfg.RatingWeight,
				Experience: cfg.ExperienceWeight,
				Distance:   cfg.DistanceWeight,
			}),
		)),
		app.WithActivityService(app.NewActivityService(
			app.WithActivityLogger(log.Named("activities")),
		)),
	)

	mux := http.NewServeMux()
	server := api.NewServer(engine, engine, cfg.MaxResultLimit)
	server.Register(ctx, mux)

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "match engine listening", logger.String("addr", cfg.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "http server failed", logger.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "graceful shutdown failed", logger.Error(err))
	}
}
