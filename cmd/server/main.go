package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mcpadapter "github.com/telota/bbaw-dse-mcp/internal/adapters/mcp"
	"github.com/telota/bbaw-dse-mcp/internal/bootstrap"
	"github.com/telota/bbaw-dse-mcp/internal/config"
	"github.com/telota/bbaw-dse-mcp/internal/observability/logging"
)

const version = "1.0.0"

func main() {
	cfg := config.Load()
	logger := logging.NewJSONLogger(cfg.ServerName, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := bootstrap.New(cfg, logger)
	defer app.Close()

	mux := http.NewServeMux()
	mux.Handle("/metrics", app.Metrics.Handler())
	metricsServer := &http.Server{
		Addr:         ":" + cfg.MetricsPort,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("metrics listening", "port", cfg.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	srv := mcpadapter.NewServer(cfg.ServerName, version, logger).WithMetrics(app.Metrics, "editions")
	srv.RegisterEdition("sd", app.Schleiermacher)
	srv.RegisterEdition("ab", app.ActaBorussica)
	srv.RegisterAuthorities(app.Authorities)

	logger.Info("serving tools on stdio", "server", cfg.ServerName)
	if err := srv.Serve(ctx); err != nil && ctx.Err() == nil {
		logger.Error("server error", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("metrics shutdown error", "error", err)
	}
}
