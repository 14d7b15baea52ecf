package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spacesedan/sentiment-analyzer/config"
	"github.com/spacesedan/sentiment-analyzer/internal/clients"
	"github.com/spacesedan/sentiment-analyzer/internal/logging"
	"github.com/spacesedan/sentiment-analyzer/internal/ui"
	"github.com/spacesedan/sentiment-analyzer/internal/web"
)

const SHUTDOWN_TIMEOUT = 5 * time.Second

func main() {
	config.LoadEnv()
	logging.InitLogger(os.Getenv("APP_ENV"))

	cfg := config.MustLoad()
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := clients.NewHuggingFaceClient(cfg, nil)
	router := web.NewRouter(ui.NewPresenter(client))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		slog.Info("[Main] Serving sentiment analyzer",
			slog.String("addr", srv.Addr),
			slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Main] Server stopped unexpectedly",
				slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	slog.Warn("[Main] Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("[Main] Graceful shutdown failed",
			slog.String("error", err.Error()))
	}
}
