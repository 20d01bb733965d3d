package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"goldenhand-backend/internal/config"
	"goldenhand-backend/internal/db"
	httpapi "goldenhand-backend/internal/http"
	"goldenhand-backend/internal/lessons"
	"goldenhand-backend/internal/migrations"
	"goldenhand-backend/internal/platform/logger"
	"goldenhand-backend/internal/services"
	"goldenhand-backend/internal/store"
)

type runtimeEvent struct {
	Runtime services.RuntimeSample `json:"runtime"`
	Cache   lessons.CacheStats     `json:"cache"`
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	appLog, closeLogs := setupLogger(cfg)
	defer closeLogs()

	database, err := db.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		appLog.Fatal("db open failed", "driver", cfg.DatabaseDriver, "error", err)
	}
	defer database.Close()
	if err := migrations.Apply(database); err != nil {
		appLog.Fatal("migrations failed", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := services.NewEventHub()
	go hub.Run(ctx)

	server, err := httpapi.NewServer(store.New(database), cfg, hub, appLog)
	if err != nil {
		appLog.Fatal("server setup failed", "error", err)
	}
	go metricsLoop(ctx, server)

	addr := ":" + cfg.Port
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server.Router(ctx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLog.Info("listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("server failed", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop
	cancel()
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	_ = httpServer.Shutdown(ctxShutdown)
	appLog.Info("shutdown complete")
}

// setupLogger writes to stderr and the daily log file. When the log
// directory is unusable it falls back to stderr only.
func setupLogger(cfg config.Config) (*logger.Logger, func()) {
	file, err := newDailyLog(cfg.LogDir, cfg.LogRetentionDays)
	if err != nil {
		appLog, buildErr := logger.New(cfg.LogMode)
		if buildErr != nil {
			appLog = logger.Nop()
		}
		appLog.Warn("log file setup failed", "dir", cfg.LogDir, "error", err)
		return appLog, appLog.Sync
	}
	appLog := logger.NewWriter(cfg.LogMode, file)
	return appLog, func() {
		appLog.Sync()
		_ = file.Close()
	}
}

func metricsLoop(ctx context.Context, server *httpapi.Server) {
	interval := time.Duration(server.Config.MetricsSampleSeconds) * time.Second
	if interval <= 0 {
		interval = 5 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			server.Events.Publish(services.EventRuntimeSample, runtimeEvent{
				Runtime: services.CaptureRuntime(server.Config.MetricsDiskPath),
				Cache:   server.Cache.Stats(),
			})
		case <-ctx.Done():
			return
		}
	}
}
