package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oggyb/ballou-sms/internal/ballou"
	"github.com/oggyb/ballou-sms/internal/cache/redis"
	"github.com/oggyb/ballou-sms/internal/config"
	"github.com/oggyb/ballou-sms/internal/db/gormdb"
	"github.com/oggyb/ballou-sms/internal/handler"
	zaplog "github.com/oggyb/ballou-sms/internal/logger/zap"
	notificationRepo "github.com/oggyb/ballou-sms/internal/repository/gorm/notification"
	routes "github.com/oggyb/ballou-sms/internal/router"
	"github.com/oggyb/ballou-sms/internal/scheduler"
	"github.com/oggyb/ballou-sms/internal/server"
	"github.com/oggyb/ballou-sms/internal/service"
)

// @title       Ballou SMS API
// @version     1.0
// @description Sends SMS through the Ballou gateway, queues them for background delivery and reports outcomes.
// @BasePath    /
func main() {
	// Base context for the whole application lifetime.
	rootCtx := context.Background()

	// Load configuration from environment/.env.
	cfg, err := config.New()
	if err != nil {
		panic(err)
	}

	lg := zaplog.New(cfg.Log.Level, cfg.IsDevelopment()).Named(cfg.App.Name)
	defer lg.Sync()

	// Init cache.
	cache := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := cache.Ping(rootCtx); err != nil {
		lg.Fatalw("failed to connect to redis", err, "addr", cfg.Redis.Addr)
	}
	defer cache.Close()

	// Init DB.
	db, err := gormdb.New(cfg.PostgresDSN())
	if err != nil {
		lg.Fatalw("failed to connect db", err, "host", cfg.DB.Host, "name", cfg.DB.Name)
	}
	defer db.Close()

	if err := db.Migrate(&notificationRepo.NotificationModel{}); err != nil {
		lg.Fatalw("AutoMigrate failed", err)
	}

	// Init Ballou gateway. Construction does not touch the network.
	gateway, err := ballou.Factory{Logger: lg.Named("ballou")}.Make(cfg.Ballou.Gateway())
	if err != nil {
		lg.Fatalw("failed to build Ballou gateway", err)
	}

	// Notification
	repo := notificationRepo.NewRepository(db)
	svc := service.NewNotificationService(
		lg.Named("service"),
		repo,
		gateway,
		cache,
		cfg.Worker.BatchSize,
		cfg.Worker.MaxWorkers,
		cfg.Worker.PerMessageTimeout,
	)

	// Cron
	cron := scheduler.NewSchedulerService(
		lg.Named("scheduler"),
		svc,
		cfg.Scheduler.Interval,
		cfg.Scheduler.BatchTimeout,
	)
	defer cron.Close()

	// Handlers
	deps := routes.AppDeps{
		Home:         handler.NewHomeHandler(cfg.App.Name, cache),
		Notification: handler.NewNotificationHandler(lg.Named("handler"), svc, cron),
	}

	addr := cfg.Addr()
	srv := server.New(lg.Named("http"), addr, deps)

	// Create a context that is cancelled on SIGINT/SIGTERM (Ctrl+C, docker stop etc.).
	ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start the HTTP server in a separate goroutine so we can listen for signals.
	go func() {
		lg.Infow("HTTP server listening", "addr", addr)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatalw("HTTP server error", err)
		}
	}()

	// Start the scheduler after everything is wired up.
	if err := cron.Start(); err != nil {
		lg.Fatalw("Cron job service error", err)
	}

	// Block until we receive a shutdown signal.
	<-ctx.Done()
	lg.Infow("[Main] Shutdown signal received, starting graceful shutdown...")

	// Stop the scheduler (waits for in-flight batch to finish or timeout).
	if err := cron.Stop(); err != nil {
		lg.Errorw("[Main] Scheduler could not be stopped", err)
	}

	// Give the HTTP server some time to drain in-flight sends.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Errorw("[Main] HTTP server graceful shutdown failed", err)
	}

	lg.Infow("[Main] Shutdown complete.")
}
