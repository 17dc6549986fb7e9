package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-availability/internal/audit"
	"github.com/BruksfildServices01/barber-availability/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-availability/internal/db"
	"github.com/BruksfildServices01/barber-availability/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-availability/internal/infra/repository"
	"github.com/BruksfildServices01/barber-availability/internal/jobs"
	"github.com/BruksfildServices01/barber-availability/internal/logger"
	"github.com/BruksfildServices01/barber-availability/internal/metrics"
	"github.com/BruksfildServices01/barber-availability/internal/middleware"
	"github.com/BruksfildServices01/barber-availability/internal/routes"
)

func main() {

	cfg := config.Load()

	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		log.Fatal("database unavailable", zap.Error(err))
	}

	// --------------------------------------------------
	// Metrics
	// --------------------------------------------------
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	availabilityMetrics := metrics.NewAvailability(reg)

	// --------------------------------------------------
	// Rate limiting (Redis when configured)
	// --------------------------------------------------
	checks := map[string]handlers.Pinger{
		"database": func(ctx context.Context) error { return dbpkg.Ping(ctx, db) },
	}

	var limiter middleware.Limiter = middleware.NewLocalLimiter(cfg.RateLimitPerMinute)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer func() { _ = rdb.Close() }()

		limiter = middleware.NewRedisLimiter(rdb, cfg.RateLimitPerMinute)
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		log.Info("rate limiter backed by redis", zap.String("addr", cfg.RedisAddr))
	}

	// --------------------------------------------------
	// Audit
	// --------------------------------------------------
	auditDispatcher := audit.NewDispatcher(audit.New(db), log.Named("audit"))

	// --------------------------------------------------
	// Jobs
	// --------------------------------------------------
	scheduler := jobs.NewScheduler()
	retention := jobs.NewBookingRetention(
		infraRepo.NewBookingGormRepository(db),
		cfg.BookingRetentionDays,
		log.Named("jobs"),
	)
	if _, err := retention.Schedule(scheduler, cfg.BookingPruneSchedule); err != nil {
		log.Fatal("invalid booking prune schedule", zap.String("spec", cfg.BookingPruneSchedule), zap.Error(err))
	}
	scheduler.Start()

	// --------------------------------------------------
	// HTTP
	// --------------------------------------------------
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Log:      log,
		Audit:    auditDispatcher,
		Metrics:  availabilityMetrics,
		Gatherer: reg,
		Limiter:  limiter,
		Checks:   checks,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.RequestTimeout,
	}

	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	shutdown(srv, scheduler.Stop(), auditDispatcher, db, log)
}

func shutdown(
	srv *http.Server,
	jobsDone context.Context,
	auditDispatcher *audit.Dispatcher,
	db *gorm.DB,
	log *zap.Logger,
) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("http shutdown", zap.Error(err))
	}

	select {
	case <-jobsDone.Done():
	case <-ctx.Done():
		log.Warn("jobs did not finish before shutdown deadline")
	}

	auditDispatcher.Close()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
