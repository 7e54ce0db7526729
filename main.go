package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"store-ledger/internal/config"
	"store-ledger/internal/database"
	"store-ledger/internal/logger"
	"store-ledger/internal/report"
	"store-ledger/internal/repository"
	"store-ledger/internal/router"
	"store-ledger/internal/scheduler"

	"go.uber.org/zap"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// ensure basic directories exist
	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		log.Fatalf("create data dir: %v", err)
	}
	if cfg.Log.File != "" {
		if err := ensureDir(filepath.Dir(cfg.Log.File)); err != nil {
			log.Fatalf("create log dir: %v", err)
		}
	}
	if cfg.Export.Enabled {
		if err := ensureDir(cfg.Export.Dir); err != nil {
			log.Fatalf("create export dir: %v", err)
		}
	}

	zlog := logger.Must(logger.New(cfg.Log.Level, cfg.Log.File))
	defer func() { _ = zlog.Sync() }()
	zap.ReplaceGlobals(zlog)

	// init database
	db, err := database.Init(cfg.Database, logger.Named(zlog, "db"))
	if err != nil {
		zlog.Fatal("init database", zap.Error(err))
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		zlog.Fatal("migrate database", zap.Error(err))
	}

	repo := repository.New(db, cfg.Security.EncryptionKey, logger.Named(zlog, "repo"))
	svc := report.NewService(repo, logger.Named(zlog, "svc.report"))

	var sched *scheduler.Scheduler
	if cfg.Export.Enabled {
		sched = scheduler.NewScheduler(cfg.Export.Schedule, cfg.Export.Dir, cfg.Location(), repo, svc, logger.Named(zlog, "scheduler"))
		if err := sched.Start(); err != nil {
			zlog.Fatal("start scheduler", zap.Error(err))
		}
	}

	// setup router
	r := router.SetupRouter(cfg, repo, svc, zlog)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("run server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("server shutdown", zap.Error(err))
	}
	if sched != nil {
		sched.Stop()
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
