package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sorabytes/otakudojo/internal/api"
	"github.com/sorabytes/otakudojo/internal/config"
	"github.com/sorabytes/otakudojo/internal/content"
	"github.com/sorabytes/otakudojo/internal/db"
	"github.com/sorabytes/otakudojo/internal/logger"
	"github.com/sorabytes/otakudojo/internal/repository/sqlite"
	"github.com/sorabytes/otakudojo/internal/services"
	"github.com/sorabytes/otakudojo/internal/worker"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("OtakuDojo Server Starting")
	log.Info("===========================================")
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("pack_language=%s", cfg.Language)
	log.Debug("puzzles_per_type=%d", cfg.PuzzlesPerType)
	log.Debug("leaderboard_limit=%d", cfg.LeaderboardLimit)
	log.Debug("pack_worker_count=%d", cfg.PackWorkerCount)
	log.Debug("pack_queue_size=%d", cfg.PackQueueSize)
	log.Debug("pack_check_interval=%s", cfg.PackCheckInterval)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Initialize repositories and services
	packRepo := sqlite.NewPackRepository(database.DB)
	statsRepo := sqlite.NewStatsRepository(database.DB)
	leaderboardRepo := sqlite.NewLeaderboardRepository(database.DB)

	packService := services.NewPackService(packRepo, content.NewStaticProvider(), cfg.PuzzlesPerType, cfg.Language)
	scoreService := services.NewScoreService(statsRepo, leaderboardRepo)
	leaderboardService := services.NewLeaderboardService(leaderboardRepo, cfg.LeaderboardLimit)

	// Initialize worker pool
	packPool := worker.NewPool(cfg.PackWorkerCount, cfg.PackQueueSize)

	srv := &api.Server{
		Packs:       packService,
		Scores:      scoreService,
		Leaderboard: leaderboardService,
	}

	ctx, cancel := context.WithCancel(context.Background())
	packPool.Start(ctx)

	// Make sure today's pack exists at startup, then keep checking so the
	// next day's pack appears without a request having to trigger it.
	packPool.Submit(&worker.GeneratePackJob{Packs: packService, Date: time.Now().UTC()})
	go func() {
		ticker := time.NewTicker(cfg.PackCheckInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				packPool.Submit(&worker.GeneratePackJob{Packs: packService, Date: time.Now().UTC()})
			}
		}
	}()

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping background workers")
	cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Debug("stopping pack pool")
	packPool.Stop()

	log.Info("===========================================")
	log.Info("OtakuDojo Server Stopped")
	log.Info("===========================================")
}
