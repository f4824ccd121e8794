package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"dashboard/internal/clipboard"
	"dashboard/internal/config"
	"dashboard/internal/content"
	"dashboard/internal/server"
	"dashboard/internal/store"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Initialize the share store - only if Redis is configured
	var (
		st  store.Store
		svc *clipboard.Service
	)
	if cfg.StoreConfigured() {
		redisStore, err := store.NewRedis(ctx, cfg.RedisURL, cfg.RedisToken)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		st = redisStore
		svc = clipboard.NewService(st)
	} else {
		log.Println("Clipboard sharing is disabled. Set REDIS_URL and REDIS_TOKEN to enable.")
	}

	// Load dashboard content
	dashboard, err := content.LoadDashboard(cfg.ContentDir)
	if err != nil {
		log.Fatalf("Failed to load dashboard content: %v", err)
	}

	srv := server.New(cfg)
	srv.RegisterRoutes(svc, st, dashboard)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
