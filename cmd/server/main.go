package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Postagram/internal/api/middleware"
	"Postagram/internal/api/routes"
	"Postagram/internal/app"
	"Postagram/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatal("Failed to load .env file:", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := app.Open(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to open storage:", err)
	}
	defer repos.Close()

	opts := routes.Options{
		JWTSecret:      cfg.JWTSecret,
		AllowedOrigins: cfg.AllowedOrigins,
		RequestTimeout: cfg.RequestTimeout,
	}
	if cfg.RateLimitRequests > 0 {
		rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
		if err != nil {
			log.Fatal("Invalid rate limit configuration:", err)
		}
		defer rateLimiter.Stop()
		opts.RateLimiter = rateLimiter
		log.Printf("Rate limiting: %d requests per %s per client", cfg.RateLimitRequests, cfg.RateLimitWindow)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.NewRouter(app.NewServices(repos), opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		fmt.Printf("Postagram server starting on port %s (storage: %s)\n", cfg.Port, cfg.Backend)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed:", err)
		}
	case <-ctx.Done():
		log.Println("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Graceful shutdown failed: %v", err)
		}
	}
}
