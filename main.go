// Package main, mascotas backend uygulamasının giriş noktasıdır.
//
// Bu dosyanın görevi — Dependency Injection "wire-up":
//  1. Config'i yükle
//  2. SQLite database'i başlat (embedded migration'lar ile)
//  3. Redis'e bağlan (görüntü deposu)
//  4. Session cache'i ve signin rate limiter'ı oluştur
//  5. Repository → Service → Handler katmanlarını kur
//  6. HTTP router + CORS
//  7. Graceful shutdown
//
// Global değişken YOK — her şey burada oluşturulup birbirine bağlanır.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/akinalp/mascotas/config"
	"github.com/akinalp/mascotas/database"
	"github.com/akinalp/mascotas/pkg/cache"
	"github.com/akinalp/mascotas/pkg/ratelimit"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("[main] mascotas server starting...")

	// ─── 1. Config ───
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[main] failed to load config: %v", err)
	}
	log.Printf("[main] config loaded (addr=%s)", cfg.Server.Addr())

	// ─── 2. Database ───
	db, err := database.New(cfg.Database.Path, database.Migrations())
	if err != nil {
		log.Fatalf("[main] failed to initialize database: %v", err)
	}
	defer db.Close()

	// ─── 3. Redis ───
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		cancel()
		log.Fatalf("[main] failed to connect to redis: %v", err)
	}
	cancel()
	log.Printf("[main] redis connected (%s)", cfg.Redis.Addr)

	// ─── 4. Session Cache + Rate Limiter ───
	//
	// Session cache: token_id → user_id. Logout'ta senkron evict edilir,
	// TTL dolunca kendiliğinden düşer. Close() sweep goroutine'ini durdurur.
	sessions := cache.New[string, string](cfg.Auth.SessionCacheTTL, cfg.Auth.SessionCacheSweep)
	defer sessions.Close()

	// Signin brute-force koruması: IP başına 2 dakikada 5 deneme.
	signinLimiter := ratelimit.NewLoginRateLimiter(5, 2*time.Minute)
	defer signinLimiter.Close()

	// ─── 5. Katmanlar ───
	repos := initRepositories(db.Conn, redisClient)
	svcs := initServices(db.Conn, repos, sessions, cfg)
	h := initHandlers(svcs, signinLimiter)

	// ─── 6. Router + CORS ───
	mux := http.NewServeMux()
	initRoutes(mux, h, svcs.Auth, repos.User)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:4200"}, // Angular dev server
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Status-Reason"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      corsHandler.Handler(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ─── 7. Graceful Shutdown ───
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[main] server listening on %s", cfg.Server.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[main] server error: %v", err)
		}
	}()

	<-done
	log.Println("[main] shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[main] graceful shutdown failed: %v", err)
	}

	log.Println("[main] server stopped")
}
