package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"loansign/internal/common/logging"
	"loansign/internal/config"
	"loansign/internal/esign"
	"loansign/internal/handlers"
	"loansign/internal/middleware"
	"loansign/internal/redis"
	"loansign/internal/server"
	"loansign/internal/statusstore"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logging.Init(cfg.LogLevel)
	logger := logging.GetGlobalLogger()

	// Status cache backend
	var store statusstore.Store
	switch cfg.CacheBackend {
	case "redis":
		redisDB, _ := strconv.Atoi(cfg.RedisDB)
		redisPool, _ := strconv.Atoi(cfg.RedisPoolSize)
		redisClient, err := redis.NewClient(&redis.Config{
			Address:  cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       redisDB,
			PoolSize: redisPool,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		store = statusstore.NewRedisStore(redisClient)
	default:
		store = statusstore.NewMemoryStore()
	}

	// E-signature provider client, constructed once and injected
	provider, err := esign.NewClient(&esign.Config{
		BaseURL: cfg.EsignBaseURL,
		APIKey:  cfg.EsignAPIKey,
	})
	if err != nil {
		log.Fatalf("Failed to initialize e-sign client: %v", err)
	}

	h := handlers.New(cfg, store, provider, logger)

	router := mux.NewRouter()
	router.Use(middleware.Logging)

	router.HandleFunc("/webhook", h.HandleWebhook).Methods("POST")
	router.HandleFunc("/status/{id}", h.HandleStatus).Methods("GET")
	router.HandleFunc("/sign-document", h.HandleSignDocument).Methods("POST")
	router.HandleFunc("/sign-completed", h.HandleSignCompleted).Methods("GET")
	router.HandleFunc("/download/{id}", h.HandleDownload).Methods("GET")
	router.HandleFunc("/health", h.HealthCheck).Methods("GET")

	srv := server.New(router, cfg.Port)
	errCh := srv.Start()
	logger.Info("Server started",
		logging.String("port", cfg.Port),
		logging.String("cache_backend", cfg.CacheBackend),
	)

	// Wait for interrupt signal or server failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatalf("Server failed: %v", err)
	case <-quit:
	}

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	logger.Info("Server exited")
}
