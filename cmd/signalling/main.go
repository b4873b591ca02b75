package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"peerlink/backend/internal/api/handler"
	"peerlink/backend/internal/config"
	"peerlink/backend/internal/registry"
	"peerlink/backend/internal/session"
	"peerlink/backend/internal/signalhub"
	"peerlink/backend/internal/store"
)

func setupRedis() *redis.Client {
	opts, err := redis.ParseURL(config.RedisURL())
	if err != nil {
		log.Fatalf("Invalid REDIS_URL: %v", err)
	}
	rdb := redis.NewClient(opts)

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	return rdb
}

func main() {
	log.Println("Starting signalling service...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	rdb := setupRedis()
	s := store.NewService(rdb)
	reg := registry.New()

	reconciler := &session.Reconciler{
		Registry: reg,
		Store:    s,
	}
	router := &signalhub.Router{
		Registry: reg,
		Store:    s,
	}

	r := gin.Default()
	h := handler.NewSignallingHandler(reg, router, reconciler)

	r.GET("/", h.Root)
	r.GET("/ws/:username", h.ServeWebSocket)

	server := &http.Server{
		Addr:           config.Getenv("SIGNALLING_ADDR", config.DefaultSignallingAddr),
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
