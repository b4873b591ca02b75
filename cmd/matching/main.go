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
	"peerlink/backend/internal/matchhub"
	"peerlink/backend/internal/registry"
	"peerlink/backend/internal/session"
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
	log.Println("Starting matching service...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	rdb := setupRedis()
	s := store.NewService(rdb)
	reg := registry.New()

	reconciler := &session.Reconciler{
		Registry:   reg,
		Store:      s,
		DropQueued: true,
	}
	registration := &matchhub.RegistrationService{
		Store:      s,
		Reconciler: reconciler,
	}
	matcher := matchhub.NewMatcherService(reg, s)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go matcher.Run(ctx)

	r := gin.Default()
	h := handler.NewMatchingHandler(reg, registration, reconciler)

	r.GET("/", h.Root)
	r.GET("/anonid", h.GetAnonID)
	r.POST("/registerForMatching", h.RegisterForMatching)
	r.GET("/ws/:name", h.ServeWebSocket)

	server := &http.Server{
		Addr:           config.Getenv("MATCHING_ADDR", config.DefaultMatchingAddr),
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
