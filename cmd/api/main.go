package main

import (
	"context"
	"log"
	"time"

	"nimbus-chat/config"
	"nimbus-chat/internal/handler"
	"nimbus-chat/internal/redis"
	"nimbus-chat/internal/repository"
	"nimbus-chat/internal/server"
	"nimbus-chat/internal/services"
	"nimbus-chat/pkg/database"
	"nimbus-chat/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	mode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		mode = logger.ProductionMode
	}
	l := logger.New(mode)
	logger.SetGlobalLogger(l)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(ctx); err != nil {
			l.Errorf("Error closing database connection: %s", err)
		}
	}()

	chatRepo := repository.NewChatRepository(db.DB)
	indexRepo := repository.NewUserChatIndexRepository(db.DB)

	chatService := services.NewChatService(chatRepo, indexRepo)
	uploadService := services.NewUploadService(
		cfg.ImageKitPrivateKey,
		time.Duration(cfg.UploadTokenTTLMin)*time.Minute,
	)

	// Rate limiting is optional; without Redis chat writes are unlimited.
	var limiter *redis.RateLimiter
	if cfg.RedisAddr != "" {
		client := redis.NewClient(redis.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		limiterCfg := redis.DefaultRateLimitConfig()
		limiterCfg.ChatWriteLimit = cfg.ChatWritesPerMin
		limiter = redis.NewRateLimiter(client, limiterCfg)
	}

	handlers := &server.Handlers{
		Chat:   handler.NewChatHandler(chatService),
		Upload: handler.NewUploadHandler(uploadService),
	}

	srv := server.New(cfg, l)
	srv.SetupRoutes(handlers, db, limiter)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
