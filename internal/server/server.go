package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nimbus-chat/config"
	"nimbus-chat/internal/handler"
	"nimbus-chat/internal/middleware"
	"nimbus-chat/internal/redis"
	"nimbus-chat/internal/transport/httpdto"
	"nimbus-chat/pkg/database"
	nimbus_errors "nimbus-chat/pkg/errors"
	"nimbus-chat/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

type Handlers struct {
	Chat   *handler.ChatHandler
	Upload *handler.UploadHandler
}

func New(cfg *config.Config, l *logger.Logger) *Server {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.AppPort),
			Handler: engine,
		},
		engine: engine,
		config: cfg,
		logger: l,
	}
}

func (s *Server) SetupRoutes(handlers *Handlers, db *database.Mongo, limiter *redis.RateLimiter) {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.CORSMiddleware(s.config.CORSOrigin))
	s.engine.Use(middleware.LoggingMiddleware(s.logger))
	s.engine.Use(middleware.ErrorHandler(s.logger))

	s.engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	s.engine.GET("/health", func(c *gin.Context) {
		if err := db.HealthCheck(c.Request.Context()); err != nil {
			if s.logger != nil {
				s.logger.ErrorfCtx(c.Request.Context(), "health check failed: %s", err)
			}
			c.JSON(http.StatusServiceUnavailable, httpdto.NewErrorResponse(nimbus_errors.ErrServiceUnavailable.Error(), "UNHEALTHY"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := s.engine.Group("/api")
	api.Use(middleware.AuthMiddleware([]byte(s.config.JWTSecret)))
	{
		api.GET("/upload", handlers.Upload.Credentials)
		api.GET("/userchats", handlers.Chat.ListUserChats)
		api.GET("/chats/:id", handlers.Chat.GetByID)

		// A typed-nil *redis.RateLimiter must become a nil interface,
		// or the middleware's disabled check never matches.
		var writeLimiter middleware.ChatWriteLimiter
		if limiter != nil {
			writeLimiter = limiter
		}

		writes := api.Group("")
		writes.Use(middleware.ChatWriteRateLimitMiddleware(writeLimiter))
		{
			writes.POST("/chats", handlers.Chat.Create)
			writes.PUT("/chats/:id", handlers.Chat.AppendTurn)
		}
	}
}

func (s *Server) Start() error {
	go func() {
		if s.logger != nil {
			s.logger.Infof("Starting the server on port %s...", s.config.AppPort)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Errorf("Error in starting the server: %s", err)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	if s.logger != nil {
		s.logger.Infof("Server is running on :%s", s.config.AppPort)
	}

	<-quit

	if s.logger != nil {
		s.logger.Infof("Quitting signal received.. Shutting down after 5 seconds")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		if s.logger != nil {
			s.logger.Infof("Error in the graceful shutdown of the server: %s", err)
		}
		return err
	}

	if s.logger != nil {
		s.logger.Infof("Server stopped gracefully")
	}

	return nil
}
