package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mshiina/course-catalog-api/internal/auth"
	"github.com/mshiina/course-catalog-api/internal/config"
	"github.com/mshiina/course-catalog-api/internal/database"
	"github.com/mshiina/course-catalog-api/internal/handlers"
	"github.com/mshiina/course-catalog-api/internal/logging"
	"github.com/mshiina/course-catalog-api/internal/repository"
	"github.com/mshiina/course-catalog-api/internal/router"
	"github.com/mshiina/course-catalog-api/internal/services"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, cfg.GinMode)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	if err := database.AddIndexes(db); err != nil {
		logger.Fatal("Failed to create indexes", zap.Error(err))
	}

	issuer := &auth.TokenIssuer{
		Secret: []byte(cfg.JWTSecret),
		Issuer: cfg.JWTIssuer,
		TTL:    time.Duration(cfg.JWTTTLMinutes) * time.Minute,
	}

	userRepo := repository.NewUserRepository(db)
	languageRepo := repository.NewLanguageRepository(db)
	topicRepo := repository.NewTopicRepository(db)
	courseRepo := repository.NewCourseRepository(db)

	authService := services.NewAuthService(userRepo, issuer)
	userService := services.NewUserService(userRepo)
	languageService := services.NewLanguageService(languageRepo)
	topicService := services.NewTopicService(topicRepo)
	courseService := services.NewCourseService(courseRepo, languageRepo, topicRepo)

	engine := router.New(router.Handlers{
		Auth:     handlers.NewAuthHandler(authService, logger),
		User:     handlers.NewUserHandler(userService, logger),
		Course:   handlers.NewCourseHandler(courseService, logger),
		Topic:    handlers.NewTopicHandler(topicService, logger),
		Language: handlers.NewLanguageHandler(languageService, logger),
	}, issuer, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}
