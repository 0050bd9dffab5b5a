package main

import (
	"log"
	"net/http"

	_ "noticeboard/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"noticeboard/internal/auth"
	"noticeboard/internal/cache"
	"noticeboard/internal/config"
	"noticeboard/internal/db"
	"noticeboard/internal/handler"
	"noticeboard/internal/model"
	"noticeboard/internal/repository"
	"noticeboard/internal/router"
	"noticeboard/internal/service"
)

// @title Notice Board API
// @version 1.0
// @description Notice board API with role-based access and JWT authentication.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Notice{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	noticeRepo := repository.NewNoticeRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService)
	noticeService := service.NewNoticeService(noticeRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	noticeHandler := handler.NewNoticeHandler(noticeService)

	// Register routes
	router.Register(e, cfg, authHandler, noticeHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
