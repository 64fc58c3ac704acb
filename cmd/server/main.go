package main

import (
	"log"
	"net/http"

	_ "adminpanel/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"adminpanel/internal/cache"
	"adminpanel/internal/config"
	"adminpanel/internal/db"
	"adminpanel/internal/handler"
	"adminpanel/internal/model"
	"adminpanel/internal/repository"
	"adminpanel/internal/router"
	"adminpanel/internal/service"
	"adminpanel/internal/token"
)

// @title Admin Panel API
// @version 1.0
// @description CRUD admin-panel backend with session-cookie authentication and soft-deleting entities.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.ActivityLog{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer func() {
		if err := cacheClient.Close(); err != nil {
			log.Printf("close cache: %v", err)
		}
	}()

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	activityRepo := repository.NewActivityLogRepository(gormDB)

	// Token codec holds the process-wide signing secret.
	codec := token.NewCodec(cfg.SessionSecret)

	// Initialize services
	activityService := service.NewActivityService(activityRepo)
	userService := service.NewUserService(userRepo, activityService, cacheClient)
	authService := service.NewAuthService(userRepo, userService, codec, activityService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(userService, authService)
	userHandler := handler.NewUserHandler(userService)
	activityHandler := handler.NewActivityHandler(activityService)

	// Register routes
	router.Register(
		e,
		cfg,
		codec,
		authHandler,
		accountHandler,
		userHandler,
		activityHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
