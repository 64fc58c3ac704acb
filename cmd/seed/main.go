package main

import (
	"context"
	"errors"
	"log"

	"adminpanel/internal/cache"
	"adminpanel/internal/config"
	"adminpanel/internal/db"
	apperrors "adminpanel/internal/errors"
	"adminpanel/internal/model"
	"adminpanel/internal/repository"
	"adminpanel/internal/service"
)

const (
	defaultAdminEmail    = "test@test.com"
	defaultAdminPassword = "admin123"
	defaultAdminName     = "Admin User"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.ActivityLog{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	activityRepo := repository.NewActivityLogRepository(gormDB)
	activityService := service.NewActivityService(activityRepo)
	userService := service.NewUserService(userRepo, activityService, cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB))

	ctx := context.Background()
	user, err := userService.CreateUser(ctx, defaultAdminEmail, defaultAdminPassword, defaultAdminName)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			log.Printf("Admin account %s already exists, nothing to do", defaultAdminEmail)
			return
		}
		log.Fatalf("Failed to create admin account: %v", err)
	}

	log.Printf("Created default admin account id=%d email=%s", user.ID, user.Email)
	log.Printf("Password: %s", defaultAdminPassword)
	log.Println("You can now sign in to the admin panel with these credentials.")
}
