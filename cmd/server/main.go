package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"user_backend/internal/app/router"
	"user_backend/internal/config"
	"user_backend/internal/feature/users/adapters"
	userhandler "user_backend/internal/feature/users/transport/handler"
	"user_backend/internal/feature/users/usecase"
	infradb "user_backend/internal/platform/db"
	"user_backend/internal/shared/validation"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// db
	db := infradb.OpenDB()

	// Repository
	userRepo := adapters.NewUserMySQL(db)

	// Usecase
	userUC := usecase.NewUserUsecase(userRepo, cfg.UserMinAge)

	// Handler
	userH := userhandler.NewUserHandler(userUC)

	// Custom binding validations must be registered before the first request
	validation.Init()

	r := router.NewRouter(userH)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
