package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	_ "elearning/docs" // swagger docs

	"elearning/internal/auth"
	"elearning/internal/cache"
	"elearning/internal/config"
	"elearning/internal/db"
	"elearning/internal/handler"
	"elearning/internal/model"
	"elearning/internal/repository"
	"elearning/internal/router"
	"elearning/internal/service"
)

// @title E-Learning Quiz API
// @version 1.0
// @description Quiz backend with user accounts, role-gated management, and JWT authentication.
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.QuizQuestion{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	userRepo := repository.NewUserRepository(gormDB)
	quizRepo := repository.NewQuizQuestionRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret)

	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo, cacheClient)
	quizService := service.NewQuizService(quizRepo, cacheClient)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	quizHandler := handler.NewQuizHandler(quizService)

	router.Register(e, jwtService, userRepo, authHandler, userHandler, quizHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
