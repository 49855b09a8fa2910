package main

import (
	"log"
	"net/http"
	"os"

	_ "jobboard/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"jobboard/internal/auth"
	"jobboard/internal/cache"
	"jobboard/internal/config"
	"jobboard/internal/db"
	"jobboard/internal/handler"
	"jobboard/internal/model"
	"jobboard/internal/repository"
	"jobboard/internal/router"
	"jobboard/internal/service"
)

// @title Job Board API
// @version 1.0
// @description Job board API with user registration, JWT authentication and ownership-gated job postings.
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewPostgres(cfg.DatabaseDSN())
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		for _, table := range []interface{}{&model.Job{}, &model.User{}} {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Job{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	jobRepo := repository.NewJobRepository(gormDB)

	// Initialize auth components
	jwtService, err := auth.NewJWTService(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.AccessTokenTTL(), cfg.RefreshTokenTTL())
	if err != nil {
		log.Fatalf("jwt init: %v", err)
	}
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo)
	jobService := service.NewJobService(jobRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, jwtService)
	userHandler := handler.NewUserHandler(authService, userService)
	jobHandler := handler.NewJobHandler(jobService)

	// Register routes
	router.Register(e, jwtService, userRepo, authHandler, userHandler, jobHandler)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
