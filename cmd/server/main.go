package main

import (
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"acmedash/internal/auth"
	"acmedash/internal/cache"
	"acmedash/internal/config"
	"acmedash/internal/db"
	"acmedash/internal/handler"
	"acmedash/internal/model"
	"acmedash/internal/repository"
	"acmedash/internal/router"
	"acmedash/internal/service"
)

// @title Acme Dashboard API
// @version 1.0
// @description Invoicing dashboard API: invoice CRUD, customer and revenue views, JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Invoice{},
			&model.Customer{},
			&model.Revenue{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Customer{},
		&model.Invoice{},
		&model.Revenue{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	customerRepo := repository.NewCustomerRepository(gormDB)
	invoiceRepo := repository.NewInvoiceRepository(gormDB)
	revenueRepo := repository.NewRevenueRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	invoiceService := service.NewInvoiceService(invoiceRepo, cacheClient)
	dashboardService := service.NewDashboardService(revenueRepo, invoiceRepo)
	customerService := service.NewCustomerService(customerRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	customerHandler := handler.NewCustomerHandler(customerService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		dashboardHandler,
		invoiceHandler,
		customerHandler,
	)

	log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
