package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/Anushka-Mandal/Rental-Management-System/internal/config"
	"github.com/Anushka-Mandal/Rental-Management-System/internal/database"
	"github.com/Anushka-Mandal/Rental-Management-System/internal/handler"
	"github.com/Anushka-Mandal/Rental-Management-System/internal/middleware"
	"github.com/Anushka-Mandal/Rental-Management-System/internal/queue"
	"github.com/Anushka-Mandal/Rental-Management-System/internal/repository"
	"github.com/Anushka-Mandal/Rental-Management-System/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win

	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}

	// Redis is optional: a nil client turns the cache and rate limiter
	// into pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		logger.Warn("redis unreachable, cache and rate limiting disabled")
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	owners := repository.NewOwnerRepo(db)
	properties := repository.NewPropertyRepo(db)
	rooms := repository.NewRoomRepo(db)
	tenants := repository.NewTenantRepo(db)
	staff := repository.NewStaffRepo(db)
	payments := repository.NewPaymentRepo(db)
	requests := repository.NewServiceRequestRepo(db)
	feedback := repository.NewFeedbackRepo(db)

	router.RegisterRoutes(e, router.Handlers{
		Health:   handler.NewHealthHandler(db),
		Owner:    handler.NewOwnerHandler(owners, logger),
		Property: handler.NewPropertyHandler(properties, logger),
		Room:     handler.NewRoomHandler(rooms, logger),
		Tenant:   handler.NewTenantHandler(tenants, payments, requests, feedback, logger),
		Staff:    handler.NewStaffHandler(staff, logger),
		Payment:  handler.NewPaymentHandler(payments, logger),
		Request:  handler.NewServiceRequestHandler(requests, logger),
		Feedback: handler.NewFeedbackHandler(feedback, logger),
	})

	// The ledger consumer only runs when a broker is configured.
	if os.Getenv("RABBITMQ_URL") != "" || os.Getenv("AMQP_URL") != "" {
		go func() {
			if err := queue.StartPaymentConsumer(); err != nil {
				logger.Error("payment consumer stopped", zap.Error(err))
			}
		}()
	}

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := e.Start(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
