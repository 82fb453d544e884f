package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"loyalty-raffle-backend/docs"
	"loyalty-raffle-backend/internal/common/cache"
	"loyalty-raffle-backend/internal/common/config"
	"loyalty-raffle-backend/internal/common/logger"
	"loyalty-raffle-backend/internal/common/middleware"
	accountHTTP "loyalty-raffle-backend/internal/features/account/delivery/http"
	accountRepo "loyalty-raffle-backend/internal/features/account/repository/postgres"
	accountService "loyalty-raffle-backend/internal/features/account/service"
	ledgerHTTP "loyalty-raffle-backend/internal/features/ledger/delivery/http"
	ledgerRepo "loyalty-raffle-backend/internal/features/ledger/repository/postgres"
	ledgerService "loyalty-raffle-backend/internal/features/ledger/service"
	raffleHTTP "loyalty-raffle-backend/internal/features/raffle/delivery/http"
	raffleRepo "loyalty-raffle-backend/internal/features/raffle/repository/postgres"
	raffleService "loyalty-raffle-backend/internal/features/raffle/service"
	rewardHTTP "loyalty-raffle-backend/internal/features/reward/delivery/http"
	rewardRepo "loyalty-raffle-backend/internal/features/reward/repository/postgres"
	rewardService "loyalty-raffle-backend/internal/features/reward/service"
	"loyalty-raffle-backend/internal/platform/postgres"
	"loyalty-raffle-backend/internal/platform/redis"
)

// @title           Loyalty & Raffle API
// @version         1.0
// @description     Point ledger, monthly raffle and reward redemption backend.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey AccountID
// @in header
// @name X-Account-ID
// @description Authenticated account ID, set by the upstream gateway

// @securityDefinitions.apikey AdminToken
// @in header
// @name X-Admin-Token
// @description Shared secret for administrative endpoints

// @tag.name accounts
// @tag.description Account registration and lookup

// @tag.name loyalty
// @tag.description Point balance, history and manual awards

// @tag.name raffle
// @tag.description Monthly raffle tickets, drawing and prize claims

// @tag.name rewards
// @tag.description Reward catalogue and redemptions

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.Load()

	logger.Init("loyalty-raffle-backend", cfg.Debug)

	logger.Info().
		Str("version", "1.0.0").
		Bool("debug", cfg.Debug).
		Msg("Starting loyalty raffle backend")

	postgresClient, err := postgres.NewClient(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer postgresClient.Close()

	logger.Info().Msg("Database connection established")

	redisClient, err := redis.CreateRedisClient(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()

	cacheService := cache.NewCacheService(redisClient)
	logger.Info().Msg("Cache service initialized")

	accountRepository := accountRepo.NewPostgresRepository(postgresClient.GetDB())
	ledgerRepository := ledgerRepo.NewPostgresRepository(postgresClient)
	raffleRepository := raffleRepo.NewPostgresRepository(postgresClient)
	rewardRepository := rewardRepo.NewPostgresRepository(postgresClient)

	ledgerSvc := ledgerService.NewLedgerService(ledgerRepository, accountRepository)
	accountSvc := accountService.NewAccountService(accountRepository, ledgerSvc)
	raffleSvc := raffleService.NewRaffleService(raffleRepository, ledgerSvc, accountRepository, cacheService, cfg)
	rewardSvc := rewardService.NewRewardService(rewardRepository, ledgerSvc, accountRepository)

	logger.Info().Msg("Services initialized")

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Accept", "X-Account-ID", "X-Admin-Token"}
	router.Use(cors.New(corsConfig))

	v1 := router.Group("/api/v1")
	accountHTTP.NewAccountHandler(accountSvc).RegisterRoutes(v1)
	ledgerHTTP.NewLedgerHandler(ledgerSvc, cfg.Admin.Token).RegisterRoutes(v1)
	raffleHTTP.NewRaffleHandler(raffleSvc, cfg.Admin.Token).RegisterRoutes(v1)
	rewardHTTP.NewRewardHandler(rewardSvc).RegisterRoutes(v1)

	registerProbes(router, postgresClient, redisClient)

	docs.SwaggerInfo.BasePath = "/api/v1"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	logger.Info().Msg("Routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}

func registerProbes(router *gin.Engine, postgresClient *postgres.Client, redisClient redis.RedisClient) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "loyalty-raffle-backend",
		})
	})

	router.GET("/live", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := postgresClient.HealthCheck(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unready",
				"error":   "postgres unavailable",
				"details": err.Error(),
			})
			return
		}

		if err := redisClient.Ping(ctx).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unready",
				"error":   "redis unavailable",
				"details": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "ready",
			"timestamp": time.Now().UTC(),
			"service":   "loyalty-raffle-backend",
		})
	})
}
