package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"winecellar/database"
	"winecellar/internal/config"
	"winecellar/internal/http-api/handler"
	"winecellar/internal/http-api/middleware"
	"winecellar/internal/http-api/repository"
	"winecellar/internal/http-api/service"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("could not load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("could not connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	rdb := connectRedis(cfg, logger)

	r := setupRouter(cfg, logger, db, rdb)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server running", "addr", addr)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// connectRedis returns nil when Redis is not configured or unreachable;
// rate limiting then runs on the in-process fallback.
func connectRedis(cfg *config.Config, logger *slog.Logger) *redis.Client {
	if cfg.RedisURL == "" {
		return nil
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Warn("invalid REDIS_URL, using in-process rate limiting", "error", err)
		return nil
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, using in-process rate limiting", "error", err)
		return nil
	}
	logger.Info("connected to redis")
	return rdb
}

func setupRouter(cfg *config.Config, logger *slog.Logger, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Repositories and services are built once here and handed to the
	// handlers; no package-level mutable state anywhere.
	userRepo := repository.NewUserRepository(db)
	wineRepo := repository.NewWineRepository(db)
	producerRepo := repository.NewProducerRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	authService := service.NewAuthService(userRepo)
	wineService := service.NewWineService(wineRepo)
	producerService := service.NewProducerService(producerRepo, wineRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo, wineRepo)
	ratingService := service.NewRatingService(ratingRepo, wineRepo)

	authHandler := handler.NewAuthHandler(authService)
	wineHandler := handler.NewWineHandler(wineService)
	producerHandler := handler.NewProducerHandler(producerService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	ratingHandler := handler.NewRatingHandler(ratingService)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	wineHandler.RegisterRoutes(r.Group("/wines"))
	producerHandler.RegisterRoutes(r.Group("/producers"))

	limited := r.Group("/")
	limited.Use(middleware.RateLimit(rdb, logger, cfg.RateLimitMax, cfg.RateLimitWindow))
	limited.POST("/users", authHandler.Register)
	limited.POST("/sessions", authHandler.Login)

	r.POST("/users/logout", middleware.AuthMiddleware(authService), authHandler.Logout)

	self := r.Group("/users/:user_id")
	self.Use(middleware.AuthMiddleware(authService), middleware.RequireSubject("user_id"))
	favoriteHandler.RegisterRoutes(self.Group("/favorites"))
	ratingHandler.RegisterRoutes(self.Group("/rated"))

	r.GET("/healthz", healthHandler(db))
	r.GET("/", endpointIndex(r))

	return r
}

// healthHandler reports 503 while the storage backend is unreachable.
func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// endpointIndex lists every registered route, as the root endpoint.
func endpointIndex(r *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		type endpoint struct {
			Method string `json:"method"`
			Path   string `json:"path"`
		}
		routes := r.Routes()
		endpoints := make([]endpoint, 0, len(routes))
		for _, route := range routes {
			endpoints = append(endpoints, endpoint{Method: route.Method, Path: route.Path})
		}
		c.JSON(http.StatusOK, endpoints)
	}
}
