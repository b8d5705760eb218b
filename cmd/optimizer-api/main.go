package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/MatthewMo520/CalendarOptimizer/api/swagger"
	"github.com/MatthewMo520/CalendarOptimizer/internal/handler"
	"github.com/MatthewMo520/CalendarOptimizer/internal/middleware"
	"github.com/MatthewMo520/CalendarOptimizer/internal/repository"
	"github.com/MatthewMo520/CalendarOptimizer/internal/schedule"
	"github.com/MatthewMo520/CalendarOptimizer/internal/service"
	"github.com/MatthewMo520/CalendarOptimizer/pkg/cache"
	"github.com/MatthewMo520/CalendarOptimizer/pkg/config"
	"github.com/MatthewMo520/CalendarOptimizer/pkg/database"
	"github.com/MatthewMo520/CalendarOptimizer/pkg/logger"
	corsmiddleware "github.com/MatthewMo520/CalendarOptimizer/pkg/middleware/cors"
	reqidmiddleware "github.com/MatthewMo520/CalendarOptimizer/pkg/middleware/requestid"
)

// @title Calendar Optimizer API
// @version 1.0.0
// @description Priority-driven schedule optimization for calendar events
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	var db *sqlx.DB
	var store service.EventStore
	if cfg.Database.Enabled {
		db, err = database.NewPostgres(cfg.Database)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
		}
		defer db.Close() //nolint:errcheck
		store = repository.NewEventRepository(db)
	} else {
		logr.Info("database disabled, using in-memory event store")
		store = repository.NewMemoryEventRepository()
	}

	var redisClient *redis.Client
	var resultCache service.ResultCache
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect to redis", "error", err)
		}
		defer redisClient.Close() //nolint:errcheck
		resultCache = repository.NewCacheRepository(redisClient)
	}

	engine := schedule.NewOptimizer(schedule.Config{
		HorizonDays:   cfg.Optimizer.HorizonDays,
		WorkStartHour: cfg.Optimizer.WorkStartHour,
		WorkEndHour:   cfg.Optimizer.WorkEndHour,
		SlotMinutes:   cfg.Optimizer.SlotMinutes,
		SkipWeekends:  cfg.Optimizer.SkipWeekends,
	}, logr)

	metricsSvc := service.NewMetricsService()
	eventSvc := service.NewEventService(store, resultCache, logr)
	optimizeSvc := service.NewOptimizeService(store, resultCache, engine, cfg.Cache.ResultTTL, metricsSvc, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if db != nil {
			if err := db.PingContext(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "database unreachable"})
				return
			}
		}
		if redisClient != nil {
			if err := redisClient.Ping(ctx).Err(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "redis unreachable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	handler.NewEventHandler(eventSvc).Register(api)
	handler.NewOptimizeHandler(optimizeSvc).Register(api)
	if cfg.Export.Enabled {
		handler.NewExportHandler(service.NewExportService(store, logr)).Register(api)
	}
	if cfg.Chat.Enabled {
		handler.NewChatHandler(service.NewChatService(logr)).Register(api)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env,
		"database", cfg.Database.Enabled, "redis", cfg.Redis.Enabled)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
