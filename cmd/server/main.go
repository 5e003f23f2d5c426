package main

import (
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/qs-lzh/movie-catalog/config"
	"github.com/qs-lzh/movie-catalog/internal/app"
	"github.com/qs-lzh/movie-catalog/internal/cache"
	"github.com/qs-lzh/movie-catalog/internal/handler"
	"github.com/qs-lzh/movie-catalog/internal/mq"

	"github.com/gin-gonic/gin"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	var redisCache *cache.RedisCache
	if cfg.CacheURL != "" {
		redisCache, err = cache.NewRedisCache(cfg.CacheURL)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
	}

	var mqConn *amqp.Connection
	if cfg.MQURL != "" {
		mqConn, err = mq.NewMQConn(cfg.MQURL)
		if err != nil {
			logger.Fatal("failed to connect to rabbitmq", zap.Error(err))
		}
	}

	application := app.New(cfg, db, redisCache, mqConn, logger)
	if err := application.Init(); err != nil {
		logger.Fatal("failed to init app", zap.Error(err))
	}
	defer application.Close()

	router := gin.Default()
	authHandler := handler.NewAuthHandler(application.AuthService, application.AuditWorkflow, logger)
	movieHandler := handler.NewMovieHandler(application.MovieService, application.AuditWorkflow, logger)
	auditHandler := handler.NewAuditHandler(application.AuditService, logger)
	handler.SetupRoutes(router, application.Tokens, authHandler, movieHandler, auditHandler)

	logger.Info("starting movie-catalog server", zap.String("addr", cfg.Addr))
	if err := router.Run(cfg.Addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
