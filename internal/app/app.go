package app

import (
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/qs-lzh/movie-catalog/config"
	"github.com/qs-lzh/movie-catalog/internal/auth"
	"github.com/qs-lzh/movie-catalog/internal/cache"
	"github.com/qs-lzh/movie-catalog/internal/model"
	"github.com/qs-lzh/movie-catalog/internal/mq"
	"github.com/qs-lzh/movie-catalog/internal/repository"
	"github.com/qs-lzh/movie-catalog/internal/service/domain"
	"github.com/qs-lzh/movie-catalog/internal/service/workflow"
)

type App struct {
	Config *config.Config

	DB     *gorm.DB
	Cache  *cache.RedisCache
	Logger *zap.Logger
	MQConn *amqp.Connection

	Tokens *auth.TokenService

	UserRepo  repository.UserRepo
	MovieRepo repository.MovieRepo
	AuditRepo repository.AuditRepo

	AuthService  domain.AuthService
	MovieService domain.MovieService
	AuditService domain.AuditService

	AuditWorkflow *workflow.AuditWorkflow
}

func New(config *config.Config, db *gorm.DB, cache *cache.RedisCache, mqConn *amqp.Connection, logger *zap.Logger) *App {
	userRepo := repository.NewUserRepoGorm(db)
	movieRepo := repository.NewMovieRepoGorm(db)
	auditRepo := repository.NewAuditRepoGorm(db)

	tokens := auth.NewTokenService(config.JWTSecret, config.JWTExpiry)

	authService := domain.NewAuthService(db, userRepo, tokens, config.BcryptCost)
	movieService := domain.NewMovieService(db, movieRepo, cache)
	auditService := domain.NewAuditService(db, auditRepo)

	auditWorkflow := workflow.NewAuditWorkflow(auditRepo, logger)

	return &App{
		Config:        config,
		DB:            db,
		Cache:         cache,
		Logger:        logger,
		MQConn:        mqConn,
		Tokens:        tokens,
		UserRepo:      userRepo,
		MovieRepo:     movieRepo,
		AuditRepo:     auditRepo,
		AuthService:   authService,
		MovieService:  movieService,
		AuditService:  auditService,
		AuditWorkflow: auditWorkflow,
	}
}

func (app *App) Init() error {
	if err := app.DB.AutoMigrate(&model.User{}, &model.Movie{}, &model.AuditLog{}); err != nil {
		return err
	}

	// the broker is optional, audit events are dropped without it
	if app.MQConn != nil {
		if err := mq.InitQueues(app.MQConn); err != nil {
			return err
		}
		if err := app.AuditWorkflow.Start(app.MQConn); err != nil {
			return err
		}
	}

	return nil
}

func (app *App) Close() error {
	sqlDB, err := app.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
