// Seeds the demo accounts and a few catalog entries. Safe to re-run, existing
// usernames are skipped.
package main

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/qs-lzh/movie-catalog/config"
	"github.com/qs-lzh/movie-catalog/internal/model"
	"github.com/qs-lzh/movie-catalog/internal/repository"
	"github.com/qs-lzh/movie-catalog/internal/service"
	"github.com/qs-lzh/movie-catalog/internal/service/domain"

	"github.com/qs-lzh/movie-catalog/internal/auth"
)

type seedUser struct {
	username string
	password string
	role     model.UserRole
}

var sampleUsers = []seedUser{
	{username: "manager1", password: "password123", role: model.RoleManager},
	{username: "teamlead1", password: "password123", role: model.RoleTeamLeader},
	{username: "staff1", password: "password123", role: model.RoleFloorStaff},
}

type seedMovie struct {
	title  string
	year   int
	rating model.MovieRating
}

var sampleMovies = []seedMovie{
	{title: "Inception", year: 2010, rating: model.RatingM},
	{title: "Finding Nemo", year: 2003, rating: model.RatingG},
	{title: "Mad Max: Fury Road", year: 2015, rating: model.RatingMA},
}

func main() {
	logger, err := zap.NewDevelopment()
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

	if err := db.AutoMigrate(&model.User{}, &model.Movie{}, &model.AuditLog{}); err != nil {
		logger.Fatal("failed to migrate", zap.Error(err))
	}

	userRepo := repository.NewUserRepoGorm(db)
	movieRepo := repository.NewMovieRepoGorm(db)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	authService := domain.NewAuthService(db, userRepo, tokens, cfg.BcryptCost)
	movieService := domain.NewMovieService(db, movieRepo, nil)

	var manager *model.User
	for _, seed := range sampleUsers {
		user, err := authService.Register(seed.username, seed.password, seed.role)
		if err != nil {
			if errors.Is(err, service.ErrDuplicateUsername) {
				logger.Info("user already exists", zap.String("username", seed.username))
				continue
			}
			logger.Fatal("failed to seed user", zap.String("username", seed.username), zap.Error(err))
		}
		logger.Info("created user", zap.String("username", user.Username), zap.String("role", string(user.Role)))
		if user.Role == model.RoleManager {
			manager = user
		}
	}

	if manager == nil {
		logger.Info("no fresh manager account, skipping movie seed")
		return
	}

	for _, seed := range sampleMovies {
		movie, err := movieService.CreateMovie(manager.ID, domain.MovieInput{
			Title:  seed.title,
			Year:   seed.year,
			Rating: seed.rating,
		})
		if err != nil {
			logger.Fatal("failed to seed movie", zap.String("title", seed.title), zap.Error(err))
		}
		logger.Info("created movie", zap.String("title", movie.Title))
	}

	logger.Info("database seeded",
		zap.String("manager", "manager1 / password123"),
		zap.String("teamleader", "teamlead1 / password123"),
		zap.String("floorstaff", "staff1 / password123"),
	)
}
