package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/qs-lzh/movie-catalog/internal/cache"
	"github.com/qs-lzh/movie-catalog/internal/model"
	"github.com/qs-lzh/movie-catalog/internal/repository"
	"github.com/qs-lzh/movie-catalog/internal/service"
)

// earliest film on record; the upper bound leaves room for announced releases
const minMovieYear = 1888

type MovieInput struct {
	Title  string            `json:"title"`
	Year   int               `json:"year"`
	Rating model.MovieRating `json:"rating"`
}

type MovieService interface {
	CreateMovie(actorID uint, input MovieInput) (*model.Movie, error)
	GetMovieByID(id uint) (*model.Movie, error)
	ListMovies() ([]model.Movie, error)
	UpdateMovie(id uint, input MovieInput) (*model.Movie, error)
	DeleteMovie(id uint) error
}

type movieService struct {
	db    *gorm.DB
	repo  repository.MovieRepo
	cache *cache.RedisCache
}

var _ MovieService = (*movieService)(nil)

func NewMovieService(db *gorm.DB, movieRepo repository.MovieRepo, cache *cache.RedisCache) *movieService {
	return &movieService{
		db:    db,
		repo:  movieRepo,
		cache: cache,
	}
}

func validateInput(input MovieInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: title is required", service.ErrValidation)
	}
	maxYear := time.Now().Year() + 5
	if input.Year < minMovieYear || input.Year > maxYear {
		return fmt.Errorf("%w: year must be between %d and %d", service.ErrValidation, minMovieYear, maxYear)
	}
	if !input.Rating.Valid() {
		return fmt.Errorf("%w: rating must be one of G, PG, M, MA, R", service.ErrValidation)
	}
	return nil
}

func (s *movieService) CreateMovie(actorID uint, input MovieInput) (*model.Movie, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	movie := &model.Movie{
		Title:       strings.TrimSpace(input.Title),
		Year:        input.Year,
		Rating:      input.Rating,
		CreatedByID: actorID,
	}
	if err := s.repo.Create(movie); err != nil {
		return nil, err
	}
	s.invalidateCache(movie.ID)
	return movie, nil
}

func (s *movieService) GetMovieByID(id uint) (*model.Movie, error) {
	movie, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return movie, nil
}

func (s *movieService) ListMovies() ([]model.Movie, error) {
	if s.cache != nil {
		if movies, err := s.cache.GetMovieList(); err == nil {
			return movies, nil
		}
	}

	movies, err := s.repo.ListAll()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		// best effort, a failed cache fill never fails the read
		_ = s.cache.SetMovieList(movies)
	}
	return movies, nil
}

// UpdateMovie mutates title/year/rating only. CreatedByID is set once at
// creation and never changes.
func (s *movieService) UpdateMovie(id uint, input MovieInput) (*model.Movie, error) {
	movie, err := s.GetMovieByID(id)
	if err != nil {
		return nil, err
	}

	if err := validateInput(input); err != nil {
		return nil, err
	}

	movie.Title = strings.TrimSpace(input.Title)
	movie.Year = input.Year
	movie.Rating = input.Rating
	if err := s.repo.Update(movie); err != nil {
		return nil, err
	}
	s.invalidateCache(movie.ID)
	return movie, nil
}

func (s *movieService) DeleteMovie(id uint) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return service.ErrNotFound
	}
	s.invalidateCache(id)
	return nil
}

func (s *movieService) invalidateCache(movieID uint) {
	if s.cache == nil {
		return
	}
	_ = s.cache.InvalidateMovies(movieID)
}
