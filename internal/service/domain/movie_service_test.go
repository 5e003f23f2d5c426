package domain

import (
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/qs-lzh/movie-catalog/internal/model"
	"github.com/qs-lzh/movie-catalog/internal/service"
)

func validInput() MovieInput {
	return MovieInput{Title: "Inception", Year: 2010, Rating: model.RatingM}
}

func TestCreateMovieSetsCreator(t *testing.T) {
	var created *model.Movie
	repo := &mockMovieRepo{
		createFunc: func(movie *model.Movie) error {
			movie.ID = 5
			created = movie
			return nil
		},
	}
	svc := NewMovieService(nil, repo, nil)

	movie, err := svc.CreateMovie(42, validInput())
	if err != nil {
		t.Fatalf("CreateMovie() error = %v", err)
	}
	if movie.ID != 5 || movie.Title != "Inception" {
		t.Errorf("CreateMovie() = %+v", movie)
	}
	if created.CreatedByID != 42 {
		t.Errorf("CreateMovie() createdBy = %d, want 42", created.CreatedByID)
	}
}

func TestCreateMovieValidation(t *testing.T) {
	svc := NewMovieService(nil, &mockMovieRepo{}, nil)

	cases := []struct {
		name  string
		input MovieInput
	}{
		{"empty title", MovieInput{Title: "  ", Year: 2010, Rating: model.RatingM}},
		{"year too early", MovieInput{Title: "Inception", Year: 1800, Rating: model.RatingM}},
		{"year too late", MovieInput{Title: "Inception", Year: time.Now().Year() + 50, Rating: model.RatingM}},
		{"zero year", MovieInput{Title: "Inception", Rating: model.RatingM}},
		{"bad rating", MovieInput{Title: "Inception", Year: 2010, Rating: model.MovieRating("NC17")}},
		{"missing rating", MovieInput{Title: "Inception", Year: 2010}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateMovie(1, tc.input)
			if !errors.Is(err, service.ErrValidation) {
				t.Errorf("CreateMovie(%s) error = %v, want ErrValidation", tc.name, err)
			}
		})
	}
}

func TestCreateMovieTrimsTitle(t *testing.T) {
	repo := &mockMovieRepo{
		createFunc: func(movie *model.Movie) error { return nil },
	}
	svc := NewMovieService(nil, repo, nil)

	movie, err := svc.CreateMovie(1, MovieInput{Title: "  Inception  ", Year: 2010, Rating: model.RatingM})
	if err != nil {
		t.Fatalf("CreateMovie() error = %v", err)
	}
	if movie.Title != "Inception" {
		t.Errorf("CreateMovie() title = %q, want trimmed", movie.Title)
	}
}

func TestGetMovieNotFound(t *testing.T) {
	repo := &mockMovieRepo{
		getByIDFunc: func(id uint) (*model.Movie, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewMovieService(nil, repo, nil)

	_, err := svc.GetMovieByID(99)
	if !errors.Is(err, service.ErrNotFound) {
		t.Errorf("GetMovieByID() error = %v, want ErrNotFound", err)
	}
}

func TestListMovies(t *testing.T) {
	repo := &mockMovieRepo{
		listAllFunc: func() ([]model.Movie, error) {
			return []model.Movie{
				{ID: 1, Title: "Inception", Year: 2010, Rating: model.RatingM},
				{ID: 2, Title: "Finding Nemo", Year: 2003, Rating: model.RatingG},
			}, nil
		},
	}
	svc := NewMovieService(nil, repo, nil)

	movies, err := svc.ListMovies()
	if err != nil {
		t.Fatalf("ListMovies() error = %v", err)
	}
	if len(movies) != 2 {
		t.Errorf("ListMovies() len = %d, want 2", len(movies))
	}
}

func TestUpdateMoviePreservesCreator(t *testing.T) {
	var saved *model.Movie
	repo := &mockMovieRepo{
		getByIDFunc: func(id uint) (*model.Movie, error) {
			return &model.Movie{ID: id, Title: "Inception", Year: 2010, Rating: model.RatingM, CreatedByID: 42}, nil
		},
		updateFunc: func(movie *model.Movie) error {
			saved = movie
			return nil
		},
	}
	svc := NewMovieService(nil, repo, nil)

	movie, err := svc.UpdateMovie(5, MovieInput{Title: "Inception (Director's Cut)", Year: 2011, Rating: model.RatingMA})
	if err != nil {
		t.Fatalf("UpdateMovie() error = %v", err)
	}
	if movie.Title != "Inception (Director's Cut)" || movie.Year != 2011 || movie.Rating != model.RatingMA {
		t.Errorf("UpdateMovie() = %+v", movie)
	}
	if saved.CreatedByID != 42 {
		t.Errorf("UpdateMovie() createdBy = %d, creator must be immutable", saved.CreatedByID)
	}
}

func TestUpdateMovieNotFound(t *testing.T) {
	repo := &mockMovieRepo{
		getByIDFunc: func(id uint) (*model.Movie, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewMovieService(nil, repo, nil)

	_, err := svc.UpdateMovie(99, validInput())
	if !errors.Is(err, service.ErrNotFound) {
		t.Errorf("UpdateMovie() error = %v, want ErrNotFound", err)
	}
}

func TestUpdateMovieValidation(t *testing.T) {
	repo := &mockMovieRepo{
		getByIDFunc: func(id uint) (*model.Movie, error) {
			return &model.Movie{ID: id, Title: "Inception", Year: 2010, Rating: model.RatingM}, nil
		},
	}
	svc := NewMovieService(nil, repo, nil)

	_, err := svc.UpdateMovie(5, MovieInput{Title: "", Year: 2010, Rating: model.RatingM})
	if !errors.Is(err, service.ErrValidation) {
		t.Errorf("UpdateMovie() error = %v, want ErrValidation", err)
	}
}

func TestDeleteMovie(t *testing.T) {
	repo := &mockMovieRepo{
		deleteFunc: func(id uint) (bool, error) {
			return id == 5, nil
		},
	}
	svc := NewMovieService(nil, repo, nil)

	if err := svc.DeleteMovie(5); err != nil {
		t.Fatalf("DeleteMovie(5) error = %v", err)
	}

	err := svc.DeleteMovie(99)
	if !errors.Is(err, service.ErrNotFound) {
		t.Errorf("DeleteMovie(99) error = %v, want ErrNotFound", err)
	}
}
