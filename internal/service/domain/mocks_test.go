package domain

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/qs-lzh/movie-catalog/internal/auth"
	"github.com/qs-lzh/movie-catalog/internal/model"
	"github.com/qs-lzh/movie-catalog/internal/repository"
)

// =============================================================================
// Mock UserRepo
// =============================================================================

type mockUserRepo struct {
	createFunc        func(user *model.User) error
	getByIDFunc       func(id uint) (*model.User, error)
	getByUsernameFunc func(username string) (*model.User, error)
}

var _ repository.UserRepo = (*mockUserRepo)(nil)

func (m *mockUserRepo) WithTx(tx *gorm.DB) repository.UserRepo { return m }

func (m *mockUserRepo) Create(user *model.User) error {
	if m.createFunc != nil {
		return m.createFunc(user)
	}
	return errors.New("not implemented")
}

func (m *mockUserRepo) GetByID(id uint) (*model.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepo) GetByUsername(username string) (*model.User, error) {
	if m.getByUsernameFunc != nil {
		return m.getByUsernameFunc(username)
	}
	return nil, errors.New("not implemented")
}

// =============================================================================
// Mock MovieRepo
// =============================================================================

type mockMovieRepo struct {
	createFunc  func(movie *model.Movie) error
	getByIDFunc func(id uint) (*model.Movie, error)
	listAllFunc func() ([]model.Movie, error)
	updateFunc  func(movie *model.Movie) error
	deleteFunc  func(id uint) (bool, error)
}

var _ repository.MovieRepo = (*mockMovieRepo)(nil)

func (m *mockMovieRepo) WithTx(tx *gorm.DB) repository.MovieRepo { return m }

func (m *mockMovieRepo) Create(movie *model.Movie) error {
	if m.createFunc != nil {
		return m.createFunc(movie)
	}
	return errors.New("not implemented")
}

func (m *mockMovieRepo) GetByID(id uint) (*model.Movie, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockMovieRepo) ListAll() ([]model.Movie, error) {
	if m.listAllFunc != nil {
		return m.listAllFunc()
	}
	return nil, errors.New("not implemented")
}

func (m *mockMovieRepo) Update(movie *model.Movie) error {
	if m.updateFunc != nil {
		return m.updateFunc(movie)
	}
	return errors.New("not implemented")
}

func (m *mockMovieRepo) Delete(id uint) (bool, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return false, errors.New("not implemented")
}

// =============================================================================
// Helpers
// =============================================================================

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := auth.HashPassword(password, auth.DefaultBcryptCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	return hashed
}
