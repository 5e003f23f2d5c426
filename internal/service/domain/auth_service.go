package domain

import (
	"errors"

	"gorm.io/gorm"

	"github.com/qs-lzh/movie-catalog/internal/auth"
	"github.com/qs-lzh/movie-catalog/internal/model"
	"github.com/qs-lzh/movie-catalog/internal/repository"
	"github.com/qs-lzh/movie-catalog/internal/service"
)

type AuthService interface {
	Register(username, password string, role model.UserRole) (*model.User, error)
	Login(username, password string) (token string, user *model.User, err error)
	GetProfile(userID uint) (*model.User, error)
}

type authService struct {
	db     *gorm.DB
	repo   repository.UserRepo
	tokens *auth.TokenService

	bcryptCost int
}

var _ AuthService = (*authService)(nil)

func NewAuthService(db *gorm.DB, userRepo repository.UserRepo, tokens *auth.TokenService, bcryptCost int) *authService {
	return &authService{
		db:         db,
		repo:       userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// Register creates an account with a freshly hashed password. The plaintext
// never reaches the repository.
func (s *authService) Register(username, password string, role model.UserRole) (*model.User, error) {
	if username == "" || password == "" {
		return nil, service.ErrValidation
	}
	if role == "" {
		role = model.RoleFloorStaff
	}
	if !role.Valid() {
		return nil, service.ErrValidation
	}

	if _, err := s.repo.GetByUsername(username); err == nil {
		return nil, service.ErrDuplicateUsername
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:       username,
		HashedPassword: hashed,
		Role:           role,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(username, password string) (string, *model.User, error) {
	user, err := s.repo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, service.ErrUserNotFound
		}
		return "", nil, err
	}

	if !auth.VerifyPassword(user.HashedPassword, password) {
		return "", nil, service.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *authService) GetProfile(userID uint) (*model.User, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
