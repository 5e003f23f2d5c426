package domain

import (
	"gorm.io/gorm"

	"github.com/qs-lzh/movie-catalog/internal/model"
	"github.com/qs-lzh/movie-catalog/internal/repository"
)

const defaultAuditLimit = 100

type AuditService interface {
	ListRecent(limit int) ([]model.AuditLog, error)
}

type auditService struct {
	db   *gorm.DB
	repo repository.AuditRepo
}

var _ AuditService = (*auditService)(nil)

func NewAuditService(db *gorm.DB, auditRepo repository.AuditRepo) *auditService {
	return &auditService{
		db:   db,
		repo: auditRepo,
	}
}

func (s *auditService) ListRecent(limit int) ([]model.AuditLog, error) {
	if limit <= 0 || limit > defaultAuditLimit {
		limit = defaultAuditLimit
	}
	return s.repo.ListRecent(limit)
}
