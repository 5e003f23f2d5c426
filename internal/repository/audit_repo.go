package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/qs-lzh/movie-catalog/internal/model"
)

type AuditRepo interface {
	WithTx(tx *gorm.DB) AuditRepo
	Create(entry *model.AuditLog) error
	ListRecent(limit int) ([]model.AuditLog, error)
}

type auditRepoGorm struct {
	db *gorm.DB
}

var _ AuditRepo = (*auditRepoGorm)(nil)

func NewAuditRepoGorm(db *gorm.DB) *auditRepoGorm {
	return &auditRepoGorm{
		db: db,
	}
}

func (r *auditRepoGorm) WithTx(tx *gorm.DB) AuditRepo {
	return &auditRepoGorm{
		db: tx,
	}
}

func (r *auditRepoGorm) Create(entry *model.AuditLog) error {
	ctx := context.Background()
	if err := gorm.G[model.AuditLog](r.db).Create(ctx, entry); err != nil {
		return err
	}
	return nil
}

func (r *auditRepoGorm) ListRecent(limit int) ([]model.AuditLog, error) {
	ctx := context.Background()
	entries, err := gorm.G[model.AuditLog](r.db).Order("id DESC").Limit(limit).Find(ctx)
	if err != nil {
		return nil, err
	}
	return entries, nil
}
