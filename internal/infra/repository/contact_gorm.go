package repository

import (
	"context"

	"app/internal/domain/model"
	domainrepo "app/internal/repository"

	"gorm.io/gorm"
)

type contactGormRepository struct {
	db *gorm.DB
}

// DI
func NewContactGormRepository(db *gorm.DB) domainrepo.ContactRepository {
	return &contactGormRepository{db: db}
}

func (r *contactGormRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}
