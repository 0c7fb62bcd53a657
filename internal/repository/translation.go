// internal/repository/translation.go
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mohamedevweb/services-co/internal/model"
)

type TranslationRepositoryIface interface {
	Create(ctx context.Context, translation *model.Translation) error
	FindByOrganization(ctx context.Context, organizationID int64) ([]*model.Translation, error)
}

type TranslationRepository struct {
	db *gorm.DB
}

func NewTranslationRepository(db *gorm.DB) *TranslationRepository {
	return &TranslationRepository{db: db}
}

func (r *TranslationRepository) Create(ctx context.Context, translation *model.Translation) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(translation).Error
	})
	if err != nil {
		return fmt.Errorf("creating translation: %w", err)
	}
	return nil
}

func (r *TranslationRepository) FindByOrganization(ctx context.Context, organizationID int64) ([]*model.Translation, error) {
	var translations []*model.Translation
	result := r.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("id").
		Find(&translations)
	if result.Error != nil {
		return nil, fmt.Errorf("finding translations: %w", result.Error)
	}
	return translations, nil
}
