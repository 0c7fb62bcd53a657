// internal/repository/provider.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mohamedevweb/services-co/internal/domain"
	"github.com/mohamedevweb/services-co/internal/model"
)

// ProviderUpdate carries a partial provider update. Scalars land in Fields
// only when present in the request; a non-nil collection pointer means
// "replace the whole collection", nil means leave it untouched.
type ProviderUpdate struct {
	Fields      map[string]any
	Skills      *[]model.Skill
	Diplomas    *[]model.Diploma
	Experiences *[]model.Experience
	Languages   *[]model.Language
}

type ProviderRepositoryIface interface {
	// CreateAggregate inserts the provider with its child collections and
	// promotes the owning user to PRESTA, all in one transaction.
	CreateAggregate(ctx context.Context, provider *model.Provider) error

	// UpdateAggregate applies a partial update; present collections are
	// destructively replaced (delete all, insert the supplied list).
	UpdateAggregate(ctx context.Context, id int64, update ProviderUpdate) error

	FindByID(ctx context.Context, id int64) (*model.Provider, error)
	FindByUserID(ctx context.Context, userID int64) (*model.Provider, error)
	FindAll(ctx context.Context) ([]*model.Provider, error)
}

type ProviderRepository struct {
	db *gorm.DB
}

func NewProviderRepository(db *gorm.DB) *ProviderRepository {
	return &ProviderRepository{db: db}
}

func (r *ProviderRepository) CreateAggregate(ctx context.Context, provider *model.Provider) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(provider).Error; err != nil {
			return fmt.Errorf("creating provider: %w", err)
		}

		result := tx.Model(&model.User{}).
			Where("id = ?", provider.UserID).
			Update("role", model.RolePresta)
		if result.Error != nil {
			return fmt.Errorf("promoting user role: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *ProviderRepository) UpdateAggregate(ctx context.Context, id int64, update ProviderUpdate) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Provider
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrProviderNotFound
			}
			return fmt.Errorf("finding provider: %w", err)
		}

		if len(update.Fields) > 0 {
			if err := tx.Model(&model.Provider{}).Where("id = ?", id).Updates(update.Fields).Error; err != nil {
				return fmt.Errorf("updating provider: %w", err)
			}
		}

		if update.Skills != nil {
			if err := replaceCollection(tx, id, &model.Skill{}, *update.Skills); err != nil {
				return fmt.Errorf("replacing skills: %w", err)
			}
		}
		if update.Diplomas != nil {
			if err := replaceCollection(tx, id, &model.Diploma{}, *update.Diplomas); err != nil {
				return fmt.Errorf("replacing diplomas: %w", err)
			}
		}
		if update.Experiences != nil {
			if err := replaceCollection(tx, id, &model.Experience{}, *update.Experiences); err != nil {
				return fmt.Errorf("replacing experiences: %w", err)
			}
		}
		if update.Languages != nil {
			if err := replaceCollection(tx, id, &model.Language{}, *update.Languages); err != nil {
				return fmt.Errorf("replacing languages: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrProviderNotFound) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

// replaceCollection deletes every row of the collection for the provider and
// inserts the supplied list. No per-item identity is preserved across edits.
func replaceCollection[T any](tx *gorm.DB, providerID int64, zero *T, items []T) error {
	if err := tx.Where("provider_id = ?", providerID).Delete(zero).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	return tx.Create(&items).Error
}

func (r *ProviderRepository) FindByID(ctx context.Context, id int64) (*model.Provider, error) {
	var provider model.Provider
	result := r.db.WithContext(ctx).
		Preload("User").
		Preload("Skills").
		Preload("Diplomas").
		Preload("Experiences").
		Preload("Languages").
		First(&provider, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProviderNotFound
		}
		return nil, fmt.Errorf("finding provider: %w", result.Error)
	}
	return &provider, nil
}

func (r *ProviderRepository) FindByUserID(ctx context.Context, userID int64) (*model.Provider, error) {
	var provider model.Provider
	result := r.db.WithContext(ctx).
		Preload("User").
		Preload("Skills").
		Preload("Diplomas").
		Preload("Experiences").
		Preload("Languages").
		First(&provider, "user_id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProviderNotFound
		}
		return nil, fmt.Errorf("finding provider by user: %w", result.Error)
	}
	return &provider, nil
}

func (r *ProviderRepository) FindAll(ctx context.Context) ([]*model.Provider, error) {
	var providers []*model.Provider
	result := r.db.WithContext(ctx).Find(&providers)
	if result.Error != nil {
		return nil, fmt.Errorf("finding all providers: %w", result.Error)
	}
	return providers, nil
}
