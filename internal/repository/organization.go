// internal/repository/organization.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mohamedevweb/services-co/internal/domain"
	"github.com/mohamedevweb/services-co/internal/model"
)

type OrganizationRepositoryIface interface {
	// CreateAggregate inserts the organization and promotes the owning user
	// to ORG in one transaction.
	CreateAggregate(ctx context.Context, org *model.Organization) error

	FindByID(ctx context.Context, id int64) (*model.Organization, error)
	FindByUserID(ctx context.Context, userID int64) (*model.Organization, error)
	Update(ctx context.Context, id int64, fields map[string]any) error
}

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) CreateAggregate(ctx context.Context, org *model.Organization) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.User{}).
			Where("id = ?", org.UserID).
			Update("role", model.RoleOrg)
		if result.Error != nil {
			return fmt.Errorf("promoting user role: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}

		if err := tx.Create(org).Error; err != nil {
			return fmt.Errorf("creating organization: %w", err)
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

func (r *OrganizationRepository) FindByID(ctx context.Context, id int64) (*model.Organization, error) {
	var org model.Organization
	result := r.db.WithContext(ctx).Preload("User").First(&org, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("finding organization: %w", result.Error)
	}
	return &org, nil
}

func (r *OrganizationRepository) FindByUserID(ctx context.Context, userID int64) (*model.Organization, error) {
	var org model.Organization
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&org)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("finding organization: %w", result.Error)
	}
	return &org, nil
}

func (r *OrganizationRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&model.Organization{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("updating organization: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrganizationNotFound
	}
	return nil
}
