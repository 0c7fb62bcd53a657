// internal/repository/message.go
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mohamedevweb/services-co/internal/model"
)

type MessageRepositoryIface interface {
	Create(ctx context.Context, message *model.Message) error
	FindConversation(ctx context.Context, providerID, organizationID int64) ([]*model.Message, error)
}

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, message *model.Message) error {
	result := r.db.WithContext(ctx).Create(message)
	if result.Error != nil {
		return fmt.Errorf("creating message: %w", result.Error)
	}
	return nil
}

func (r *MessageRepository) FindConversation(ctx context.Context, providerID, organizationID int64) ([]*model.Message, error) {
	var messages []*model.Message
	result := r.db.WithContext(ctx).
		Where("provider_id = ? AND organization_id = ?", providerID, organizationID).
		Order("created_at").
		Find(&messages)
	if result.Error != nil {
		return nil, fmt.Errorf("finding conversation: %w", result.Error)
	}
	return messages, nil
}
