// internal/service/message.go
package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/mohamedevweb/services-co/internal/domain"
	"github.com/mohamedevweb/services-co/internal/model"
	"github.com/mohamedevweb/services-co/internal/repository"
)

type MessageService struct {
	repo     repository.MessageRepositoryIface
	validate *validator.Validate
}

func NewMessageService(repo repository.MessageRepositoryIface) *MessageService {
	return &MessageService{repo: repo, validate: validator.New()}
}

type SendMessageInput struct {
	ProviderID     int64  `json:"id_prestataire" validate:"required"`
	OrganizationID int64  `json:"id_organization" validate:"required"`
	Content        string `json:"content" validate:"required"`
}

func (s *MessageService) Send(ctx context.Context, input SendMessageInput) (*model.Message, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	message := &model.Message{
		ProviderID:     input.ProviderID,
		OrganizationID: input.OrganizationID,
		Content:        input.Content,
	}
	if err := s.repo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// Conversation returns the full thread between a provider and an
// organization, oldest first.
func (s *MessageService) Conversation(ctx context.Context, providerID, organizationID int64) ([]*model.Message, error) {
	return s.repo.FindConversation(ctx, providerID, organizationID)
}
