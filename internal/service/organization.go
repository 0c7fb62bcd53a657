// internal/service/organization.go
package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/mohamedevweb/services-co/internal/auth"
	"github.com/mohamedevweb/services-co/internal/domain"
	"github.com/mohamedevweb/services-co/internal/model"
	"github.com/mohamedevweb/services-co/internal/repository"
)

type OrganizationService struct {
	repo     repository.OrganizationRepositoryIface
	tokens   *auth.TokenManager
	validate *validator.Validate
}

func NewOrganizationService(repo repository.OrganizationRepositoryIface, tokens *auth.TokenManager) *OrganizationService {
	return &OrganizationService{
		repo:     repo,
		tokens:   tokens,
		validate: validator.New(),
	}
}

type CreateOrganizationInput struct {
	Name    string  `json:"name" validate:"required"`
	Address string  `json:"adresse" validate:"required"`
	Phone   string  `json:"tel" validate:"required"`
	Balance float64 `json:"solde"`
}

// Create inserts the organization and promotes the user to ORG in one
// transaction, then signs a token carrying the new role.
func (s *OrganizationService) Create(ctx context.Context, input CreateOrganizationInput, userID int64) (*ProfileCreation, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	org := &model.Organization{
		Name:    input.Name,
		Address: input.Address,
		Phone:   input.Phone,
		Balance: formatRate(input.Balance),
		UserID:  userID,
	}
	if err := s.repo.CreateAggregate(ctx, org); err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(userID, model.RoleOrg)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &ProfileCreation{ID: org.ID, Token: token}, nil
}

// OrganizationOutput parses the balance at the response boundary; the
// joined user omits its password hash.
type OrganizationOutput struct {
	ID      int64       `json:"id"`
	Name    string      `json:"name"`
	Address string      `json:"adresse"`
	Balance float64     `json:"solde"`
	Phone   string      `json:"tel"`
	UserID  int64       `json:"user_id"`
	User    *model.User `json:"user,omitempty"`
}

func (s *OrganizationService) GetByID(ctx context.Context, id int64) (*OrganizationOutput, error) {
	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return organizationOutput(org), nil
}

func (s *OrganizationService) GetByUser(ctx context.Context, userID int64) (*OrganizationOutput, error) {
	org, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return organizationOutput(org), nil
}

type UpdateOrganizationInput struct {
	Name    *string  `json:"name"`
	Address *string  `json:"adresse"`
	Phone   *string  `json:"tel"`
	Balance *float64 `json:"solde"`
}

// Update applies a partial update after checking the caller owns the
// organization.
func (s *OrganizationService) Update(ctx context.Context, id int64, input UpdateOrganizationInput, userID int64) error {
	org, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if org.UserID != userID {
		return domain.ErrUnauthorized
	}

	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Address != nil {
		fields["address"] = *input.Address
	}
	if input.Phone != nil {
		fields["phone"] = *input.Phone
	}
	if input.Balance != nil {
		fields["balance"] = formatRate(*input.Balance)
	}

	return s.repo.Update(ctx, id, fields)
}

func organizationOutput(org *model.Organization) *OrganizationOutput {
	return &OrganizationOutput{
		ID:      org.ID,
		Name:    org.Name,
		Address: org.Address,
		Balance: parseRate(org.Balance),
		Phone:   org.Phone,
		UserID:  org.UserID,
		User:    org.User,
	}
}
