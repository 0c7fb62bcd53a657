// internal/service/provider.go
package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/mohamedevweb/services-co/internal/auth"
	"github.com/mohamedevweb/services-co/internal/domain"
	"github.com/mohamedevweb/services-co/internal/model"
	"github.com/mohamedevweb/services-co/internal/repository"
)

type ProviderService struct {
	repo     repository.ProviderRepositoryIface
	tokens   *auth.TokenManager
	validate *validator.Validate
}

func NewProviderService(repo repository.ProviderRepositoryIface, tokens *auth.TokenManager) *ProviderService {
	return &ProviderService{
		repo:     repo,
		tokens:   tokens,
		validate: validator.New(),
	}
}

type DescriptionInput struct {
	Description string `json:"description" validate:"required"`
}

type CreateProviderInput struct {
	FirstName      string             `json:"first_name" validate:"required"`
	Name           string             `json:"name" validate:"required"`
	Job            model.Job          `json:"job" validate:"required,oneof=DEVELOPMENT DESIGN MARKETING HUMAN_RESOURCES SALES"`
	Description    string             `json:"description"`
	ExperienceTime int                `json:"experience_time"`
	StudyLevel     string             `json:"study_level"`
	City           string             `json:"city"`
	DailyRate      float64            `json:"tjm"`
	Skills         []DescriptionInput `json:"skills"`
	Diplomas       []DescriptionInput `json:"diplomas"`
	Experiences    []DescriptionInput `json:"experiences"`
	Languages      []DescriptionInput `json:"languages"`
}

// ProfileCreation is the result of a profile-creating operation: the new
// profile id plus a freshly signed token reflecting the promoted role.
type ProfileCreation struct {
	ID    int64  `json:"id"`
	Token string `json:"token"`
}

// Create inserts the provider aggregate and promotes the user to PRESTA in
// one transaction, then signs a token carrying the new role. The caller's
// old token stays valid but stale until it expires.
func (s *ProviderService) Create(ctx context.Context, input CreateProviderInput, userID int64) (*ProfileCreation, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	provider := &model.Provider{
		FirstName:      input.FirstName,
		Name:           input.Name,
		Job:            input.Job,
		Description:    input.Description,
		ExperienceTime: input.ExperienceTime,
		StudyLevel:     input.StudyLevel,
		City:           input.City,
		DailyRate:      formatRate(input.DailyRate),
		UserID:         userID,
	}
	for _, item := range input.Skills {
		provider.Skills = append(provider.Skills, model.Skill{Description: item.Description})
	}
	for _, item := range input.Diplomas {
		provider.Diplomas = append(provider.Diplomas, model.Diploma{Description: item.Description})
	}
	for _, item := range input.Experiences {
		provider.Experiences = append(provider.Experiences, model.Experience{Description: item.Description})
	}
	for _, item := range input.Languages {
		provider.Languages = append(provider.Languages, model.Language{Description: item.Description})
	}

	if err := s.repo.CreateAggregate(ctx, provider); err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(userID, model.RolePresta)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &ProfileCreation{ID: provider.ID, Token: token}, nil
}

// UpdateProviderInput is a partial update. Nil scalar pointers and nil
// collection pointers mean "leave untouched"; a present collection replaces
// the stored one entirely.
type UpdateProviderInput struct {
	FirstName      *string             `json:"first_name"`
	Name           *string             `json:"name"`
	Job            *model.Job          `json:"job"`
	Description    *string             `json:"description"`
	ExperienceTime *int                `json:"experience_time"`
	StudyLevel     *string             `json:"study_level"`
	City           *string             `json:"city"`
	DailyRate      *float64            `json:"tjm"`
	Skills         *[]DescriptionInput `json:"skills"`
	Diplomas       *[]DescriptionInput `json:"diplomas"`
	Experiences    *[]DescriptionInput `json:"experiences"`
	Languages      *[]DescriptionInput `json:"languages"`
}

func (s *ProviderService) Update(ctx context.Context, id int64, input UpdateProviderInput) error {
	update := repository.ProviderUpdate{Fields: map[string]any{}}

	if input.FirstName != nil {
		update.Fields["first_name"] = *input.FirstName
	}
	if input.Name != nil {
		update.Fields["name"] = *input.Name
	}
	if input.Job != nil {
		update.Fields["job"] = *input.Job
	}
	if input.Description != nil {
		update.Fields["description"] = *input.Description
	}
	if input.ExperienceTime != nil {
		update.Fields["experience_time"] = *input.ExperienceTime
	}
	if input.StudyLevel != nil {
		update.Fields["study_level"] = *input.StudyLevel
	}
	if input.City != nil {
		update.Fields["city"] = *input.City
	}
	if input.DailyRate != nil {
		update.Fields["daily_rate"] = formatRate(*input.DailyRate)
	}

	if input.Skills != nil {
		skills := make([]model.Skill, 0, len(*input.Skills))
		for _, item := range *input.Skills {
			skills = append(skills, model.Skill{Description: item.Description, ProviderID: id})
		}
		update.Skills = &skills
	}
	if input.Diplomas != nil {
		diplomas := make([]model.Diploma, 0, len(*input.Diplomas))
		for _, item := range *input.Diplomas {
			diplomas = append(diplomas, model.Diploma{Description: item.Description, ProviderID: id})
		}
		update.Diplomas = &diplomas
	}
	if input.Experiences != nil {
		experiences := make([]model.Experience, 0, len(*input.Experiences))
		for _, item := range *input.Experiences {
			experiences = append(experiences, model.Experience{Description: item.Description, ProviderID: id})
		}
		update.Experiences = &experiences
	}
	if input.Languages != nil {
		languages := make([]model.Language, 0, len(*input.Languages))
		for _, item := range *input.Languages {
			languages = append(languages, model.Language{Description: item.Description, ProviderID: id})
		}
		update.Languages = &languages
	}

	return s.repo.UpdateAggregate(ctx, id, update)
}

// ProviderOutput shapes a provider read; the daily rate is parsed to a
// float here, at the response boundary, and the joined user omits its
// password hash.
type ProviderOutput struct {
	ID             int64              `json:"id"`
	FirstName      string             `json:"first_name"`
	Name           string             `json:"name"`
	Job            model.Job          `json:"job"`
	Description    string             `json:"description"`
	ExperienceTime int                `json:"experience_time"`
	StudyLevel     string             `json:"study_level"`
	City           string             `json:"city"`
	DailyRate      float64            `json:"tjm"`
	UserID         int64              `json:"user_id"`
	User           *model.User        `json:"user,omitempty"`
	Skills         []model.Skill      `json:"skills"`
	Diplomas       []model.Diploma    `json:"diplomas"`
	Experiences    []model.Experience `json:"experiences"`
	Languages      []model.Language   `json:"languages"`
}

func (s *ProviderService) GetByID(ctx context.Context, id int64) (*ProviderOutput, error) {
	provider, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return providerOutput(provider), nil
}

// GetByUser resolves the provider profile owned by the given user, for the
// "my profile" read where the caller only knows its own user id.
func (s *ProviderService) GetByUser(ctx context.Context, userID int64) (*ProviderOutput, error) {
	provider, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return providerOutput(provider), nil
}

func providerOutput(provider *model.Provider) *ProviderOutput {
	return &ProviderOutput{
		ID:             provider.ID,
		FirstName:      provider.FirstName,
		Name:           provider.Name,
		Job:            provider.Job,
		Description:    provider.Description,
		ExperienceTime: provider.ExperienceTime,
		StudyLevel:     provider.StudyLevel,
		City:           provider.City,
		DailyRate:      parseRate(provider.DailyRate),
		UserID:         provider.UserID,
		User:           provider.User,
		Skills:         provider.Skills,
		Diplomas:       provider.Diplomas,
		Experiences:    provider.Experiences,
		Languages:      provider.Languages,
	}
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', 2, 64)
}

func parseRate(rate string) float64 {
	f, err := strconv.ParseFloat(rate, 64)
	if err != nil {
		return 0
	}
	return f
}
