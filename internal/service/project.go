// internal/service/project.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mohamedevweb/services-co/internal/ai"
	"github.com/mohamedevweb/services-co/internal/domain"
	"github.com/mohamedevweb/services-co/internal/model"
	"github.com/mohamedevweb/services-co/internal/repository"
)

// ProjectExtractor turns a free-text brief into a structured plan staffed
// from the given candidate pool.
type ProjectExtractor interface {
	ExtractProject(ctx context.Context, prompt string, candidates []ai.Candidate) (*ai.ProjectExtraction, error)
}

type ProjectService struct {
	projects  repository.ProjectRepositoryIface
	providers repository.ProviderRepositoryIface
	extractor ProjectExtractor
	logger    *slog.Logger
	validate  *validator.Validate
}

func NewProjectService(projects repository.ProjectRepositoryIface, providers repository.ProviderRepositoryIface, extractor ProjectExtractor, logger *slog.Logger) *ProjectService {
	return &ProjectService{
		projects:  projects,
		providers: providers,
		extractor: extractor,
		logger:    logger,
		validate:  validator.New(),
	}
}

type CreateProjectInput struct {
	Prompt string `json:"prompt" validate:"required"`
}

type ProjectCreation struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	ConfidenceScore float64 `json:"confidence_score"`
	ExtractionNotes string  `json:"extraction_notes,omitempty"`
}

// CreateWithAI builds a project from a free-text brief. The provider pool is
// loaded, handed to the extractor as candidates, and the returned plan is
// persisted as one aggregate with every path unchosen and every task
// unapproved.
func (s *ProjectService) CreateWithAI(ctx context.Context, input CreateProjectInput, organizationID int64) (*ProjectCreation, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if organizationID <= 0 {
		return nil, fmt.Errorf("%w: organizationId is required", domain.ErrInvalidInput)
	}

	pool, err := s.providers.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, domain.ErrNoProvidersAvailable
	}

	candidates := make([]ai.Candidate, 0, len(pool))
	for _, p := range pool {
		candidates = append(candidates, ai.Candidate{
			ID:             p.ID,
			FirstName:      p.FirstName,
			Name:           p.Name,
			Job:            p.Job,
			Description:    p.Description,
			ExperienceTime: p.ExperienceTime,
			City:           p.City,
			DailyRate:      p.DailyRate,
		})
	}

	extraction, err := s.extractor.ExtractProject(ctx, input.Prompt, candidates)
	if err != nil {
		return nil, err
	}

	project := &model.Project{
		Title:          extraction.Project.Title,
		Description:    extraction.Project.Description,
		OrganizationID: organizationID,
	}
	for _, path := range extraction.Paths {
		p := model.Path{Number: path.Number}
		for _, task := range path.Tasks {
			p.Tasks = append(p.Tasks, model.PathAssignment{
				ProviderID: task.ProviderID,
				Name:       task.Name,
				DayCount:   task.DayCount,
			})
		}
		project.Paths = append(project.Paths, p)
	}

	if err := s.projects.CreateAggregate(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		"projectID", project.ID,
		"organizationID", organizationID,
		"confidence", extraction.ConfidenceScore,
	)

	return &ProjectCreation{
		ID:              project.ID,
		Title:           project.Title,
		Description:     project.Description,
		ConfidenceScore: extraction.ConfidenceScore,
		ExtractionNotes: extraction.ExtractionNotes,
	}, nil
}

func (s *ProjectService) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	return s.projects.FindByID(ctx, id)
}

func (s *ProjectService) ListByOrganization(ctx context.Context, organizationID int64) ([]*model.Project, error) {
	return s.projects.FindByOrganization(ctx, organizationID)
}

func (s *ProjectService) ListByProvider(ctx context.Context, providerID int64) ([]*repository.ProviderProject, error) {
	return s.projects.FindByProvider(ctx, providerID)
}

// ChoosePath flips the chosen flag on a single path and nothing else.
func (s *ProjectService) ChoosePath(ctx context.Context, pathID int64, chosen bool) error {
	return s.projects.SetPathChosen(ctx, pathID, chosen)
}

// ChoosePathExclusive marks one path chosen and clears its siblings so the
// project ends up with exactly one chosen path.
func (s *ProjectService) ChoosePathExclusive(ctx context.Context, pathID int64) error {
	return s.projects.SetPathChosenExclusive(ctx, pathID)
}

func (s *ProjectService) ApproveTask(ctx context.Context, pathID, providerID int64, approved bool) error {
	return s.projects.SetTaskApproved(ctx, pathID, providerID, approved)
}

type CreateContractInput struct {
	Number     string `json:"num_contract"`
	ProviderID int64  `json:"provider_id" validate:"required"`
	PathID     int64  `json:"path_id" validate:"required"`
}

// CreateContract records an engagement; a missing number is generated.
func (s *ProjectService) CreateContract(ctx context.Context, input CreateContractInput) (*model.Contract, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	number := input.Number
	if number == "" {
		number = "CTR-" + uuid.NewString()[:8]
	}

	contract := &model.Contract{
		Number:     number,
		ProviderID: input.ProviderID,
		PathID:     input.PathID,
	}
	if err := s.projects.CreateContract(ctx, contract); err != nil {
		return nil, err
	}
	return contract, nil
}

func (s *ProjectService) ContractsByProvider(ctx context.Context, providerID int64) ([]*model.Contract, error) {
	return s.projects.FindContractsByProvider(ctx, providerID)
}
