// internal/repository/project.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mohamedevweb/services-co/internal/domain"
	"github.com/mohamedevweb/services-co/internal/model"
)

// ProviderTask, ProviderPath and ProviderProject shape the provider-side
// project tree assembled from a flat multi-join.
type ProviderTask struct {
	Name     string `json:"name"`
	DayCount int    `json:"nb_days"`
	Approved bool   `json:"is_approved"`
}

type ProviderPath struct {
	ID     int64          `json:"id"`
	Number int            `json:"number"`
	Chosen bool           `json:"is_chosen"`
	Tasks  []ProviderTask `json:"tasks"`
}

type ProviderProject struct {
	ID               int64           `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	OrganizationID   int64           `json:"organization_id"`
	OrganizationName string          `json:"organization_name"`
	Paths            []*ProviderPath `json:"paths"`
}

type ProjectRepositoryIface interface {
	// CreateAggregate inserts the project and its nested paths and tasks in
	// one transaction; a failure anywhere leaves nothing behind.
	CreateAggregate(ctx context.Context, project *model.Project) error

	FindByID(ctx context.Context, id int64) (*model.Project, error)
	FindByOrganization(ctx context.Context, organizationID int64) ([]*model.Project, error)
	FindByProvider(ctx context.Context, providerID int64) ([]*ProviderProject, error)

	SetPathChosen(ctx context.Context, pathID int64, chosen bool) error
	SetPathChosenExclusive(ctx context.Context, pathID int64) error
	SetTaskApproved(ctx context.Context, pathID, providerID int64, approved bool) error

	CreateContract(ctx context.Context, contract *model.Contract) error
	FindContractsByProvider(ctx context.Context, providerID int64) ([]*model.Contract, error)
}

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) CreateAggregate(ctx context.Context, project *model.Project) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return fmt.Errorf("creating project: %w", err)
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id int64) (*model.Project, error) {
	var project model.Project
	result := r.db.WithContext(ctx).
		Preload("Organization").
		Preload("Paths", func(db *gorm.DB) *gorm.DB {
			return db.Order("paths.number")
		}).
		Preload("Paths.Tasks").
		First(&project, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("finding project: %w", result.Error)
	}
	return &project, nil
}

func (r *ProjectRepository) FindByOrganization(ctx context.Context, organizationID int64) ([]*model.Project, error) {
	var projects []*model.Project
	result := r.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("id").
		Find(&projects)
	if result.Error != nil {
		return nil, fmt.Errorf("finding projects: %w", result.Error)
	}
	return projects, nil
}

type providerProjectRow struct {
	ProjectID        int64
	Title            string
	Description      string
	OrganizationID   int64
	OrganizationName string
	PathID           int64
	PathNumber       int
	PathChosen       bool
	TaskName         string
	NbDays           int
	Approved         bool
}

// FindByProvider runs one flat multi-join over the provider's assignments
// and groups the rows into a project -> paths -> tasks tree.
func (r *ProjectRepository) FindByProvider(ctx context.Context, providerID int64) ([]*ProviderProject, error) {
	var rows []providerProjectRow
	result := r.db.WithContext(ctx).
		Table("path_assignments").
		Select(`projects.id AS project_id, projects.title, projects.description, projects.organization_id,
			organizations.name AS organization_name,
			paths.id AS path_id, paths.number AS path_number, paths.chosen AS path_chosen,
			path_assignments.name AS task_name, path_assignments.nb_days, path_assignments.approved`).
		Joins("JOIN paths ON paths.id = path_assignments.path_id").
		Joins("JOIN projects ON projects.id = paths.project_id").
		Joins("JOIN organizations ON organizations.id = projects.organization_id").
		Where("path_assignments.provider_id = ?", providerID).
		Order("projects.id, paths.number").
		Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("finding provider projects: %w", result.Error)
	}

	var projects []*ProviderProject
	projectIndex := make(map[int64]*ProviderProject)
	pathIndex := make(map[int64]*ProviderPath)

	for _, row := range rows {
		project, ok := projectIndex[row.ProjectID]
		if !ok {
			project = &ProviderProject{
				ID:               row.ProjectID,
				Title:            row.Title,
				Description:      row.Description,
				OrganizationID:   row.OrganizationID,
				OrganizationName: row.OrganizationName,
			}
			projectIndex[row.ProjectID] = project
			projects = append(projects, project)
		}

		path, ok := pathIndex[row.PathID]
		if !ok {
			path = &ProviderPath{
				ID:     row.PathID,
				Number: row.PathNumber,
				Chosen: row.PathChosen,
			}
			pathIndex[row.PathID] = path
			project.Paths = append(project.Paths, path)
		}

		path.Tasks = append(path.Tasks, ProviderTask{
			Name:     row.TaskName,
			DayCount: row.NbDays,
			Approved: row.Approved,
		})
	}

	return projects, nil
}

// SetPathChosen flips the flag on one path only; sibling paths are left
// alone. Use SetPathChosenExclusive when a single chosen path per project
// must hold.
func (r *ProjectRepository) SetPathChosen(ctx context.Context, pathID int64, chosen bool) error {
	result := r.db.WithContext(ctx).
		Model(&model.Path{}).
		Where("id = ?", pathID).
		Update("chosen", chosen)
	if result.Error != nil {
		return fmt.Errorf("updating path: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrPathNotFound
	}
	return nil
}

func (r *ProjectRepository) SetPathChosenExclusive(ctx context.Context, pathID int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var path model.Path
		if err := tx.First(&path, "id = ?", pathID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrPathNotFound
			}
			return fmt.Errorf("finding path: %w", err)
		}

		if err := tx.Model(&model.Path{}).
			Where("project_id = ?", path.ProjectID).
			Update("chosen", false).Error; err != nil {
			return fmt.Errorf("clearing sibling paths: %w", err)
		}

		if err := tx.Model(&model.Path{}).
			Where("id = ?", pathID).
			Update("chosen", true).Error; err != nil {
			return fmt.Errorf("choosing path: %w", err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrPathNotFound) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *ProjectRepository) SetTaskApproved(ctx context.Context, pathID, providerID int64, approved bool) error {
	result := r.db.WithContext(ctx).
		Model(&model.PathAssignment{}).
		Where("path_id = ? AND provider_id = ?", pathID, providerID).
		Update("approved", approved)
	if result.Error != nil {
		return fmt.Errorf("updating task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *ProjectRepository) CreateContract(ctx context.Context, contract *model.Contract) error {
	result := r.db.WithContext(ctx).Create(contract)
	if result.Error != nil {
		return fmt.Errorf("creating contract: %w", result.Error)
	}
	return nil
}

func (r *ProjectRepository) FindContractsByProvider(ctx context.Context, providerID int64) ([]*model.Contract, error) {
	var contracts []*model.Contract
	result := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("id").
		Find(&contracts)
	if result.Error != nil {
		return nil, fmt.Errorf("finding contracts: %w", result.Error)
	}
	return contracts, nil
}
