// internal/ai/extractor.go
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mohamedevweb/services-co/internal/domain"
	"github.com/mohamedevweb/services-co/internal/model"
)

// The 3 paths x 3 tasks shape is a fixed business rule, not configurable.
const (
	pathsPerProject = 3
	tasksPerPath    = 3
)

type DescriptionItem struct {
	Description string `json:"description"`
}

// ProfileExtraction is the structured result of extracting a provider
// profile from free text.
type ProfileExtraction struct {
	FirstName       string            `json:"first_name"`
	Name            string            `json:"name"`
	Job             model.Job         `json:"job"`
	Description     string            `json:"description"`
	ExperienceTime  int               `json:"experience_time"`
	StudyLevel      string            `json:"study_level"`
	City            string            `json:"city"`
	DailyRate       float64           `json:"tjm"`
	Skills          []DescriptionItem `json:"skills"`
	Diplomas        []DescriptionItem `json:"diplomas"`
	Experiences     []DescriptionItem `json:"experiences"`
	Languages       []DescriptionItem `json:"languages"`
	ConfidenceScore float64           `json:"confidence_score"`
	ExtractionNotes string            `json:"extraction_notes"`
}

// ProjectExtraction is the structured result of extracting a project plan:
// exactly 3 paths of exactly 3 tasks, each task assigned to a candidate
// provider id.
type ProjectExtraction struct {
	Project struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"project"`
	Paths           []ExtractedPath `json:"paths"`
	ConfidenceScore float64         `json:"confidence_score"`
	ExtractionNotes string          `json:"extraction_notes"`
}

type ExtractedPath struct {
	Number int             `json:"number"`
	Tasks  []ExtractedTask `json:"tasks"`
}

type ExtractedTask struct {
	Name       string `json:"name"`
	ProviderID int64  `json:"provider_id,string"`
	DayCount   int    `json:"nb_days"`
}

// Candidate is a provider summary fed to the model so it can pick the right
// person for each task.
type Candidate struct {
	ID             int64
	FirstName      string
	Name           string
	Job            model.Job
	Description    string
	ExperienceTime int
	City           string
	DailyRate      string
}

// Extractor runs the schema-constrained extraction flows. One model call is
// made per request; no retry is attempted.
type Extractor struct {
	gen    Generator
	logger *slog.Logger
}

func NewExtractor(gen Generator, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{gen: gen, logger: logger}
}

// ExtractProfile turns a free-text provider description into a typed
// profile conforming to the fixed schema.
func (e *Extractor) ExtractProfile(ctx context.Context, prompt string) (*ProfileExtraction, error) {
	extractionID := uuid.NewString()
	e.logger.Info("profile extraction started", "extractionID", extractionID)

	raw, err := e.gen.GenerateJSON(ctx, profilePrompt(prompt), profileSchema())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtraction, err)
	}

	var result ProfileExtraction
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", domain.ErrExtraction, err)
	}

	e.logger.Info("profile extraction completed",
		"extractionID", extractionID,
		"confidence", result.ConfidenceScore,
	)
	return &result, nil
}

// ExtractProject turns a free-text project description into a 3x3 plan whose
// task assignments are restricted to the candidate set. The output schema is
// generated per invocation from that set; a post-parse check backstops it.
func (e *Extractor) ExtractProject(ctx context.Context, prompt string, candidates []Candidate) (*ProjectExtraction, error) {
	if len(candidates) == 0 {
		return nil, domain.ErrNoProvidersAvailable
	}

	extractionID := uuid.NewString()
	e.logger.Info("project extraction started",
		"extractionID", extractionID,
		"candidates", len(candidates),
	)

	ids := make([]int64, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.ID)
	}

	raw, err := e.gen.GenerateJSON(ctx, projectPrompt(prompt, candidates), projectSchema(ids))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtraction, err)
	}

	var result ProjectExtraction
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", domain.ErrExtraction, err)
	}

	if err := result.Validate(ids); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtraction, err)
	}

	e.logger.Info("project extraction completed",
		"extractionID", extractionID,
		"confidence", result.ConfidenceScore,
	)
	return &result, nil
}

// Validate re-checks what the response schema already promises: the 3x3
// shape and the membership of every assignment in the candidate id set.
func (p *ProjectExtraction) Validate(candidateIDs []int64) error {
	valid := make(map[int64]struct{}, len(candidateIDs))
	for _, id := range candidateIDs {
		valid[id] = struct{}{}
	}

	if len(p.Paths) != pathsPerProject {
		return fmt.Errorf("expected %d paths, got %d", pathsPerProject, len(p.Paths))
	}
	for _, path := range p.Paths {
		if len(path.Tasks) != tasksPerPath {
			return fmt.Errorf("path %d: expected %d tasks, got %d", path.Number, tasksPerPath, len(path.Tasks))
		}
		for _, task := range path.Tasks {
			if _, ok := valid[task.ProviderID]; !ok {
				return fmt.Errorf("path %d: task %q assigned to unknown provider %d", path.Number, task.Name, task.ProviderID)
			}
		}
	}
	return nil
}

func profilePrompt(prompt string) string {
	var b strings.Builder
	b.WriteString(`Analyze the following description of a service provider and extract all the requested information to build a complete profile.

Detailed instructions:
- "first_name" and "name": extract the first and last name
- "job": identify the main job category
- "description": write a detailed profile description based on the provided information
- "experience_time": compute the total number of years of professional experience
- "study_level": identify the education level (e.g. Bachelor, Master, PhD)
- "city": identify the city the provider is based in
- "tjm": estimate the average daily rate in euros (if not mentioned, estimate from experience and job market rates)
- "skills": extract every technical and professional skill mentioned
- "diplomas": list every diploma and training obtained
- "experiences": list every professional experience with role, company and period
- "languages": list every spoken language with proficiency level
- "confidence_score": rate your confidence in the extraction (0-1)
- "extraction_notes": explain your reasoning and the estimations made

IMPORTANT:
- If a piece of information is unclear or missing, make a reasonable estimate
- For the daily rate, use market references for the experience and job
- For experience, add up all the years of experience mentioned
- Be precise when extracting skills and experiences

Provider description:
`)
	b.WriteString(prompt)
	return b.String()
}

func projectPrompt(prompt string, candidates []Candidate) string {
	var ids []string
	var infos []string
	for _, c := range candidates {
		id := fmt.Sprintf("%d", c.ID)
		ids = append(ids, id)
		infos = append(infos, fmt.Sprintf(
			"ID: %s, Name: %s %s, Job: %s, Experience: %d years, City: %s, Daily rate: %s, Description: %s",
			id, c.FirstName, c.Name, c.Job, c.ExperienceTime, c.City, c.DailyRate, c.Description,
		))
	}
	idList := strings.Join(ids, ", ")

	var b strings.Builder
	fmt.Fprintf(&b, `Analyze the following project description and build a complete structure with 3 delivery paths, each containing 3 tasks.

Detailed instructions:
- "project.title": write a short descriptive title for the project
- "project.description": write a detailed project description based on the prompt
- "paths": produce exactly 3 delivery paths (numbered 1, 2, 3)
- Each path must contain exactly 3 tasks
- For each task, pick the most suitable provider from the supplied list
- "provider_id": use ONLY provider ids from the supplied list (valid ids: %s)
- "nb_days": estimate the number of days each task needs
- "confidence_score": rate your confidence in the extraction (0-1)
- "extraction_notes": explain your reasoning and the choices made

IMPORTANT:
- Use ONLY provider ids from the supplied list: %s
- Every project has exactly 3 paths
- Every path has exactly 3 tasks
- Tasks must be logical and progressive
- Choose providers according to their job and experience

Available providers:
%s

Project description:
%s`, idList, idList, strings.Join(infos, "\n"), prompt)
	return b.String()
}
