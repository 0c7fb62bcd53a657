// internal/ai/schema.go
package ai

import (
	"strconv"

	"google.golang.org/genai"

	"github.com/mohamedevweb/services-co/internal/model"
)

func descriptionListSchema(desc string) *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeArray,
		Description: desc,
		Items: &genai.Schema{
			Type:     genai.TypeObject,
			Required: []string{"description"},
			Properties: map[string]*genai.Schema{
				"description": {Type: genai.TypeString},
			},
		},
	}
}

// profileSchema is the fixed output schema for provider-profile extraction.
// The job field is constrained to the platform's job categories.
func profileSchema() *genai.Schema {
	jobs := make([]string, 0, 5)
	for _, j := range model.Jobs() {
		jobs = append(jobs, string(j))
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Required: []string{
			"first_name", "name", "job", "description", "experience_time",
			"study_level", "city", "tjm", "skills", "diplomas", "experiences",
			"languages", "confidence_score", "extraction_notes",
		},
		Properties: map[string]*genai.Schema{
			"first_name":      {Type: genai.TypeString, Description: "The provider's first name"},
			"name":            {Type: genai.TypeString, Description: "The provider's last name"},
			"job":             {Type: genai.TypeString, Enum: jobs, Description: "The provider's main job category"},
			"description":     {Type: genai.TypeString, Description: "A detailed description of the profile and skills"},
			"experience_time": {Type: genai.TypeInteger, Description: "Total years of professional experience"},
			"study_level":     {Type: genai.TypeString, Description: "Education level (e.g. Bachelor, Master, PhD)"},
			"city":            {Type: genai.TypeString, Description: "The city the provider is based in"},
			"tjm":             {Type: genai.TypeNumber, Description: "Average daily rate in euros"},
			"skills":          descriptionListSchema("Technical and professional skills"),
			"diplomas":        descriptionListSchema("Diplomas and completed trainings"),
			"experiences":     descriptionListSchema("Professional experiences with role, company and period"),
			"languages":       descriptionListSchema("Spoken languages with proficiency level"),
			"confidence_score": {
				Type:        genai.TypeNumber,
				Minimum:     genai.Ptr(0.0),
				Maximum:     genai.Ptr(1.0),
				Description: "Confidence in the extraction (0-1)",
			},
			"extraction_notes": {Type: genai.TypeString, Description: "Reasoning and estimations made during extraction"},
		},
	}
}

// projectSchema builds the project-extraction schema for one request. The
// task provider id is an enum over the candidate set loaded from the
// database, so the schema layer itself rejects an assignment to a provider
// that does not exist. The set must be rebuilt per request.
func projectSchema(candidateIDs []int64) *genai.Schema {
	ids := make([]string, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		ids = append(ids, strconv.FormatInt(id, 10))
	}

	taskSchema := &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"name", "provider_id", "nb_days"},
		Properties: map[string]*genai.Schema{
			"name": {Type: genai.TypeString, Description: "The task name"},
			"provider_id": {
				Type:        genai.TypeString,
				Enum:        ids,
				Description: "The id of the provider chosen for this task, from the candidate list only",
			},
			"nb_days": {Type: genai.TypeInteger, Description: "Estimated number of days for the task"},
		},
	}

	pathSchema := &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"number", "tasks"},
		Properties: map[string]*genai.Schema{
			"number": {Type: genai.TypeInteger, Description: "The path number (1, 2 or 3)"},
			"tasks": {
				Type:        genai.TypeArray,
				MinItems:    genai.Ptr[int64](tasksPerPath),
				MaxItems:    genai.Ptr[int64](tasksPerPath),
				Items:       taskSchema,
				Description: "The 3 tasks of the path",
			},
		},
	}

	return &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"project", "paths", "confidence_score", "extraction_notes"},
		Properties: map[string]*genai.Schema{
			"project": {
				Type:     genai.TypeObject,
				Required: []string{"title", "description"},
				Properties: map[string]*genai.Schema{
					"title":       {Type: genai.TypeString, Description: "A short descriptive project title"},
					"description": {Type: genai.TypeString, Description: "A detailed project description"},
				},
			},
			"paths": {
				Type:        genai.TypeArray,
				MinItems:    genai.Ptr[int64](pathsPerProject),
				MaxItems:    genai.Ptr[int64](pathsPerProject),
				Items:       pathSchema,
				Description: "The 3 delivery paths of the project",
			},
			"confidence_score": {
				Type:        genai.TypeNumber,
				Minimum:     genai.Ptr(0.0),
				Maximum:     genai.Ptr(1.0),
				Description: "Confidence in the extraction (0-1)",
			},
			"extraction_notes": {Type: genai.TypeString, Description: "Reasoning and choices made during extraction"},
		},
	}
}
