package ai

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/mohamedevweb/services-co/internal/domain"
)

// jsonGenerator answers GenerateJSON with canned bytes and records the
// schema it was handed.
type jsonGenerator struct {
	raw    []byte
	err    error
	schema *genai.Schema
}

func (g *jsonGenerator) GenerateText(_ context.Context, _ string) (string, error) {
	panic("not used")
}

func (g *jsonGenerator) GenerateJSON(_ context.Context, _ string, schema *genai.Schema) ([]byte, error) {
	g.schema = schema
	if g.err != nil {
		return nil, g.err
	}
	return g.raw, nil
}

func candidates(ids ...int64) []Candidate {
	out := make([]Candidate, 0, len(ids))
	for _, id := range ids {
		out = append(out, Candidate{ID: id, FirstName: "P", Name: "Provider"})
	}
	return out
}

func validPlan(providerID int64) []byte {
	plan := map[string]any{
		"project":          map[string]any{"title": "T", "description": "D"},
		"confidence_score": 0.8,
		"extraction_notes": "",
	}
	var paths []map[string]any
	for n := 1; n <= 3; n++ {
		var tasks []map[string]any
		for i := 0; i < 3; i++ {
			tasks = append(tasks, map[string]any{
				"name":        "task",
				"provider_id": strconv.FormatInt(providerID, 10),
				"nb_days":     2,
			})
		}
		paths = append(paths, map[string]any{"number": n, "tasks": tasks})
	}
	plan["paths"] = paths
	raw, _ := json.Marshal(plan)
	return raw
}

func TestExtractProject(t *testing.T) {
	logger := slog.Default()

	t.Run("empty candidate set short-circuits", func(t *testing.T) {
		e := NewExtractor(&jsonGenerator{}, logger)
		_, err := e.ExtractProject(context.Background(), "brief", nil)
		assert.ErrorIs(t, err, domain.ErrNoProvidersAvailable)
	})

	t.Run("schema enum matches the candidate ids", func(t *testing.T) {
		gen := &jsonGenerator{raw: validPlan(11)}
		e := NewExtractor(gen, logger)

		_, err := e.ExtractProject(context.Background(), "brief", candidates(11, 12))
		require.NoError(t, err)

		require.NotNil(t, gen.schema)
		taskSchema := gen.schema.Properties["paths"].Items.Properties["tasks"].Items
		assert.Equal(t, []string{"11", "12"}, taskSchema.Properties["provider_id"].Enum)
	})

	t.Run("out-of-set provider id rejected", func(t *testing.T) {
		gen := &jsonGenerator{raw: validPlan(99)}
		e := NewExtractor(gen, logger)

		_, err := e.ExtractProject(context.Background(), "brief", candidates(11, 12))
		assert.ErrorIs(t, err, domain.ErrExtraction)
	})

	t.Run("model failure wrapped as extraction error", func(t *testing.T) {
		gen := &jsonGenerator{err: errors.New("quota exceeded")}
		e := NewExtractor(gen, logger)

		_, err := e.ExtractProject(context.Background(), "brief", candidates(11))
		assert.ErrorIs(t, err, domain.ErrExtraction)
	})

	t.Run("malformed payload wrapped as extraction error", func(t *testing.T) {
		gen := &jsonGenerator{raw: []byte("{not json")}
		e := NewExtractor(gen, logger)

		_, err := e.ExtractProject(context.Background(), "brief", candidates(11))
		assert.ErrorIs(t, err, domain.ErrExtraction)
	})
}

func TestProjectExtractionValidate(t *testing.T) {
	valid := func() *ProjectExtraction {
		var e ProjectExtraction
		for n := 1; n <= 3; n++ {
			path := ExtractedPath{Number: n}
			for i := 0; i < 3; i++ {
				path.Tasks = append(path.Tasks, ExtractedTask{Name: "t", ProviderID: 11, DayCount: 1})
			}
			e.Paths = append(e.Paths, path)
		}
		return &e
	}

	t.Run("accepts a 3x3 plan over known providers", func(t *testing.T) {
		assert.NoError(t, valid().Validate([]int64{11}))
	})

	t.Run("rejects a missing path", func(t *testing.T) {
		e := valid()
		e.Paths = e.Paths[:2]
		assert.Error(t, e.Validate([]int64{11}))
	})

	t.Run("rejects a short path", func(t *testing.T) {
		e := valid()
		e.Paths[1].Tasks = e.Paths[1].Tasks[:2]
		assert.Error(t, e.Validate([]int64{11}))
	})

	t.Run("rejects an unknown provider", func(t *testing.T) {
		e := valid()
		e.Paths[2].Tasks[0].ProviderID = 99
		assert.Error(t, e.Validate([]int64{11}))
	})
}

func TestExtractProfile(t *testing.T) {
	logger := slog.Default()

	t.Run("decodes the structured profile", func(t *testing.T) {
		raw, _ := json.Marshal(map[string]any{
			"first_name":       "Ana",
			"name":             "Costa",
			"job":              "DEVELOPMENT",
			"description":      "Full-stack developer",
			"experience_time":  6,
			"study_level":      "Master",
			"city":             "Lyon",
			"tjm":              450,
			"skills":           []map[string]any{{"description": "Go"}},
			"diplomas":         []map[string]any{},
			"experiences":      []map[string]any{},
			"languages":        []map[string]any{{"description": "French (native)"}},
			"confidence_score": 0.9,
		})
		gen := &jsonGenerator{raw: raw}
		e := NewExtractor(gen, logger)

		profile, err := e.ExtractProfile(context.Background(), "Ana, dev at Lyon")
		require.NoError(t, err)
		assert.Equal(t, "Ana", profile.FirstName)
		assert.Equal(t, 450.0, profile.DailyRate)
		require.Len(t, profile.Skills, 1)
		assert.Equal(t, "Go", profile.Skills[0].Description)
	})

	t.Run("model failure wrapped as extraction error", func(t *testing.T) {
		gen := &jsonGenerator{err: errors.New("unavailable")}
		e := NewExtractor(gen, logger)

		_, err := e.ExtractProfile(context.Background(), "whoever")
		assert.ErrorIs(t, err, domain.ErrExtraction)
	})
}
