package service_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mohamedevweb/services-co/internal/ai"
	"github.com/mohamedevweb/services-co/internal/domain"
	"github.com/mohamedevweb/services-co/internal/mocks"
	"github.com/mohamedevweb/services-co/internal/model"
	"github.com/mohamedevweb/services-co/internal/service"
)

// fakeExtractor returns a canned plan and records the candidates it saw.
type fakeExtractor struct {
	result     *ai.ProjectExtraction
	err        error
	candidates []ai.Candidate
}

func (f *fakeExtractor) ExtractProject(_ context.Context, _ string, candidates []ai.Candidate) (*ai.ProjectExtraction, error) {
	f.candidates = candidates
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func providerPool() []*model.Provider {
	return []*model.Provider{
		{ID: 11, FirstName: "Ana", Name: "Costa", Job: model.JobDevelopment, DailyRate: "450.00"},
		{ID: 12, FirstName: "Ben", Name: "Klein", Job: model.JobDesign, DailyRate: "380.00"},
	}
}

func plannedExtraction() *ai.ProjectExtraction {
	e := &ai.ProjectExtraction{ConfidenceScore: 0.9}
	e.Project.Title = "Shop revamp"
	e.Project.Description = "Rebuild the storefront"
	for n := 1; n <= 3; n++ {
		path := ai.ExtractedPath{Number: n}
		for i := 0; i < 3; i++ {
			id := int64(11)
			if i%2 == 1 {
				id = 12
			}
			path.Tasks = append(path.Tasks, ai.ExtractedTask{
				Name:       "task",
				ProviderID: id,
				DayCount:   2 + i,
			})
		}
		e.Paths = append(e.Paths, path)
	}
	return e
}

func TestCreateProjectWithAI(t *testing.T) {
	logger := slog.Default()

	t.Run("no providers available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		projects := mocks.NewMockProjectRepositoryIface(ctrl)
		providers := mocks.NewMockProviderRepositoryIface(ctrl)
		extractor := &fakeExtractor{}

		providers.EXPECT().FindAll(gomock.Any()).Return(nil, nil)

		svc := service.NewProjectService(projects, providers, extractor, logger)
		_, err := svc.CreateWithAI(context.Background(), service.CreateProjectInput{Prompt: "build a shop"}, 1)
		assert.ErrorIs(t, err, domain.ErrNoProvidersAvailable)
	})

	t.Run("persists the plan with nothing chosen or approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		projects := mocks.NewMockProjectRepositoryIface(ctrl)
		providers := mocks.NewMockProviderRepositoryIface(ctrl)
		extractor := &fakeExtractor{result: plannedExtraction()}

		providers.EXPECT().FindAll(gomock.Any()).Return(providerPool(), nil)

		var saved *model.Project
		projects.EXPECT().CreateAggregate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *model.Project) error {
				p.ID = 100
				saved = p
				return nil
			})

		svc := service.NewProjectService(projects, providers, extractor, logger)
		out, err := svc.CreateWithAI(context.Background(), service.CreateProjectInput{Prompt: "build a shop"}, 77)
		require.NoError(t, err)

		assert.Equal(t, int64(100), out.ID)
		assert.Equal(t, "Shop revamp", out.Title)

		require.NotNil(t, saved)
		assert.Equal(t, int64(77), saved.OrganizationID)
		require.Len(t, saved.Paths, 3)
		for _, path := range saved.Paths {
			assert.False(t, path.Chosen)
			require.Len(t, path.Tasks, 3)
			for _, task := range path.Tasks {
				assert.False(t, task.Approved)
				assert.Contains(t, []int64{11, 12}, task.ProviderID)
			}
		}

		// The whole pool was offered as candidates.
		require.Len(t, extractor.candidates, 2)
		assert.Equal(t, int64(11), extractor.candidates[0].ID)
	})

	t.Run("extractor failure propagates untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		projects := mocks.NewMockProjectRepositoryIface(ctrl)
		providers := mocks.NewMockProviderRepositoryIface(ctrl)
		extractor := &fakeExtractor{err: domain.ErrExtraction}

		providers.EXPECT().FindAll(gomock.Any()).Return(providerPool(), nil)

		svc := service.NewProjectService(projects, providers, extractor, logger)
		_, err := svc.CreateWithAI(context.Background(), service.CreateProjectInput{Prompt: "build a shop"}, 1)
		assert.ErrorIs(t, err, domain.ErrExtraction)
	})

	t.Run("missing organization rejected before any work", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		projects := mocks.NewMockProjectRepositoryIface(ctrl)
		providers := mocks.NewMockProviderRepositoryIface(ctrl)
		extractor := &fakeExtractor{result: plannedExtraction()}

		// No EXPECT on either repository: touching the pool or persisting
		// anything would fail the controller.
		svc := service.NewProjectService(projects, providers, extractor, logger)
		_, err := svc.CreateWithAI(context.Background(), service.CreateProjectInput{Prompt: "build a shop"}, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Nil(t, extractor.candidates)
	})

	t.Run("empty prompt rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		projects := mocks.NewMockProjectRepositoryIface(ctrl)
		providers := mocks.NewMockProviderRepositoryIface(ctrl)

		svc := service.NewProjectService(projects, providers, &fakeExtractor{}, logger)
		_, err := svc.CreateWithAI(context.Background(), service.CreateProjectInput{}, 1)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestCreateContract(t *testing.T) {
	logger := slog.Default()

	t.Run("generates a number when absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		projects := mocks.NewMockProjectRepositoryIface(ctrl)
		providers := mocks.NewMockProviderRepositoryIface(ctrl)

		projects.EXPECT().CreateContract(gomock.Any(), gomock.Any()).Return(nil)

		svc := service.NewProjectService(projects, providers, &fakeExtractor{}, logger)
		contract, err := svc.CreateContract(context.Background(), service.CreateContractInput{
			ProviderID: 11,
			PathID:     3,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, contract.Number)
		assert.Contains(t, contract.Number, "CTR-")
	})

	t.Run("keeps a supplied number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		projects := mocks.NewMockProjectRepositoryIface(ctrl)
		providers := mocks.NewMockProviderRepositoryIface(ctrl)

		projects.EXPECT().CreateContract(gomock.Any(), gomock.Any()).Return(nil)

		svc := service.NewProjectService(projects, providers, &fakeExtractor{}, logger)
		contract, err := svc.CreateContract(context.Background(), service.CreateContractInput{
			Number:     "CTR-FIXED",
			ProviderID: 11,
			PathID:     3,
		})
		require.NoError(t, err)
		assert.Equal(t, "CTR-FIXED", contract.Number)
	})
}
