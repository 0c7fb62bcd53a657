package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mohamedevweb/services-co/internal/auth"
	"github.com/mohamedevweb/services-co/internal/domain"
	"github.com/mohamedevweb/services-co/internal/mocks"
	"github.com/mohamedevweb/services-co/internal/model"
	"github.com/mohamedevweb/services-co/internal/repository"
	"github.com/mohamedevweb/services-co/internal/service"
)

func TestCreateProvider(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	input := service.CreateProviderInput{
		FirstName:      "Ana",
		Name:           "Costa",
		Job:            model.JobDevelopment,
		ExperienceTime: 6,
		DailyRate:      450.50,
		Skills:         []service.DescriptionInput{{Description: "Go"}, {Description: "Postgres"}},
		Languages:      []service.DescriptionInput{{Description: "French (native)"}},
	}

	t.Run("builds the aggregate and reissues a PRESTA token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockProviderRepositoryIface(ctrl)

		var saved *model.Provider
		repo.EXPECT().CreateAggregate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *model.Provider) error {
				p.ID = 3
				saved = p
				return nil
			})

		svc := service.NewProviderService(repo, tokens)
		out, err := svc.Create(context.Background(), input, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(3), out.ID)

		require.NotNil(t, saved)
		assert.Equal(t, int64(42), saved.UserID)
		assert.Equal(t, "450.50", saved.DailyRate)
		assert.Len(t, saved.Skills, 2)
		assert.Len(t, saved.Languages, 1)

		claims, err := tokens.Validate(out.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
		assert.Equal(t, model.RolePresta, claims.Role)
	})

	t.Run("unknown job rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockProviderRepositoryIface(ctrl)

		bad := input
		bad.Job = "ASTRONAUT"
		svc := service.NewProviderService(repo, tokens)
		_, err := svc.Create(context.Background(), bad, 42)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestGetProviderByUser(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	t.Run("resolves own profile from the user id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockProviderRepositoryIface(ctrl)

		repo.EXPECT().FindByUserID(gomock.Any(), int64(42)).Return(&model.Provider{
			ID:        7,
			FirstName: "Ana",
			Name:      "Costa",
			Job:       model.JobDevelopment,
			DailyRate: "450.50",
			UserID:    42,
		}, nil)

		svc := service.NewProviderService(repo, tokens)
		out, err := svc.GetByUser(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, int64(7), out.ID)
		assert.Equal(t, int64(42), out.UserID)
		assert.Equal(t, 450.50, out.DailyRate)
	})

	t.Run("no profile yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockProviderRepositoryIface(ctrl)

		repo.EXPECT().FindByUserID(gomock.Any(), int64(42)).Return(nil, domain.ErrProviderNotFound)

		svc := service.NewProviderService(repo, tokens)
		_, err := svc.GetByUser(context.Background(), 42)
		assert.ErrorIs(t, err, domain.ErrProviderNotFound)
	})
}

func TestUpdateProvider(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	t.Run("only supplied fields and collections travel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockProviderRepositoryIface(ctrl)

		city := "Lyon"
		rate := 500.0
		skills := []service.DescriptionInput{{Description: "Kubernetes"}}

		var captured repository.ProviderUpdate
		repo.EXPECT().UpdateAggregate(gomock.Any(), int64(3), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, u repository.ProviderUpdate) error {
				captured = u
				return nil
			})

		svc := service.NewProviderService(repo, tokens)
		err := svc.Update(context.Background(), 3, service.UpdateProviderInput{
			City:      &city,
			DailyRate: &rate,
			Skills:    &skills,
		})
		require.NoError(t, err)

		assert.Equal(t, "Lyon", captured.Fields["city"])
		assert.Equal(t, "500.00", captured.Fields["daily_rate"])
		assert.NotContains(t, captured.Fields, "name")

		require.NotNil(t, captured.Skills)
		require.Len(t, *captured.Skills, 1)
		assert.Equal(t, "Kubernetes", (*captured.Skills)[0].Description)
		assert.Nil(t, captured.Diplomas)
	})
}
