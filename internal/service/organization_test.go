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
	"github.com/mohamedevweb/services-co/internal/service"
)

func TestCreateOrganization(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	t.Run("persists the organization and reissues an ORG token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockOrganizationRepositoryIface(ctrl)

		var saved *model.Organization
		repo.EXPECT().CreateAggregate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, org *model.Organization) error {
				org.ID = 8
				saved = org
				return nil
			})

		svc := service.NewOrganizationService(repo, tokens)
		out, err := svc.Create(context.Background(), service.CreateOrganizationInput{
			Name:    "Acme",
			Address: "1 rue de la Paix",
			Phone:   "0102030405",
			Balance: 1200.5,
		}, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(8), out.ID)

		require.NotNil(t, saved)
		assert.Equal(t, int64(42), saved.UserID)
		assert.Equal(t, "1200.50", saved.Balance)

		claims, err := tokens.Validate(out.Token)
		require.NoError(t, err)
		assert.Equal(t, model.RoleOrg, claims.Role)
		assert.Equal(t, int64(42), claims.UserID)
	})

	t.Run("missing name rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockOrganizationRepositoryIface(ctrl)

		svc := service.NewOrganizationService(repo, tokens)
		_, err := svc.Create(context.Background(), service.CreateOrganizationInput{
			Address: "somewhere",
			Phone:   "0102030405",
		}, 42)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestUpdateOrganization(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	stored := func() *model.Organization {
		return &model.Organization{ID: 8, Name: "Acme", UserID: 42, Balance: "100.00"}
	}

	t.Run("owner can update and only supplied fields travel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockOrganizationRepositoryIface(ctrl)

		repo.EXPECT().FindByID(gomock.Any(), int64(8)).Return(stored(), nil)

		var fields map[string]any
		repo.EXPECT().Update(gomock.Any(), int64(8), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, f map[string]any) error {
				fields = f
				return nil
			})

		phone := "0605040302"
		balance := 250.0
		svc := service.NewOrganizationService(repo, tokens)
		err := svc.Update(context.Background(), 8, service.UpdateOrganizationInput{
			Phone:   &phone,
			Balance: &balance,
		}, 42)
		require.NoError(t, err)

		assert.Equal(t, "0605040302", fields["phone"])
		assert.Equal(t, "250.00", fields["balance"])
		assert.NotContains(t, fields, "name")
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockOrganizationRepositoryIface(ctrl)

		repo.EXPECT().FindByID(gomock.Any(), int64(8)).Return(stored(), nil)

		name := "Evil Corp"
		svc := service.NewOrganizationService(repo, tokens)
		err := svc.Update(context.Background(), 8, service.UpdateOrganizationInput{Name: &name}, 99)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}
