package service_test

import (
	"context"
	"strings"
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

func newAuthService(t *testing.T) (*service.AuthService, *mocks.MockUserRepositoryIface, *auth.TokenManager) {
	t.Helper()
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	svc := service.NewAuthService(userRepo, auth.NewPasswordHasher(), tokens)
	return svc, userRepo, tokens
}

func TestRegister(t *testing.T) {
	t.Run("stores USER role and a non-plaintext hash", func(t *testing.T) {
		svc, userRepo, _ := newAuthService(t)

		var created *model.User
		userRepo.EXPECT().EmailExists(gomock.Any(), "new@example.com").Return(false, nil)
		userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *model.User) error {
				u.ID = 1
				created = u
				return nil
			})

		user, err := svc.Register(context.Background(), service.RegisterInput{
			Email:    "new@example.com",
			Password: "hunter2hunter2",
			Siret:    "12345678901234",
		})
		require.NoError(t, err)

		assert.Equal(t, model.RoleUser, user.Role)
		require.NotNil(t, created)
		assert.True(t, strings.HasPrefix(created.Password, "$argon2id$"))
		assert.NotContains(t, created.Password, "hunter2")
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, userRepo, _ := newAuthService(t)

		userRepo.EXPECT().EmailExists(gomock.Any(), "taken@example.com").Return(true, nil)

		_, err := svc.Register(context.Background(), service.RegisterInput{
			Email:    "taken@example.com",
			Password: "hunter2hunter2",
		})
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("short password rejected before any repository call", func(t *testing.T) {
		svc, _, _ := newAuthService(t)

		_, err := svc.Register(context.Background(), service.RegisterInput{
			Email:    "new@example.com",
			Password: "short",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestLogin(t *testing.T) {
	hasher := auth.NewPasswordHasher()
	hash, err := hasher.Hash("correct_password")
	require.NoError(t, err)

	storedUser := func() *model.User {
		return &model.User{
			ID:       5,
			Email:    "user@example.com",
			Password: hash,
			Role:     model.RoleUser,
		}
	}

	t.Run("success issues a token carrying id and role", func(t *testing.T) {
		svc, userRepo, tokens := newAuthService(t)

		userRepo.EXPECT().FindByEmail(gomock.Any(), "user@example.com").Return(storedUser(), nil)

		out, err := svc.Login(context.Background(), service.LoginInput{
			Email:    "user@example.com",
			Password: "correct_password",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5), out.ID)
		assert.Equal(t, model.RoleUser, out.Role)

		claims, err := tokens.Validate(out.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(5), claims.UserID)
		assert.Equal(t, model.RoleUser, claims.Role)
	})

	t.Run("unknown email and wrong password fail identically", func(t *testing.T) {
		svc, userRepo, _ := newAuthService(t)

		userRepo.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").
			Return(nil, domain.ErrUserNotFound)
		_, unknownErr := svc.Login(context.Background(), service.LoginInput{
			Email:    "ghost@example.com",
			Password: "whatever_password",
		})

		userRepo.EXPECT().FindByEmail(gomock.Any(), "user@example.com").Return(storedUser(), nil)
		_, wrongErr := svc.Login(context.Background(), service.LoginInput{
			Email:    "user@example.com",
			Password: "wrong_password",
		})

		assert.ErrorIs(t, unknownErr, domain.ErrInvalidCredentials)
		assert.ErrorIs(t, wrongErr, domain.ErrInvalidCredentials)
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	})

	t.Run("empty stored hash fails closed", func(t *testing.T) {
		svc, userRepo, _ := newAuthService(t)

		user := storedUser()
		user.Password = ""
		userRepo.EXPECT().FindByEmail(gomock.Any(), "user@example.com").Return(user, nil)

		_, err := svc.Login(context.Background(), service.LoginInput{
			Email:    "user@example.com",
			Password: "correct_password",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestRegisterThenLogin(t *testing.T) {
	svc, userRepo, tokens := newAuthService(t)

	var stored *model.User
	userRepo.EXPECT().EmailExists(gomock.Any(), "roundtrip@example.com").Return(false, nil)
	userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *model.User) error {
			u.ID = 9
			stored = u
			return nil
		})

	_, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "roundtrip@example.com",
		Password: "roundtrip_pass",
	})
	require.NoError(t, err)

	userRepo.EXPECT().FindByEmail(gomock.Any(), "roundtrip@example.com").
		DoAndReturn(func(_ context.Context, _ string) (*model.User, error) {
			return stored, nil
		})

	out, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "roundtrip@example.com",
		Password: "roundtrip_pass",
	})
	require.NoError(t, err)

	claims, err := tokens.Validate(out.Token)
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, claims.Role)
}
