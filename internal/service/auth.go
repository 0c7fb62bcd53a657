// internal/service/auth.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/mohamedevweb/services-co/internal/auth"
	"github.com/mohamedevweb/services-co/internal/domain"
	"github.com/mohamedevweb/services-co/internal/model"
	"github.com/mohamedevweb/services-co/internal/repository"
)

type AuthService struct {
	users    repository.UserRepositoryIface
	hasher   *auth.PasswordHasher
	tokens   *auth.TokenManager
	validate *validator.Validate
}

func NewAuthService(
	users repository.UserRepositoryIface,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenManager,
) *AuthService {
	return &AuthService{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		validate: validator.New(),
	}
}

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Siret    string `json:"siret"`
}

// Register creates a new account. The role is always USER; promotion to ORG
// or PRESTA happens later, as a side effect of creating the matching
// profile.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	exists, err := s.users.EmailExists(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("checking email: %w", err)
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Email:    input.Email,
		Password: hash,
		Role:     model.RoleUser,
		Siret:    input.Siret,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	ID    int64          `json:"id"`
	Email string         `json:"email"`
	Role  model.UserRole `json:"role"`
	Token string         `json:"token"`
}

// Login checks the credentials and issues a token carrying {id, role}.
// Every failure path returns ErrInvalidCredentials so the response cannot
// be used to enumerate emails.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	verified, err := s.hasher.Verify(input.Password, user.Password)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !verified {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
		Token: token,
	}, nil
}

// Verify validates a token's signature and expiry and returns its claims.
func (s *AuthService) Verify(tokenString string) (*auth.Claims, error) {
	claims, err := s.tokens.Validate(tokenString)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
