package user

import (
	"context"
	"errors"
	"strings"

	"ecofinds-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Service interface {
	Signup(ctx context.Context, email, username, password string) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	GetByID(ctx context.Context, id uint) (*User, error)
	UpdateProfile(ctx context.Context, params UpdateProfileParams) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Signup(ctx context.Context, email, username, password string) (*User, error) {
	log := logger.FromCtx(ctx)

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}
	if username == "" {
		// The profile page lets the user pick one later.
		username = email
	}

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	u, err := s.repo.Create(ctx, email, username, hashed)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		log.Error("failed to create user", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	log.Info("signup completed",
		zap.Uint("user_id", u.ID),
		zap.String("email", email),
	)

	return &u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		// Same error for unknown email and bad password.
		return nil, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.Password) {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *service) UpdateProfile(ctx context.Context, params UpdateProfileParams) (*User, error) {
	if params.Email != nil {
		existing, err := s.repo.FindByEmail(ctx, *params.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != params.UserID {
			return nil, ErrEmailExists
		}
	}

	u, err := s.repo.UpdateProfile(ctx, params)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	return u, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == PgUniqueViolation
	}
	return strings.Contains(err.Error(), "users_email_key")
}
