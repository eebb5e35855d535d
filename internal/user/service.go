package user

import (
	"context"
	"fmt"
	"strings"
)

type Service interface {
	CreateUser(ctx context.Context, params CreateParams) (User, error)
	FindUserByEmail(ctx context.Context, email string) (*User, error)
}

type service struct {
	repo Repository
}

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateUser(ctx context.Context, params CreateParams) (User, error) {
	params.Email = NormalizeEmail(params.Email)
	params.Name = strings.TrimSpace(params.Name)

	u, err := s.repo.Create(ctx, params)
	if err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *service) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

// NormalizeEmail trims and lowercases an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
