package user

import (
	"context"
	"errors"
)

type StubService struct {
	CreateUserFunc      func(ctx context.Context, params CreateParams) (User, error)
	FindUserByEmailFunc func(ctx context.Context, email string) (*User, error)
}

var _ Service = (*StubService)(nil)

func (s *StubService) CreateUser(ctx context.Context, params CreateParams) (User, error) {
	if s.CreateUserFunc == nil {
		return User{}, errors.New("CreateUser() not implemented by stub")
	}
	return s.CreateUserFunc(ctx, params)
}

func (s *StubService) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	if s.FindUserByEmailFunc == nil {
		return nil, errors.New("FindUserByEmail() not implemented by stub")
	}
	return s.FindUserByEmailFunc(ctx, email)
}

type StubRepo struct {
	CreateFunc      func(ctx context.Context, params CreateParams) (User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*User, error)
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) Create(ctx context.Context, params CreateParams) (User, error) {
	if r.CreateFunc == nil {
		return User{}, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, params)
}

func (r *StubRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	if r.FindByEmailFunc == nil {
		return nil, errors.New("FindByEmail() not implemented by stub")
	}
	return r.FindByEmailFunc(ctx, email)
}
