package auth

import (
	"context"
	"errors"

	"github.com/ferdiebergado/notekit/internal/user"
)

type StubService struct {
	RegisterUserFunc func(ctx context.Context, params RegisterUserParams) (user.User, error)
	LoginUserFunc    func(ctx context.Context, params LoginUserParams) (*TokenPair, error)
	RefreshTokenFunc func(refreshToken string) (string, error)
	CheckTokenFunc   func(token string) TokenStatus
}

var _ AuthService = (*StubService)(nil)

func (s *StubService) RegisterUser(ctx context.Context, params RegisterUserParams) (user.User, error) {
	if s.RegisterUserFunc == nil {
		return user.User{}, errors.New("RegisterUser not implemented by stub")
	}
	return s.RegisterUserFunc(ctx, params)
}

func (s *StubService) LoginUser(ctx context.Context, params LoginUserParams) (*TokenPair, error) {
	if s.LoginUserFunc == nil {
		return nil, errors.New("LoginUser not implemented by stub")
	}
	return s.LoginUserFunc(ctx, params)
}

func (s *StubService) RefreshToken(refreshToken string) (string, error) {
	if s.RefreshTokenFunc == nil {
		return "", errors.New("RefreshToken not implemented by stub")
	}
	return s.RefreshTokenFunc(refreshToken)
}

func (s *StubService) CheckToken(token string) TokenStatus {
	if s.CheckTokenFunc == nil {
		return TokenInvalid
	}
	return s.CheckTokenFunc(token)
}
