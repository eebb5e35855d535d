package jwt

import (
	"errors"
	"time"
)

type StubService struct {
	IssueFunc             func(subject string, ttl time.Duration) (string, error)
	IssueAccessTokenFunc  func(subject string) (string, error)
	IssueRefreshTokenFunc func(subject string) (string, error)
	DecodeFunc            func(tokenString string) (string, error)
	ParseFunc             func(tokenString string) (*Claims, error)
	IsExpiredFunc         func(tokenString string) (bool, error)
	ValidateFunc          func(tokenString string) error
	VerifyFunc            func(tokenString string) (*Claims, error)
	RefreshFunc           func(refreshToken string) (string, error)
}

var _ TokenService = (*StubService)(nil)

func (s *StubService) Issue(subject string, ttl time.Duration) (string, error) {
	if s.IssueFunc == nil {
		return "", errors.New("Issue() not implemented by stub")
	}
	return s.IssueFunc(subject, ttl)
}

func (s *StubService) IssueAccessToken(subject string) (string, error) {
	if s.IssueAccessTokenFunc == nil {
		return "", errors.New("IssueAccessToken() not implemented by stub")
	}
	return s.IssueAccessTokenFunc(subject)
}

func (s *StubService) IssueRefreshToken(subject string) (string, error) {
	if s.IssueRefreshTokenFunc == nil {
		return "", errors.New("IssueRefreshToken() not implemented by stub")
	}
	return s.IssueRefreshTokenFunc(subject)
}

func (s *StubService) Decode(tokenString string) (string, error) {
	if s.DecodeFunc == nil {
		return "", errors.New("Decode() not implemented by stub")
	}
	return s.DecodeFunc(tokenString)
}

func (s *StubService) Parse(tokenString string) (*Claims, error) {
	if s.ParseFunc == nil {
		return nil, errors.New("Parse() not implemented by stub")
	}
	return s.ParseFunc(tokenString)
}

func (s *StubService) IsExpired(tokenString string) (bool, error) {
	if s.IsExpiredFunc == nil {
		return false, errors.New("IsExpired() not implemented by stub")
	}
	return s.IsExpiredFunc(tokenString)
}

func (s *StubService) Validate(tokenString string) error {
	if s.ValidateFunc == nil {
		return errors.New("Validate() not implemented by stub")
	}
	return s.ValidateFunc(tokenString)
}

func (s *StubService) Verify(tokenString string) (*Claims, error) {
	if s.VerifyFunc == nil {
		return nil, errors.New("Verify() not implemented by stub")
	}
	return s.VerifyFunc(tokenString)
}

func (s *StubService) Refresh(refreshToken string) (string, error) {
	if s.RefreshFunc == nil {
		return "", errors.New("Refresh() not implemented by stub")
	}
	return s.RefreshFunc(refreshToken)
}
