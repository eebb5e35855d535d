package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ferdiebergado/notekit/internal/platform/db"
	"github.com/ferdiebergado/notekit/internal/platform/hash"
	"github.com/ferdiebergado/notekit/internal/platform/jwt"
	"github.com/ferdiebergado/notekit/internal/user"
)

const (
	TokenTypeBearer = "bearer"

	dummyPassword = "notekit-dummy-password"
)

var (
	ErrUserExists         = errors.New("auth service: user already exists")
	ErrInvalidCredentials = errors.New("auth service: invalid email or password")
)

// TokenStatus is the outcome of checking a bearer token.
type TokenStatus string

const (
	TokenValid   TokenStatus = "valid"
	TokenExpired TokenStatus = "expired"
	TokenInvalid TokenStatus = "invalid"
)

type AuthService interface {
	RegisterUser(ctx context.Context, params RegisterUserParams) (user.User, error)
	LoginUser(ctx context.Context, params LoginUserParams) (*TokenPair, error)
	RefreshToken(refreshToken string) (string, error)
	CheckToken(token string) TokenStatus
}

type Providers struct {
	Hasher hash.Hasher
	Tokens jwt.TokenService
	TxMgr  db.TxManager
}

type Service struct {
	userSvc   user.Service
	hasher    hash.Hasher
	tokens    jwt.TokenService
	txMgr     db.TxManager
	dummyHash func() (string, error)
}

var _ AuthService = (*Service)(nil)

type RegisterUserParams struct {
	Name         string
	Email        string
	MobileNumber string
	Password     string
}

func (p *RegisterUserParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", p.Name),
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

type LoginUserParams struct {
	Email    string
	Password string
}

func (p *LoginUserParams) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
	)
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RegisterUser hashes the password and creates the user in one transaction.
// An existing e-mail yields ErrUserExists.
func (s *Service) RegisterUser(ctx context.Context, params RegisterUserParams) (user.User, error) {
	var newUser user.User
	err := s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.userSvc.FindUserByEmail(txCtx, params.Email)
		if err != nil && !errors.Is(err, user.ErrNotFound) {
			return fmt.Errorf("find user with email %s: %w", params.Email, err)
		}

		if existing != nil {
			return ErrUserExists
		}

		passwordHash, err := s.hasher.Hash(params.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		newUser, err = s.userSvc.CreateUser(txCtx, user.CreateParams{
			Name:         params.Name,
			Email:        params.Email,
			MobileNumber: params.MobileNumber,
			PasswordHash: passwordHash,
		})
		if err != nil {
			if errors.Is(err, user.ErrDuplicate) {
				return ErrUserExists
			}
			return fmt.Errorf("create user %s: %w", params.Email, err)
		}

		return nil
	})
	if err != nil {
		return user.User{}, err
	}

	slog.Info("User registered.", "user_id", newUser.ID)
	return newUser, nil
}

// LoginUser checks the credentials and issues an access and a refresh token for the user's e-mail.
func (s *Service) LoginUser(ctx context.Context, params LoginUserParams) (*TokenPair, error) {
	u, err := s.userSvc.FindUserByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			s.verifyDummy(params.Password)
			return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	ok, err := s.hasher.Verify(params.Password, u.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password for user %s: %w", u.ID, err)
	}

	if !ok {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.tokens.IssueAccessToken(u.Email)
	if err != nil {
		return nil, fmt.Errorf("issue access token for user %s: %w", u.ID, err)
	}

	refreshToken, err := s.tokens.IssueRefreshToken(u.Email)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token for user %s: %w", u.ID, err)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// verifyDummy spends the same hashing work on an unknown e-mail as on a wrong password.
func (s *Service) verifyDummy(password string) {
	hashed, err := s.dummyHash()
	if err != nil {
		slog.Error("hash dummy password", "reason", err)
		return
	}

	if _, err := s.hasher.Verify(password, hashed); err != nil {
		slog.Error("verify dummy password", "reason", err)
	}
}

func (s *Service) RefreshToken(refreshToken string) (string, error) {
	accessToken, err := s.tokens.Refresh(refreshToken)
	if err != nil {
		return "", fmt.Errorf("refresh access token: %w", err)
	}
	return accessToken, nil
}

// CheckToken reports whether token is currently usable.
// A token that cannot be decoded or has no expiry is invalid.
func (s *Service) CheckToken(token string) TokenStatus {
	err := s.tokens.Validate(token)
	switch {
	case err == nil:
		return TokenValid
	case errors.Is(err, jwt.ErrTokenExpired):
		return TokenExpired
	default:
		slog.Debug("token check failed", "reason", err)
		return TokenInvalid
	}
}

func NewService(userSvc user.Service, providers *Providers) *Service {
	hasher := providers.Hasher
	return &Service{
		userSvc: userSvc,
		hasher:  hasher,
		tokens:  providers.Tokens,
		txMgr:   providers.TxMgr,
		dummyHash: sync.OnceValues(func() (string, error) {
			return hasher.Hash(dummyPassword)
		}),
	}
}
