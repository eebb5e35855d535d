package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/ferdiebergado/notekit/internal/config"
	"github.com/ferdiebergado/notekit/internal/pkg/security"
	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultAlgorithm  = "HS256"
	DefaultAccessTTL  = 15 * time.Minute
	DefaultRefreshTTL = 30 * 24 * time.Hour
)

// Option customizes a Service.
type Option func(*Service)

// WithClock replaces time.Now as the source of the current time.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service issues and checks HMAC signed JWTs.
//
// A Service is immutable after NewService returns and is safe for concurrent use.
type Service struct {
	method     jwt.SigningMethod
	key        []byte
	issuer     string
	jtiLen     uint32
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
	parser     *jwt.Parser
}

var _ TokenService = (*Service)(nil)

// NewService creates a token Service from the JWT config and the signing key.
// Zero durations and an empty algorithm fall back to the package defaults.
func NewService(cfg *config.JWT, key string, opts ...Option) (*Service, error) {
	if key == "" {
		return nil, errors.New("jwt: signing key is empty")
	}

	if cfg == nil {
		cfg = &config.JWT{}
	}

	alg := cfg.Algorithm
	if alg == "" {
		alg = DefaultAlgorithm
	}

	method, ok := jwt.GetSigningMethod(alg).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("jwt: unsupported signing algorithm %q", alg)
	}

	accessTTL, err := ttlOrDefault(cfg.AccessTTL.Duration, DefaultAccessTTL)
	if err != nil {
		return nil, fmt.Errorf("access ttl: %w", err)
	}

	refreshTTL, err := ttlOrDefault(cfg.RefreshTTL.Duration, DefaultRefreshTTL)
	if err != nil {
		return nil, fmt.Errorf("refresh ttl: %w", err)
	}

	s := &Service{
		method:     method,
		key:        []byte(key),
		issuer:     cfg.Issuer,
		jtiLen:     cfg.JTILength,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	// Expiry is checked by IsExpired and Validate, never by the parser.
	s.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{method.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	return s, nil
}

func ttlOrDefault(ttl, fallback time.Duration) (time.Duration, error) {
	if ttl < 0 {
		return 0, fmt.Errorf("jwt: ttl must be positive, got %v", ttl)
	}
	if ttl == 0 {
		return fallback, nil
	}
	return ttl, nil
}

// Issue signs an access token for subject that expires ttl from now.
// A zero or negative ttl produces a token that is already expired.
func (s *Service) Issue(subject string, ttl time.Duration) (string, error) {
	return s.issue(subject, KindAccess, ttl)
}

func (s *Service) IssueAccessToken(subject string) (string, error) {
	return s.issue(subject, KindAccess, s.accessTTL)
}

func (s *Service) IssueRefreshToken(subject string) (string, error) {
	return s.issue(subject, KindRefresh, s.refreshTTL)
}

func (s *Service) issue(subject string, kind Kind, ttl time.Duration) (string, error) {
	if subject == "" {
		return "", ErrEmptySubject
	}

	var jti string
	if s.jtiLen > 0 {
		id, err := security.GenerateRandomBytesURLEncoded(s.jtiLen)
		if err != nil {
			return "", fmt.Errorf("generate jti with length %d: %w", s.jtiLen, err)
		}
		jti = id
	}

	now := s.now()
	claims := &customClaims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", kind, err)
	}

	return signed, nil
}

// Decode verifies the signature of tokenString and returns its subject.
// It does not look at the expiration.
func (s *Service) Decode(tokenString string) (string, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// Parse verifies the signature of tokenString and returns all of its claims.
// Like Decode, it does not look at the expiration.
func (s *Service) Parse(tokenString string) (*Claims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}
	return claims.toClaims(), nil
}

// IsExpired reports whether the current time is strictly after the token's exp claim.
func (s *Service) IsExpired(tokenString string) (bool, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return false, err
	}
	return s.expired(claims)
}

// Validate fails with ErrTokenExpired when the token is expired.
func (s *Service) Validate(tokenString string) error {
	expired, err := s.IsExpired(tokenString)
	if err != nil {
		return err
	}

	if expired {
		return ErrTokenExpired
	}

	return nil
}

// Verify checks the signature and the expiration of tokenString in a single
// pass and returns its claims.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}

	expired, err := s.expired(claims)
	if err != nil {
		return nil, err
	}

	if expired {
		return nil, ErrTokenExpired
	}

	return claims.toClaims(), nil
}

// Refresh exchanges an unexpired refresh token for a new access token
// for the same subject.
func (s *Service) Refresh(refreshToken string) (string, error) {
	claims, err := s.parse(refreshToken)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRefreshToken, err)
	}

	expired, err := s.expired(claims)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRefreshToken, err)
	}

	if expired {
		return "", fmt.Errorf("%w: %w", ErrInvalidRefreshToken, ErrTokenExpired)
	}

	if claims.Kind != KindRefresh {
		return "", fmt.Errorf("%w: %w: got %q", ErrInvalidRefreshToken, ErrWrongKind, claims.Kind)
	}

	accessToken, err := s.IssueAccessToken(claims.Subject)
	if err != nil {
		return "", fmt.Errorf("issue access token: %w", err)
	}

	return accessToken, nil
}

func (s *Service) parse(tokenString string) (*customClaims, error) {
	claims := &customClaims{}
	if _, err := s.parser.ParseWithClaims(tokenString, claims, s.keyFunc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return claims, nil
}

func (s *Service) keyFunc(_ *jwt.Token) (any, error) {
	return s.key, nil
}

// expired compares at whole seconds, the resolution of the exp claim.
func (s *Service) expired(claims *customClaims) (bool, error) {
	if claims.ExpiresAt == nil {
		return false, ErrMissingExpiration
	}
	return s.now().Truncate(time.Second).After(claims.ExpiresAt.Time), nil
}
