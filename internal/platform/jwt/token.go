package jwt

import "time"

// TokenService defines methods for issuing and checking bearer tokens.
type TokenService interface {
	Issue(subject string, ttl time.Duration) (string, error)
	IssueAccessToken(subject string) (string, error)
	IssueRefreshToken(subject string) (string, error)
	Decode(tokenString string) (subject string, err error)
	Parse(tokenString string) (*Claims, error)
	IsExpired(tokenString string) (bool, error)
	Validate(tokenString string) error
	Verify(tokenString string) (*Claims, error)
	Refresh(refreshToken string) (accessToken string, err error)
}
