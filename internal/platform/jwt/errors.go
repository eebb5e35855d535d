package jwt

import "errors"

var (
	ErrInvalidToken        = errors.New("jwt: invalid token")
	ErrMissingExpiration   = errors.New("jwt: token has no expiration")
	ErrTokenExpired        = errors.New("jwt: token has expired")
	ErrInvalidRefreshToken = errors.New("jwt: invalid refresh token")
	ErrWrongKind           = errors.New("jwt: unexpected token kind")
	ErrEmptySubject        = errors.New("jwt: subject is empty")
)
