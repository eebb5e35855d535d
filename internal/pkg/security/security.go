package security

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	HeaderAuthorization = "Authorization"
	bearerScheme        = "bearer"
)

var (
	ErrMissingAuthHeader = errors.New("missing Authorization header")
	ErrNotBearer         = errors.New("authorization scheme is not Bearer")
	ErrEmptyBearer       = errors.New("bearer token is empty")
)

func GenerateRandomBytes(length uint32) ([]byte, error) {
	key := make([]byte, length)

	_, err := rand.Read(key)
	if err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}

	return key, nil
}

func GenerateRandomBytesURLEncoded(length uint32) (string, error) {
	key, err := GenerateRandomBytes(length)
	if err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(key), nil
}

func CheckUint(i int) error {
	if i < 0 || uint64(i) > uint64(^uint32(0)) {
		return fmt.Errorf("integer %d does not fit in uint32", i)
	}
	return nil
}

// ExtractBearerToken returns the credentials of an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively.
func ExtractBearerToken(r *http.Request) (string, error) {
	header := r.Header.Get(HeaderAuthorization)
	if header == "" {
		return "", ErrMissingAuthHeader
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrNotBearer
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyBearer
	}

	return token, nil
}
