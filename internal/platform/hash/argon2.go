package hash

import (
	"cmp"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/ferdiebergado/notekit/internal/config"
	"github.com/ferdiebergado/notekit/internal/pkg/security"
	"golang.org/x/crypto/argon2"
)

const (
	argon2Variant = "argon2id"

	DefaultMemory     uint32 = 64 * 1024
	DefaultIterations uint32 = 3
	DefaultThreads    uint8  = 2
	DefaultSaltLength uint32 = 16
	DefaultKeyLength  uint32 = 32
)

var ErrInvalidHash = errors.New("hash: invalid argon2id hash format")

type Argon2Hasher struct {
	memory     uint32
	iterations uint32
	threads    uint8
	saltLen    uint32
	keyLen     uint32
	pepper     string
}

var _ Hasher = (*Argon2Hasher)(nil)

// NewArgon2Hasher creates a hasher from cfg. Zero parameters, or a nil cfg,
// fall back to the package defaults.
func NewArgon2Hasher(cfg *config.Argon2, pepper string) *Argon2Hasher {
	if cfg == nil {
		cfg = &config.Argon2{}
	}

	return &Argon2Hasher{
		memory:     cmp.Or(cfg.Memory, DefaultMemory),
		iterations: cmp.Or(cfg.Iterations, DefaultIterations),
		threads:    cmp.Or(cfg.Threads, DefaultThreads),
		saltLen:    cmp.Or(cfg.SaltLength, DefaultSaltLength),
		keyLen:     cmp.Or(cfg.KeyLength, DefaultKeyLength),
		pepper:     pepper,
	}
}

// Hash returns the PHC encoded argon2id hash of plain.
func (h *Argon2Hasher) Hash(plain string) (string, error) {
	salt, err := security.GenerateRandomBytes(h.saltLen)
	if err != nil {
		return "", fmt.Errorf("generate salt with length %d: %w", h.saltLen, err)
	}

	key := argon2.IDKey([]byte(plain+h.pepper), salt, h.iterations, h.memory, h.threads, h.keyLen)

	saltBase64 := base64.RawStdEncoding.EncodeToString(salt)
	keyBase64 := base64.RawStdEncoding.EncodeToString(key)

	encoded := fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2Variant, argon2.Version, h.memory, h.iterations, h.threads, saltBase64, keyBase64)

	return encoded, nil
}

// Verify recomputes the hash of plain with the parameters stored in hashed.
func (h *Argon2Hasher) Verify(plain, hashed string) (bool, error) {
	parts := strings.Split(hashed, "$")
	if len(parts) != 6 || parts[1] != argon2Variant {
		return false, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, fmt.Errorf("scan version: %w", err)
	}

	if version != argon2.Version {
		return false, fmt.Errorf("%w: unsupported version %d", ErrInvalidHash, version)
	}

	var memory, iterations uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false, fmt.Errorf("scan parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("base64 decode salt: %w", err)
	}

	storedKey, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("base64 decode hash: %w", err)
	}

	keyLen := len(storedKey)
	if err := security.CheckUint(keyLen); err != nil {
		return false, err
	}

	computedKey := argon2.IDKey([]byte(plain+h.pepper), salt, iterations, memory, threads, uint32(keyLen))

	return subtle.ConstantTimeCompare(computedKey, storedKey) == 1, nil
}
