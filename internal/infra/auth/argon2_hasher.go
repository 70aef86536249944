// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"

	"taskman/config"
	"taskman/internal/domain/service"
)

// Default argon2id cost parameters, used when the config leaves them unset.
const (
	defaultArgon2Time       = 3
	defaultArgon2MemoryKiB  = 64 * 1024
	defaultArgon2Threads    = 1
	defaultArgon2KeyLength  = 32
	defaultArgon2SaltLength = 16

	defaultMinPasswordLength = 8
)

// argon2Hasher is a concrete implementation of the PasswordHasher interface using argon2id.
// Each hash embeds its own random salt and cost parameters in the standard
// encoded form, so Check works on hashes produced under older settings.
type argon2Hasher struct {
	time       uint32
	memoryKiB  uint32
	threads    uint8
	keyLength  uint32
	saltLength uint32

	policy config.PasswordStrengthConfig
}

// NewArgon2Hasher is the constructor for argon2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewArgon2Hasher(cfg *config.Config) service.PasswordHasher {
	hasher := &argon2Hasher{
		time:       defaultArgon2Time,
		memoryKiB:  defaultArgon2MemoryKiB,
		threads:    defaultArgon2Threads,
		keyLength:  defaultArgon2KeyLength,
		saltLength: defaultArgon2SaltLength,
		policy: config.PasswordStrengthConfig{
			MinLength:        defaultMinPasswordLength,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
		},
	}

	if cfg != nil && cfg.Auth != nil {
		auth := cfg.Auth
		if auth.Argon2Time > 0 {
			hasher.time = auth.Argon2Time
		}
		if auth.Argon2MemoryKiB > 0 {
			hasher.memoryKiB = auth.Argon2MemoryKiB
		}
		if auth.Argon2Threads > 0 {
			hasher.threads = auth.Argon2Threads
		}
		if auth.Argon2KeyLength > 0 {
			hasher.keyLength = auth.Argon2KeyLength
		}
		if auth.Argon2SaltLength > 0 {
			hasher.saltLength = auth.Argon2SaltLength
		}
	}
	if cfg != nil && cfg.PasswordStrength != nil {
		hasher.policy = *cfg.PasswordStrength
	}

	return hasher
}

// Hash generates a salted argon2id hash from a plaintext password.
// The salt is freshly random per call, so hashing the same password twice
// yields different encoded strings.
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate argon2 salt")
	}

	key := argon2.IDKey([]byte(password), salt, h.time, h.memoryKiB, h.threads, h.keyLength)

	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memoryKiB,
		h.time,
		h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// Check compares a plaintext password with an encoded argon2id hash.
// The derived keys are compared in constant time.
func (h *argon2Hasher) Check(password, hash string) bool {
	params, salt, key, err := decodeHash(hash)
	if err != nil {
		return false
	}

	derived := argon2.IDKey([]byte(password), salt, params.time, params.memoryKiB, params.threads, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, derived) == 1
}

// ValidatePasswordStrength enforces the signup password policy.
func (h *argon2Hasher) ValidatePasswordStrength(password string) error {
	if len(password) < h.policy.MinLength {
		return errors.Errorf("password must be at least %d characters long", h.policy.MinLength)
	}
	if h.policy.RequireUppercase && !containsRune(password, unicode.IsUpper) {
		return errors.New("password must contain at least one uppercase letter")
	}
	if h.policy.RequireLowercase && !containsRune(password, unicode.IsLower) {
		return errors.New("password must contain at least one lowercase letter")
	}
	if h.policy.RequireNumbers && !containsRune(password, unicode.IsDigit) {
		return errors.New("password must contain at least one number")
	}

	return nil
}

type argon2Params struct {
	time      uint32
	memoryKiB uint32
	threads   uint8
}

// decodeHash parses the standard encoded argon2id form:
// $argon2id$v=19$m=65536,t=3,p=1$<salt>$<key>
func decodeHash(hash string) (argon2Params, []byte, []byte, error) {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return argon2Params{}, nil, nil, errors.New("malformed argon2id hash")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return argon2Params{}, nil, nil, errors.Wrap(err, "malformed argon2 version")
	}
	if version != argon2.Version {
		return argon2Params{}, nil, nil, errors.Errorf("unsupported argon2 version %d", version)
	}

	var params argon2Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memoryKiB, &params.time, &params.threads); err != nil {
		return argon2Params{}, nil, nil, errors.Wrap(err, "malformed argon2 parameters")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return argon2Params{}, nil, nil, errors.Wrap(err, "malformed argon2 salt")
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return argon2Params{}, nil, nil, errors.Wrap(err, "malformed argon2 key")
	}

	return params, salt, key, nil
}

func containsRune(s string, fn func(rune) bool) bool {
	for _, r := range s {
		if fn(r) {
			return true
		}
	}

	return false
}
