// Package cryptox hides how a user's secret is stored behind SecretHasher,
// so credential files can hold either the plain secret or an argon2id hash.
package cryptox

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/dmitrijs2005/snaphire/internal/common"
)

const (
	SchemePlain    = "plain"
	SchemeArgon2ID = "argon2id"
)

// SecretHasher turns a secret into the single line stored for a user and
// checks candidates against it.
type SecretHasher interface {
	Hash(secret []byte) (string, error)
	Verify(stored string, candidate []byte) bool
}

// NewHasher returns the hasher for scheme.
func NewHasher(scheme string) (SecretHasher, error) {
	switch scheme {
	case SchemePlain, "":
		return PlainHasher{}, nil
	case SchemeArgon2ID:
		return Argon2Hasher{}, nil
	default:
		return nil, fmt.Errorf("unknown secret scheme %q", scheme)
	}
}

// PlainHasher stores the secret as is, one plain text line per user.
type PlainHasher struct{}

func (PlainHasher) Hash(secret []byte) (string, error) {
	return string(secret), nil
}

func (PlainHasher) Verify(stored string, candidate []byte) bool {
	return subtle.ConstantTimeCompare([]byte(stored), candidate) == 1
}

// Argon2Hasher stores "argon2id$<salt hex>$<key hex>".
type Argon2Hasher struct{}

func (Argon2Hasher) Hash(secret []byte) (string, error) {
	salt := common.GenerateRandByteArray(16)
	key := DeriveKey(secret, salt)
	return strings.Join([]string{SchemeArgon2ID, hex.EncodeToString(salt), hex.EncodeToString(key)}, "$"), nil
}

func (Argon2Hasher) Verify(stored string, candidate []byte) bool {
	parts := strings.Split(stored, "$")
	if len(parts) != 3 || parts[0] != SchemeArgon2ID {
		return false
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}
	want, err := hex.DecodeString(parts[2])
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(want, DeriveKey(candidate, salt)) == 1
}

// DeriveKey runs argon2id with the parameters used for stored secrets.
func DeriveKey(secret []byte, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, 32)
}
