package store

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"github.com/socialmedia/records/shared/utils"
)

const (
	HashingBcrypt = "bcrypt"
	HashingPlain  = "plain"
)

// PasswordHasher turns a password into its stored form and checks candidates against it.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(password, stored string) bool
}

// NewPasswordHasher resolves a PASSWORD_HASHING setting.
func NewPasswordHasher(kind string) (PasswordHasher, error) {
	switch kind {
	case HashingBcrypt, "":
		return BcryptHasher{}, nil
	case HashingPlain:
		return PlainHasher{}, nil
	default:
		return nil, fmt.Errorf("unknown password hashing scheme %q", kind)
	}
}

// PlainHasher stores passwords verbatim and compares them for exact equality.
// Kept for parity with stores that were seeded from plaintext data; prefer bcrypt.
type PlainHasher struct{}

func (PlainHasher) Hash(password string) (string, error) { return password, nil }

func (PlainHasher) Matches(password, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
}

// BcryptHasher bcrypts a SHA-256 digest of the password, so passwords of any
// length fit under bcrypt's 72-byte input limit.
type BcryptHasher struct{}

func (BcryptHasher) Hash(password string) (string, error) {
	hash, err := utils.HashPassword(prehash(password))
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

func (BcryptHasher) Matches(password, stored string) bool {
	return utils.CheckPassword(prehash(password), stored)
}

func prehash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return base64.StdEncoding.EncodeToString(sum[:])
}
