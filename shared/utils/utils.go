package utils

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// GenerateID returns a fresh random (v4) UUID string.
func GenerateID() string {
	return uuid.NewString()
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword checks if a password matches a hash
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
