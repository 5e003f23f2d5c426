package auth

import (
	"golang.org/x/crypto/bcrypt"
)

const DefaultBcryptCost = 10

// HashPassword hashes a plaintext password. The plaintext is never stored or
// logged anywhere, only the resulting digest is persisted.
func HashPassword(plaintext string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = DefaultBcryptCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether plaintext matches the stored bcrypt digest.
func VerifyPassword(hashed, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
