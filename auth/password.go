package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength       = 16
	pbkdf2Iterations = 100000
	keyLength        = 32
)

// HashPassword derives a PBKDF2-HMAC-SHA256 key from the password with a
// fresh random salt and returns base64(salt || key).
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, keyLength, sha256.New)

	combined := make([]byte, 0, saltLength+keyLength)
	combined = append(combined, salt...)
	combined = append(combined, key...)

	return base64.StdEncoding.EncodeToString(combined), nil
}

// VerifyPassword re-derives the key with the stored salt and compares in
// constant time. Malformed stored hashes fail closed.
func VerifyPassword(password, storedHash string) bool {
	combined, err := base64.StdEncoding.DecodeString(storedHash)
	if err != nil {
		return false
	}
	if len(combined) <= saltLength {
		return false
	}

	salt := combined[:saltLength]
	storedKey := combined[saltLength:]

	key := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, len(storedKey), sha256.New)

	return subtle.ConstantTimeCompare(key, storedKey) == 1
}
