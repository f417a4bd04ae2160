// Package password produces and verifies stored password digests. New
// digests are bcrypt; 64-hex sha256 digests from older deployments are
// still verifiable so existing users can log in and be migrated.
package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

const legacyDigestLen = sha256.Size * 2

// Digest returns the hex-encoded sha256 digest of plaintext. Deterministic
// and unsalted; kept only for data written by older deployments.
func Digest(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// Hash returns a salted bcrypt digest of plaintext.
func Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext matches the stored digest, in either
// the bcrypt or the legacy hex format.
func Verify(stored, plaintext string) bool {
	if IsLegacy(stored) {
		sum := Digest(plaintext)
		return subtle.ConstantTimeCompare([]byte(stored), []byte(sum)) == 1
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plaintext)) == nil
}

// IsLegacy reports whether stored is a hex sha256 digest rather than a
// bcrypt one.
func IsLegacy(stored string) bool {
	if len(stored) != legacyDigestLen {
		return false
	}
	_, err := hex.DecodeString(stored)
	return err == nil
}
