package utils

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrSecretMismatch is returned by [CompareSecret] when the secret does not
// match the stored hash.
var ErrSecretMismatch = errors.New("secret does not match hash")

// HashSecret hashes a password or security answer with bcrypt.
//
// Every call draws a fresh random salt, so hashing the same secret twice
// yields different hashes. A cost outside bcrypt's accepted range falls back
// to [bcrypt.DefaultCost].
func HashSecret(secret string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}

	return string(hashed), nil
}

// CompareSecret checks secret against a hash produced by [HashSecret].
//
// Returns nil on match, [ErrSecretMismatch] on mismatch, and a wrapped bcrypt
// error when the hash itself is malformed.
func CompareSecret(hash, secret string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrSecretMismatch
	default:
		return fmt.Errorf("failed to compare secret: %w", err)
	}
}

// NormalizeAnswer canonicalises a security answer before hashing or
// comparison: surrounding whitespace is dropped, inner runs of whitespace
// collapse to one space and letters are lower-cased.
func NormalizeAnswer(answer string) string {
	return strings.ToLower(strings.Join(strings.Fields(answer), " "))
}
