package utils

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashSecret_NotPlaintext(t *testing.T) {
	hash, err := HashSecret("securePassword123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if hash == "" {
		t.Error("expected non-empty hash")
	}
	if strings.Contains(hash, "securePassword123") {
		t.Error("hash must not contain the plaintext")
	}
}

func TestHashSecret_Salted(t *testing.T) {
	first, err := HashSecret("same", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := HashSecret("same", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Error("expected different hashes for the same secret")
	}
}

func TestHashSecret_InvalidCostFallsBack(t *testing.T) {
	hash, err := HashSecret("pw", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("expected default cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}

func TestHashSecret_TooLong(t *testing.T) {
	_, err := HashSecret(strings.Repeat("x", 100), bcrypt.MinCost)
	if err == nil {
		t.Fatal("expected error for secret longer than 72 bytes")
	}
}

func TestCompareSecret(t *testing.T) {
	hash, err := HashSecret("correct horse", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := CompareSecret(hash, "correct horse"); err != nil {
		t.Errorf("expected match, got %v", err)
	}
	if err := CompareSecret(hash, "wrong horse"); !errors.Is(err, ErrSecretMismatch) {
		t.Errorf("expected ErrSecretMismatch, got %v", err)
	}
}

func TestCompareSecret_MalformedHash(t *testing.T) {
	err := CompareSecret("not-a-bcrypt-hash", "anything")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrSecretMismatch) {
		t.Error("malformed hash must not be reported as a mismatch")
	}
}

func TestNormalizeAnswer(t *testing.T) {
	tests := map[string]string{
		"Fluffy":             "fluffy",
		"  fluffy  ":         "fluffy",
		"Mr.   Fluffy\tPaws": "mr. fluffy paws",
		"":                   "",
	}
	for in, want := range tests {
		if got := NormalizeAnswer(in); got != want {
			t.Errorf("NormalizeAnswer(%q) = %q, want %q", in, got, want)
		}
	}
}
