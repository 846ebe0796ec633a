package auth

import (
	"strings"
	"testing"
)

func TestHashPassword_ProducesVerifiableHash(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw12345")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "pw12345" {
		t.Fatalf("hash must not equal the plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected a bcrypt hash, got %q", hash)
	}
	if !CheckPassword("pw12345", hash) {
		t.Fatalf("CheckPassword rejected the correct password")
	}
}

func TestCheckPassword_MismatchIsFalseNotError(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if CheckPassword("wrong-password", hash) {
		t.Fatalf("CheckPassword accepted the wrong password")
	}
	if CheckPassword("correct-password", "not-a-hash") {
		t.Fatalf("CheckPassword accepted a garbage hash")
	}
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same input must differ (random salt)")
	}
}
