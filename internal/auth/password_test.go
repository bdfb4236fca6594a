package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("abcdef", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "abcdef" {
		t.Fatal("hash must not equal plaintext")
	}
	if err := ComparePassword(hash, "abcdef"); err != nil {
		t.Fatalf("ComparePassword with correct password: %v", err)
	}
}

func TestComparePasswordMismatch(t *testing.T) {
	hash, err := HashPassword("abcdef", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if err := ComparePassword(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch error")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("abcdef", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	second, err := HashPassword("abcdef", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same password must differ")
	}
}

func TestHashPasswordClampsInvalidCost(t *testing.T) {
	hash, err := HashPassword("abcdef", 99)
	if err != nil {
		t.Fatalf("HashPassword with out-of-range cost: %v", err)
	}
	if err := ComparePassword(hash, "abcdef"); err != nil {
		t.Fatalf("ComparePassword: %v", err)
	}
}
