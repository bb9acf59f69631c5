package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("pw123", 10)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "pw123" {
		t.Fatal("hash equals plaintext")
	}
	if err := ComparePassword(hash, "pw123"); err != nil {
		t.Errorf("ComparePassword with correct password: %v", err)
	}
	if err := ComparePassword(hash, "wrong"); err == nil {
		t.Error("ComparePassword accepted wrong password")
	}
}

func TestHashPassword_EnforcesMinCost(t *testing.T) {
	hash, err := HashPassword("pw123", 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("Cost: %v", err)
	}
	if cost < MinBcryptCost {
		t.Errorf("cost = %d, want >= %d", cost, MinBcryptCost)
	}
}
