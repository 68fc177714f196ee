package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

func TestPlaintextVerifier(t *testing.T) {
	v := PlaintextVerifier{}
	stored, err := v.Hash("secret")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if stored != "secret" {
		t.Fatalf("plaintext hashing must be the identity, got %q", stored)
	}
	if !v.Verify(stored, "secret") {
		t.Fatal("expected matching password to verify")
	}
	if v.Verify(stored, "other") {
		t.Fatal("expected mismatching password to fail")
	}
}

func TestBcryptVerifier(t *testing.T) {
	v := BcryptVerifier{Cost: bcrypt.MinCost}
	stored, err := v.Hash("secret")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if stored == "secret" {
		t.Fatal("bcrypt must not store the password verbatim")
	}
	if !v.Verify(stored, "secret") {
		t.Fatal("expected matching password to verify")
	}
	if v.Verify(stored, "other") {
		t.Fatal("expected mismatching password to fail")
	}
}

func TestAdminService_WithBcryptVerifier(t *testing.T) {
	store := newStubStore()
	svc := NewAdminService(store, BcryptVerifier{Cost: bcrypt.MinCost}, zerolog.Nop())
	ctx := context.Background()

	res, err := svc.Login(ctx, "Abraham", "123456")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected seeded bcrypt credentials to work: %s", res.Message)
	}
}
