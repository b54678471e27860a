package service

import (
	"errors"
	"testing"
	"time"
)

func TestResultTokenRoundtrip(t *testing.T) {
	svc := NewResultTokenService("test-secret", time.Hour)

	token, err := svc.Generate("attempt-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
	if err := svc.Validate(token, "attempt-1"); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestResultTokenWrongAttempt(t *testing.T) {
	svc := NewResultTokenService("test-secret", time.Hour)

	token, err := svc.Generate("attempt-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := svc.Validate(token, "attempt-2"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("token for another attempt validated: %v", err)
	}
}

func TestResultTokenWrongSecret(t *testing.T) {
	issuer := NewResultTokenService("secret-a", time.Hour)
	verifier := NewResultTokenService("secret-b", time.Hour)

	token, err := issuer.Generate("attempt-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := verifier.Validate(token, "attempt-1"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("token signed with a different secret validated: %v", err)
	}
}

func TestResultTokenExpired(t *testing.T) {
	svc := NewResultTokenService("test-secret", time.Nanosecond)

	token, err := svc.Generate("attempt-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if err := svc.Validate(token, "attempt-1"); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expired token: got %v, want ErrTokenExpired", err)
	}
}

func TestResultTokenEmptySecret(t *testing.T) {
	svc := NewResultTokenService("", time.Hour)
	if _, err := svc.Generate("attempt-1"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("generate with empty secret: got %v", err)
	}
	if err := svc.Validate("whatever", "attempt-1"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("validate with empty secret: got %v", err)
	}
}

func TestResultTokenEmptyAttempt(t *testing.T) {
	svc := NewResultTokenService("test-secret", time.Hour)
	if _, err := svc.Generate(""); !errors.Is(err, ErrAttemptIDRequired) {
		t.Fatalf("generate without attempt id: got %v", err)
	}
}
