package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-key-for-unit-tests-only!"

func TestIssueVerify_Roundtrip(t *testing.T) {
	svc := New(testSecret, time.Hour)

	signed, err := svc.Issue("user-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if signed == "" {
		t.Fatal("expected signed token, got empty string")
	}

	userID, err := svc.Verify(signed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("expected user-123, got %s", userID)
	}
}

func TestVerify_Expired(t *testing.T) {
	svc := New(testSecret, -time.Minute)

	signed, err := svc.Issue("user-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Verify(signed)
	if !errors.Is(err, ErrExpired) {
		t.Errorf("expected ErrExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	signed, err := New(testSecret, time.Hour).Issue("user-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = New("a-completely-different-secret-value", time.Hour).Verify(signed)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	svc := New(testSecret, time.Hour)

	for _, tokenString := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Verify(tokenString); !errors.Is(err, ErrInvalid) {
			t.Errorf("Verify(%q): expected ErrInvalid, got %v", tokenString, err)
		}
	}
}

// TestVerify_RejectsNoneAlgorithm ensures an attacker cannot strip the
// signature by switching the token to alg=none.
func TestVerify_RejectsNoneAlgorithm(t *testing.T) {
	claims := Claims{
		UserID: "user-123",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := New(testSecret, time.Hour).Verify(unsigned); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for alg=none token, got %v", err)
	}
}

func TestVerify_MissingUserID(t *testing.T) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := New(testSecret, time.Hour).Verify(signed); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for token without user id, got %v", err)
	}
}
