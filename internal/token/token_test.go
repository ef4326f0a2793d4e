package token

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	raw, err := svc.Issue(Identity{ID: 7, Email: "a@b.com"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	identity, err := svc.Verify(raw)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if identity.ID != 7 {
		t.Errorf("identity.ID = %d, want 7", identity.ID)
	}
	if identity.Email != "a@b.com" {
		t.Errorf("identity.Email = %q, want %q", identity.Email, "a@b.com")
	}
}

func TestVerifyExpired(t *testing.T) {
	svc := NewService("test-secret", -time.Minute)

	raw, err := svc.Issue(Identity{ID: 7, Email: "a@b.com"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := svc.Verify(raw); !errors.Is(err, ErrExpired) {
		t.Errorf("Verify error = %v, want ErrExpired", err)
	}
}

func TestVerifyTampered(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	raw, err := svc.Issue(Identity{ID: 7, Email: "a@b.com"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", raw)
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := svc.Verify(tampered); !errors.Is(err, ErrInvalid) {
		t.Errorf("Verify error = %v, want ErrInvalid", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewService("secret-a", time.Hour)
	verifier := NewService("secret-b", time.Hour)

	raw, err := issuer.Issue(Identity{ID: 1, Email: "a@b.com"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := verifier.Verify(raw); !errors.Is(err, ErrInvalid) {
		t.Errorf("Verify error = %v, want ErrInvalid", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	if _, err := svc.Verify("not-a-token"); !errors.Is(err, ErrInvalid) {
		t.Errorf("Verify error = %v, want ErrInvalid", err)
	}
}
