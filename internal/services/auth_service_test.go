package services

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"rescuerehab/internal/domain"
)

var testAdmin = domain.AdminIdentity{ID: 1, Username: "admin", Email: "admin@rescueandrehab.org"}

func TestStaticCredentials_UsernameOrEmail(t *testing.T) {
	creds := StaticCredentials{Identity: testAdmin, Password: "admin123"}
	for _, login := range []string{"admin", "admin@rescueandrehab.org", "ADMIN@rescueandrehab.org"} {
		if _, err := creds.Verify(context.Background(), login, "admin123"); err != nil {
			t.Fatalf("login %q rejected: %v", login, err)
		}
	}
	if _, err := creds.Verify(context.Background(), "admin", "wrong"); !domain.IsUnauthorized(err) {
		t.Fatalf("wrong password should be unauthorized, got %v", err)
	}
	if _, err := creds.Verify(context.Background(), "root", "admin123"); !domain.IsUnauthorized(err) {
		t.Fatalf("unknown user should be unauthorized, got %v", err)
	}
}

func TestStaticCredentials_BcryptHashWins(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("n3w-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	creds := StaticCredentials{Identity: testAdmin, Password: "admin123", PasswordHash: string(hash)}
	if _, err := creds.Verify(context.Background(), "admin", "n3w-pass"); err != nil {
		t.Fatalf("hashed password rejected: %v", err)
	}
	if _, err := creds.Verify(context.Background(), "admin", "admin123"); err == nil {
		t.Fatalf("plaintext must be ignored when a hash is configured")
	}
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	issuer := TokenIssuer{Secret: []byte("jwt-secret"), Now: func() time.Time { return now }}

	token, exp, err := issuer.Issue(testAdmin)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if !exp.Equal(now.Add(7 * 24 * time.Hour)) {
		t.Fatalf("unexpected expiry %v", exp)
	}
	got, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != testAdmin {
		t.Fatalf("identity mismatch: %+v", got)
	}
}

func TestTokenIssuer_RejectsExpiredAndForeign(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	issuer := TokenIssuer{Secret: []byte("jwt-secret"), Now: func() time.Time { return issued }}
	token, _, err := issuer.Issue(testAdmin)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	later := issuer
	later.Now = func() time.Time { return issued.Add(7*24*time.Hour + time.Minute) }
	if _, err := later.Parse(token); !domain.IsUnauthorized(err) {
		t.Fatalf("expired token should be rejected, got %v", err)
	}

	other := TokenIssuer{Secret: []byte("different"), Now: issuer.Now}
	if _, err := other.Parse(token); !domain.IsUnauthorized(err) {
		t.Fatalf("token signed with another secret should be rejected, got %v", err)
	}

	if _, err := issuer.Parse(""); !domain.IsUnauthorized(err) {
		t.Fatalf("empty token should be rejected")
	}
}

func TestAuthServiceLogin(t *testing.T) {
	svc := AuthService{
		Credentials: StaticCredentials{Identity: testAdmin, Password: "admin123"},
		Tokens:      TokenIssuer{Secret: []byte("jwt-secret")},
	}
	if _, err := svc.Login(context.Background(), "", "x"); !domain.IsValidation(err) {
		t.Fatalf("missing username should be validation, got %v", err)
	}
	res, err := svc.Login(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.Token == "" || res.Admin.Username != "admin" {
		t.Fatalf("unexpected result %+v", res)
	}
	if _, err := svc.Verify(res.Token); err != nil {
		t.Fatalf("issued token should verify: %v", err)
	}
}
