package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"rescuerehab/internal/domain"
	"rescuerehab/internal/utils"
)

// AdminTokenTTL is the lifetime of an admin session token and its cookie.
const AdminTokenTTL = 7 * 24 * time.Hour

var errInvalidCredentials = domain.UnauthorizedError{Msg: "Invalid credentials"}

// CredentialVerifier resolves a login (username or email) and password to an admin.
type CredentialVerifier interface {
	Verify(ctx context.Context, login, password string) (domain.AdminIdentity, error)
}

// StaticCredentials is the single configured admin principal.
// PasswordHash (bcrypt) takes precedence over the plaintext Password.
type StaticCredentials struct {
	Identity     domain.AdminIdentity
	Password     string
	PasswordHash string
}

func (s StaticCredentials) Verify(_ context.Context, login, password string) (domain.AdminIdentity, error) {
	login = strings.TrimSpace(login)
	if login != s.Identity.Username && !strings.EqualFold(login, s.Identity.Email) {
		return domain.AdminIdentity{}, errInvalidCredentials
	}
	if s.PasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(s.PasswordHash), []byte(password)); err != nil {
			return domain.AdminIdentity{}, errInvalidCredentials
		}
		return s.Identity, nil
	}
	if s.Password == "" || subtle.ConstantTimeCompare([]byte(s.Password), []byte(password)) != 1 {
		return domain.AdminIdentity{}, errInvalidCredentials
	}
	return s.Identity, nil
}

// AdminClaims is the admin-token payload.
type AdminClaims struct {
	AdminID  int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and parses HS256 admin tokens.
type TokenIssuer struct {
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

func (t TokenIssuer) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

func (t TokenIssuer) ttl() time.Duration {
	if t.TTL > 0 {
		return t.TTL
	}
	return AdminTokenTTL
}

func (t TokenIssuer) Issue(admin domain.AdminIdentity) (string, time.Time, error) {
	now := t.now()
	exp := now.Add(t.ttl())
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AdminClaims{
		AdminID:  admin.ID,
		Username: admin.Username,
		Email:    admin.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(admin.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	signed, err := token.SignedString(t.Secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign admin token: %w", err)
	}
	return signed, exp, nil
}

// Parse validates signature, algorithm and expiry.
func (t TokenIssuer) Parse(raw string) (domain.AdminIdentity, error) {
	if strings.TrimSpace(raw) == "" {
		return domain.AdminIdentity{}, domain.UnauthorizedError{Msg: "No token provided"}
	}
	var claims AdminClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return t.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		msg := "Invalid token"
		if errors.Is(err, jwt.ErrTokenExpired) {
			msg = "Token expired"
		}
		return domain.AdminIdentity{}, domain.UnauthorizedError{Msg: msg, Err: err}
	}
	return domain.AdminIdentity{ID: claims.AdminID, Username: claims.Username, Email: claims.Email}, nil
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Admin     domain.AdminIdentity
}

type AuthService struct {
	Credentials CredentialVerifier
	Tokens      TokenIssuer
	RequestID   string
}

func (s AuthService) Login(ctx context.Context, login, password string) (LoginResult, error) {
	if strings.TrimSpace(login) == "" || password == "" {
		return LoginResult{}, domain.ValidationError{Msg: "Username and password are required"}
	}
	admin, err := s.Credentials.Verify(ctx, login, password)
	if err != nil {
		utils.LogEvent(s.RequestID, "auth", "login", "rejected login attempt")
		return LoginResult{}, err
	}
	token, exp, err := s.Tokens.Issue(admin)
	if err != nil {
		return LoginResult{}, domain.InternalError{Msg: "Internal server error", Err: err}
	}
	utils.LogEvent(s.RequestID, "auth", "login", "admin="+admin.Username)
	return LoginResult{Token: token, ExpiresAt: exp, Admin: admin}, nil
}

func (s AuthService) Verify(token string) (domain.AdminIdentity, error) {
	return s.Tokens.Parse(token)
}
