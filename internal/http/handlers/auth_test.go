package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"rescuerehab/internal/domain"
	"rescuerehab/internal/http/middleware"
	"rescuerehab/internal/services"
)

func authAPI() *API {
	return &API{
		Credentials: services.StaticCredentials{
			Identity: domain.AdminIdentity{ID: 1, Username: "admin", Email: "admin@rescueandrehab.org"},
			Password: "admin123",
		},
		Tokens: services.TokenIssuer{Secret: []byte("test-secret")},
	}
}

func authRouter(a *API) *gin.Engine {
	r := gin.New()
	r.POST("/api/auth/login", a.Login)
	r.POST("/api/auth/logout", a.Logout)
	r.GET("/api/auth/verify", a.VerifySession)
	return r
}

func sessionCookie(t *testing.T, w interface{ Result() *http.Response }) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.AdminCookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie set", middleware.AdminCookieName)
	return nil
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	a := authAPI()
	w := doJSON(authRouter(a), http.MethodPost, "/api/auth/login", gin.H{"username": "admin", "password": "admin123"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	c := sessionCookie(t, w)
	if !c.HttpOnly || c.Path != "/" || c.MaxAge != 7*24*60*60 || c.SameSite != http.SameSiteLaxMode {
		t.Fatalf("unexpected cookie attributes %+v", c)
	}
	if c.Secure {
		t.Fatalf("cookie should not be Secure outside production")
	}
	if _, err := a.Tokens.Parse(c.Value); err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}

	body := decode(t, w)
	admin, _ := body["admin"].(map[string]any)
	if body["message"] != "Login successful" || admin["username"] != "admin" || admin["id"] != float64(1) {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestLogin_AcceptsEmailAndSecureInProduction(t *testing.T) {
	a := authAPI()
	a.SecureCookies = true
	w := doJSON(authRouter(a), http.MethodPost, "/api/auth/login", gin.H{"email": "Admin@RescueAndRehab.org", "password": "admin123"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !sessionCookie(t, w).Secure {
		t.Fatalf("expected Secure cookie")
	}
}

func TestLogin_Failures(t *testing.T) {
	r := authRouter(authAPI())
	cases := []struct {
		name string
		body any
		want int
	}{
		{"missing password", gin.H{"username": "admin"}, http.StatusBadRequest},
		{"wrong password", gin.H{"username": "admin", "password": "nope"}, http.StatusUnauthorized},
		{"unknown user", gin.H{"username": "root", "password": "admin123"}, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/api/auth/login", tc.body)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, w.Code, w.Body.String())
			}
			if strings.Contains(w.Header().Get("Set-Cookie"), middleware.AdminCookieName) {
				t.Fatalf("cookie must not be set on failure")
			}
		})
	}
}

func TestLogout_ExpiresCookie(t *testing.T) {
	w := doJSON(authRouter(authAPI()), http.MethodPost, "/api/auth/logout", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if c := sessionCookie(t, w); c.MaxAge >= 0 || c.Value != "" {
		t.Fatalf("expected expired cookie, got %+v", c)
	}
}

func TestVerifySession(t *testing.T) {
	a := authAPI()
	token, _, err := a.Tokens.Issue(domain.AdminIdentity{ID: 1, Username: "admin"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	r := authRouter(a)

	w := doJSON(r, http.MethodGet, "/api/auth/verify", nil, &http.Cookie{Name: middleware.AdminCookieName, Value: token})
	if w.Code != http.StatusOK || decode(t, w)["authenticated"] != true {
		t.Fatalf("expected authenticated, got %d %s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/api/auth/verify", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without cookie, got %d", w.Code)
	}
}
