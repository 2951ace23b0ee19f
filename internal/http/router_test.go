package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	intconfig "rescuerehab/internal/config"
	"rescuerehab/internal/domain"
	"rescuerehab/internal/http/handlers"
	"rescuerehab/internal/http/middleware"
	"rescuerehab/internal/services"
)

func testRouter(t *testing.T) (*gin.Engine, services.TokenIssuer) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tokens := services.TokenIssuer{Secret: []byte("router-secret")}
	env := intconfig.Env{StorageDriver: "local", UploadDir: t.TempDir(), CORSOrigins: []string{"http://localhost:3000"}}
	return NewRouter(env, &handlers.API{Tokens: tokens, RazorpayKeyID: "rzp_key", Currency: "INR"}), tokens
}

func serve(r http.Handler, method, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_AdminAPIsRequireSession(t *testing.T) {
	r, _ := testRouter(t)
	for _, rt := range []struct{ method, path string }{
		{http.MethodPost, "/api/animals"},
		{http.MethodPut, "/api/events/1"},
		{http.MethodDelete, "/api/events/1/gallery/2"},
		{http.MethodGet, "/api/volunteer"},
		{http.MethodGet, "/api/contact"},
		{http.MethodGet, "/api/donations"},
		{http.MethodGet, "/api/donations/1/receipt"},
		{http.MethodPost, "/api/upload"},
		{http.MethodPost, "/api/test-email"},
		{http.MethodGet, "/api/routes"},
	} {
		w := serve(r, rt.method, rt.path, nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", rt.method, rt.path, w.Code)
		}
	}
}

func TestRouter_AdminPagesRedirect(t *testing.T) {
	r, tokens := testRouter(t)

	w := serve(r, http.MethodGet, "/admin/animals", nil)
	if w.Code != http.StatusFound || w.Header().Get("Location") != middleware.AdminLoginPath {
		t.Fatalf("expected redirect to login, got %d %q", w.Code, w.Header().Get("Location"))
	}

	token, _, err := tokens.Issue(domain.AdminIdentity{ID: 1, Username: "admin"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	cookie := &http.Cookie{Name: middleware.AdminCookieName, Value: token}

	w = serve(r, http.MethodGet, "/admin/animals", cookie)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"page":"animals"`) {
		t.Fatalf("expected admin page, got %d %s", w.Code, w.Body.String())
	}

	w = serve(r, http.MethodGet, "/admin/login", cookie)
	if w.Code != http.StatusFound || w.Header().Get("Location") != middleware.AdminHomePath {
		t.Fatalf("expected redirect to dashboard, got %d", w.Code)
	}
}

func TestRouter_PublicEndpoints(t *testing.T) {
	r, _ := testRouter(t)

	if w := serve(r, http.MethodGet, "/api/health", nil); w.Code != http.StatusOK {
		t.Fatalf("health: %d", w.Code)
	}
	if w := serve(r, http.MethodGet, "/api/payment/config", nil); !strings.Contains(w.Body.String(), `"keyId":"rzp_key"`) {
		t.Fatalf("payment config: %s", w.Body.String())
	}
	w := serve(r, http.MethodGet, "/api/nope", nil)
	if w.Code != http.StatusNotFound || w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected 404 with request id, got %d", w.Code)
	}
}
