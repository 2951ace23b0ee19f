package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rescuerehab/internal/domain"
)

const (
	AdminCookieName = "admin-token"
	adminKey        = "admin"

	AdminLoginPath = "/admin/login"
	AdminHomePath  = "/admin"
)

// TokenParser validates an admin token and returns its principal.
type TokenParser interface {
	Parse(token string) (domain.AdminIdentity, error)
}

// TokenFromRequest reads the admin token from the Authorization header, falling back to the cookie.
func TokenFromRequest(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if rest, ok := strings.CutPrefix(h, "Bearer "); ok && strings.TrimSpace(rest) != "" {
			return strings.TrimSpace(rest)
		}
	}
	if v, err := c.Cookie(AdminCookieName); err == nil {
		return v
	}
	return ""
}

// RequireAdmin guards JSON admin APIs and answers 401 when the token is missing or invalid.
func RequireAdmin(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, err := tokens.Parse(TokenFromRequest(c))
		if err != nil {
			msg := "Unauthorized"
			if domain.IsUnauthorized(err) {
				msg = err.Error()
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      msg,
				"code":       "unauthorized",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Set(adminKey, admin)
		c.Next()
	}
}

// AdminPageGate redirects browser navigation under /admin. Without a valid
// cookie everything except the login page goes to the login page; with one,
// the login page goes to the dashboard.
func AdminPageGate(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := strings.TrimSuffix(c.Request.URL.Path, "/")
		isLogin := path == AdminLoginPath

		cookie, _ := c.Cookie(AdminCookieName)
		admin, err := tokens.Parse(cookie)
		authed := cookie != "" && err == nil

		switch {
		case isLogin && authed:
			c.Redirect(http.StatusFound, AdminHomePath)
			c.Abort()
		case !isLogin && !authed:
			c.Redirect(http.StatusFound, AdminLoginPath)
			c.Abort()
		default:
			if authed {
				c.Set(adminKey, admin)
			}
			c.Next()
		}
	}
}

// CurrentAdmin returns the principal set by RequireAdmin or AdminPageGate.
func CurrentAdmin(c *gin.Context) (domain.AdminIdentity, bool) {
	v, ok := c.Get(adminKey)
	if !ok {
		return domain.AdminIdentity{}, false
	}
	a, ok := v.(domain.AdminIdentity)
	return a, ok
}
