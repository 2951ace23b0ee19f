package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rescuerehab/internal/http/middleware"
	"rescuerehab/internal/services"
)

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *API) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AdminCookieName, value, maxAge, "/", "", a.SecureCookies, true)
}

// POST /api/auth/login accepts a username or an email as the login.
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	login := req.Username
	if login == "" {
		login = req.Email
	}
	res, err := a.auth(c).Login(c.Request.Context(), login, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	a.setSessionCookie(c, res.Token, int(services.AdminTokenTTL.Seconds()))
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"admin":   res.Admin,
	})
}

// POST /api/auth/logout only clears the cookie; tokens are not revoked server side.
func (a *API) Logout(c *gin.Context) {
	a.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// GET /api/auth/verify
func (a *API) VerifySession(c *gin.Context) {
	admin, err := a.auth(c).Verify(middleware.TokenFromRequest(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "admin": admin})
}
