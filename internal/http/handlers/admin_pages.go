package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rescuerehab/internal/http/middleware"
)

// AdminPage answers the session-gated /admin entry points. The dashboard UI is
// served elsewhere; this reports which page was reached and by whom.
func AdminPage(c *gin.Context) {
	page := strings.Trim(c.Param("page"), "/")
	if page == "" {
		page = "dashboard"
	}
	body := gin.H{"page": page}
	if admin, ok := middleware.CurrentAdmin(c); ok {
		body["admin"] = admin
	}
	c.JSON(http.StatusOK, body)
}
