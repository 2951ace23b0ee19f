package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rescuerehab/internal/domain"
	"rescuerehab/internal/http/middleware"
	"rescuerehab/internal/mailer"
	"rescuerehab/internal/utils"
)

type testEmailRequest struct {
	To string `json:"to"`
}

// POST /api/test-email sends a probe through the configured transport.
// The body is optional and defaults the recipient to the operator inbox.
func (a *API) TestEmail(c *gin.Context) {
	var req testEmailRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			RespondDomainError(c, domain.ValidationError{Msg: "invalid JSON payload"})
			return
		}
	}
	to := utils.FirstNonEmpty(req.To, a.OperatorEmail)
	if to == "" {
		RespondDomainError(c, domain.Required("to"))
		return
	}
	if a.Mailer == nil {
		RespondDomainError(c, domain.InternalError{Msg: "email transport is not configured"})
		return
	}

	msg, err := mailer.TestMessage(to, a.MailTransport, a.now())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := a.Mailer.Send(c.Request.Context(), msg); err != nil {
		utils.LogError(middleware.GetRequestID(c), "mail", "test_email", err)
		RespondDomainError(c, domain.InternalError{Msg: "Failed to send test email", Err: err})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Test email sent to " + to})
}
