package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rescuerehab/internal/domain"
	"rescuerehab/internal/http/middleware"
	"rescuerehab/internal/utils"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses. Internal details are logged, never returned.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsPaymentVerification(err):
		respondError(c, http.StatusBadRequest, "payment_verification_failed", "Payment verification failed")
	case domain.IsUnauthorized(err):
		respondError(c, http.StatusUnauthorized, "unauthorized", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error())
	default:
		utils.LogError(middleware.GetRequestID(c), "http", c.FullPath(), err)
		msg := "Internal server error"
		var ie domain.InternalError
		if errors.As(err, &ie) && ie.Msg != "" {
			msg = ie.Msg
		}
		respondError(c, http.StatusInternalServerError, "internal_error", msg)
	}
}
