package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"rescuerehab/internal/domain"
)

// RespondError sends the standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string) {
	respondError(c, status, "", message)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "request body is required")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			RespondDomainError(c, bindingError(verrs[0]))
			return false
		}
		respondError(c, http.StatusBadRequest, "validation_error", "invalid JSON payload")
		return false
	}
	return true
}

// bindingError turns the first failed `binding` tag into a field-level ValidationError.
func bindingError(fe validator.FieldError) domain.ValidationError {
	name := fe.Field()
	if name != "" {
		name = strings.ToLower(name[:1]) + name[1:]
	}
	switch fe.Tag() {
	case "required":
		return domain.Required(name)
	case "email":
		return domain.ValidationError{Field: name, Msg: "is not a valid address"}
	default:
		return domain.ValidationError{Field: name, Msg: "is invalid"}
	}
}

// pathID parses a positive integer path parameter, answering 400 itself on failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id <= 0 {
		RespondDomainError(c, domain.ValidationError{Field: name, Msg: "must be a positive integer"})
		return 0, false
	}
	return id, true
}

// queryBool returns nil when the parameter is absent.
func queryBool(c *gin.Context, name string) *bool {
	raw, ok := c.GetQuery(name)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	v := strings.EqualFold(strings.TrimSpace(raw), "true") || raw == "1"
	return &v
}

func queryInt64(c *gin.Context, name string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(c.Query(name)), 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// normalized applies fn to an optional patch field, keeping nil as unchanged.
func normalized(p *string, fn func(string) string) *string {
	if p == nil {
		return nil
	}
	v := fn(*p)
	return &v
}

