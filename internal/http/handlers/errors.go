package handlers

import (
	"net/http"

	"travelbackend/internal/domain"
	"travelbackend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, code, message string, err error) {
	if code == "" {
		code = http.StatusText(status)
	}
	payload := gin.H{
		"message": message,
		"code":    code,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	if reqID := middleware.GetRequestID(c); reqID != "" {
		payload["request_id"] = reqID
	}
	c.JSON(status, payload)
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil)
	case domain.IsForbidden(err):
		respondError(c, http.StatusForbidden, "forbidden", err.Error(), nil)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "something went wrong", err)
	}
}

// attachWarning adds the non-fatal email warning to a success payload.
func attachWarning(payload gin.H, warn error) gin.H {
	if warn != nil {
		payload["email_warning"] = warn.Error()
	}
	return payload
}
