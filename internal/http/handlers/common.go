package handlers

import (
	"net/http"

	intconfig "travelbackend/internal/config"
	"travelbackend/internal/http/middleware"
	"travelbackend/internal/mail"
	"travelbackend/internal/services"

	"github.com/gin-gonic/gin"
)

// Package-level wiring set once from main. Handlers stay free functions, the
// per-request services are built inline with the request id.
var (
	appEnv       intconfig.Env
	appNotifier  *mail.Notify
	loginLimiter *services.LoginLimiter
)

// Configure injects process-wide dependencies before the router is mounted.
func Configure(env intconfig.Env, notifier *mail.Notify, limiter *services.LoginLimiter) {
	appEnv = env
	appNotifier = notifier
	loginLimiter = limiter
}

// RespondError sends standard error payload with request_id included.
// Keeps backward compatibility by always providing "message".
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty request body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
