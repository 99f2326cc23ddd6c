package handlers

import (
	"net/http"

	"travelbackend/internal/http/middleware"
	"travelbackend/internal/repositories"
	"travelbackend/internal/services"

	"github.com/gin-gonic/gin"
)

func authService(c *gin.Context) services.AuthService {
	return services.AuthService{
		Users:     repositories.UserRepo{},
		Limiter:   loginLimiter,
		JWTSecret: []byte(appEnv.JWTSecret),
		RequestID: middleware.GetRequestID(c),
	}
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req services.RegisterPayload
	if !BindJSONOrError(c, &req) {
		return
	}

	user, err := authService(c).Register(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"user":    user,
	})
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req services.LoginPayload
	if !BindJSONOrError(c, &req) {
		return
	}

	device := services.DescribeDevice(c.GetHeader("User-Agent"))
	user, token, err := authService(c).Login(req, device)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// POST /api/auth/change-password (authenticated)
func ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	userID := middleware.GetUserID(c)
	if err := authService(c).ChangePassword(userID, req.OldPassword, req.NewPassword); err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
