package handlers

import (
	"net/http"
	"strconv"

	"travelbackend/internal/domain/models"
	"travelbackend/internal/repositories"

	"github.com/gin-gonic/gin"
)

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", err)
		return 0, false
	}
	return id, true
}

// GET /api/users (admin)
func GetUsers(c *gin.Context) {
	users, err := repositories.UserRepo{}.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list users", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GET /api/users/:id (admin)
func GetUserByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	user, err := repositories.UserRepo{}.GetByID(id)
	if err != nil {
		if repositories.IsNoRows(err) {
			RespondError(c, http.StatusNotFound, "user not found", nil)
			return
		}
		RespondError(c, http.StatusInternalServerError, "failed to load user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

// PUT /api/users/:id/role (admin)
func UpdateUserRole(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req updateRoleRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Role != models.RoleUser && req.Role != models.RoleAdmin {
		RespondError(c, http.StatusBadRequest, "role must be user or admin", nil)
		return
	}

	updated, err := repositories.UserRepo{}.UpdateRole(id, req.Role)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to update role", err)
		return
	}
	if !updated {
		RespondError(c, http.StatusNotFound, "user not found", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Role updated successfully"})
}

// DELETE /api/users/:id (admin)
func DeleteUser(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	deleted, err := repositories.UserRepo{}.Delete(id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to delete user", err)
		return
	}
	if !deleted {
		RespondError(c, http.StatusNotFound, "user not found", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
