package handlers

import (
	"net/http"
	"strings"
	"time"

	"travelbackend/internal/domain/models"
	"travelbackend/internal/http/middleware"
	"travelbackend/internal/repositories"
	"travelbackend/internal/utils"

	"github.com/gin-gonic/gin"
)

type feedbackPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Rating  int    `json:"rating"`
	Message string `json:"message"`
}

// POST /api/feedback (public)
func CreateFeedback(c *gin.Context) {
	var req feedbackPayload
	if !BindJSONOrError(c, &req) {
		return
	}

	name := utils.NormalizeSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)
	switch {
	case name == "" || email == "" || message == "":
		RespondError(c, http.StatusBadRequest, "name, email and message are required", nil)
		return
	case req.Rating < 1 || req.Rating > 5:
		RespondError(c, http.StatusBadRequest, "rating must be between 1 and 5", nil)
		return
	}

	fb := models.Feedback{
		Name:      name,
		Email:     email,
		Rating:    req.Rating,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := (repositories.FeedbackRepo{}).Insert(&fb); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save feedback", err)
		return
	}

	payload := gin.H{
		"message":  "Thank you for your feedback!",
		"feedback": fb,
	}
	if appNotifier != nil {
		if err := appNotifier.FeedbackReceived(c.Request.Context(), fb); err != nil {
			utils.LogWarn(middleware.GetRequestID(c), "feedback", "notify", err)
			payload["email_warning"] = err.Error()
		}
	}
	c.JSON(http.StatusCreated, payload)
}

// GET /api/feedback (admin)
func GetFeedback(c *gin.Context) {
	items, err := repositories.FeedbackRepo{}.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list feedback", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": items})
}

// DELETE /api/feedback/:id (admin)
func DeleteFeedback(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	deleted, err := repositories.FeedbackRepo{}.Delete(id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to delete feedback", err)
		return
	}
	if !deleted {
		RespondError(c, http.StatusNotFound, "feedback not found", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feedback deleted successfully"})
}
