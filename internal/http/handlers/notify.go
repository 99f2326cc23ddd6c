package handlers

import (
	"net/http"
	"strings"

	"travelbackend/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// notifyBookingPayload mirrors the public site's booking notification call.
// Status is optional; when present the requester gets a single status email
// instead of the received pair.
type notifyBookingPayload struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	MobileNumber    string `json:"mobileNumber"`
	SelectedCar     string `json:"selectedCar"`
	PickupDate      string `json:"pickupDate"`
	PickupTime      string `json:"pickupTime"`
	PickupLocation  string `json:"pickupLocation"`
	DropoffLocation string `json:"dropoffLocation"`
	Status          string `json:"status"`
	Reason          string `json:"reason"`
}

// POST /api/notify/booking
func NotifyBooking(c *gin.Context) {
	var req notifyBookingPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.FullName) == "" || strings.TrimSpace(req.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields: fullName, email"})
		return
	}

	b := models.Booking{
		FullName:        req.FullName,
		Email:           req.Email,
		MobileNumber:    req.MobileNumber,
		SelectedCar:     req.SelectedCar,
		PickupDate:      req.PickupDate,
		PickupTime:      req.PickupTime,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
	}

	status := strings.ToLower(strings.TrimSpace(req.Status))
	var err error
	if status == "" {
		err = appNotifier.BookingReceived(c.Request.Context(), b)
	} else {
		err = appNotifier.BookingStatus(c.Request.Context(), b, status, req.Reason)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to send notification email",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification email sent successfully"})
}

type notifyFeedbackPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Rating  int    `json:"rating"`
}

// POST /api/notify/feedback
func NotifyFeedback(c *gin.Context) {
	var req notifyFeedbackPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Message) == "" || req.Rating == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	fb := models.Feedback{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Rating:  req.Rating,
	}
	if err := appNotifier.FeedbackReceived(c.Request.Context(), fb); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to send feedback email",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feedback email sent successfully"})
}
