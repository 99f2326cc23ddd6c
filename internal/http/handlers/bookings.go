package handlers

import (
	"net/http"

	"travelbackend/internal/domain"
	"travelbackend/internal/domain/models"
	"travelbackend/internal/http/middleware"
	"travelbackend/internal/repositories"
	"travelbackend/internal/services"

	"github.com/gin-gonic/gin"
)

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		Bookings:  repositories.BookingRepo{},
		Notifier:  appNotifier,
		RequestID: middleware.GetRequestID(c),
	}
}

// POST /api/bookings (anonymous or authenticated)
func CreateBooking(c *gin.Context) {
	var draft models.BookingDraft
	if !BindJSONOrError(c, &draft) {
		return
	}

	var userID *int64
	if uid := middleware.GetUserID(c); uid > 0 {
		userID = &uid
	}

	booking, warn, err := bookingService(c).Create(c.Request.Context(), draft, userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, attachWarning(gin.H{
		"message": "Booking submitted successfully",
		"booking": booking,
	}, warn))
}

// GET /api/bookings/my (authenticated)
func GetMyBookings(c *gin.Context) {
	bookings, err := repositories.BookingRepo{}.ListByUser(middleware.GetUserID(c))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list bookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GET /api/bookings (admin)
func GetBookings(c *gin.Context) {
	bookings, err := repositories.BookingRepo{}.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list bookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// PUT /api/bookings/:id/accept (admin)
func AcceptBooking(c *gin.Context) {
	transitionBooking(c, domain.StatusAccepted, "")
}

type rejectRequest struct {
	RejectReason string `json:"rejectReason"`
}

// PUT /api/bookings/:id/reject (admin)
func RejectBooking(c *gin.Context) {
	var req rejectRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	transitionBooking(c, domain.StatusRejected, req.RejectReason)
}

func transitionBooking(c *gin.Context, status, reason string) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	booking, warn, err := bookingService(c).Transition(c.Request.Context(), id, status, reason)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, attachWarning(gin.H{
		"message": "Booking " + status,
		"booking": booking,
	}, warn))
}

// DELETE /api/bookings/:id (owner or admin)
func DeleteBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	admin := middleware.GetUserRole(c) == models.RoleAdmin
	if err := bookingService(c).Delete(id, middleware.GetUserID(c), admin); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}
