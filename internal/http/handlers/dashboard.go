package handlers

import (
	"net/http"
	"os"

	"travelbackend/internal/domain"
	"travelbackend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/admin/dashboard (admin) aggregates the back-office counters.
func GetDashboard(c *gin.Context) {
	byStatus, err := repositories.BookingRepo{}.CountByStatus()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to count bookings", err)
		return
	}
	totalUsers, err := repositories.UserRepo{}.Count()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to count users", err)
		return
	}
	available, unavailable, err := repositories.CarRepo{}.CountByStatus()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to count cars", err)
		return
	}
	totalBills, err := repositories.BillRepo{}.Count()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to count bills", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings": gin.H{
			"pending":  byStatus[domain.StatusPending],
			"accepted": byStatus[domain.StatusAccepted],
			"rejected": byStatus[domain.StatusRejected],
		},
		"users": totalUsers,
		"cars": gin.H{
			"available":   available,
			"unavailable": unavailable,
		},
		"bills": totalBills,
	})
}

// GET /api/business-card (public) streams the printable card as a download.
func DownloadBusinessCard(c *gin.Context) {
	path := appEnv.BusinessCardPath
	if path == "" {
		RespondError(c, http.StatusNotFound, "business card not configured", nil)
		return
	}
	if _, err := os.Stat(path); err != nil {
		RespondError(c, http.StatusNotFound, "business card not available", err)
		return
	}
	c.FileAttachment(path, "card.jpg")
}
