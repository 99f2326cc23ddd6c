package handlers

import (
	"net/http"
	"strings"

	"travelbackend/internal/http/middleware"
	"travelbackend/internal/repositories"
	"travelbackend/internal/services"

	"github.com/gin-gonic/gin"
)

func billService(c *gin.Context) services.BillService {
	return services.BillService{
		Bills:     repositories.BillRepo{},
		RequestID: middleware.GetRequestID(c),
	}
}

// POST /api/bills (admin)
func CreateBill(c *gin.Context) {
	var req services.BillInputPayload
	if !BindJSONOrError(c, &req) {
		return
	}

	bill, err := billService(c).Create(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Bill generated successfully",
		"bill":    bill,
	})
}

// GET /api/bills (admin)
func GetBills(c *gin.Context) {
	bills, err := repositories.BillRepo{}.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list bills", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bills": bills})
}

// GET /api/bills/:id/pdf (admin) returns the printable bill as a download.
func GetBillPDF(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	pdfBytes, filename, err := billService(c).GeneratePDF(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// GET /api/bills/:id/whatsapp (admin) builds the wa.me share link. The
// destination defaults to the business number and can be overridden with
// ?phone=.
func GetBillWhatsAppLink(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	phone := strings.TrimSpace(c.Query("phone"))
	if phone == "" {
		phone = appEnv.WhatsAppNumber
	}

	link, err := billService(c).WhatsAppShareLink(id, phone)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"link": link})
}
