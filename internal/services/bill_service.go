package services

import (
	"bytes"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"travelbackend/internal/domain"
	"travelbackend/internal/domain/models"
	"travelbackend/internal/repositories"
	"travelbackend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// BillService creates immutable bills from the admin form and renders the
// printable document.
type BillService struct {
	Bills     repositories.BillRepo
	RequestID string
	Loader    func(int64) (models.Bill, error) // test hook
}

// BillInputPayload is the admin-entered form. Numeric fields are pointers so
// an untouched field stays distinguishable from zero.
type BillInputPayload struct {
	TaxiNumber   string   `json:"taxiNumber"`
	Date         string   `json:"date"`
	JourneyDate  string   `json:"journeyDate"`
	CustomerName string   `json:"customerName"`
	From         string   `json:"from"`
	To           string   `json:"to"`
	TaxiRate     *float64 `json:"taxiRate"`
	PerDay       *float64 `json:"perDay"`
	OpenKm       *float64 `json:"openKm"`
	CloseKm      *float64 `json:"closeKm"`
	ExtraCharges *float64 `json:"extraCharges"`
}

// Create derives the totals and persists the bill.
func (s BillService) Create(in BillInputPayload) (models.Bill, error) {
	taxiNumber := strings.ToUpper(strings.TrimSpace(in.TaxiNumber))
	customer := strings.TrimSpace(in.CustomerName)
	from := strings.TrimSpace(in.From)
	to := strings.TrimSpace(in.To)

	if taxiNumber == "" {
		return models.Bill{}, domain.ValidationError{Field: "taxiNumber", Msg: "taxi number is required"}
	}
	if customer == "" {
		return models.Bill{}, domain.ValidationError{Field: "customerName", Msg: "customer name is required"}
	}
	if from == "" || to == "" {
		return models.Bill{}, domain.ValidationError{Field: "from", Msg: "journey from/to is required"}
	}
	if _, err := utils.ParseDate(in.Date); err != nil {
		return models.Bill{}, domain.ValidationError{Field: "date", Msg: "date must be YYYY-MM-DD", Err: err}
	}
	if _, err := utils.ParseDate(in.JourneyDate); err != nil {
		return models.Bill{}, domain.ValidationError{Field: "journeyDate", Msg: "date must be YYYY-MM-DD", Err: err}
	}

	calc := domain.ComputeBill(domain.BillInput{
		OpenKm:       in.OpenKm,
		CloseKm:      in.CloseKm,
		TaxiRate:     in.TaxiRate,
		PerDay:       in.PerDay,
		ExtraCharges: in.ExtraCharges,
	})

	b := models.Bill{
		TaxiNumber:   taxiNumber,
		BillDate:     strings.TrimSpace(in.Date),
		JourneyDate:  strings.TrimSpace(in.JourneyDate),
		CustomerName: customer,
		From:         from,
		To:           to,
		TaxiRate:     in.TaxiRate,
		PerDay:       in.PerDay,
		OpenKm:       in.OpenKm,
		CloseKm:      in.CloseKm,
		TotalKm:      calc.TotalKm,
		TotalBill:    calc.TotalBill,
		ExtraCharges: in.ExtraCharges,
		Balance:      calc.Balance,
	}

	if err := s.Bills.Insert(&b); err != nil {
		return models.Bill{}, domain.InternalError{Msg: "failed to save bill", Err: err}
	}
	utils.LogEvent(s.RequestID, "bills", "create", fmt.Sprintf("id=%d taxi=%s", b.ID, b.TaxiNumber))
	return b, nil
}

func (s BillService) load(id int64) (models.Bill, error) {
	if s.Loader != nil {
		return s.Loader(id)
	}
	b, err := s.Bills.GetByID(id)
	if err != nil {
		if repositories.IsNoRows(err) {
			return models.Bill{}, domain.NotFoundError{Resource: "bill"}
		}
		return models.Bill{}, err
	}
	return b, nil
}

// GeneratePDF renders the printable bill and returns the document bytes plus
// a download filename.
func (s BillService) GeneratePDF(id int64) ([]byte, string, error) {
	b, err := s.load(id)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "bills", "generate_pdf", fmt.Sprintf("bill_id=%d", id))
	return buildBillPDF(b)
}

func buildBillPDF(b models.Bill) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Taxi Bill", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BAPPA TRAVELS TAXI SERVICES")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Jalgaon  |  +91 90113 33966")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("Bill No: BILL-%d", b.ID))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Taxi No.      : %s", dash(b.TaxiNumber)),
		fmt.Sprintf("Bill Date     : %s", dash(b.BillDate)),
		fmt.Sprintf("Journey Date  : %s", dash(b.JourneyDate)),
		fmt.Sprintf("Customer      : %s", dash(b.CustomerName)),
		fmt.Sprintf("From          : %s", dash(b.From)),
		fmt.Sprintf("To            : %s", dash(b.To)),
		fmt.Sprintf("Taxi Rate     : %s", dashFloat(b.TaxiRate)),
		fmt.Sprintf("Per Day       : %s", dashFloat(b.PerDay)),
		fmt.Sprintf("Open Km.      : %s", dashFloat(b.OpenKm)),
		fmt.Sprintf("Close Km.     : %s", dashFloat(b.CloseKm)),
		fmt.Sprintf("Total Km.     : %s", dashFloat(b.TotalKm)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(25, 55, 130)
	pdf.Cell(0, 8, "Total Bill    : "+rupeesOrDash(b.TotalBill))
	pdf.Ln(8)
	pdf.Cell(0, 8, "Extra Charges : "+rupeesOrDash(b.ExtraCharges))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Balance       : Rs. %s", utils.FormatAmount(b.Balance)))
	pdf.SetTextColor(0, 0, 0)

	pdf.Ln(12)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Thank you for choosing Bappa Travels!", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("BILL_%d_%s.pdf", b.ID, safeFilenamePart(b.CustomerName))
	return buf.Bytes(), filename, nil
}

// WhatsAppShareLink builds a wa.me deep-link carrying the bill summary.
func (s BillService) WhatsAppShareLink(id int64, phone string) (string, error) {
	b, err := s.load(id)
	if err != nil {
		return "", err
	}
	msg := fmt.Sprintf("*BAPPA TRAVELS TAXI SERVICES*\n\n*Bill Details:*\nTaxi No: %s\nDate: %s\nCustomer: %s\nFrom: %s\nTo: %s\nTotal Bill: %s\nExtra Charges: %s\nBalance: %s\n\nThank you for choosing Bappa Travels!",
		b.TaxiNumber, b.JourneyDate, b.CustomerName, b.From, b.To,
		rupeesUnicodeOrDash(b.TotalBill), rupeesUnicodeOrDash(b.ExtraCharges), utils.FormatRupees(b.Balance))
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(msg), nil
}

func dash(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "-"
	}
	return v
}

func dashFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func rupeesOrDash(v *float64) string {
	if v == nil {
		return "-"
	}
	return "Rs. " + utils.FormatAmount(*v)
}

func rupeesUnicodeOrDash(v *float64) string {
	if v == nil {
		return "-"
	}
	return utils.FormatRupees(*v)
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
