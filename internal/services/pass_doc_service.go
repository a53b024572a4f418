package services

import (
	"bytes"
	"fmt"
	"strings"

	"passgate-backend/internal/booking"
	"passgate-backend/internal/domain/models"
	"passgate-backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// PassDocService renders the printable gate pass for a booking.
type PassDocService struct {
	Bookings  BookingService
	RequestID string
	Loader    func(id string) (models.Booking, error)
}

func (s PassDocService) GeneratePass(bookingID string) ([]byte, string, error) {
	b, err := s.load(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_pass", "booking_id="+bookingID)
	return buildPassPDF(b)
}

func (s PassDocService) load(id string) (models.Booking, error) {
	if s.Loader != nil {
		return s.Loader(id)
	}
	return s.Bookings.Get(id)
}

func buildPassPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Event Pass", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "EVENT PASS")
	pdf.Ln(12)

	names := make([]string, 0, len(b.PassTypes))
	for _, ref := range b.PassTypes {
		if n := ref.Name(); n != "" {
			names = append(names, n)
		}
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Pass ID        : %s", safe(b.ID, "-")),
		fmt.Sprintf("Buyer          : %s", safe(b.BuyerName, "-")),
		fmt.Sprintf("Phone          : %s", safe(b.BuyerPhone, "-")),
		fmt.Sprintf("Pass Type      : %s", safe(strings.Join(names, " + "), "-")),
		fmt.Sprintf("People         : %d", b.TotalPeople),
		fmt.Sprintf("Amount         : %s", utils.FormatINR(booking.ResolvedAmount(b))),
		fmt.Sprintf("Payment        : %s (%s)", safe(b.PaymentStatus, "-"), safe(b.PaymentMode, "-")),
		fmt.Sprintf("Booked On      : %s", utils.FormatDateTime(b.CreatedAt)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if len(b.PassHolders) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Pass Holders:")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for i, h := range b.PassHolders {
			entry := safe(h.Name, "-")
			if h.Phone != "" {
				entry += " (" + h.Phone + ")"
			}
			pdf.Cell(0, 6, fmt.Sprintf("%d) %s", i+1, entry))
			pdf.Ln(6)
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, "Scan Code: "+safe(b.ScanCode, booking.NewScanCode(b.ID)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, fmt.Sprintf("Show this pass at the gate. Valid for up to %d people.", b.TotalPeople), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("PASS_%s.pdf", utils.SafeFilenamePart(b.ID))
	return buf.Bytes(), filename, nil
}

func safe(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
