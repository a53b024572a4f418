package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"passgate-backend/internal/booking"

	"github.com/gin-gonic/gin"
)

// GetBookingsCSV streams the filtered booking list as a spreadsheet.
// The projection (column set, order) lives in the booking package;
// this handler only serializes rows.
//
// GET /api/bookings/export.csv?search=&pass_type=&payment_status=&checkin_status=
func GetBookingsCSV(c *gin.Context) {
	f := bindFilter(c)
	list, err := bookingService(c).List(f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	filename := fmt.Sprintf("bookings_%s.csv", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	if err := w.Write(booking.ExportHeader()); err != nil {
		return
	}
	for _, row := range booking.ExportRows(list) {
		if err := w.Write(row); err != nil {
			return
		}
	}
	w.Flush()
}
