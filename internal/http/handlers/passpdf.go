package handlers

import (
	"net/http"
	"strings"

	"passgate-backend/internal/domain"
	"passgate-backend/internal/http/middleware"
	"passgate-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GetBookingPassPDF returns the printable gate pass (inline).
func GetBookingPassPDF(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respondError(c, http.StatusBadRequest, "invalid_booking_id", "booking id is required", nil)
		return
	}

	svc := services.PassDocService{
		Bookings:  bookingService(c),
		RequestID: middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GeneratePass(id)
	if err != nil {
		if domain.IsNotFound(err) {
			respondError(c, http.StatusNotFound, "booking_not_found", "booking not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "pass_generation_failed", err.Error(), nil)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
