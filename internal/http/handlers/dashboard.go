package handlers

import (
	"net/http"

	"passgate-backend/internal/http/middleware"
	"passgate-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/dashboard/stats returns the aggregate over the (optionally
// filtered) booking list: totals, revenue, per-type counts, check-in
// split.
func GetDashboardStats(c *gin.Context) {
	svc := services.DashboardService{
		Bookings:  bookingService(c),
		RequestID: middleware.GetRequestID(c),
	}
	summary, err := svc.Stats(bindFilter(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": summary})
}
