package handlers

import (
	"net/http"

	"passgate-backend/internal/booking"
	"passgate-backend/internal/domain/models"
	"passgate-backend/internal/http/middleware"
	"passgate-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		RequestID: middleware.GetRequestID(c),
		EventTag:  currentEnv().EventTag,
	}
}

func bindFilter(c *gin.Context) booking.FilterSpec {
	var f booking.FilterSpec
	// unknown query params are ignored; missing ones read as "all"
	_ = c.ShouldBindQuery(&f)
	return f
}

// GET /api/bookings?search=&pass_type=&payment_status=&checkin_status=
func GetBookings(c *gin.Context) {
	f := bindFilter(c)
	list, err := bookingService(c).List(f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bookings": list,
		"count":    len(list),
	})
}

func GetBookingByID(c *gin.Context) {
	b, err := bookingService(c).Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// POST /api/bookings: the sales flow.
func CreateBooking(c *gin.Context) {
	var in services.CreateBookingInput
	if !BindJSONOrError(c, &in) {
		return
	}
	b, err := bookingService(c).Create(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": b})
}

func UpdateBooking(c *gin.Context) {
	var upd models.BookingUpdate
	if !BindJSONOrError(c, &upd) {
		return
	}
	b, err := bookingService(c).Update(c.Param("id"), upd)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

func DeleteBooking(c *gin.Context) {
	if err := bookingService(c).Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}

type checkinRequest struct {
	People int `json:"people"`
}

// POST /api/bookings/:id/checkin
func CheckInBooking(c *gin.Context) {
	req := checkinRequest{People: 1}
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if !BindJSONOrError(c, &req) {
			return
		}
	}
	b, err := bookingService(c).CheckIn(c.Param("id"), req.People)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}
