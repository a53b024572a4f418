package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "passgate-backend/internal/config"
	h "passgate-backend/internal/http/handlers"
	"passgate-backend/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Configure(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	authRequired := middleware.AuthRequired([]byte(env.JWTSecret), env.AuthDisabled)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		protected := api.Group("")
		protected.Use(authRequired)

		users := protected.Group("/users")
		users.GET("", h.GetUsers)
		users.GET("/:id", h.GetUserByID)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)

		passTypes := protected.Group("/pass-types")
		passTypes.GET("", h.GetPassTypes)
		passTypes.GET("/:id", h.GetPassTypeByID)
		passTypes.POST("", h.CreatePassType)
		passTypes.PUT("/:id", h.UpdatePassType)
		passTypes.DELETE("/:id", h.DeletePassType)

		bookings := protected.Group("/bookings")
		bookings.GET("", h.GetBookings)
		bookings.GET("/export.csv", h.GetBookingsCSV)
		bookings.GET("/:id", h.GetBookingByID)
		bookings.GET("/:id/pass.pdf", h.GetBookingPassPDF)
		bookings.POST("", h.CreateBooking)
		bookings.PUT("/:id", h.UpdateBooking)
		bookings.DELETE("/:id", h.DeleteBooking)
		bookings.POST("/:id/checkin", h.CheckInBooking)

		dashboard := protected.Group("/dashboard")
		dashboard.GET("/stats", h.GetDashboardStats)
	}

	h.SetRouter(r)
	return r
}
