package routes

import (
	"net/http"
	"time"

	"hotelify/config"
	"hotelify/handlers"
	"hotelify/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers guest registration and login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.User.Register)
		api.POST("/login", hb.User.Login)
	}
}

// RegisterUserRoutes registers authenticated user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/profile", hb.User.Profile)
	}
}

// RegisterRoomRoutes registers the public room catalog endpoints.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rooms")
	{
		api.GET("", hb.Room.GetRooms)
		api.GET("/:id", hb.Room.GetRoomByID)
	}
}

// RegisterBookingRoutes sets up the guest-facing booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		// Listing every booking is an admin operation.
		bookingGroup.GET("", middleware.JWTAuthAdminMiddleware(hb.AdminRepo), hb.Booking.GetBookings)

		protected := bookingGroup.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		protected.POST("/book-room", hb.Booking.BookRoom)
		protected.GET("/my-bookings", hb.Booking.GetMyBookings)
		protected.PUT("/:id/cancel", hb.Booking.CancelBooking)
	}
}

// RegisterPaymentRoutes sets up the online payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/create-order", hb.Payment.CreateOrder)
		api.POST("/verify", hb.Payment.VerifyPayment)
	}
}

// RegisterAdminRoutes sets up endpoints for back-office operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/admin-auth/login", hb.Admin.Login)

	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware(hb.AdminRepo))

		adminGroup.GET("/admins", hb.Admin.GetAdmins)
		adminGroup.POST("/admins", hb.Admin.CreateAdmin)
		adminGroup.PUT("/admins/:id", hb.Admin.UpdateAdmin)

		adminGroup.GET("/rooms", hb.Room.GetAllRooms)
		adminGroup.POST("/rooms", hb.Room.CreateRoom)
		adminGroup.PUT("/rooms/:id", hb.Room.UpdateRoom)
		adminGroup.DELETE("/rooms/:id", hb.Room.DeleteRoom)
		adminGroup.POST("/rooms/:id/image", hb.Storage.UploadRoomImage)

		adminGroup.GET("/bookings", hb.Booking.GetBookings)
		adminGroup.PUT("/bookings/:id/cancel", hb.Booking.CancelBooking)
		adminGroup.PATCH("/bookings/:id/status", hb.Booking.UpdateBookingStatus)
		adminGroup.GET("/revenue", hb.Booking.GetRevenue)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Hotelify"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.IPBlockMiddleware())
	r.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterRoomRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
