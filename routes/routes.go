package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-ledger/controllers"
	"hotel-ledger/middleware"
)

// SetupRouter wires controllers onto the route tree.
func SetupRouter(
	rc *controllers.RoomController,
	gc *controllers.GuestController,
	bc *controllers.BookingController,
	pc *controllers.PaymentController,
	dc *controllers.DataController,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	allowCredentials := true
	for _, origin := range corsOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.POST("", rc.CreateRoom)

			// must come before /:number
			rooms.GET("/available", rc.GetAvailableRooms)

			rooms.GET("/:number", rc.GetRoomByNumber)
			rooms.DELETE("/:number", rc.DeleteRoom)
		}

		guests := api.Group("/guests")
		{
			guests.GET("", gc.GetGuests)

			// must come before /:id
			guests.GET("/search", gc.SearchGuests)

			guests.GET("/:id", gc.GetGuestByID)
			guests.POST("", gc.CreateGuest)
			guests.DELETE("/:id", gc.DeleteGuest)
			guests.GET("/:id/bookings", gc.GetGuestBookings)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/:id", bc.GetBookingByID)
			bookings.POST("/:id/checkout", bc.CheckoutBooking)
			bookings.POST("/:id/cancel", bc.CancelBooking)
		}

		payments := api.Group("/payments")
		{
			payments.GET("", pc.GetPayments)
		}

		data := api.Group("/data")
		{
			data.POST("/save", dc.SaveData)
			data.POST("/reload", dc.ReloadData)
		}
	}

	return r
}
