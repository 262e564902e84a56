package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-booking-backend/controllers"
	"hotel-booking-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers onto the public, client and admin route
// groups.
func SetupRouter(
	ac *controllers.AuthController,
	hc *controllers.HotelController,
	rc *controllers.RoomController,
	resc *controllers.ReservationController,
	pc *controllers.PaymentController,
	adc *controllers.AdminController,
	jwtSecret string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
			auth.GET("/me", middleware.AuthRequired(jwtSecret), ac.Me)
		}

		// public browse
		hotels := api.Group("/hotels")
		{
			hotels.GET("", hc.ListHotels)
			hotels.GET("/:id", hc.GetHotel)
			hotels.GET("/:id/rooms", rc.ListByHotel)
		}
		api.GET("/rooms/:id/availability", hc.CheckAvailability)

		// client area
		authed := api.Group("")
		authed.Use(middleware.AuthRequired(jwtSecret))
		{
			reservations := authed.Group("/reservations")
			{
				reservations.POST("", resc.CreateReservation)
				reservations.GET("", resc.ListMyReservations)
				reservations.GET("/:id", resc.GetReservation)
				reservations.POST("/:id/cancel", resc.CancelReservation)
				reservations.POST("/:id/pay", pc.PayReservation)
			}

			invoices := authed.Group("/invoices")
			{
				invoices.GET("/:id", pc.GetInvoice)
				invoices.GET("/:id/download", pc.DownloadInvoice)
			}
		}

		// back office
		admin := api.Group("/admin")
		admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminOnly())
		{
			admin.GET("/dashboard", adc.GetDashboard)

			admin.GET("/hotels", hc.AdminListHotels)
			admin.GET("/hotels/:id", hc.AdminGetHotel)
			admin.POST("/hotels", hc.CreateHotel)
			admin.PUT("/hotels/:id", hc.UpdateHotel)
			admin.DELETE("/hotels/:id", hc.DeleteHotel)

			admin.POST("/rooms", rc.CreateRoom)
			admin.PUT("/rooms/:id", rc.UpdateRoom)
			admin.DELETE("/rooms/:id", rc.DeleteRoom)

			admin.GET("/users", adc.ListUsers)
			admin.PUT("/users/:id", adc.UpdateUser)
			admin.DELETE("/users/:id", adc.DeleteUser)

			admin.GET("/reservations", resc.AdminListReservations)
			admin.PUT("/reservations/:id", resc.AdminUpdateReservation)
			admin.DELETE("/reservations/:id", resc.AdminDeleteReservation)

			admin.GET("/payments", pc.AdminListPayments)
		}
	}

	return r
}
