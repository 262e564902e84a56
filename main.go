package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-booking-backend/config"
	"hotel-booking-backend/controllers"
	"hotel-booking-backend/routes"
	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("ERROR: JWT_SECRET environment variable is not set. Cannot issue access tokens.")
	}

	tokenTTLMin, err := strconv.Atoi(utils.EnvOrDefault("TOKEN_TTL_MIN", "60"))
	if err != nil || tokenTTLMin <= 0 {
		log.Fatalf("ERROR: invalid TOKEN_TTL_MIN: %v", os.Getenv("TOKEN_TTL_MIN"))
	}

	invoiceDir := utils.EnvOrDefault("INVOICE_DIR", "./invoices")

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("Database connection established and migrations applied")

	// Initialize services
	userService := services.NewUserService(db)
	hotelService := services.NewHotelService(db)
	roomService := services.NewRoomService(db)
	availabilityService := services.NewAvailabilityService(db)
	reservationService := services.NewReservationService(db)
	paymentService := services.NewPaymentService(db, invoiceDir)
	dashboardService := services.NewDashboardService(db)

	// Initialize controllers
	authController := controllers.NewAuthController(userService, jwtSecret, tokenTTLMin)
	hotelController := controllers.NewHotelController(hotelService, availabilityService)
	roomController := controllers.NewRoomController(roomService)
	reservationController := controllers.NewReservationController(reservationService)
	paymentController := controllers.NewPaymentController(paymentService)
	adminController := controllers.NewAdminController(userService, dashboardService)

	router := routes.SetupRouter(
		authController,
		hotelController,
		roomController,
		reservationController,
		paymentController,
		adminController,
		jwtSecret,
	)

	port := utils.EnvOrDefault("PORT", "8080")
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal, then shut down with a deadline
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
