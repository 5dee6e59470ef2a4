// File: hotelify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotelify/config"
	"hotelify/database"
	adminRepoPkg "hotelify/database/repository/admin"
	bookingRepoPkg "hotelify/database/repository/booking"
	roomRepoPkg "hotelify/database/repository/room"
	userRepoPkg "hotelify/database/repository/user"
	"hotelify/handlers"
	"hotelify/routes"
	"hotelify/services/admin"
	"hotelify/services/booking"
	"hotelify/services/payment"
	"hotelify/services/room"
	"hotelify/services/user"
	"hotelify/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	roomRepo := roomRepoPkg.NewMongoRoomRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	adminRepo := adminRepoPkg.NewMongoAdminRepo()

	// services.
	gateway := payment.NewRazorpayGateway()
	bookingService := booking.NewBookingService(
		roomRepo,
		bookingRepo,
		gateway,
		config.AppConfig.GatewayKeySecret,
		config.AppConfig.GatewayCurrency,
		logger,
	)
	roomService := &room.DefaultRoomService{Repo: roomRepo, Logger: logger}
	userService := &user.DefaultUserService{Repo: userRepo, Logger: logger}
	adminService := &admin.DefaultAdminService{Repo: adminRepo, Logger: logger}

	// Bootstrap the back-office account when the collection is empty.
	if err := adminService.EnsureDefaultAdmin(config.AppConfig.DefaultAdminUser, config.AppConfig.DefaultAdminPass); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure default admin: %v", err)
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:  userRepo,
		AdminRepo: adminRepo,

		Booking: handlers.NewBookingHandler(bookingService, logger),
		Payment: handlers.NewPaymentHandler(bookingService, logger),
		Room:    handlers.NewRoomHandler(roomService),
		User:    handlers.NewUserHandler(userService),
		Admin:   handlers.NewAdminHandler(adminService),
		Storage: handlers.NewStorageHandler(cloudinaryStorageService, roomService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
