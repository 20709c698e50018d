package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"busadmin/config"
	"busadmin/database"
	bookingRepoPkg "busadmin/database/repository/booking"
	"busadmin/handlers"
	"busadmin/middleware"
	"busadmin/routes"
	"busadmin/services/analytics"
	"busadmin/services/booking"
	"busadmin/services/refund"
	"busadmin/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	mongoClient := database.InitDB()
	defer database.Disconnect(mongoClient)
	utils.InitLockClient()
	utils.StartHealthMonitor(utils.GetLockClient(), mongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(database.Database(mongoClient))
	if err := bookingRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Warnf("main: failed to ensure booking indexes: %v", err)
	}

	// services.
	analyticsService := &analytics.DefaultAnalyticsService{
		Repo: bookingRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo: bookingRepo,
	}
	refundService := &refund.DefaultRefundService{
		Repo:    bookingRepo,
		Gateway: nil,
		Locks:   utils.NewRefundLocker(utils.GetLockClient()),
		Logger:  logger,
	}
	if gateway := refund.NewRazorpayGateway(config.AppConfig.RazorpayKeyID, config.AppConfig.RazorpayKeySecret); gateway != nil {
		refundService.Gateway = gateway
	} else {
		logger.Sugar().Warn("main: razorpay credentials missing, refund processing disabled")
	}

	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	refundHandler := handlers.NewRefundHandler(bookingService, refundService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		LoginHandler:  handlers.LoginHandler,
		LogoutHandler: handlers.LogoutHandler,

		GetAnalyticsHandler: analyticsHandler.GetAnalyticsHandler,
		ListBookingsHandler: bookingHandler.ListBookingsHandler,

		ListPendingRefundsHandler: refundHandler.ListPendingRefundsHandler,
		ProcessRefundHandler:      refundHandler.ProcessRefundHandler,
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
