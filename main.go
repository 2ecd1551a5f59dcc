// File: salonbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"salonbook/config"
	"salonbook/database"
	bookingRepo "salonbook/database/repository/booking"
	catalogRepo "salonbook/database/repository/catalog"
	outletRepo "salonbook/database/repository/outlet"
	staffRepo "salonbook/database/repository/staff"
	"salonbook/handlers"
	"salonbook/middleware"
	"salonbook/routes"
	"salonbook/services/wizard"
	"salonbook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	services := catalogRepo.NewMongoServiceRepo()
	staff := staffRepo.NewMongoStaffRepo()
	outlet := outletRepo.NewMongoOutletRepo()
	bookings := bookingRepo.NewMongoBookingRepo()

	// services.
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	sessionStore := wizard.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL)

	submitter := &wizard.MongoSubmissionService{
		Bookings: bookings,
		Logger:   logger,
	}
	wizardService := &wizard.DefaultWizardService{
		Catalog:   services,
		Staff:     staff,
		Outlet:    outlet,
		Bookings:  bookings,
		Sessions:  sessionStore,
		Submitter: submitter,
		Logger:    logger,
		StepMin:   config.AppConfig.SlotGranularityMin,
	}

	wizardHandler := handlers.NewWizardHandler(wizardService, logger)
	catalogHandler := handlers.NewCatalogHandler(wizardService, logger)

	routes.RegisterRoutes(router, wizardHandler, catalogHandler)

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
