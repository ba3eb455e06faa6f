// File: parksmart/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parksmart/config"
	"parksmart/database"
	bookingRepo "parksmart/database/repository/booking"
	spotRepo "parksmart/database/repository/spot"
	"parksmart/handlers"
	"parksmart/middleware"
	"parksmart/routes"
	"parksmart/services/parking"
	"parksmart/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: failed to load config: %v", err)
	}

	logger, err := utils.NewLogger(cfg.Env)
	if err != nil {
		log.Fatalf("main: failed to initialize logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	mongoClient, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	redisClient, err := utils.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisSessionDB)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	// Create the Gin router.
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler(logger))
	router.Use(gin.Logger())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(logger, cfg.MaxRequestsPerMin))
	routes.RegisterCORS(router)

	// repositories.
	spots := spotRepo.NewMongoSpotRepo(mongoClient, cfg.DatabaseName)
	if err := spots.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	bookings := bookingRepo.NewMongoBookingRepo(mongoClient, cfg.DatabaseName)
	if err := bookings.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	// services.
	sessionStore := parking.NewSessionStore(redisClient, time.Duration(cfg.SessionTTLMinutes)*time.Minute)
	parkingService := &parking.DefaultParkingService{
		Spots:    spots,
		Bookings: bookings,
		Sessions: sessionStore,
		Logger:   logger,
	}
	parkingHandler := handlers.NewParkingHandler(parkingService, cfg.SearchRadiusMeters)

	// Register routes.
	routes.RegisterSpotRoutes(router, parkingHandler)
	routes.RegisterBookingRoutes(router, parkingHandler)

	healthMonitor := &utils.HealthMonitor{}
	healthMonitor.Start(mongoClient, redisClient)
	routes.RegisterHealthRoute(router, healthMonitor)

	// Start the HTTP server.
	port := cfg.AppPort
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
	if err := mongoClient.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect mongo: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
