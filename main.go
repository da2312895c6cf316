package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hotel-ledger/config"
	"hotel-ledger/controllers"
	"hotel-ledger/routes"
	"hotel-ledger/services"
	"hotel-ledger/store"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	} else {
		log.Warn().Str("log_level", cfg.LogLevel).Msg("unknown log level, keeping default")
	}

	// Load the data files into the record store
	recordStore := store.New()
	dataService := services.NewDataService(recordStore, cfg.Files())
	if err := dataService.Load(); err != nil {
		log.Fatal().Err(err).Msg("failed to load data files")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Initialize services
	roomService := services.NewRoomService(recordStore)
	guestService := services.NewGuestService(recordStore, rng)
	bookingService := services.NewBookingService(recordStore, rng)
	ledgerService := services.NewLedgerService(recordStore)

	// Initialize controllers
	roomController := controllers.NewRoomController(roomService, bookingService)
	guestController := controllers.NewGuestController(guestService, bookingService)
	bookingController := controllers.NewBookingController(bookingService)
	paymentController := controllers.NewPaymentController(ledgerService)
	dataController := controllers.NewDataController(dataService)

	// Build router
	router := routes.SetupRouter(
		roomController,
		guestController,
		bookingController,
		paymentController,
		dataController,
		cfg.CORSOrigins,
	)

	addr := ":" + cfg.Port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Warn().Msg("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	// Persist the record store before exiting
	if err := dataService.Save(); err != nil {
		log.Error().Err(err).Msg("failed to save data files on shutdown")
	} else {
		log.Info().Msg("data files saved")
	}

	log.Info().Msg("server stopped gracefully")
}
