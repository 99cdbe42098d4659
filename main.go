// main.go - Entry point for the employee record HTTP service

package main // Declares the package name

import ( // Import required packages
	"context"   // Shutdown deadline
	"errors"    // http.ErrServerClosed check
	"net/http"  // HTTP server
	"os"        // Exit codes and signals
	"os/signal" // Graceful shutdown
	"syscall"   // SIGTERM
	"time"      // Shutdown timeout

	"go-employee-backend/config"   // Project config management
	"go-employee-backend/database" // Database connection and setup
	"go-employee-backend/handlers" // Event publisher interface
	"go-employee-backend/logger"   // zerolog setup
	"go-employee-backend/mqtt"     // MQTT event publisher
	"go-employee-backend/router"   // Routes

	"github.com/gin-gonic/gin" // Gin web framework
)

func main() { // Main function, program entry point
	// STEP 1: Load configuration and establish connections
	cfg, err := config.Load() // Load configuration (DB path, listen address, MQTT broker)
	if err != nil {
		log := logger.New("info", nil)
		log.Fatal().Err(err).Msg("config error")
	}
	log := logger.New(cfg.LogLevel, nil)
	gin.SetMode(cfg.GinMode)

	store, err := database.Connect(cfg.DBPath, log) // Connect to the database
	if err != nil {
		log.Fatal().Err(err).Msg("DB connection error")
	}
	defer store.Close()

	var events handlers.EventPublisher = handlers.NoopPublisher{}
	if cfg.MQTTBroker != "" { // Events are optional
		client, err := mqtt.Connect(cfg.MQTTBroker, cfg.MQTTClientID, cfg.MQTTTopicPrefix)
		if err != nil {
			log.Fatal().Err(err).Msg("MQTT connection error")
		}
		defer client.Disconnect()
		events = client
	}

	// STEP 2: Create Gin router and configure routes
	r := router.New(router.Deps{
		Store:     store,
		Events:    events,
		Logger:    log,
		RateLimit: cfg.RateLimit,
		RateBurst: cfg.RateBurst,
	})

	// STEP 3: Start the web server and wait for a shutdown signal
	srv := &http.Server{Addr: cfg.Addr, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		log.Info().Str("addr", cfg.Addr).Str("db", cfg.DBPath).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}
	log.Info().Msg("server stopped")
}
