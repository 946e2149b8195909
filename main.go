package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nithin-912/PayBridge/config"
	"github.com/nithin-912/PayBridge/controllers"
	"github.com/nithin-912/PayBridge/routes"
	"github.com/nithin-912/PayBridge/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables. A missing webhook secret is fatal
	// here: serving unverifiable webhooks is worse than not serving.
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	if err := config.InitDB(cfg); err != nil {
		utils.LogError("Error initializing database: %v", err)
		log.Fatal("Error initializing database:", err)
	}

	// Background runner for post-acknowledgment persistence
	runner := utils.NewTaskRunner()
	store := controllers.NewPaymentStore(config.DB)

	router := routes.SetupRouter(cfg, store, runner)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		utils.LogInfo("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.LogError("Error starting server: %v", err)
			log.Fatal("Error starting server:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	utils.LogInfo("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		utils.LogError("Server shutdown error: %v", err)
	}

	// Acknowledged webhooks may still have persistence work in flight;
	// give it a bounded window before the process exits.
	if !runner.Drain(10 * time.Second) {
		utils.LogError("Shutdown drain timed out with webhook work still pending")
	}
	utils.LogInfo("Server stopped")
}
