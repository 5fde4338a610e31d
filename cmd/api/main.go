package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Shubham1613/FastAPI-Mongo/internal/config"
	"github.com/Shubham1613/FastAPI-Mongo/internal/handler"
	"github.com/Shubham1613/FastAPI-Mongo/internal/repository"
	"github.com/Shubham1613/FastAPI-Mongo/internal/router"
	"github.com/Shubham1613/FastAPI-Mongo/internal/service"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting inventory API...")

	// Load configuration
	cfg := config.MustLoad()
	log.Printf("Environment: %s", cfg.App.Environment)

	// Initialize the store. The connection is acquired once here and shared
	// by every request for the lifetime of the process.
	var itemRepo repository.ItemRepository
	var clockInRepo repository.ClockInRepository

	switch cfg.Store.Driver {
	case "memory":
		itemRepo = repository.NewMemoryItemRepository()
		clockInRepo = repository.NewMemoryClockInRepository()
		log.Println("In-memory store initialized")
	default: // mongodb
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		client, err := repository.Connect(ctx, cfg.Store.MongoURI)
		cancel()
		if err != nil {
			log.Fatalf("Failed to initialize MongoDB: %v", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := client.Disconnect(ctx); err != nil {
				log.Printf("MongoDB disconnect error: %v", err)
			}
		}()

		db := client.Database(cfg.Store.MongoDatabase)
		itemRepo = repository.NewMongoItemRepository(db, cfg.Store.ItemsCollection)
		clockInRepo = repository.NewMongoClockInRepository(db, cfg.Store.ClockInCollection)
		log.Printf("MongoDB store initialized (%s)", cfg.Store.MongoDatabase)
	}

	// Initialize services
	itemService := service.NewItemService(itemRepo)
	clockInService := service.NewClockInService(clockInRepo)

	// Initialize handlers
	healthHandler := handler.New(cfg.App.Version)
	itemHandler := handler.NewItemHandler(itemService)
	clockInHandler := handler.NewClockInHandler(clockInService)

	// Create router
	r := router.New(router.Config{
		Handler:        healthHandler,
		ItemHandler:    itemHandler,
		ClockInHandler: clockInHandler,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server listening on %s", cfg.Server.Address())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
