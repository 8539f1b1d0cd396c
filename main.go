package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"katalog/internal/config"
	"katalog/internal/repositories"
	"katalog/internal/services"
	"katalog/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	// --- Connect MongoDB ---
	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := mongoClient.Ping(connectCtx, nil); err != nil {
		log.Fatalf("Failed to reach MongoDB: %v", err)
	}
	repo := repositories.NewMongoProductRepository(mongoClient.Database(cfg.MongoDB))

	// --- Connect RabbitMQ (optional) ---
	var events services.EventPublisher
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		events = mqClient
	} else {
		log.Println("RABBITMQ_URL not set, product events disabled")
	}

	app := NewApp(cfg, repo, events)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on %s", cfg.AppPort)
		if err := app.Start(); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}
	if mqClient != nil {
		if err := mqClient.Close(); err != nil {
			log.Printf("Error closing RabbitMQ client: %v", err)
		}
	}

	disconnectCtx, cancelDisconnect := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelDisconnect()
	if err := mongoClient.Disconnect(disconnectCtx); err != nil {
		log.Printf("Error disconnecting MongoDB client: %v", err)
	}

	log.Println("Server gracefully stopped")
}
