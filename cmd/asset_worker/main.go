package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/atelierhq/design-studio-api/internal/config"
	"github.com/atelierhq/design-studio-api/internal/service/queue"
	"github.com/atelierhq/design-studio-api/internal/worker"
	"github.com/atelierhq/design-studio-api/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	// Initialize S3
	s3Config := config.DefaultS3Config()
	s3Client, err := s3Config.GetClient(context.Background())
	if err != nil {
		appLogger.Fatal("Failed to connect to S3", err)
	}

	// Initialize SQS
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	// Create asset worker
	assetWorker := worker.NewAssetWorker(
		sqsService,
		s3Client,
		s3Config,
		appLogger,
		1,             // worker count
		5*time.Second, // poll interval
	)

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start worker
	assetWorker.Start()
	appLogger.Info("Asset worker started")

	// Wait for shutdown signal
	<-sigChan
	appLogger.Info("Shutting down asset worker...")

	// Stop worker
	assetWorker.Stop()
	appLogger.Info("Asset worker stopped")
	appLogger.Sync()
}
