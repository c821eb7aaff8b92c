package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/kingrain94/property-docs-api/internal/config"
	"github.com/kingrain94/property-docs-api/internal/repository/opensearch"
	"github.com/kingrain94/property-docs-api/internal/service/queue"
	"github.com/kingrain94/property-docs-api/internal/worker"
	"github.com/kingrain94/property-docs-api/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	// Initialize OpenSearch
	osConfig := config.DefaultOpenSearchConfig()
	osClient, err := osConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to OpenSearch", err)
	}
	osRepo := opensearch.NewRepository(osClient, osConfig)

	appLogger.Info("OpenSearch connection established for index worker")

	// Initialize SQS
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient(context.Background())
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	workerConfig := config.DefaultWorkerConfig("INDEX")
	indexWorker := worker.NewIndexWorker(
		sqsService,
		sqsService.IndexQueueURL(),
		osRepo,
		appLogger,
		workerConfig.WorkerCount,
		workerConfig.PollInterval,
	)

	indexWorker.Start()

	// Wait for interrupt signal to gracefully shutdown the worker
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down index worker...")
	indexWorker.Stop()
	appLogger.Sync()
}
