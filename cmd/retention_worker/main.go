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
	"github.com/kingrain94/property-docs-api/internal/repository/postgres"
	"github.com/kingrain94/property-docs-api/internal/service/queue"
	"github.com/kingrain94/property-docs-api/internal/worker"
	"github.com/kingrain94/property-docs-api/pkg/logger"
)

// Runs the archive and cleanup workers. Archive writes old generated
// documents to S3 and queues their cleanup; cleanup deletes them from
// Postgres and OpenSearch.
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to PostgreSQL", err)
	}
	defer dbConnections.Close()

	pgRepo := postgres.NewPostgresRepository(dbConnections)

	osConfig := config.DefaultOpenSearchConfig()
	osClient, err := osConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to OpenSearch", err)
	}
	osRepo := opensearch.NewRepository(osClient, osConfig)

	s3Config := config.DefaultS3Config()
	s3Client, err := s3Config.GetClient(context.Background())
	if err != nil {
		appLogger.Fatal("Failed to create S3 client", err)
	}

	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient(context.Background())
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	archiveConfig := config.DefaultWorkerConfig("ARCHIVE")
	archiveWorker := worker.NewArchiveWorker(
		sqsService,
		sqsService.ArchiveQueueURL(),
		sqsService,
		pgRepo.Document(),
		s3Client,
		s3Config.BucketName,
		appLogger,
		archiveConfig.WorkerCount,
		archiveConfig.PollInterval,
	)

	cleanupConfig := config.DefaultWorkerConfig("CLEANUP")
	cleanupWorker := worker.NewCleanupWorker(
		sqsService,
		sqsService.CleanupQueueURL(),
		pgRepo.Document(),
		osRepo,
		appLogger,
		cleanupConfig.WorkerCount,
		cleanupConfig.PollInterval,
	)

	archiveWorker.Start()
	cleanupWorker.Start()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down retention workers...")
	archiveWorker.Stop()
	cleanupWorker.Stop()
	appLogger.Sync()
}
