package config

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// SQSConfig names the three document queues: indexing, archiving and cleanup.
type SQSConfig struct {
	AWSConfig
	IndexQueueURL   string
	ArchiveQueueURL string
	CleanupQueueURL string
}

func DefaultSQSConfig() *SQSConfig {
	const local = "http://localhost:4566/000000000000/"
	return &SQSConfig{
		AWSConfig:       defaultAWSConfig("AWS_SQS_ENDPOINT", "http://localhost:4566"),
		IndexQueueURL:   getEnv("AWS_SQS_INDEX_QUEUE_URL", local+"document-index-queue"),
		ArchiveQueueURL: getEnv("AWS_SQS_ARCHIVE_QUEUE_URL", local+"document-archive-queue"),
		CleanupQueueURL: getEnv("AWS_SQS_CLEANUP_QUEUE_URL", local+"document-cleanup-queue"),
	}
}

func (c *SQSConfig) GetClient(ctx context.Context) (*sqs.Client, error) {
	cfg, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	return sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		o.BaseEndpoint = c.baseEndpoint()
	}), nil
}
