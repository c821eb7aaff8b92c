package config

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config points at the bucket old generated documents are archived to.
type S3Config struct {
	AWSConfig
	BucketName string
}

func DefaultS3Config() *S3Config {
	return &S3Config{
		AWSConfig:  defaultAWSConfig("AWS_ENDPOINT_URL", ""),
		BucketName: getEnv("S3_ARCHIVE_BUCKET", "property-document-archives"),
	}
}

func (c *S3Config) GetClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = c.baseEndpoint()
		// Emulators serve buckets by path, not by virtual host.
		o.UsePathStyle = c.Endpoint != ""
	}), nil
}
