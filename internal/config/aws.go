package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// AWSConfig is shared by the SQS and S3 clients. Endpoint is only set when
// talking to LocalStack or another emulator.
type AWSConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

func defaultAWSConfig(endpointKey, endpointDefault string) AWSConfig {
	return AWSConfig{
		Region:          getEnv("AWS_REGION", "us-east-1"),
		Endpoint:        getEnv(endpointKey, endpointDefault),
		AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", "dummy"),
		SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", "dummy"),
	}
}

func (c AWSConfig) load(ctx context.Context) (aws.Config, error) {
	options := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(c.Region)}
	if c.AccessKeyID != "" && c.SecretAccessKey != "" {
		options = append(options, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, options...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return cfg, nil
}

// baseEndpoint returns the endpoint override for a service client, or nil to use AWS.
func (c AWSConfig) baseEndpoint() *string {
	if c.Endpoint == "" {
		return nil
	}
	return aws.String(c.Endpoint)
}
