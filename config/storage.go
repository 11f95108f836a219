package config

import (
	"context"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds the S3 client and bucket for generated recipe images.
// It is optional; when S3_BUCKET_NAME is unset, images stay on local disk.
type S3Config struct {
	Client     *s3.Client
	BucketName string
	PublicURL  string // public prefix, e.g. https://bucket.s3.region.amazonaws.com
}

// NewS3Config initializes the S3 client using environment variables. Returns
// (nil, nil) when no bucket is configured.
func NewS3Config(ctx context.Context) (*S3Config, error) {
	bucket := os.Getenv("S3_BUCKET_NAME")
	if bucket == "" {
		return nil, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(os.Getenv("AWS_REGION")),
	)
	if err != nil {
		return nil, err
	}

	publicURL := os.Getenv("S3_PUBLIC_URL")
	if publicURL == "" {
		publicURL = "https://" + bucket + ".s3." + os.Getenv("AWS_REGION") + ".amazonaws.com"
	}

	return &S3Config{
		Client:     s3.NewFromConfig(awsCfg),
		BucketName: bucket,
		PublicURL:  publicURL,
	}, nil
}
