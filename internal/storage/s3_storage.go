package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	aws_config "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"goahomes/api/internal/config"
)

// IS3Storage defines the interface for image upload storage.
type IS3Storage interface {
	GeneratePresignedPutURL(ctx context.Context, filename, contentType string) (uploadURL string, publicURL string, err error)
}

type s3Storage struct {
	cfg           *config.Config
	presignClient *s3.PresignClient
}

// NewS3Storage creates a new S3 storage service.
func NewS3Storage(cfg *config.Config) (IS3Storage, error) {
	awsCfg, err := aws_config.LoadDefaultConfig(context.TODO(),
		aws_config.WithRegion(cfg.AwsRegion),
		aws_config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AwsAccessKeyID,
			cfg.AwsSecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &s3Storage{
		cfg:           cfg,
		presignClient: s3.NewPresignClient(s3.NewFromConfig(awsCfg)),
	}, nil
}

// GeneratePresignedPutURL creates a pre-signed URL for uploading a listing
// image, plus the public URL to store on the listing once uploaded.
func (s *s3Storage) GeneratePresignedPutURL(ctx context.Context, filename, contentType string) (string, string, error) {
	// path.Base strips any directory components a client might sneak in.
	objectKey := fmt.Sprintf("listings/%s_%s", uuid.NewString(), path.Base(filename))

	presignedReq, err := s.presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.AwsS3Bucket),
		Key:         aws.String(objectKey),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", "", fmt.Errorf("failed to generate presigned PUT URL for key %s: %w", objectKey, err)
	}

	publicURL := strings.TrimSuffix(s.cfg.ImageBaseS3URL, "/") + "/" + objectKey
	return presignedReq.URL, publicURL, nil
}
