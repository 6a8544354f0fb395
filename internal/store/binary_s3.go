package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/yousign-node/internal/config"
	"github.com/MKhiriev/yousign-node/internal/logger"
	"github.com/MKhiriev/yousign-node/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// s3ObjectGetter is the part of *s3.Client used by the storage.
type s3ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// s3BinaryStorage resolves attachment IDs as object keys in one bucket.
type s3BinaryStorage struct {
	client s3ObjectGetter
	bucket string
	logger *logger.Logger
}

// NewS3BinaryStorage builds an S3 client from cfg. Static credentials are
// used when both key parts are set; otherwise the default AWS chain applies.
// A custom endpoint switches to path-style addressing (LocalStack, MinIO).
func NewS3BinaryStorage(ctx context.Context, cfg config.S3, log *logger.Logger) (BinaryDataStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var s3Opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	log.Info().Str("bucket", cfg.Bucket).Str("region", cfg.Region).Msg("S3 binary storage configured")
	return newS3BinaryStorage(s3.NewFromConfig(awsCfg, s3Opts...), cfg.Bucket, log), nil
}

func newS3BinaryStorage(client s3ObjectGetter, bucket string, log *logger.Logger) *s3BinaryStorage {
	return &s3BinaryStorage{client: client, bucket: bucket, logger: log}
}

// Load implements [BinaryDataStorage].
func (s *s3BinaryStorage) Load(ctx context.Context, data models.BinaryData) ([]byte, error) {
	if data.Data != nil {
		return data.Data, nil
	}
	if data.ID == "" {
		return nil, fmt.Errorf("%w: empty key", ErrBinaryDataNotFound)
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(data.ID),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, fmt.Errorf("%w: %q", ErrBinaryDataNotFound, data.ID)
		}
		logger.FromContext(ctx).Err(err).Str("key", data.ID).Msg("error getting object")
		return nil, fmt.Errorf("failed to get object %q: %w", data.ID, err)
	}
	defer out.Body.Close()

	content, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %q: %w", data.ID, err)
	}

	return content, nil
}
