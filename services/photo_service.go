package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ErrPhotosUnavailable is returned when no S3 bucket is configured.
var ErrPhotosUnavailable = errors.New("photos_unavailable")

// PhotoService hands out presigned S3 URLs for profile photo uploads
// and reads. The bucket key returned from GenerateUploadURL is what
// clients store in the user's photos list.
type PhotoService struct {
	bucket    string
	presigner *s3.PresignClient
}

// NewPhotoService builds a PhotoService for the given bucket. An
// empty bucket name yields a disabled service so the rest of the
// backend runs without AWS configuration.
func NewPhotoService(ctx context.Context, bucket string) (*PhotoService, error) {
	if bucket == "" {
		return &PhotoService{}, nil
	}
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &PhotoService{
		bucket:    bucket,
		presigner: s3.NewPresignClient(s3.NewFromConfig(cfg)),
	}, nil
}

// GenerateUploadURL returns a presigned PUT URL and the object key it
// uploads to.
func (s *PhotoService) GenerateUploadURL(ctx context.Context, fileName, fileType string) (string, string, error) {
	if s.presigner == nil {
		return "", "", ErrPhotosUnavailable
	}
	key := "profile-pics/" + time.Now().Format("20060102150405") + "-" + fileName
	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", "", err
	}
	return req.URL, key, nil
}

// GenerateReadURL returns a presigned GET URL for a stored photo key.
func (s *PhotoService) GenerateReadURL(ctx context.Context, key string) (string, error) {
	if s.presigner == nil {
		return "", ErrPhotosUnavailable
	}
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(5*time.Minute))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
