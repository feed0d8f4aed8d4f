package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"movie-catalog/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// MinIOService hands out presigned upload URLs for movie posters and cleans them up.
type MinIOService struct {
	client    *minio.Client
	bucket    string
	region    string
	publicURL string
	expiry    time.Duration
	logger    *logrus.Logger
}

func NewMinIOService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	service := &MinIOService{
		client:    minioClient,
		bucket:    cfg.BucketName,
		region:    cfg.Region,
		publicURL: cfg.PublicURL,
		expiry:    cfg.PresignExpiry,
		logger:    logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := service.ensureBucket(ctx); err != nil {
		logger.WithError(err).Warn("Failed to configure bucket, but continuing...")
	}

	return service, nil
}

func (s *MinIOService) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, s.bucket)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	s.logger.WithField("bucket", s.bucket).Info("Bucket policy set to public read")
	return nil
}

// GeneratePresignedURL returns a PUT URL for the client to upload to and the public URL
// the object will be served from. The content type is part of the signature.
func (s *MinIOService) GeneratePresignedURL(ctx context.Context, filename, contentType string) (string, string, error) {
	objectName := uniqueObjectName(filename)

	headers := http.Header{}
	headers.Set("Content-Type", contentType)

	presignedURL, err := s.client.PresignHeader(ctx, http.MethodPut, s.bucket, objectName, s.expiry, nil, headers)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return "", "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	publicURL := publicObjectURL(s.publicURL, s.bucket, objectName)

	s.logger.WithFields(logrus.Fields{
		"filename":   filename,
		"objectPath": objectName,
		"expiry":     s.expiry,
	}).Info("Generated presigned URL")

	return presignedURL.String(), publicURL, nil
}

// ObjectNameFromURL extracts the object name from a poster URL served from our bucket.
// URLs pointing anywhere else are reported as not ours.
func (s *MinIOService) ObjectNameFromURL(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "", false
	}

	base, err := url.Parse(s.publicURL)
	if err != nil || !strings.EqualFold(base.Host, u.Host) {
		return "", false
	}

	prefix := "/" + s.bucket + "/"
	if !strings.HasPrefix(u.Path, prefix) {
		return "", false
	}

	name := strings.TrimPrefix(u.Path, prefix)
	if name == "" {
		return "", false
	}
	return name, true
}

func (s *MinIOService) DeleteFile(ctx context.Context, objectPath string) error {
	objectPath = strings.TrimPrefix(objectPath, s.bucket+"/")

	err := s.client.RemoveObject(ctx, s.bucket, objectPath, minio.RemoveObjectOptions{})
	if err != nil {
		s.logger.WithError(err).WithField("objectPath", objectPath).Error("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	s.logger.WithField("objectPath", objectPath).Info("File deleted successfully from MinIO")
	return nil
}

func uniqueObjectName(filename string) string {
	base := path.Base(filepath.ToSlash(filename))
	ext := filepath.Ext(base)
	nameWithoutExt := strings.TrimSuffix(base, ext)
	nameWithoutExt = strings.ReplaceAll(nameWithoutExt, " ", "_")
	return fmt.Sprintf("%s_%s%s", nameWithoutExt, uuid.New().String()[:8], ext)
}

func publicObjectURL(publicURL, bucket, objectName string) string {
	protocol := "http://"
	if strings.HasPrefix(publicURL, "https://") {
		protocol = "https://"
	}

	host := strings.TrimPrefix(publicURL, "https://")
	host = strings.TrimPrefix(host, "http://")
	if idx := strings.Index(host, "/"); idx != -1 {
		host = host[:idx]
	}

	return fmt.Sprintf("%s%s/%s/%s", protocol, host, bucket, objectName)
}
