package services

import (
	"context"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Service is the binary object store: it hands out one-time upload targets
// and resolves stored keys to short-lived read URLs.
type S3Service struct {
	Client *s3.Client
	Bucket string
}

var _ ImageResolver = (*S3Service)(nil)

const presignExpiry = 5 * time.Minute

// NewS3Service initializes the S3 client for the given region and bucket.
func NewS3Service(region, bucket string) *S3Service {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		log.Fatalf("Failed to load AWS config for S3: %v", err)
	}
	return &S3Service{Client: s3.NewFromConfig(cfg), Bucket: bucket}
}

// GenerateUploadURL returns a presigned PUT URL and the object key the
// client should attach to its message after uploading.
func (ss *S3Service) GenerateUploadURL(fileName, fileType string) (string, string, error) {
	key := "chat-images/" + time.Now().Format("20060102150405") + "-" + fileName
	params := &s3.PutObjectInput{
		Bucket:      aws.String(ss.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}
	presigner := s3.NewPresignClient(ss.Client)
	presignedURL, err := presigner.PresignPutObject(context.TODO(), params, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", "", err
	}
	return presignedURL.URL, key, nil
}

// ResolveReadURL resolves a stored object key to a presigned GET URL.
func (ss *S3Service) ResolveReadURL(key string) (string, error) {
	params := &s3.GetObjectInput{
		Bucket: aws.String(ss.Bucket),
		Key:    aws.String(key),
	}
	presigner := s3.NewPresignClient(ss.Client)
	presignedURL, err := presigner.PresignGetObject(context.TODO(), params, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", err
	}
	return presignedURL.URL, nil
}
