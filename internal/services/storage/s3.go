package storage

import (
	"Listline/internal/config"
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Client is the part of the S3 api used by the store.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type s3Store struct {
	client  S3Client
	bucket  string
	baseUrl string
}

func NewS3Store(ctx context.Context, c config.StorageConfig) (Store, error) {
	awsConfig, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(c.S3.Region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		o.UsePathStyle = c.S3.UsePathStyle
		if c.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.S3.Endpoint)
		}
	})

	return NewS3StoreWithClient(client, c.S3.Bucket, c.PublicBaseUrl), nil
}

func NewS3StoreWithClient(client S3Client, bucket string, publicBaseUrl string) Store {
	return &s3Store{
		client:  client,
		bucket:  bucket,
		baseUrl: publicBaseUrl,
	}
}

func (s *s3Store) Put(ctx context.Context, key string, contentType string, content io.Reader, size int64) (string, error) {
	cleaned, err := CleanKey(key)
	if err != nil {
		return "", err
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(cleaned),
		Body:        content,
		ContentType: aws.String(contentType),
	}
	if size >= 0 {
		input.ContentLength = aws.Int64(size)
	}

	_, err = s.client.PutObject(ctx, input)
	if err != nil {
		return "", fmt.Errorf("putting object %s: %w", cleaned, err)
	}

	return publicUrl(s.baseUrl, cleaned), nil
}

func (s *s3Store) Delete(ctx context.Context, key string) error {
	cleaned, err := CleanKey(key)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(cleaned),
	})
	if err != nil {
		return fmt.Errorf("deleting object %s: %w", cleaned, err)
	}

	return nil
}
