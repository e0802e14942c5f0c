package images

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	appconfig "github.com/sjcet-apps/billboard-core/internal/config"
)

// Uploader pushes image assets to the configured S3-compatible bucket.
type Uploader struct {
	cfg    appconfig.S3Config
	client *s3.Client
}

func NewUploader(cfg appconfig.S3Config) *Uploader {
	opts := s3.Options{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}
	return &Uploader{cfg: cfg, client: s3.New(opts)}
}

// Configured reports whether uploads can proceed.
func (u *Uploader) Configured() bool { return u.cfg.Configured() }

// Put stores an object and returns its public URL.
func (u *Uploader) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put %s: %w", key, err)
	}
	return u.cfg.PublicURL(key), nil
}

// Delete removes an object. Missing keys are not an error.
func (u *Uploader) Delete(ctx context.Context, key string) error {
	_, err := u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s: %w", key, err)
	}
	return nil
}

// CarouselKey builds the object key for a shared-collection upload.
func CarouselKey(uploaderUID string, now time.Time) string {
	return fmt.Sprintf("imagetemp/%s-%d.webp", uploaderUID, now.UnixMilli())
}

// BackgroundKey builds the object key for a display background upload.
func BackgroundKey(now time.Time) string {
	return fmt.Sprintf("global/background-%d.webp", now.UnixMilli())
}
