package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/df07/go-sphere-raytracer/pkg/config"
	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// UploadTimeout bounds a single object upload
const UploadTimeout = 30 * time.Second

// ErrDisabled is returned when publishing without a configured bucket
var ErrDisabled = errors.New("s3 publishing is not configured")

// S3Publisher uploads rendered images to an S3 compatible bucket
type S3Publisher struct {
	client s3iface.S3API
	bucket string
	prefix string
	logger core.Logger
}

// NewS3Publisher creates a publisher from configuration. A config without a
// bucket yields a disabled publisher that never touches the network.
func NewS3Publisher(cfg config.S3Config, logger core.Logger) (*S3Publisher, error) {
	if !cfg.Enabled() {
		return &S3Publisher{logger: logger}, nil
	}

	awsConfig := &aws.Config{
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}
	return NewS3PublisherWithClient(s3.New(sess), cfg.Bucket, cfg.Prefix, logger), nil
}

// NewS3PublisherWithClient wraps an existing S3 client
func NewS3PublisherWithClient(client s3iface.S3API, bucket, prefix string, logger core.Logger) *S3Publisher {
	return &S3Publisher{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}
}

// Enabled reports whether Publish will upload anything
func (p *S3Publisher) Enabled() bool {
	return p.client != nil && p.bucket != ""
}

// Key returns the object key used for name
func (p *S3Publisher) Key(name string) string {
	return path.Join(p.prefix, name)
}

// Publish uploads data under the prefixed key and returns the full key
func (p *S3Publisher) Publish(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	if !p.Enabled() {
		return "", ErrDisabled
	}

	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	key := p.Key(name)
	size := int64(len(data))
	_, err := p.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	p.logger.Printf("Uploaded s3://%s/%s (%d bytes)\n", p.bucket, key, size)
	return key, nil
}
