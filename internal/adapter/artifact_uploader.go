package adapter

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// ObjectDestination addresses one object in an S3 compatible store.
type ObjectDestination struct {
	Region   string
	Endpoint string // empty for AWS itself
	Bucket   string
	Key      string
}

// URI returns the s3:// form of the destination.
func (d ObjectDestination) URI() string {
	return "s3://" + d.Bucket + "/" + d.Key
}

// ArtifactUploader pushes report artifacts to object storage.
type ArtifactUploader interface {
	// Upload stores body at dest and returns the object URI.
	Upload(ctx context.Context, dest ObjectDestination, body io.Reader, metadata map[string]string) (string, error)
}

// S3ArtifactUploader uploads artifacts to Amazon S3.
type S3ArtifactUploader struct{}

// NewS3ArtifactUploader creates an S3ArtifactUploader.
func NewS3ArtifactUploader() *S3ArtifactUploader {
	return &S3ArtifactUploader{}
}

func (u *S3ArtifactUploader) clients(dest ObjectDestination) (*s3.S3, *s3manager.Uploader, error) {
	config := &aws.Config{Region: aws.String(dest.Region)}
	if dest.Endpoint != "" {
		config.Endpoint = aws.String(dest.Endpoint)
		config.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(config)
	if err != nil {
		return nil, nil, fmt.Errorf("create aws session: %w", err)
	}

	return s3.New(sess), s3manager.NewUploader(sess), nil
}

// Upload checks the bucket exists and uploads body.
func (u *S3ArtifactUploader) Upload(ctx context.Context, dest ObjectDestination, body io.Reader, metadata map[string]string) (string, error) {
	svc, uploader, err := u.clients(dest)
	if err != nil {
		return "", err
	}

	if _, err := svc.HeadBucketWithContext(ctx, &s3.HeadBucketInput{Bucket: aws.String(dest.Bucket)}); err != nil {
		return "", fmt.Errorf("failed to check if bucket %s exists: %w", dest.Bucket, err)
	}

	input := &s3manager.UploadInput{
		Bucket: aws.String(dest.Bucket),
		Key:    aws.String(dest.Key),
		Body:   body,
	}

	if len(metadata) > 0 {
		input.Metadata = aws.StringMap(metadata)
	}

	if _, err := uploader.UploadWithContext(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload %s to bucket %s: %w", dest.Key, dest.Bucket, err)
	}

	return dest.URI(), nil
}
