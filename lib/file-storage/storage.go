package filestorage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"github.com/old-buffalo/task-management/config"
)

// SignedURLTTL bounds how long a minted attachment link stays valid.
const SignedURLTTL = time.Hour

var ErrNotConfigured = errors.New("file storage is not configured")

type Provider interface {
	Upload(ctx context.Context, objectKey string, fileReader io.Reader, fileSize int64, contentType string) error
	SignedURL(ctx context.Context, objectKey, fileName string, expiry time.Duration) (string, error)
}

var Instance Provider

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) Upload(ctx context.Context, objectKey string, fileReader io.Reader, fileSize int64, contentType string) error {
	if i.s3client == nil {
		return ErrNotConfigured
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, objectKey, fileReader, fileSize,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "object upload failed")
	}
	return nil
}

func (i impl) SignedURL(ctx context.Context, objectKey, fileName string, expiry time.Duration) (string, error) {
	if i.s3client == nil {
		return "", ErrNotConfigured
	}
	reqParams := make(url.Values)
	if fileName != "" {
		reqParams.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	}
	signedURL, err := i.s3client.PresignedGetObject(ctx, config.Conf.S3.BucketName, objectKey, expiry, reqParams)
	if err != nil {
		return "", errors.Wrap(err, "presign failed")
	}
	return signedURL.String(), nil
}
