package s3client

import (
	"context"

	"github.com/minio/minio-go/v7"
)

var Client *minio.Client

// EnsureBucket creates the bucket when it does not exist yet. Attachments are
// private; reads go through presigned URLs only.
func EnsureBucket(ctx context.Context, bucketName string) error {
	location := "us-east-1"
	exists, err := Client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = Client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
	if err != nil {
		return err
	}
	return nil
}
