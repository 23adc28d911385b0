package initializers

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"

	"github.com/old-buffalo/task-management/config"
	s3client "github.com/old-buffalo/task-management/s3"
)

// InitS3 is non-fatal on failure; attachment operations then degrade to the
// storage-not-configured error instead of taking the service down.
func InitS3(ctx context.Context) {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("S3 client init failed")
		return
	}

	if _, err = minioClient.ListBuckets(ctx); err != nil {
		log.WithError(err).Error("S3 connection check failed")
		return
	}

	s3client.Client = minioClient
	if err = s3client.EnsureBucket(ctx, config.Conf.S3.BucketName); err != nil {
		log.WithError(err).Error("S3 bucket init failed")
		return
	}
	log.Info("S3 client initialized")
}
