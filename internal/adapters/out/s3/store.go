// Package s3 implements the object store on Amazon S3 and S3-compatible services.
package s3

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/bnema/zerowrap"

	"github.com/bnema/dbs3/internal/domain"
)

// Config describes how to reach the bucket service.
type Config struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	ForcePathStyle  bool
	PartSize        int64
	// MaxAttempts is the SDK attempt count per request. 1 disables SDK retries.
	MaxAttempts int
}

// ErrObjectNotFound is wrapped when a key does not exist.
var ErrObjectNotFound = errors.New("object not found")

// Store implements out.ObjectStore with aws-sdk-go-v2.
type Store struct {
	client     *awss3.Client
	uploader   *manager.Uploader
	downloader *manager.Downloader
	log        zerowrap.Logger
}

// NewStore builds an S3 client from cfg. Empty credentials fall back to the
// default AWS chain (environment, shared config, instance role).
func NewStore(ctx context.Context, cfg Config, log zerowrap.Logger) (*Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" || cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	if cfg.MaxAttempts > 0 {
		opts = append(opts, awsconfig.WithRetryMaxAttempts(cfg.MaxAttempts))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.ForcePathStyle
	})

	partSize := cfg.PartSize
	if partSize < manager.MinUploadPartSize {
		partSize = manager.DefaultUploadPartSize
	}

	return &Store{
		client: client,
		uploader: manager.NewUploader(client, func(u *manager.Uploader) {
			u.PartSize = partSize
		}),
		downloader: manager.NewDownloader(client, func(d *manager.Downloader) {
			d.PartSize = partSize
		}),
		log: log,
	}, nil
}

// List returns every object under keyPrefix, following continuation tokens.
func (s *Store) List(ctx context.Context, bucket, keyPrefix string) ([]domain.BackupObject, error) {
	paginator := awss3.NewListObjectsV2Paginator(s.client, &awss3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(keyPrefix),
	})

	objects := make([]domain.BackupObject, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, transferErr("list", bucket, "", err)
		}
		for _, obj := range page.Contents {
			objects = append(objects, domain.BackupObject{
				Key:          aws.ToString(obj.Key),
				LastModified: aws.ToTime(obj.LastModified).UTC(),
				SizeBytes:    aws.ToInt64(obj.Size),
			})
		}
	}

	s.log.Debug().
		Str(zerowrap.FieldAdapter, "s3").
		Str("bucket", bucket).
		Str("prefix", keyPrefix).
		Int(zerowrap.FieldCount, len(objects)).
		Msg("listed objects")
	return objects, nil
}

// Upload streams localPath to bucket/key, switching to multipart above the part size.
func (s *Store) Upload(ctx context.Context, localPath, bucket, key string) error {
	f, err := os.Open(localPath)
	if err != nil {
		return transferErr("upload", bucket, key, fmt.Errorf("open local file: %w", err))
	}
	defer f.Close()

	if _, err := s.uploader.Upload(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String("application/sql"),
	}); err != nil {
		return transferErr("upload", bucket, key, err)
	}
	return nil
}

// Download writes bucket/key to localPath. The file only appears once the
// transfer is complete.
func (s *Store) Download(ctx context.Context, bucket, key, localPath string) error {
	tmp, err := os.CreateTemp(filepath.Dir(localPath), filepath.Base(localPath)+".*.part")
	if err != nil {
		return transferErr("download", bucket, key, fmt.Errorf("create temp file: %w", err))
	}
	tmpPath := tmp.Name()

	_, err = s.downloader.Download(ctx, tmp, &awss3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return transferErr("download", bucket, key, notFound(err))
	}

	if err := os.Rename(tmpPath, localPath); err != nil {
		_ = os.Remove(tmpPath)
		return transferErr("download", bucket, key, err)
	}
	return nil
}

// Delete removes bucket/key. Deleting a missing key succeeds, as in S3.
func (s *Store) Delete(ctx context.Context, bucket, key string) error {
	if _, err := s.client.DeleteObject(ctx, &awss3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}); err != nil {
		return transferErr("delete", bucket, key, err)
	}
	return nil
}

// HeadMetadata reads the modification time and size of bucket/key.
func (s *Store) HeadMetadata(ctx context.Context, bucket, key string) (domain.ObjectMetadata, error) {
	out, err := s.client.HeadObject(ctx, &awss3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return domain.ObjectMetadata{}, transferErr("head", bucket, key, notFound(err))
	}
	return domain.ObjectMetadata{
		LastModified: aws.ToTime(out.LastModified).UTC(),
		SizeBytes:    aws.ToInt64(out.ContentLength),
	}, nil
}

func notFound(err error) error {
	var noSuchKey *types.NoSuchKey
	var missing *types.NotFound
	if errors.As(err, &noSuchKey) || errors.As(err, &missing) {
		return fmt.Errorf("%w: %w", ErrObjectNotFound, err)
	}
	return err
}

func transferErr(op, bucket, key string, err error) error {
	return &domain.TransferError{Op: op, Bucket: bucket, Key: key, Err: err}
}
