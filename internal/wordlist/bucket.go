package wordlist

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// BucketConfig locates a word list object in S3-compatible storage.
type BucketConfig struct {
	Endpoint string
	Region   string
	Bucket   string
	Key      string
	User     string
	Password string
	Timeout  time.Duration
}

// A Bucket loads word lists from S3-compatible object storage, so one
// shared list can serve a whole team without distributing files.
type Bucket struct {
	timeout time.Duration
	bucket  string
	key     string
	client  *s3.Client
}

// NewBucket constructs a Bucket from cfg.
func NewBucket(cfg BucketConfig) *Bucket {
	client := s3.New(s3.Options{
		Region:                     cfg.Region,
		BaseEndpoint:               aws.String(cfg.Endpoint),
		DefaultsMode:               aws.DefaultsModeStandard,
		Credentials:                credentials.NewStaticCredentialsProvider(cfg.User, cfg.Password, "" /* session */),
		UsePathStyle:               true,
		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenSupported,
		ResponseChecksumValidation: aws.ResponseChecksumValidationWhenSupported,
		HTTPClient: &http.Client{
			Transport: &http.Transport{},
		},
	})
	return &Bucket{
		timeout: cfg.Timeout,
		bucket:  cfg.Bucket,
		key:     cfg.Key,
		client:  client,
	}
}

// Load fetches and parses the configured word list object. A missing
// bucket or object is reported as ErrNotFound.
func (b *Bucket) Load(ctx context.Context) (List, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	res, err := b.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(b.key),
	})
	if err != nil {
		var errNoKey *types.NoSuchKey
		if errors.As(err, &errNoKey) || hasSmithyCode(err, "NoSuchBucket") {
			return List{}, fmt.Errorf("%w: s3://%s/%s", ErrNotFound, b.bucket, b.key)
		}
		return List{}, fmt.Errorf("get object: %v", err)
	}
	defer res.Body.Close()

	list, err := Parse(res.Body)
	if err != nil {
		return List{}, fmt.Errorf("s3://%s/%s: %w", b.bucket, b.key, err)
	}
	return list, nil
}
