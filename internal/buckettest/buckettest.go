// Package buckettest provides utilities for testing against word lists
// kept in object storage.
package buckettest

import (
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hexpass/hexpass/internal/wordlist"
	"github.com/testcontainers/testcontainers-go/modules/minio"
	"go.akshayshah.org/attest"
)

// NewBucket starts a MinIO container, uploads words as the word list
// object and returns a BucketConfig locating it. The container and its
// storage are cleaned up when the test completes.
func NewBucket(tb testing.TB, words []string) wordlist.BucketConfig {
	tb.Helper()
	attest.True(tb, len(words) > 0, attest.Sprintf("word list must not be empty"))

	const user, password = "admin", "password"
	mc, err := minio.Run(
		tb.Context(),
		"minio/minio:RELEASE.2025-07-23T15-54-02Z",
		minio.WithUsername(user),
		minio.WithPassword(password),
	)
	attest.Ok(tb, err, attest.Sprint("start MinIO container"))
	addr, err := mc.ConnectionString(tb.Context())
	attest.Ok(tb, err, attest.Sprint("get MinIO conn str"))

	cfg := wordlist.BucketConfig{
		Endpoint: fmt.Sprintf("http://%s", addr),
		Region:   "us-east-1",
		Bucket:   "hexpass",
		Key:      "words.txt",
		User:     user,
		Password: password,
		Timeout:  time.Second,
	}

	client := s3.New(s3.Options{
		Region:       cfg.Region,
		BaseEndpoint: aws.String(cfg.Endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(user, password, "" /* session */),
		UsePathStyle: true,
	})
	_, err = client.CreateBucket(tb.Context(), &s3.CreateBucketInput{
		Bucket: aws.String(cfg.Bucket),
	})
	attest.Ok(tb, err, attest.Sprint("create bucket"))
	_, err = client.PutObject(tb.Context(), &s3.PutObjectInput{
		Bucket: aws.String(cfg.Bucket),
		Key:    aws.String(cfg.Key),
		Body:   strings.NewReader(strings.Join(words, "\n") + "\n"),
	})
	attest.Ok(tb, err, attest.Sprint("put word list object"))

	return cfg
}

// NewLogger creates a structured logger that writes to the supplied
// testing.TB.
func NewLogger(tb testing.TB) *slog.Logger {
	handler := slog.NewTextHandler(tb.Output(), &slog.HandlerOptions{
		AddSource: false,
		Level:     slog.LevelDebug,
	})
	return slog.New(handler)
}
