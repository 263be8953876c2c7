package wordlist

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/testcontainers/testcontainers-go/modules/minio"
	"go.akshayshah.org/attest"
)

func TestBucketLoad(t *testing.T) {
	b := newTestBucket(t)

	// Nothing exists yet, not even the bucket.
	_, err := b.Load(t.Context())
	attest.ErrorIs(t, err, ErrNotFound)

	// The bucket without the object is still a missing word list.
	_, err = b.client.CreateBucket(t.Context(), &s3.CreateBucketInput{
		Bucket: aws.String(b.bucket),
	})
	attest.Ok(t, err, attest.Sprint("create bucket"))
	_, err = b.Load(t.Context())
	attest.ErrorIs(t, err, ErrNotFound)

	putWords(t, b, "alpha\n  bravo\n\ncharlie\n")
	list, err := b.Load(t.Context())
	attest.Ok(t, err)
	attest.Equal(t, list.Words(), []string{"alpha", "bravo", "charlie"})

	// An object with nothing but blank lines is an empty word list.
	putWords(t, b, "\n\n")
	_, err = b.Load(t.Context())
	attest.ErrorIs(t, err, ErrNoWords)
}

func newTestBucket(tb testing.TB) *Bucket {
	tb.Helper()
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

	return NewBucket(BucketConfig{
		Endpoint: fmt.Sprintf("http://%s", addr),
		Region:   "us-east-1",
		Bucket:   "hexpass",
		Key:      "words.txt",
		User:     user,
		Password: password,
		Timeout:  time.Second,
	})
}

// putWords uploads a word list body through the Bucket's own client.
// Uploading isn't part of the Bucket API, so the test reaches into the
// unexported client rather than building a second one.
func putWords(tb testing.TB, b *Bucket, body string) {
	tb.Helper()
	_, err := b.client.PutObject(tb.Context(), &s3.PutObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(b.key),
		Body:   strings.NewReader(body),
	})
	attest.Ok(tb, err, attest.Sprint("put word list object"))
}
