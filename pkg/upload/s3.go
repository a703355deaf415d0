package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
)

// S3Store keeps upload batches in an S3 bucket under a key prefix. Record
// datapaths are s3://bucket/key URIs.
//
// Example:
//
//	cfg, _ := config.LoadDefaultConfig(context.Background())
//	store := upload.NewS3Store(s3.NewFromConfig(cfg), "my-bucket", "uploads/", 50<<20)
type S3Store struct {
	client  *s3.Client
	bucket  string
	prefix  string
	maxSize int64

	mu      sync.Mutex
	batches map[string]*s3Batch
}

type s3Batch struct {
	keys      []string
	records   []Record
	createdAt time.Time
}

// NewS3Store creates an S3-backed store. maxSize limits each file's byte
// count (0 = no limit).
func NewS3Store(client *s3.Client, bucket, prefix string, maxSize int64) *S3Store {
	return &S3Store{
		client:  client,
		bucket:  bucket,
		prefix:  prefix,
		maxSize: maxSize,
		batches: make(map[string]*s3Batch),
	}
}

// Save implements Store. Parts are buffered in memory before the put; for
// very large uploads prefer the disk store in front of a lifecycle rule.
func (s *S3Store) Save(ctx context.Context, controlID string, parts []Part) ([]Record, error) {
	if !validControlID(controlID) {
		return nil, fmt.Errorf("%w: %q", ErrBadControlID, controlID)
	}

	batch := &s3Batch{createdAt: time.Now()}
	for i, part := range parts {
		key := fmt.Sprintf("%s%s/%s/%d-%s", s.prefix, controlID, randomSuffix(), i, part.Filename)

		var buf bytes.Buffer
		var reader io.Reader = part.Reader
		if s.maxSize > 0 {
			reader = io.LimitReader(part.Reader, s.maxSize+1)
		}
		n, err := io.Copy(&buf, reader)
		if err != nil {
			s.deleteKeys(ctx, batch.keys)
			return nil, fmt.Errorf("upload: buffer part: %w", err)
		}
		if s.maxSize > 0 && n > s.maxSize {
			s.deleteKeys(ctx, batch.keys)
			return nil, ErrTooLarge
		}

		contentType := detectType(part.ContentType, func() (*mimetype.MIME, error) {
			return mimetype.Detect(buf.Bytes()), nil
		})

		_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(s.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(buf.Bytes()),
			ContentType: aws.String(contentType),
			Metadata: map[string]string{
				"original-filename": part.Filename,
				"upload-time":       time.Now().UTC().Format(time.RFC3339),
			},
		})
		if err != nil {
			s.deleteKeys(ctx, batch.keys)
			return nil, fmt.Errorf("upload: s3 put: %w", err)
		}

		batch.keys = append(batch.keys, key)
		batch.records = append(batch.records, Record{
			Name:     part.Filename,
			Size:     n,
			Type:     contentType,
			Datapath: fmt.Sprintf("s3://%s/%s", s.bucket, key),
		})
	}

	s.mu.Lock()
	prev := s.batches[controlID]
	s.batches[controlID] = batch
	s.mu.Unlock()

	if prev != nil {
		s.deleteKeys(ctx, prev.keys)
	}

	return batch.records, nil
}

// Records implements Store.
func (s *S3Store) Records(controlID string) ([]Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	batch, ok := s.batches[controlID]
	if !ok {
		return nil, false
	}
	out := make([]Record, len(batch.records))
	copy(out, batch.records)
	return out, true
}

// Discard implements Store.
func (s *S3Store) Discard(controlID string) error {
	s.mu.Lock()
	batch, ok := s.batches[controlID]
	delete(s.batches, controlID)
	s.mu.Unlock()

	if !ok {
		return ErrNotFound
	}
	s.deleteKeys(context.Background(), batch.keys)
	return nil
}

// Cleanup implements Store, deleting objects under the prefix that are
// older than maxAge.
func (s *S3Store) Cleanup(maxAge time.Duration) error {
	cutoff := time.Now().Add(-maxAge)
	ctx := context.Background()

	s.mu.Lock()
	for id, batch := range s.batches {
		if batch.createdAt.Before(cutoff) {
			delete(s.batches, id)
		}
	}
	s.mu.Unlock()

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	})

	var toDelete []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return err
		}
		for _, obj := range page.Contents {
			if obj.LastModified != nil && obj.LastModified.Before(cutoff) && obj.Key != nil {
				toDelete = append(toDelete, *obj.Key)
			}
		}
	}

	s.deleteKeys(ctx, toDelete)
	return nil
}

func (s *S3Store) deleteKeys(ctx context.Context, keys []string) {
	for _, key := range keys {
		s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		})
	}
}
