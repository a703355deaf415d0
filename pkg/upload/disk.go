package upload

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// DiskStore keeps upload batches on the local filesystem, one directory
// per batch. Record datapaths are absolute paths into the batch directory.
type DiskStore struct {
	dir     string
	maxSize int64

	mu      sync.Mutex
	batches map[string]*diskBatch
}

type diskBatch struct {
	dir       string
	records   []Record
	createdAt time.Time
}

// NewDiskStore creates a DiskStore rooted at dir. maxSize limits each
// file's byte count (0 = no limit).
func NewDiskStore(dir string, maxSize int64) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("upload: create dir: %w", err)
	}
	return &DiskStore{
		dir:     dir,
		maxSize: maxSize,
		batches: make(map[string]*diskBatch),
	}, nil
}

// Save implements Store. The previous batch for the control, if any, is
// removed after the new one is fully written.
func (s *DiskStore) Save(ctx context.Context, controlID string, parts []Part) ([]Record, error) {
	if !validControlID(controlID) {
		return nil, fmt.Errorf("%w: %q", ErrBadControlID, controlID)
	}

	batchDir := filepath.Join(s.dir, controlID+"-"+randomSuffix())
	if err := os.MkdirAll(batchDir, 0o755); err != nil {
		return nil, fmt.Errorf("upload: create batch dir: %w", err)
	}

	records := make([]Record, 0, len(parts))
	for i, part := range parts {
		if err := ctx.Err(); err != nil {
			os.RemoveAll(batchDir)
			return nil, err
		}

		rec, err := s.writePart(batchDir, i, part)
		if err != nil {
			os.RemoveAll(batchDir)
			return nil, err
		}
		records = append(records, rec)
	}

	s.mu.Lock()
	prev := s.batches[controlID]
	s.batches[controlID] = &diskBatch{dir: batchDir, records: records, createdAt: time.Now()}
	s.mu.Unlock()

	if prev != nil {
		os.RemoveAll(prev.dir)
	}

	return records, nil
}

// writePart stores one file and builds its record.
func (s *DiskStore) writePart(batchDir string, index int, part Part) (Record, error) {
	name := filepath.Base(part.Filename)
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = fmt.Sprintf("file%d", index)
	}
	path := filepath.Join(batchDir, fmt.Sprintf("%d-%s", index, name))

	f, err := os.Create(path)
	if err != nil {
		return Record{}, fmt.Errorf("upload: create file: %w", err)
	}

	var reader io.Reader = part.Reader
	if s.maxSize > 0 {
		reader = io.LimitReader(part.Reader, s.maxSize+1) // +1 to detect overflow
	}

	written, err := io.Copy(f, reader)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return Record{}, fmt.Errorf("upload: write file: %w", err)
	}
	if s.maxSize > 0 && written > s.maxSize {
		os.Remove(path)
		return Record{}, ErrTooLarge
	}

	return Record{
		Name: part.Filename,
		Size: written,
		Type: detectType(part.ContentType, func() (*mimetype.MIME, error) {
			return mimetype.DetectFile(path)
		}),
		Datapath: path,
	}, nil
}

// Records implements Store.
func (s *DiskStore) Records(controlID string) ([]Record, bool) {
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
func (s *DiskStore) Discard(controlID string) error {
	s.mu.Lock()
	batch, ok := s.batches[controlID]
	delete(s.batches, controlID)
	s.mu.Unlock()

	if !ok {
		return ErrNotFound
	}
	return os.RemoveAll(batch.dir)
}

// Cleanup implements Store, removing batches older than maxAge and
// sweeping orphaned batch directories left over from crashes.
func (s *DiskStore) Cleanup(maxAge time.Duration) error {
	cutoff := time.Now().Add(-maxAge)

	s.mu.Lock()
	live := make(map[string]bool)
	for id, batch := range s.batches {
		if batch.createdAt.Before(cutoff) {
			delete(s.batches, id)
			os.RemoveAll(batch.dir)
			continue
		}
		live[batch.dir] = true
	}
	s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		if live[path] {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			os.RemoveAll(path)
		}
	}

	return nil
}

// randomSuffix generates a random batch directory suffix.
func randomSuffix() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}
