package upload

import (
	"context"
	"errors"
	"io"
	"regexp"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// ErrNotFound is returned when no live batch exists for a control id.
var ErrNotFound = errors.New("upload: no files for control")

// ErrTooLarge is returned when a file exceeds the size limit.
var ErrTooLarge = errors.New("upload: file too large")

// ErrBadControlID is returned for control ids the stores refuse to touch.
var ErrBadControlID = errors.New("upload: invalid control id")

// Record describes one uploaded file, one row per file. It is the value
// published under the originating control's id once an upload completes.
type Record struct {
	// Name is the original filename from the client.
	Name string `json:"name"`

	// Size is the file size in bytes.
	Size int64 `json:"size"`

	// Type is the MIME type; possibly empty when detection failed.
	Type string `json:"type"`

	// Datapath locates the transient stored bytes: a filesystem path for
	// disk-backed stores, an s3://bucket/key URI for S3-backed ones. It is
	// only valid until the next upload under the same control id.
	Datapath string `json:"datapath"`
}

// Part is one incoming file of an upload batch.
type Part struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

// Store persists upload batches. A control id owns at most one live batch:
// saving a new batch invalidates the previous one along with its datapaths.
type Store interface {
	// Save stores a batch of files for a control, replacing any previous
	// batch, and returns one Record per file.
	Save(ctx context.Context, controlID string, parts []Part) ([]Record, error)

	// Records returns the live batch for a control, if any.
	Records(controlID string) ([]Record, bool)

	// Discard drops the live batch for a control and its stored bytes.
	Discard(controlID string) error

	// Cleanup removes batches older than maxAge. Call it periodically.
	Cleanup(maxAge time.Duration) error
}

// controlIDPattern restricts control ids to characters that are safe as
// path and object-key components.
var controlIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// validControlID reports whether a control id is storable.
func validControlID(id string) bool {
	return controlIDPattern.MatchString(id)
}

// detectType resolves a part's MIME type. The client-declared type wins
// when present; otherwise the stored bytes are sniffed.
func detectType(declared string, sniff func() (*mimetype.MIME, error)) string {
	if declared != "" {
		return declared
	}
	mt, err := sniff()
	if err != nil || mt == nil {
		return ""
	}
	return mt.String()
}
