package progress

import (
	"io"
	"time"
)

// Frame is one progress update for a control, pushed to clients so they can
// animate the control's progress placeholder.
type Frame struct {
	ID     string `json:"id"`
	Loaded int64  `json:"loaded"`
	Total  int64  `json:"total"`
	Done   bool   `json:"done"`
}

// Notifier receives progress frames. *Hub satisfies it.
type Notifier interface {
	Broadcast(Frame)
}

// minInterval bounds how often a tracker emits intermediate frames.
const minInterval = 100 * time.Millisecond

// Tracker wraps a reader and reports how many bytes have passed through it.
// Wrap a request body with it before parsing a multipart upload and the
// client sees the bar move while the server reads.
type Tracker struct {
	rc       io.ReadCloser
	id       string
	total    int64
	notifier Notifier

	loaded   int64
	lastSent time.Time
	done     bool
}

// NewTracker creates a Tracker for the given control id. total is the
// expected byte count, or -1 when unknown.
func NewTracker(rc io.ReadCloser, id string, total int64, n Notifier) *Tracker {
	return &Tracker{rc: rc, id: id, total: total, notifier: n}
}

// Read implements io.Reader, counting bytes and emitting throttled frames.
func (t *Tracker) Read(p []byte) (int, error) {
	n, err := t.rc.Read(p)
	if n > 0 {
		t.loaded += int64(n)
		t.maybeNotify(false)
	}
	if err == io.EOF {
		t.finish()
	}
	return n, err
}

// Close closes the underlying reader and emits the final frame.
func (t *Tracker) Close() error {
	t.finish()
	return t.rc.Close()
}

// Loaded returns the number of bytes read so far.
func (t *Tracker) Loaded() int64 {
	return t.loaded
}

func (t *Tracker) maybeNotify(force bool) {
	if t.notifier == nil {
		return
	}
	now := time.Now()
	if !force && now.Sub(t.lastSent) < minInterval {
		return
	}
	t.lastSent = now
	t.notifier.Broadcast(Frame{ID: t.id, Loaded: t.loaded, Total: t.total})
}

func (t *Tracker) finish() {
	if t.done || t.notifier == nil {
		t.done = true
		return
	}
	t.done = true
	t.notifier.Broadcast(Frame{ID: t.id, Loaded: t.loaded, Total: t.total, Done: true})
}
