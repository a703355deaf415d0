package upload

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/lumen-ui/lumen/pkg/binding"
	"github.com/lumen-ui/lumen/pkg/progress"
)

// memoryLimit is how much of a multipart body may be held in memory while
// parsing; the rest spills to temp files.
const memoryLimit = 32 << 20

// HandlerConfig configures the upload handler.
type HandlerConfig struct {
	// MaxRequestSize caps the whole request body in bytes.
	// Default: 10MB.
	MaxRequestSize int64

	// AllowedTypes restricts uploads to the listed MIME types. Entries may
	// end in "/*" to allow a whole top-level type. Empty means any type.
	// Matching runs against the stored records' detected types, not the
	// client's declared part headers.
	AllowedTypes []string

	// Hub receives progress frames while the body is read. Nil disables
	// progress reporting.
	Hub *progress.Hub
}

// HandlerOption configures the upload handler.
type HandlerOption func(*HandlerConfig)

// WithMaxRequestSize caps the request body size.
func WithMaxRequestSize(n int64) HandlerOption {
	return func(c *HandlerConfig) {
		c.MaxRequestSize = n
	}
}

// WithAllowedTypes restricts the MIME types the handler accepts.
func WithAllowedTypes(types ...string) HandlerOption {
	return func(c *HandlerConfig) {
		c.AllowedTypes = types
	}
}

// WithProgress streams progress frames to the given hub during uploads.
func WithProgress(hub *progress.Hub) HandlerOption {
	return func(c *HandlerConfig) {
		c.Hub = hub
	}
}

func defaultHandlerConfig() HandlerConfig {
	return HandlerConfig{
		MaxRequestSize: 10 << 20,
	}
}

// Handler returns the HTTP endpoint behind a page's file controls. Mount it
// with the control id as a URL parameter:
//
//	r.Post("/upload/{id}", upload.Handler(store, registry))
//
// It expects a multipart form whose files are under the "file" field, saves
// them as the control's new batch, publishes the records under the control
// id, and echoes the records as JSON.
func Handler(store Store, registry *binding.Registry[[]Record], opts ...HandlerOption) http.HandlerFunc {
	config := defaultHandlerConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		controlID := chi.URLParam(r, "id")
		if !validControlID(controlID) {
			http.Error(w, "invalid control id", http.StatusBadRequest)
			return
		}

		// Cap the body before parsing; the tracker sits on top so the
		// client sees progress as the parser consumes the body.
		r.Body = http.MaxBytesReader(w, r.Body, config.MaxRequestSize)
		if config.Hub != nil {
			tracker := progress.NewTracker(r.Body, controlID, r.ContentLength, config.Hub)
			defer tracker.Close()
			r.Body = tracker
		}

		if err := r.ParseMultipartForm(memoryLimit); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				http.Error(w, "request too large", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "malformed multipart form", http.StatusBadRequest)
			return
		}
		defer r.MultipartForm.RemoveAll()

		headers := r.MultipartForm.File["file"]
		if len(headers) == 0 {
			http.Error(w, "no files provided", http.StatusBadRequest)
			return
		}

		parts := make([]Part, 0, len(headers))
		var closers []interface{ Close() error }
		for _, h := range headers {
			f, err := h.Open()
			if err != nil {
				for _, c := range closers {
					c.Close()
				}
				http.Error(w, "unreadable file part", http.StatusBadRequest)
				return
			}
			closers = append(closers, f)
			parts = append(parts, Part{
				Filename:    h.Filename,
				ContentType: h.Header.Get("Content-Type"),
				Reader:      f,
			})
		}
		defer func() {
			for _, c := range closers {
				c.Close()
			}
		}()

		records, err := store.Save(r.Context(), controlID, parts)
		if err != nil {
			if errors.Is(err, ErrTooLarge) {
				http.Error(w, "file too large", http.StatusRequestEntityTooLarge)
				return
			}
			log.Printf("upload: save for %q: %v", controlID, err)
			http.Error(w, "upload failed", http.StatusInternalServerError)
			return
		}

		if bad, ok := disallowedType(records, config.AllowedTypes); ok {
			store.Discard(controlID)
			http.Error(w, "unsupported file type "+bad, http.StatusUnsupportedMediaType)
			return
		}

		registry.Publish(controlID, records)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(records)
	}
}

// disallowedType returns the first record type not covered by allowed.
func disallowedType(records []Record, allowed []string) (string, bool) {
	if len(allowed) == 0 {
		return "", false
	}
	for _, rec := range records {
		if !typeAllowed(rec.Type, allowed) {
			return rec.Type, true
		}
	}
	return "", false
}

func typeAllowed(t string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	// Strip parameters like "; charset=utf-8" before matching.
	if i := strings.Index(t, ";"); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	for _, a := range allowed {
		if strings.HasSuffix(a, "/*") {
			if strings.HasPrefix(t, strings.TrimSuffix(a, "*")) {
				return true
			}
			continue
		}
		if t == a {
			return true
		}
	}
	return false
}
