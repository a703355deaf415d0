package server

import "time"

// Config holds server configuration.
type Config struct {
	// Addr is the listen address (default ":8080").
	Addr string

	// UploadDir is where the disk store keeps transient uploads
	// (default "uploads").
	UploadDir string

	// MaxUploadSize caps an upload request's body in bytes (default 10MB).
	MaxUploadSize int64

	// AllowedTypes restricts upload MIME types; empty allows any.
	AllowedTypes []string

	// UploadExpiry is how long unclaimed uploads live before the cleanup
	// loop removes them (default 1 hour).
	UploadExpiry time.Duration

	// Pretty enables indented HTML output for development.
	Pretty bool
}

// Option configures the server.
type Option func(*Config)

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(c *Config) {
		c.Addr = addr
	}
}

// WithUploadDir sets the transient upload directory.
func WithUploadDir(dir string) Option {
	return func(c *Config) {
		c.UploadDir = dir
	}
}

// WithMaxUploadSize caps upload request bodies.
func WithMaxUploadSize(n int64) Option {
	return func(c *Config) {
		c.MaxUploadSize = n
	}
}

// WithAllowedTypes restricts upload MIME types.
func WithAllowedTypes(types ...string) Option {
	return func(c *Config) {
		c.AllowedTypes = types
	}
}

// WithUploadExpiry sets how long unclaimed uploads are kept.
func WithUploadExpiry(d time.Duration) Option {
	return func(c *Config) {
		c.UploadExpiry = d
	}
}

// WithPretty enables indented HTML output.
func WithPretty() Option {
	return func(c *Config) {
		c.Pretty = true
	}
}

func defaultConfig() Config {
	return Config{
		Addr:          ":8080",
		UploadDir:     "uploads",
		MaxUploadSize: 10 << 20,
		UploadExpiry:  time.Hour,
	}
}
