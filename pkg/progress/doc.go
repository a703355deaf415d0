// Package progress reports upload progress to clients.
//
// A Tracker wraps the request body of an upload and counts bytes as the
// multipart parser consumes them; a Hub pushes the resulting frames over
// WebSocket so the client can animate the "<id>_progress" placeholder the
// markup builder emitted. The builder itself never touches either; it only
// leaves the placeholder for this package's client counterpart to find.
package progress
