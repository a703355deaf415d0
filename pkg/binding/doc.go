// Package binding publishes interaction results to server-side readers,
// keyed by the originating control's id. A file input with id "file1" gets
// its completed uploads published under "file1"; whatever is interested in
// that control's value reads or subscribes here.
package binding
