package repository

import "context"

// ObjectStore is the upload side of the file storage subsystem. Upload
// returns a public URL for the stored object; callers treat a failure as a
// missing URL, not a fatal error.
type ObjectStore interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
}
