package repositories

import "context"

// UploadArchiver keeps a copy of raw import files.
type UploadArchiver interface {
	// ArchiveUpload stores data and returns the location it was written to.
	ArchiveUpload(ctx context.Context, fileName string, data []byte) (string, error)
}
