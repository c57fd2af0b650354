package gcs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	portsrepo "github.com/SscSPs/cash_dashboard/internal/core/ports/repositories"
)

const (
	objectPrefix  = "imports"
	uploadTimeout = 2 * time.Minute
)

// Archiver copies raw CSV uploads into a GCS bucket. It relies on
// Application Default Credentials.
type Archiver struct {
	client *storage.Client
	bucket string
	now    func() time.Time
}

var _ portsrepo.UploadArchiver = (*Archiver)(nil)

// NewArchiver creates a storage client for bucket.
func NewArchiver(ctx context.Context, bucket string) (*Archiver, error) {
	if bucket == "" {
		return nil, fmt.Errorf("archive bucket cannot be empty")
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &Archiver{client: client, bucket: bucket, now: time.Now}, nil
}

// ArchiveUpload writes data under imports/ and returns its gs:// URI.
func (a *Archiver) ArchiveUpload(ctx context.Context, fileName string, data []byte) (string, error) {
	name := ObjectName(a.now(), fileName)

	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	w := a.client.Bucket(a.bucket).Object(name).NewWriter(ctx)
	w.ContentType = "text/csv"
	defer func() {
		_ = w.Close()
	}()

	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("copy upload to GCS writer: %w", err)
	}

	// Close to finalize the upload
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize upload: %w", err)
	}

	return fmt.Sprintf("gs://%s/%s", a.bucket, name), nil
}

// Close releases the storage client.
func (a *Archiver) Close() error {
	return a.client.Close()
}

// ObjectName builds the object path for an upload received at t. Only the
// base name of fileName is kept and spaces are replaced.
func ObjectName(t time.Time, fileName string) string {
	base := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "upload.csv"
	}
	base = strings.ReplaceAll(base, " ", "_")
	return fmt.Sprintf("%s/%s-%s", objectPrefix, t.UTC().Format("20060102T150405Z"), base)
}
