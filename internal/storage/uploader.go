package storage

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"
)

// Uploader stores multipart files in a bucket and maps them to public URLs.
type Uploader struct {
	store      ObjectStorage
	publicBase string
}

func NewUploader(store ObjectStorage, publicBase string) *Uploader {
	return &Uploader{store: store, publicBase: strings.TrimRight(publicBase, "/")}
}

// Upload writes one multipart file under prefix and returns its public URL.
func (u *Uploader) Upload(ctx context.Context, bucket, prefix string, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	key := buildKey(prefix, fh.Filename)
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := u.store.Put(ctx, bucket, key, f, fh.Size, contentType); err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}
	return u.publicBase + "/" + bucket + "/" + key, nil
}

// UploadAll uploads up to max files, returning the URLs of those stored.
func (u *Uploader) UploadAll(ctx context.Context, bucket, prefix string, files []*multipart.FileHeader, max int) ([]string, error) {
	if len(files) > max {
		files = files[:max]
	}
	urls := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := u.Upload(ctx, bucket, prefix, fh)
		if err != nil {
			return urls, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// DeleteByURL removes the object behind a previously returned public URL.
// Failures are logged, not propagated: stale objects are harmless.
func (u *Uploader) DeleteByURL(ctx context.Context, url string) {
	rest, ok := strings.CutPrefix(url, u.publicBase+"/")
	if !ok {
		return
	}
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok {
		return
	}
	if err := u.store.Remove(ctx, bucket, key); err != nil {
		slog.Warn("failed to remove stored object", "bucket", bucket, "key", key, "error", err)
	}
}

func buildKey(prefix, filename string) string {
	base := strings.ReplaceAll(filepath.Base(filename), " ", "_")
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixNano(), base)
}
