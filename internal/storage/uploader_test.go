package storage

import (
	"context"
	"io"
	"strings"
	"testing"
)

type fakeStore struct {
	puts    []string
	removes []string
}

func (f *fakeStore) EnsureBucket(ctx context.Context, bucket string) error { return nil }

func (f *fakeStore) Put(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) error {
	f.puts = append(f.puts, bucket+"/"+key)
	return nil
}

func (f *fakeStore) Remove(ctx context.Context, bucket, key string) error {
	f.removes = append(f.removes, bucket+"/"+key)
	return nil
}

func TestBuildKey(t *testing.T) {
	key := buildKey("plants/main", "my photo.jpg")
	if !strings.HasPrefix(key, "plants/main_") {
		t.Fatalf("key %q missing prefix", key)
	}
	if !strings.HasSuffix(key, "_my_photo.jpg") {
		t.Fatalf("key %q should end with the sanitized filename", key)
	}
	if strings.Contains(key, " ") {
		t.Fatalf("key %q contains spaces", key)
	}
}

func TestDeleteByURLParsesBucketAndKey(t *testing.T) {
	store := &fakeStore{}
	u := NewUploader(store, "http://cdn.local:9000/")

	u.DeleteByURL(context.Background(), "http://cdn.local:9000/plant-images/plants/main_1_leaf.jpg")
	if len(store.removes) != 1 {
		t.Fatalf("removes = %v", store.removes)
	}
	if store.removes[0] != "plant-images/plants/main_1_leaf.jpg" {
		t.Fatalf("unexpected remove target %q", store.removes[0])
	}
}

func TestDeleteByURLIgnoresForeignURLs(t *testing.T) {
	store := &fakeStore{}
	u := NewUploader(store, "http://cdn.local:9000")

	u.DeleteByURL(context.Background(), "https://elsewhere.example.com/plant-images/x.jpg")
	if len(store.removes) != 0 {
		t.Fatalf("foreign URL should be ignored, removed %v", store.removes)
	}
}
