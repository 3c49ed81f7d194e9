package summary

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"country-currency/core/storage"

	"github.com/minio/minio-go/v7"
)

// Store persists the summary image. Put replaces the previous image
// atomically: readers see either the old or the new bytes, never a mix.
type Store interface {
	// Put replaces the stored image.
	Put(ctx context.Context, data []byte) error
	// Get returns the stored image or ErrNotFound.
	Get(ctx context.Context) ([]byte, error)
}

// NewStore builds the store selected by cfg.Driver, wrapped in a read cache.
func NewStore(cfg Config, client storage.Client, bucket string) (Store, error) {
	var store Store
	switch cfg.Driver {
	case DriverMinio, "":
		if client == nil {
			return nil, errors.New("minio artifact store requires a storage client")
		}
		store = NewObjectStore(client, bucket, cfg.ObjectName)
	case DriverFilesystem:
		store = NewFileStore(cfg.Directory, cfg.ObjectName)
	default:
		return nil, fmt.Errorf("unsupported artifact driver: %s", cfg.Driver)
	}
	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	return NewCachedStore(store, cfg.ObjectName, ttl), nil
}

// ObjectStore keeps the image as one object in a bucket.
type ObjectStore struct {
	client storage.Client
	bucket string
	object string
}

// NewObjectStore creates a bucket backed store.
func NewObjectStore(client storage.Client, bucket, object string) *ObjectStore {
	return &ObjectStore{client: client, bucket: bucket, object: object}
}

// Put uploads the image. S3 PUT replaces the object atomically.
func (s *ObjectStore) Put(ctx context.Context, data []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, s.object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "image/png",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", s.object, err)
	}
	return nil
}

// Get downloads the image.
func (s *ObjectStore) Get(ctx context.Context) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to download %s: %w", s.object, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.object, err)
	}
	return data, nil
}

// FileStore keeps the image on the local filesystem.
type FileStore struct {
	path string
}

// NewFileStore creates a store writing name (slash separated) under dir.
func NewFileStore(dir, name string) *FileStore {
	return &FileStore{path: filepath.Join(dir, filepath.FromSlash(name))}
}

// Path returns the file location of the image.
func (s *FileStore) Path() string {
	return s.path
}

// Put writes a temp file next to the target and renames it into place.
func (s *FileStore) Put(_ context.Context, data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".summary-*.png")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}

// Get reads the image.
func (s *FileStore) Get(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	return data, nil
}
