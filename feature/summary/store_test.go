package summary

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"country-currency/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, "cache/summary.png")
	ctx := context.Background()

	_, err := store.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Put(ctx, []byte("first")))
	require.NoError(t, store.Put(ctx, []byte("second")))

	data, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
	assert.Equal(t, filepath.Join(dir, "cache", "summary.png"), store.Path())

	entries, err := os.ReadDir(filepath.Join(dir, "cache"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestObjectStore_Put(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "countries", "cache/summary.png", mock.Anything, int64(3),
		mock.MatchedBy(func(opts minio.PutObjectOptions) bool { return opts.ContentType == "image/png" }),
	).Return(minio.UploadInfo{}, nil)

	store := NewObjectStore(client, "countries", "cache/summary.png")

	require.NoError(t, store.Put(context.Background(), []byte("png")))
	client.AssertExpectations(t)
}

func TestObjectStore_PutError(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "countries", "cache/summary.png", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("connection refused"))

	err := NewObjectStore(client, "countries", "cache/summary.png").Put(context.Background(), []byte("png"))

	assert.ErrorContains(t, err, "connection refused")
}

func TestObjectStore_Get(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "countries", "cache/summary.png", mock.Anything).
		Return(io.NopCloser(strings.NewReader("png")), nil)

	data, err := NewObjectStore(client, "countries", "cache/summary.png").Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)
}

func TestObjectStore_GetNotFound(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "countries", "cache/summary.png", mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

	_, err := NewObjectStore(client, "countries", "cache/summary.png").Get(context.Background())

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewStore(t *testing.T) {
	cfg := Config{Driver: DriverFilesystem, Directory: t.TempDir(), ObjectName: "cache/summary.png", CacheTTLSeconds: 60}
	store, err := NewStore(cfg, nil, "")
	require.NoError(t, err)
	assert.IsType(t, &CachedStore{}, store)

	_, err = NewStore(Config{Driver: DriverMinio, ObjectName: "cache/summary.png"}, nil, "countries")
	assert.Error(t, err)

	store, err = NewStore(Config{Driver: DriverMinio, ObjectName: "cache/summary.png"}, new(mocks.Client), "countries")
	require.NoError(t, err)
	assert.NotNil(t, store)

	_, err = NewStore(Config{Driver: "ftp"}, nil, "")
	assert.ErrorContains(t, err, "unsupported artifact driver")
}
