package summary

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_Generate(t *testing.T) {
	store := &countingStore{}
	svc, err := NewService(store, zap.NewNop())
	require.NoError(t, err)

	_, err = svc.Image(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Generate(context.Background(), Summary{TotalCount: 3, LastRefreshedAt: refreshedAt}))

	data, err := svc.Image(context.Background())
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
}

func TestService_GenerateStoreFailure(t *testing.T) {
	store := &countingStore{data: []byte("previous"), putErr: errors.New("bucket unavailable")}
	svc, err := NewService(store, zap.NewNop())
	require.NoError(t, err)

	err = svc.Generate(context.Background(), Summary{LastRefreshedAt: refreshedAt})

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "store", genErr.Stage)
	assert.ErrorContains(t, err, "bucket unavailable")

	data, err := svc.Image(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("previous"), data, "previous image stays in place")
}
