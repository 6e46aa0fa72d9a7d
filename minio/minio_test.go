package minio

import (
	"context"
	"testing"

	"github.com/hupe1980/filez"
	"github.com/hupe1980/filez/codec"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/require"
)

// TestStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestStore_Integration(t *testing.T) {
	endpoint := "localhost:9000"
	accessKey := "minioadmin"
	secretKey := "minioadmin"
	bucket := "test-filez"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx := context.Background()

	// Check if MinIO is reachable
	if _, err = client.ListBuckets(ctx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	// Ensure bucket exists
	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}

	store := NewStore(client, bucket, "test-prefix")

	require.NoError(t, store.Write(ctx, "notes/todo.txt", "buy milk"))

	content, err := store.Read(ctx, "notes/todo.txt")
	require.NoError(t, err)
	require.Equal(t, "buy milk", content)

	paths, err := store.List(ctx, "notes/*.txt")
	require.NoError(t, err)
	require.Contains(t, paths, "notes/todo.txt")

	_, err = store.Read(ctx, "does/not/exist.txt")
	var readErr *filez.ReadError
	require.ErrorAs(t, err, &readErr)

	// Objects round-trip through a compressing codec too.
	compressed := NewStore(client, bucket, "test-prefix-lz4", WithCodec(codec.LZ4{}))

	require.NoError(t, compressed.Write(ctx, "notes/todo.txt", "buy milk"))

	content, err = compressed.Read(ctx, "notes/todo.txt")
	require.NoError(t, err)
	require.Equal(t, "buy milk", content)
}

func TestStore_PathEscape(t *testing.T) {
	// Key validation happens before any network traffic, so this needs no
	// live server.
	client, err := minio.New("localhost:9000", &minio.Options{
		Creds: credentials.NewStaticV4("x", "y", ""),
	})
	require.NoError(t, err)

	store := NewStore(client, "bucket", "")

	werr := store.Write(context.Background(), "../escape.txt", "x")
	require.ErrorIs(t, werr, filez.ErrPathEscapesRoot)
}
