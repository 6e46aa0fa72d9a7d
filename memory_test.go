package filez

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, "notes/todo.txt", "buy milk"))

	got, err := store.Read(ctx, "notes/todo.txt")
	require.NoError(t, err)
	require.Equal(t, "buy milk", got)
}

func TestMemoryStore_ReadMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Read(context.Background(), "missing.txt")

	var readErr *ReadError
	require.ErrorAs(t, err, &readErr)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_List(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, "a.txt", "a"))
	require.NoError(t, store.Write(ctx, "b.txt", "b"))
	require.NoError(t, store.Write(ctx, "c.md", "c"))
	require.NoError(t, store.Write(ctx, "sub/d.txt", "d"))

	paths, err := store.List(ctx, "*.txt")
	require.NoError(t, err)
	require.Equal(t, []string{"a.txt", "b.txt"}, paths)

	paths, err = store.List(ctx, "**/*.txt")
	require.NoError(t, err)
	require.Contains(t, paths, "sub/d.txt")
}

func TestMemoryStore_ListInvalidPattern(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.List(context.Background(), "[unbalanced")

	var listErr *ListError
	require.ErrorAs(t, err, &listErr)
	require.Equal(t, ListErrorInvalidPattern, listErr.Kind)
}

func TestMemoryStore_PathEscape(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	err := store.Write(ctx, "../escape.txt", "x")
	require.ErrorIs(t, err, ErrPathEscapesRoot)

	_, err = store.Read(ctx, "/abs.txt")
	require.ErrorIs(t, err, ErrPathEscapesRoot)
}

func TestMemoryStore_KeyNormalization(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, "sub/../a.txt", "x"))

	got, err := store.Read(ctx, "a.txt")
	require.NoError(t, err)
	require.Equal(t, "x", got)
}
