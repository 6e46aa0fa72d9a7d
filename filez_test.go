package filez

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLive_ReturnsLocalStore(t *testing.T) {
	store := Live(t.TempDir())
	require.IsType(t, &LocalStore{}, store)
}

func TestReadGlob(t *testing.T) {
	store := Live(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, "src/main.txt", "main"))
	require.NoError(t, store.Write(ctx, "src/util/helper.txt", "helper"))
	require.NoError(t, store.Write(ctx, "src/util/helper.md", "ignored"))

	contents, err := ReadGlob(ctx, store, "src/**/*.txt")
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"src/main.txt":        "main",
		"src/util/helper.txt": "helper",
	}, contents)
}

func TestReadGlob_InvalidPattern(t *testing.T) {
	store := Live(t.TempDir())

	_, err := ReadGlob(context.Background(), store, "[bad")

	var listErr *ListError
	require.ErrorAs(t, err, &listErr)
	require.Equal(t, ListErrorInvalidPattern, listErr.Kind)
}

func TestReadGlob_Empty(t *testing.T) {
	store := Live(t.TempDir())

	contents, err := ReadGlob(context.Background(), store, "*.txt")
	require.NoError(t, err)
	require.Empty(t, contents)
}
