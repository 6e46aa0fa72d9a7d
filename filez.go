package filez

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// FileStore is the capability set for path-relative file access.
//
// All paths are interpreted relative to the root the store was bound to.
// Implementations must be safe for concurrent use; the store itself holds
// no mutable state, so concurrent calls race only at the backend level,
// exactly as raw filesystem calls would.
type FileStore interface {
	// Read returns the full contents of the file at path, decoded as UTF-8 text.
	// It returns a *ReadError if the file cannot be opened, read, or is not
	// valid UTF-8.
	Read(ctx context.Context, path string) (string, error)

	// Write creates or truncates the file at path and writes content fully.
	// Missing parent directories are created. It returns a *WriteError on
	// failure.
	Write(ctx context.Context, path string, content string) error

	// List returns the relative paths of all regular files under the root
	// matching the glob pattern, in traversal order. It returns a *ListError
	// whose Kind distinguishes a malformed pattern from an I/O failure.
	List(ctx context.Context, pattern string) ([]string, error)
}

// Live binds a root directory and returns the production local-disk store.
func Live(root string, optFns ...Option) FileStore {
	return NewLocalStore(root, optFns...)
}

// ReadGlob lists all files matching pattern and reads them concurrently.
// The result maps each relative path to its contents. Reads are bounded to
// a fixed concurrency limit to avoid file descriptor exhaustion.
func ReadGlob(ctx context.Context, store FileStore, pattern string) (map[string]string, error) {
	paths, err := store.List(ctx, pattern)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	contents := make(map[string]string, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(16)

	for _, path := range paths {
		g.Go(func() error {
			content, err := store.Read(ctx, path)
			if err != nil {
				return err
			}
			mu.Lock()
			contents[path] = content
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return contents, nil
}
