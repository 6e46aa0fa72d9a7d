package filez

import (
	"context"
	"io/fs"
	"path"
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
)

// MemoryStore is an in-memory FileStore implementation for testing and
// ephemeral use. It has no filesystem dependency and no directory
// structure; parents exist implicitly. Thread-safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	files map[string]string
}

var _ FileStore = (*MemoryStore)(nil)

// NewMemoryStore creates a new in-memory file store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		files: make(map[string]string),
	}
}

func memKey(p string) (string, error) {
	cleaned := path.Clean(p)
	if path.IsAbs(p) || !fs.ValidPath(cleaned) {
		return "", ErrPathEscapesRoot
	}
	return cleaned, nil
}

// Read implements FileStore.
func (m *MemoryStore) Read(ctx context.Context, p string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", newReadError(p, err)
	}
	key, err := memKey(p)
	if err != nil {
		return "", newReadError(p, err)
	}

	m.mu.RLock()
	content, ok := m.files[key]
	m.mu.RUnlock()

	if !ok {
		return "", newReadError(p, ErrNotFound)
	}
	if !utf8.ValidString(content) {
		return "", newReadError(p, ErrInvalidUTF8)
	}
	return content, nil
}

// Write implements FileStore.
func (m *MemoryStore) Write(ctx context.Context, p string, content string) error {
	if err := ctx.Err(); err != nil {
		return newWriteError(p, err)
	}
	key, err := memKey(p)
	if err != nil {
		return newWriteError(p, err)
	}

	m.mu.Lock()
	m.files[key] = content
	m.mu.Unlock()
	return nil
}

// List implements FileStore. Results are sorted since map iteration order
// carries no traversal meaning.
func (m *MemoryStore) List(ctx context.Context, pattern string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, newListError(pattern, ListErrorIO, err)
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, newListError(pattern, ListErrorInvalidPattern, doublestar.ErrBadPattern)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var paths []string
	for key := range m.files {
		ok, err := doublestar.Match(pattern, key)
		if err != nil {
			return nil, newListError(pattern, ListErrorInvalidPattern, err)
		}
		if ok {
			paths = append(paths, key)
		}
	}
	sort.Strings(paths)
	return paths, nil
}
