package filez

import (
	"context"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hupe1980/filez/internal/fs"
	"github.com/hupe1980/filez/internal/mmap"
)

// LocalStore implements FileStore against a root directory on the local
// filesystem. The handle is immutable after construction and freely
// shareable across goroutines.
type LocalStore struct {
	root string
	opts options
}

var _ FileStore = (*LocalStore)(nil)

// NewLocalStore creates a LocalStore rooted at the given directory.
// The root is not validated at construction time; a missing root surfaces
// as an operation error.
func NewLocalStore(root string, optFns ...Option) *LocalStore {
	opts := applyOptions(optFns)
	opts.logger = opts.logger.WithRoot(root)

	return &LocalStore{
		root: root,
		opts: opts,
	}
}

// Root returns the bound root directory.
func (s *LocalStore) Root() string {
	return s.root
}

// resolve maps a slash-separated relative path to a root-qualified native
// path, rejecting anything that would land outside the root.
func (s *LocalStore) resolve(path string) (string, error) {
	rel := filepath.FromSlash(path)
	if !filepath.IsLocal(rel) {
		return "", ErrPathEscapesRoot
	}
	return filepath.Join(s.root, rel), nil
}

// Read implements FileStore.
func (s *LocalStore) Read(ctx context.Context, path string) (string, error) {
	start := time.Now()
	content, err := s.read(ctx, path)
	s.opts.metricsCollector.RecordRead(time.Since(start), err)
	s.opts.logger.LogRead(ctx, path, len(content), err)
	return content, err
}

func (s *LocalStore) read(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", newReadError(path, err)
	}

	full, err := s.resolve(path)
	if err != nil {
		return "", newReadError(path, err)
	}

	fi, err := s.opts.fs.Stat(full)
	if err != nil {
		return "", newReadError(path, err)
	}

	data, err := s.readContents(full, fi.Size())
	if err != nil {
		return "", newReadError(path, err)
	}

	decoded, err := s.opts.codec.Decode(data)
	if err != nil {
		return "", newReadError(path, err)
	}
	if !utf8.Valid(decoded) {
		return "", newReadError(path, ErrInvalidUTF8)
	}
	return string(decoded), nil
}

func (s *LocalStore) readContents(full string, size int64) ([]byte, error) {
	// mmap only makes sense against the real filesystem; an injected
	// FileSystem (tests) always takes the buffered path.
	_, local := s.opts.fs.(fs.LocalFS)
	if local && s.opts.mmapThreshold > 0 && size >= s.opts.mmapThreshold {
		m, err := mmap.Open(full)
		if err != nil {
			return nil, err
		}
		data := append([]byte(nil), m.Bytes()...)
		if err := m.Close(); err != nil {
			return nil, err
		}
		return data, nil
	}

	f, err := s.opts.fs.OpenFile(full, os.O_RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

// Write implements FileStore.
func (s *LocalStore) Write(ctx context.Context, path string, content string) error {
	start := time.Now()
	err := s.write(ctx, path, content)
	s.opts.metricsCollector.RecordWrite(time.Since(start), err)
	s.opts.logger.LogWrite(ctx, path, len(content), err)
	return err
}

func (s *LocalStore) write(ctx context.Context, path string, content string) error {
	if err := ctx.Err(); err != nil {
		return newWriteError(path, err)
	}

	full, err := s.resolve(path)
	if err != nil {
		return newWriteError(path, err)
	}

	encoded, err := s.opts.codec.Encode([]byte(content))
	if err != nil {
		return newWriteError(path, err)
	}

	if err := s.opts.fs.MkdirAll(filepath.Dir(full), s.opts.dirMode); err != nil {
		return newWriteError(path, err)
	}

	// Write to a temp file in the same directory, then rename. The rename
	// is atomic on POSIX filesystems, so concurrent readers see either the
	// old contents or the new, never a partial write.
	tmp := full + ".tmp"
	f, err := s.opts.fs.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, s.opts.fileMode)
	if err != nil {
		return newWriteError(path, err)
	}
	if _, err := f.Write(encoded); err != nil {
		f.Close()
		s.opts.fs.Remove(tmp)
		return newWriteError(path, err)
	}
	if s.opts.fsync {
		if err := f.Sync(); err != nil {
			f.Close()
			s.opts.fs.Remove(tmp)
			return newWriteError(path, err)
		}
	}
	if err := f.Close(); err != nil {
		s.opts.fs.Remove(tmp)
		return newWriteError(path, err)
	}
	if err := s.opts.fs.Rename(tmp, full); err != nil {
		s.opts.fs.Remove(tmp)
		return newWriteError(path, err)
	}
	return nil
}

// List implements FileStore.
func (s *LocalStore) List(ctx context.Context, pattern string) ([]string, error) {
	start := time.Now()
	paths, err := s.list(ctx, pattern)
	s.opts.metricsCollector.RecordList(len(paths), time.Since(start), err)
	s.opts.logger.LogList(ctx, pattern, len(paths), err)
	return paths, err
}

func (s *LocalStore) list(ctx context.Context, pattern string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, newListError(pattern, ListErrorIO, err)
	}

	if !doublestar.ValidatePattern(pattern) {
		return nil, newListError(pattern, ListErrorInvalidPattern, doublestar.ErrBadPattern)
	}

	var paths []string
	err := doublestar.GlobWalk(os.DirFS(s.root), pattern, func(path string, d iofs.DirEntry) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		paths = append(paths, path)
		return nil
	}, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		kind := ListErrorIO
		if errors.Is(err, doublestar.ErrBadPattern) {
			kind = ListErrorInvalidPattern
		}
		return nil, newListError(pattern, kind, err)
	}
	return paths, nil
}
