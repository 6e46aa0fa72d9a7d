package minio

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hupe1980/filez"
	"github.com/hupe1980/filez/codec"
	"github.com/minio/minio-go/v7"
)

// Store implements filez.FileStore for MinIO and S3-compatible storage.
type Store struct {
	client *minio.Client
	bucket string
	prefix string
	codec  codec.Codec
}

var _ filez.FileStore = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithCodec sets the codec applied to object bodies.
func WithCodec(c codec.Codec) Option {
	return func(s *Store) {
		s.codec = c
	}
}

// NewStore creates a Store for the given bucket.
// rootPrefix is prepended to all keys (e.g. "files/").
func NewStore(client *minio.Client, bucket, rootPrefix string, optFns ...Option) *Store {
	s := &Store{
		client: client,
		bucket: bucket,
		prefix: rootPrefix,
		codec:  codec.Default,
	}
	for _, fn := range optFns {
		fn(s)
	}
	return s
}

func (s *Store) key(p string) (string, error) {
	cleaned := path.Clean(p)
	if path.IsAbs(p) || !fs.ValidPath(cleaned) {
		return "", filez.ErrPathEscapesRoot
	}
	return path.Join(s.prefix, cleaned), nil
}

func notFound(err error) bool {
	code := minio.ToErrorResponse(err).Code
	return code == "NoSuchKey" || code == "NotFound"
}

// Read implements filez.FileStore.
func (s *Store) Read(ctx context.Context, p string) (string, error) {
	key, err := s.key(p)
	if err != nil {
		return "", &filez.ReadError{Path: p, Err: err}
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return "", &filez.ReadError{Path: p, Err: err}
	}
	defer obj.Close()

	// GetObject is lazy; missing keys surface on the first read.
	raw, err := io.ReadAll(obj)
	if err != nil {
		if notFound(err) {
			return "", &filez.ReadError{Path: p, Err: filez.ErrNotFound}
		}
		return "", &filez.ReadError{Path: p, Err: err}
	}
	data, err := s.codec.Decode(raw)
	if err != nil {
		return "", &filez.ReadError{Path: p, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &filez.ReadError{Path: p, Err: filez.ErrInvalidUTF8}
	}
	return string(data), nil
}

// Write implements filez.FileStore.
func (s *Store) Write(ctx context.Context, p string, content string) error {
	key, err := s.key(p)
	if err != nil {
		return &filez.WriteError{Path: p, Err: err}
	}

	encoded, err := s.codec.Encode([]byte(content))
	if err != nil {
		return &filez.WriteError{Path: p, Err: err}
	}

	_, err = s.client.PutObject(ctx, s.bucket, key,
		bytes.NewReader(encoded), int64(len(encoded)), minio.PutObjectOptions{})
	if err != nil {
		return &filez.WriteError{Path: p, Err: err}
	}
	return nil
}

// List implements filez.FileStore.
func (s *Store) List(ctx context.Context, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, &filez.ListError{
			Pattern: pattern,
			Kind:    filez.ListErrorInvalidPattern,
			Err:     doublestar.ErrBadPattern,
		}
	}

	base, _ := doublestar.SplitPattern(pattern)
	listPrefix := s.prefix
	if base != "." {
		listPrefix = path.Join(s.prefix, base) + "/"
	}

	var paths []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    listPrefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, &filez.ListError{Pattern: pattern, Kind: filez.ListErrorIO, Err: obj.Err}
		}
		rel := strings.TrimPrefix(obj.Key, s.prefix)
		rel = strings.TrimPrefix(rel, "/")
		if rel == "" {
			continue
		}
		ok, err := doublestar.Match(pattern, rel)
		if err != nil {
			return nil, &filez.ListError{
				Pattern: pattern,
				Kind:    filez.ListErrorInvalidPattern,
				Err:     err,
			}
		}
		if ok {
			paths = append(paths, rel)
		}
	}
	return paths, nil
}
