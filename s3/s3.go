package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/hupe1980/filez"
	"github.com/hupe1980/filez/codec"
)

// Client is the subset of the S3 API the store depends on. Satisfied by
// *s3.Client; tests substitute a fake.
type Client interface {
	manager.UploadAPIClient
	manager.DownloadAPIClient
	s3.ListObjectsV2APIClient
}

// Store implements filez.FileStore against an S3 bucket. Paths map to
// object keys under an optional root prefix; there are no directories,
// so parents exist implicitly.
type Store struct {
	client   Client
	uploader *manager.Uploader
	bucket   string
	prefix   string
	codec    codec.Codec
}

var _ filez.FileStore = (*Store)(nil)

// Options configures New.
type Options struct {
	// Prefix is prepended to all keys (e.g. "files/").
	Prefix string
	// Client overrides the client built from the default AWS config.
	Client Client
	// Codec transforms object bodies on the wire. Defaults to codec.Default.
	Codec codec.Codec
}

// WithPrefix sets the root prefix prepended to all keys.
func WithPrefix(prefix string) func(*Options) {
	return func(o *Options) {
		o.Prefix = prefix
	}
}

// WithClient supplies a pre-configured client.
func WithClient(client Client) func(*Options) {
	return func(o *Options) {
		o.Client = client
	}
}

// WithCodec sets the codec applied to object bodies.
func WithCodec(c codec.Codec) func(*Options) {
	return func(o *Options) {
		o.Codec = c
	}
}

// New creates a Store for the given bucket. Unless a client is supplied it
// is built from the default AWS config chain (env, shared config, IMDS).
func New(ctx context.Context, bucket string, optFns ...func(*Options)) (*Store, error) {
	var o Options
	for _, fn := range optFns {
		fn(&o)
	}

	client := o.Client
	if client == nil {
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, err
		}
		client = s3.NewFromConfig(cfg)
	}

	st := NewStore(client, bucket, o.Prefix)
	if o.Codec != nil {
		st.codec = o.Codec
	}
	return st, nil
}

// NewStore creates a Store from an existing client.
func NewStore(client Client, bucket, rootPrefix string) *Store {
	return &Store{
		client:   client,
		uploader: manager.NewUploader(client),
		bucket:   bucket,
		prefix:   rootPrefix,
		codec:    codec.Default,
	}
}

func (s *Store) key(p string) (string, error) {
	cleaned := path.Clean(p)
	if path.IsAbs(p) || !fs.ValidPath(cleaned) {
		return "", filez.ErrPathEscapesRoot
	}
	return path.Join(s.prefix, cleaned), nil
}

// Read implements filez.FileStore.
func (s *Store) Read(ctx context.Context, p string) (string, error) {
	key, err := s.key(p)
	if err != nil {
		return "", &filez.ReadError{Path: p, Err: err}
	}

	resp, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return "", &filez.ReadError{Path: p, Err: filez.ErrNotFound}
		}
		return "", &filez.ReadError{Path: p, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
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

// Write implements filez.FileStore. S3 PUTs are atomic by contract, so no
// temp-and-rename dance is needed.
func (s *Store) Write(ctx context.Context, p string, content string) error {
	key, err := s.key(p)
	if err != nil {
		return &filez.WriteError{Path: p, Err: err}
	}

	encoded, err := s.codec.Encode([]byte(content))
	if err != nil {
		return &filez.WriteError{Path: p, Err: err}
	}

	_, err = s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(encoded),
	})
	if err != nil {
		return &filez.WriteError{Path: p, Err: err}
	}
	return nil
}

// List implements filez.FileStore. The static portion of the pattern
// narrows the S3 listing prefix; matching happens client-side.
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
	} else if listPrefix != "" {
		listPrefix = strings.TrimSuffix(listPrefix, "/") + "/"
	}

	var paths []string
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(listPrefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, &filez.ListError{Pattern: pattern, Kind: filez.ListErrorIO, Err: err}
		}
		for _, obj := range page.Contents {
			rel := strings.TrimPrefix(aws.ToString(obj.Key), s.prefix)
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
	}
	return paths, nil
}
