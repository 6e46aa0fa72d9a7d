package filez

import (
	"context"

	"golang.org/x/time/rate"
)

// ThrottledStore wraps a FileStore and enforces a bytes-per-second budget
// across read and write payloads. List is passed through untouched.
//
// Useful for capping the I/O footprint of background jobs that sweep large
// trees.
type ThrottledStore struct {
	inner   FileStore
	limiter *rate.Limiter
}

var _ FileStore = (*ThrottledStore)(nil)

// NewThrottledStore creates a ThrottledStore limited to bytesPerSec.
// A non-positive budget disables throttling.
func NewThrottledStore(inner FileStore, bytesPerSec int) *ThrottledStore {
	var limiter *rate.Limiter
	if bytesPerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(bytesPerSec), bytesPerSec)
	}
	return &ThrottledStore{
		inner:   inner,
		limiter: limiter,
	}
}

// waitBytes blocks until n bytes of budget are available, splitting
// requests larger than the burst size.
func (s *ThrottledStore) waitBytes(ctx context.Context, n int) error {
	if s.limiter == nil {
		return nil
	}
	burst := s.limiter.Burst()
	for n > 0 {
		chunk := n
		if chunk > burst {
			chunk = burst
		}
		if err := s.limiter.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}

// Read implements FileStore. The budget is charged after the read since
// the payload size is not known up front.
func (s *ThrottledStore) Read(ctx context.Context, path string) (string, error) {
	content, err := s.inner.Read(ctx, path)
	if err != nil {
		return "", err
	}
	if err := s.waitBytes(ctx, len(content)); err != nil {
		return "", newReadError(path, err)
	}
	return content, nil
}

// Write implements FileStore. The budget is charged before the write.
func (s *ThrottledStore) Write(ctx context.Context, path string, content string) error {
	if err := s.waitBytes(ctx, len(content)); err != nil {
		return newWriteError(path, err)
	}
	return s.inner.Write(ctx, path, content)
}

// List implements FileStore.
func (s *ThrottledStore) List(ctx context.Context, pattern string) ([]string, error) {
	return s.inner.List(ctx, pattern)
}
