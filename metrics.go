package filez

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordRead is called after each read operation.
	// duration is the total time taken, err is nil if successful.
	RecordRead(duration time.Duration, err error)

	// RecordWrite is called after each write operation.
	RecordWrite(duration time.Duration, err error)

	// RecordList is called after each list operation.
	// matches is the number of paths returned.
	RecordList(matches int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRead(time.Duration, error)      {}
func (NoopMetricsCollector) RecordWrite(time.Duration, error)     {}
func (NoopMetricsCollector) RecordList(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ReadCount       atomic.Int64
	ReadErrors      atomic.Int64
	ReadTotalNanos  atomic.Int64
	WriteCount      atomic.Int64
	WriteErrors     atomic.Int64
	WriteTotalNanos atomic.Int64
	ListCount       atomic.Int64
	ListErrors      atomic.Int64
	ListMatches     atomic.Int64
}

// RecordRead implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRead(duration time.Duration, err error) {
	b.ReadCount.Add(1)
	b.ReadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ReadErrors.Add(1)
	}
}

// RecordWrite implements MetricsCollector.
func (b *BasicMetricsCollector) RecordWrite(duration time.Duration, err error) {
	b.WriteCount.Add(1)
	b.WriteTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.WriteErrors.Add(1)
	}
}

// RecordList implements MetricsCollector.
func (b *BasicMetricsCollector) RecordList(matches int, duration time.Duration, err error) {
	b.ListCount.Add(1)
	b.ListMatches.Add(int64(matches))
	if err != nil {
		b.ListErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ReadCount:     b.ReadCount.Load(),
		ReadErrors:    b.ReadErrors.Load(),
		ReadAvgNanos:  avgNanos(b.ReadTotalNanos.Load(), b.ReadCount.Load()),
		WriteCount:    b.WriteCount.Load(),
		WriteErrors:   b.WriteErrors.Load(),
		WriteAvgNanos: avgNanos(b.WriteTotalNanos.Load(), b.WriteCount.Load()),
		ListCount:     b.ListCount.Load(),
		ListErrors:    b.ListErrors.Load(),
		ListMatches:   b.ListMatches.Load(),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ReadCount     int64
	ReadErrors    int64
	ReadAvgNanos  int64
	WriteCount    int64
	WriteErrors   int64
	WriteAvgNanos int64
	ListCount     int64
	ListErrors    int64
	ListMatches   int64
}
