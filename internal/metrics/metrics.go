// Package metrics publishes request and generation telemetry to Sentry
// and CloudWatch.
package metrics

import (
	"context"
	"time"
)

// Generation describes one song generation attempt
type Generation struct {
	Parts    int
	Bars     int
	Duration time.Duration
	Success  bool
}

// Recorder is the sink generation code reports to
type Recorder interface {
	RecordGeneration(ctx context.Context, g Generation)
	RecordStorage(ctx context.Context, backend, op string, duration time.Duration, err error)
}

// Multi fans out to Sentry and CloudWatch
type Multi struct {
	Sentry     *SentryMetrics
	CloudWatch *Client
}

func (m *Multi) RecordGeneration(ctx context.Context, g Generation) {
	if m.Sentry != nil {
		m.Sentry.RecordGeneration(ctx, g)
	}
	if m.CloudWatch != nil {
		m.CloudWatch.RecordGeneration(g)
	}
}

func (m *Multi) RecordStorage(ctx context.Context, backend, op string, duration time.Duration, err error) {
	if m.Sentry != nil {
		m.Sentry.RecordStorage(ctx, backend, op, duration, err)
	}
	if m.CloudWatch != nil {
		m.CloudWatch.RecordStorage(backend, op, duration, err)
	}
}

// Nop discards everything
type Nop struct{}

func (Nop) RecordGeneration(context.Context, Generation) {}

func (Nop) RecordStorage(context.Context, string, string, time.Duration, error) {}
