package xblossom

import (
	"time"

	"go.uber.org/zap"
)

// Observer receives a callback after every phase of the search, letting
// callers track progress on large graphs without parsing log lines. It
// replaces the duration_* globals the original solver accumulated.
type Observer interface {
	OnPhase(phaseIndex, frontierSize int, foundAugmentingPaths bool, elapsed time.Duration)
}

// Option configures a MaximumMatching/MaximumMatchingCSR call.
type Option func(*options)

type options struct {
	logger   *zap.Logger
	observer Observer
}

func newOptions() *options {
	return &options{logger: zap.NewNop()}
}

// WithLogger attaches a zap.Logger for per-phase debug logging. The
// default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithObserver attaches an Observer notified after every phase.
func WithObserver(obs Observer) Option {
	return func(o *options) { o.observer = obs }
}
