package xblossom

import "github.com/pkg/errors"

// ErrInvalidThreadCount is returned by MaximumMatching and
// MaximumMatchingCSR when numThreads is less than 1.
var ErrInvalidThreadCount = errors.New("xblossom: num_threads must be >= 1")
