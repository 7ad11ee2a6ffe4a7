package vertexcache

import "errors"

// ErrNegativeLength is returned by Forward and Backward for a negative
// distance. Use the other direction instead.
var ErrNegativeLength = errors.New("vertexcache: negative length")
