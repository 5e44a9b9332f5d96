package generator

import "errors"

// ErrTooFewVertices indicates n is smaller than the minimum a family requires.
var ErrTooFewVertices = errors.New("generator: too few vertices")

// ErrInvalidRoot indicates the configured root is out of range for n.
var ErrInvalidRoot = errors.New("generator: root out of range")

// ErrInvalidEdgeCount indicates a requested edge count is unreachable for n.
var ErrInvalidEdgeCount = errors.New("generator: invalid edge count")
