package cle

import "errors"

var (
	// ErrNilGraph is returned when Solve is called with a nil graph.
	ErrNilGraph = errors.New("cle: nil graph")

	// ErrInfeasible is returned when some vertex is not reachable from the
	// chosen root, so no arborescence exists.
	ErrInfeasible = errors.New("cle: no arborescence rooted at r exists")

	// ErrInvalidRoot is returned when r is outside [0, g.Order()).
	ErrInvalidRoot = errors.New("cle: root out of range")
)
