package phase2

import "errors"

var (
	// ErrIncompleteFamily is returned when F does not contain a spanning
	// arborescence rooted at r (every vertex reachable via F edges).
	ErrIncompleteFamily = errors.New("phase2: F does not span every vertex from root")

	// ErrInvalidRoot is returned when r is outside [0, n).
	ErrInvalidRoot = errors.New("phase2: root out of range")
)
