package dijkstra

import "errors"

// ErrInvalidRoot is returned when the root vertex is out of range for g.
var ErrInvalidRoot = errors.New("dijkstra: root vertex out of range")
