package core

import "errors"

// Sentinel errors returned by Graph methods. Callers should branch with
// errors.Is against these, never on message text.
var (
	ErrNilGraph      = errors.New("core: nil graph")
	ErrEdgeNotFound  = errors.New("core: edge not found")
	ErrInvalidVertex = errors.New("core: vertex id out of range")
	ErrSelfLoop      = errors.New("core: self-loop not allowed")
)
