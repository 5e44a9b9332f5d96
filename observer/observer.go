// Package observer defines the typed hook surface solvers use to report
// progress, replacing the positional draw/log callbacks of the original
// implementation with two fixed capabilities.
package observer

import "github.com/branchroot/minarb/core"

// Observer receives structured progress notifications from a solver. Both
// methods may be called from a single goroutine only (solvers are not
// concurrent); implementations that need to fan out should do their own
// buffering.
type Observer interface {
	// EmitEvent reports a named occurrence (e.g. "contract", "tighten")
	// with an arbitrary payload describing it.
	EmitEvent(kind string, payload any)

	// EmitSnapshot reports the current state of the working graph, with a
	// human-readable caption (e.g. "after contracting cycle 2").
	EmitSnapshot(g *core.Graph, caption string)
}

// Noop is an Observer that discards everything. It is the default when no
// observer is configured.
type Noop struct{}

func (Noop) EmitEvent(string, any)              {}
func (Noop) EmitSnapshot(*core.Graph, string) {}
