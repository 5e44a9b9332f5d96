package harness

import "errors"

// ErrInvalidRange indicates vertexRange or edgeWeightRange has its low
// bound greater than its high bound.
var ErrInvalidRange = errors.New("harness: invalid range")

// ErrUnknownFamily indicates a FamilyTag not recognized by the generator dispatch.
var ErrUnknownFamily = errors.New("harness: unknown family")

// ErrInvariantViolation is returned when CLE and Frank disagree on cost or
// the dual certificate rejects a Phase-II tree — a defect in the solvers
// themselves, not a property of the instance. The batch runner halts on
// this error rather than recording it as an ordinary case failure.
var ErrInvariantViolation = errors.New("harness: invariant violation")
