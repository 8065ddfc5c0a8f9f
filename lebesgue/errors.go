// Package lebesgue: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations
// return these sentinels on user-triggered conditions and tests match them
// via errors.Is. No operation panics on user input. If context is essential,
// a sentinel is wrapped with fmt.Errorf("ctx: %w", ErrX) at the point of
// failure — callers still match with errors.Is.

package lebesgue

import "errors"

var (
	// ErrNilSet is returned when a nil Set (or a union containing one) is supplied.
	ErrNilSet = errors.New("lebesgue: set must not be nil")

	// ErrBadSet is returned when a set carries a NaN endpoint.
	ErrBadSet = errors.New("lebesgue: set endpoint must not be NaN")

	// ErrBadOptions is returned for non-positive budgets or a negative tolerance.
	ErrBadOptions = errors.New("lebesgue: invalid options")

	// ErrNilCover is returned when a nil cover is supplied to the covering engine.
	ErrNilCover = errors.New("lebesgue: cover must not be nil")

	// ErrUnbounded is returned when the covering engine is asked to verify a
	// target of infinite length; the supremum chase needs a finite right end.
	ErrUnbounded = errors.New("lebesgue: target interval must have finite length")

	// ErrShortCover is returned when a candidate cover fails to carry the
	// target's full length: the covered-progress supremum stalls before the
	// right endpoint, or the total covered mass falls short.
	ErrShortCover = errors.New("lebesgue: cover does not cover the target interval")

	// ErrNoCover is returned by MinCoverLength when no candidate covers the target.
	ErrNoCover = errors.New("lebesgue: no candidate cover covers the target")

	// ErrNotBorel is returned by Measure for sets outside the Borel class.
	ErrNotBorel = errors.New("lebesgue: set is not in the Borel class")
)
