package interval

import (
	"math"

	"github.com/katalvlaran/mezura/xreal"
)

// Interval is the half-open interval [Lo, Hi) of the real line.
// Any Interval with Lo ≥ Hi denotes the empty set; the canonical empty
// interval is the zero value. Infinite endpoints are tolerated (Hi = +Inf
// gives an interval of infinite length) though the measure machinery mostly
// produces finite ones.
type Interval struct {
	Lo, Hi float64
}

// New builds [lo, hi). NaN endpoints are rejected with ErrNaNEndpoint;
// lo ≥ hi is legal and denotes ∅.
func New(lo, hi float64) (Interval, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return Interval{}, ErrNaNEndpoint
	}

	return Interval{Lo: lo, Hi: hi}, nil
}

// Empty returns the canonical empty interval.
func Empty() Interval { return Interval{} }

// IsEmpty reports whether the interval denotes ∅.
func (iv Interval) IsEmpty() bool { return iv.Lo >= iv.Hi }

// Length returns max(0, Hi − Lo) as an extended nonnegative real.
// Degenerate intervals have length 0; Hi = +Inf gives +∞.
func (iv Interval) Length() xreal.Value {
	if iv.IsEmpty() {
		return xreal.Zero()
	}

	return xreal.Value(iv.Hi - iv.Lo)
}

// Contains reports Lo ≤ x < Hi.
func (iv Interval) Contains(x float64) bool {
	return iv.Lo <= x && x < iv.Hi
}

// Intersect returns the (possibly empty) intersection of two half-open
// intervals, which is again half-open.
func (iv Interval) Intersect(o Interval) Interval {
	return Interval{Lo: math.Max(iv.Lo, o.Lo), Hi: math.Min(iv.Hi, o.Hi)}
}

// ClipAbove returns [Lo, min(Hi, x)) — the part of the interval below x.
func (iv Interval) ClipAbove(x float64) Interval {
	return Interval{Lo: iv.Lo, Hi: math.Min(iv.Hi, x)}
}

// SplitAt cuts the interval at m into two adjacent half-open parts
// [Lo, m) and [m, Hi). The cut point is clamped into [Lo, Hi], so the two
// parts always partition the interval and their lengths always sum to
// Length(): the additivity round-trip holds for every m.
func (iv Interval) SplitAt(m float64) (left, right Interval) {
	if iv.IsEmpty() {
		return Empty(), Empty()
	}
	m = math.Max(iv.Lo, math.Min(iv.Hi, m))

	return Interval{Lo: iv.Lo, Hi: m}, Interval{Lo: m, Hi: iv.Hi}
}

// Equal reports endpoint equality within eps; all empty intervals are equal
// to each other regardless of their stored endpoints.
func (iv Interval) Equal(o Interval, eps float64) bool {
	if iv.IsEmpty() || o.IsEmpty() {
		return iv.IsEmpty() == o.IsEmpty()
	}

	return math.Abs(iv.Lo-o.Lo) <= eps && math.Abs(iv.Hi-o.Hi) <= eps
}
