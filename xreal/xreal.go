package xreal

import (
	"errors"
	"math"
	"strconv"
)

var (
	// ErrNegative indicates an attempt to build a Value from a negative float.
	ErrNegative = errors.New("xreal: value must be nonnegative")
	// ErrNaN indicates an attempt to build a Value from NaN.
	ErrNaN = errors.New("xreal: value must not be NaN")
)

// Value is an extended nonnegative real: a float64 constrained to [0, +∞].
// The zero value is 0. +∞ is a first-class member (see Inf), totally ordered
// above every finite value, and absorbing under addition.
type Value float64

// New builds a Value from f. Negative inputs return ErrNegative, NaN returns
// ErrNaN. +Inf is accepted and maps to Inf().
func New(f float64) (Value, error) {
	if math.IsNaN(f) {
		return 0, ErrNaN
	}
	if f < 0 {
		return 0, ErrNegative
	}

	return Value(f), nil
}

// MustNew is New that panics on invalid input. Reserved for constants and
// tests where a negative/NaN argument is a programmer error.
func MustNew(f float64) Value {
	v, err := New(f)
	if err != nil {
		panic(err)
	}

	return v
}

// Zero returns the additive identity.
func Zero() Value { return 0 }

// Inf returns the point at infinity.
func Inf() Value { return Value(math.Inf(1)) }

// IsInf reports whether v is +∞.
func (v Value) IsInf() bool { return math.IsInf(float64(v), 1) }

// Float64 unwraps v. +∞ unwraps to math.Inf(1).
func (v Value) Float64() float64 { return float64(v) }

// Add returns v + w. +∞ absorbs: if either operand is infinite the result is
// +∞. Addition is commutative, associative and monotone in both operands.
func (v Value) Add(w Value) Value {
	if v.IsInf() || w.IsInf() {
		return Inf()
	}

	return v + w
}

// Sub returns the truncated difference v − w, clamped at 0 whenever w ≥ v.
// By the clamping convention ∞ − ∞ = 0, while ∞ − finite = ∞. Sub is total:
// it never produces a negative value and never fails.
func (v Value) Sub(w Value) Value {
	if w >= v {
		return 0
	}
	if v.IsInf() {
		return Inf()
	}

	return v - w
}

// Less reports v < w in the total order of [0, +∞].
func (v Value) Less(w Value) bool { return v < w }

// Cmp returns -1, 0 or +1 as v is less than, equal to, or greater than w.
// Two infinities compare equal.
func (v Value) Cmp(w Value) int {
	switch {
	case v < w:
		return -1
	case v > w:
		return 1
	default:
		return 0
	}
}

// ApproxEqual reports |v − w| ≤ eps, with infinities equal only to each other.
func (v Value) ApproxEqual(w Value, eps float64) bool {
	if v.IsInf() || w.IsInf() {
		return v.IsInf() == w.IsInf()
	}

	return math.Abs(float64(v-w)) <= eps
}

// String renders finite values with minimal digits and +∞ as "+∞".
func (v Value) String() string {
	if v.IsInf() {
		return "+∞"
	}

	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

// Sup returns the supremum (maximum) of vs, or 0 for an empty family —
// the supremum of the empty set in [0, +∞] is the bottom element.
func Sup(vs ...Value) Value {
	var m Value
	for _, v := range vs {
		if v > m {
			m = v
		}
	}

	return m
}

// Min returns the infimum (minimum) of vs, or +∞ for an empty family —
// the infimum of the empty set in [0, +∞] is the top element. This is the
// convention that makes "infimum over covers" return +∞ when no cover exists.
func Min(vs ...Value) Value {
	m := Inf()
	for _, v := range vs {
		if v < m {
			m = v
		}
	}

	return m
}
