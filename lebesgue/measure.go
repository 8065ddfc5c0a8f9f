package lebesgue

import (
	"math"

	"github.com/katalvlaran/mezura/interval"
	"github.com/katalvlaran/mezura/xreal"
)

// IsBorel reports whether s belongs to the Borel class this package works
// on. The symbolic class is Borel by construction — it is generated by the
// rays (-∞, c) under complement and countable union:
//
//	[c, ∞)  = ℝ \ (-∞, c)
//	[a, b)  = (-∞, b) ∩ [a, ∞)
//	(a, b)  = ⋃ₙ [a + (b−a)/2ⁿ⁺¹, b)
//	{x}     = ⋂ₙ [x, x + 1/n)   (complement of a countable union)
//
// and a generated sigma-algebra is contained in every sigma-algebra
// containing the generators. Only nil falls outside the class.
func IsBorel(s Set) bool { return s != nil }

// Measure — the Lebesgue measure, defined as the restriction of the outer
// measure to the Borel class.
//
// Description:
//
//	Every ray is Carathéodory measurable (IsMeasurable's four-way split),
//	the Carathéodory-measurable sets form a sigma-algebra, and the Borel
//	sigma-algebra is generated by rays — so Borel ⊆ measurable, and on
//	Borel sets the outer measure is a genuine (countably additive) measure.
//	The restriction is definitional: no claim about the full outer-measure
//	completion is made or used.
//
// Derived values exercised in the test suite:
//   - Measure([a,b)) = b − a
//   - Measure({x}) = 0, also obtainable as the truncated difference
//     Measure([x,b)) − Measure((x,b)) of two interval measures
//   - Measure((a,b)) = b − a, the supremum of the monotone family of
//     half-open approximants [a + (b−a)/2ⁿ⁺¹, b) (see leftApproximant)
//   - Measure(left) + Measure(right) = b − a for any split of [a,b)
//
// Errors: ErrNilSet (via validation), ErrNotBorel, ErrBadSet, ErrBadOptions.
func Measure(s Set, opts *Options) (xreal.Value, error) {
	if !IsBorel(s) {
		return xreal.Zero(), ErrNotBorel
	}

	return OuterMeasure(s, opts)
}

// leftApproximant is the n-th member of the monotone family of half-open
// intervals exhausting the open interval (Lo, Hi) from inside:
//
//	[Lo + w·2^−(n+1), Hi)  with  w = Hi − Lo.
//
// The family is increasing, its union is exactly (Lo, Hi), and the supremum
// of its lengths is w — the monotone limiting argument behind
// Measure((a,b)) = b − a.
func leftApproximant(o Ioo, n int) interval.Interval {
	if o.Lo >= o.Hi {
		return interval.Empty()
	}
	w := o.Hi - o.Lo

	return interval.Interval{Lo: o.Lo + w*math.Pow(0.5, float64(n+1)), Hi: o.Hi}
}
