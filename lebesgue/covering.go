package lebesgue

import (
	"fmt"

	"github.com/katalvlaran/mezura/interval"
	"github.com/katalvlaran/mezura/xreal"
)

// VerifyCover — the covering / subadditivity engine.
//
// Description:
//
//	Checks that a countable family of half-open intervals (cᵢ) genuinely
//	covers the target [a, b) and carries at least b − a of total mass. This
//	is the hard "≥" half of μ*([a,b)) = b − a: no countable interval cover
//	can sum to less than the true length.
//
// Algorithm (supremum chasing):
//  1. Define the covered-length functional
//     s(x) = Σᵢ L(cᵢ ∩ [a, x))   (see CoveredUpTo)
//     — the mass of the cover that lands inside the target and below x.
//     Clipping to the target matters: mass lying left of a is not progress,
//     so a family disjoint from [a, b) scores s ≡ 0 and stalls at once.
//     s is monotone in x.
//  2. Let M = { x ∈ [a, b] : x − a ≤ s(x) + eps } — the points up to which
//     the cover has kept pace with progress. a ∈ M always (0 ≤ s(a)).
//  3. Compute x* = sup M by bisection. Bisection over a monotone membership
//     predicate is the executable stand-in for the least-upper-bound
//     property of the reals (order completeness is the one non-constructive
//     ingredient of the argument; float64 only approximates it, so the
//     supremum is located to an eps-width bracket).
//  4. If the family covers [a, b), then x* = b: were x* < b, some cᵢ would
//     contain x* and extend strictly past it, so s keeps pace slightly
//     beyond x*, contradicting maximality. A stalled x* < b therefore
//     witnesses a genuine gap near x* — reported as ErrShortCover.
//  5. Finally s(b) ≥ b − a is checked directly; since s(b) ≤ Σᵢ L(cᵢ), the
//     cover's total length dominates the target's length.
//
// Edge cases: empty targets are trivially covered (nil error); covers with
// repeated or empty members are harmless (they contribute 0 or duplicate
// mass); an infinite-mass prefix short-circuits the check to success.
//
// Complexity: O(MaxTerms · log((b−a)/eps)) cover-term evaluations.
//
// Errors: ErrNilCover, ErrUnbounded, ErrBadOptions, ErrShortCover (wrapped
// with the stall location; match with errors.Is).
func VerifyCover(target interval.Interval, c interval.Cover, opts *Options) error {
	opt, err := resolveOptions(opts)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrNilCover
	}
	if target.IsEmpty() {
		return nil
	}
	if target.Length().IsInf() {
		return ErrUnbounded
	}

	a, b := target.Lo, target.Hi
	sOf := func(x float64) xreal.Value {
		return coveredUpTo(c, a, x, opt)
	}
	member := func(x float64) bool {
		sx := sOf(x)
		if sx.IsInf() {
			return true
		}

		return x-a <= sx.Float64()+opt.Eps
	}

	// Tolerance for locating the supremum: strictly finer than the progress
	// slack so a genuine stall is distinguishable from bracket width.
	tol := opt.Eps / 4
	if tol <= 0 {
		tol = 1e-15 * (1 + b - a)
	}
	xstar := supremum(a, b, member, tol)
	if b-xstar > 4*tol+opt.Eps {
		return fmt.Errorf("covered-progress supremum stalls at x=%g before b=%g: %w", xstar, b, ErrShortCover)
	}

	sb := sOf(b)
	if sb.IsInf() {
		return nil
	}
	if sb.Float64() < (b-a)-opt.Eps {
		return fmt.Errorf("covered mass %g below target length %g: %w", sb.Float64(), b-a, ErrShortCover)
	}

	return nil
}

// CoveredUpTo evaluates the covered-length functional
// s(x) = Σᵢ L(cᵢ ∩ [from, x)) — the mass the cover places inside the
// target and below x, as a lazily enumerated countable sum. Only mass at or
// past from counts: an interval lying entirely left of from contributes
// nothing, which is what makes s a coverage witness rather than a plain
// length tally.
//
// Monotone in x; tolerant of empty and repeated cover members.
func CoveredUpTo(c interval.Cover, from, x float64, opts *Options) (xreal.Value, error) {
	opt, err := resolveOptions(opts)
	if err != nil {
		return xreal.Zero(), err
	}
	if c == nil {
		return xreal.Zero(), ErrNilCover
	}

	return coveredUpTo(c, from, x, opt), nil
}

func coveredUpTo(c interval.Cover, from, x float64, opt Options) xreal.Value {
	window := interval.Interval{Lo: from, Hi: x}

	return xreal.SumSeries(func(i int) xreal.Value {
		return c(i).Intersect(window).Length()
	}, opt.MaxTerms, opt.Eps)
}

// supremum locates sup { x ∈ [lo, hi] : member(x) } by bisection, assuming
// member(lo) holds and member is downward closed on [lo, hi] (true for the
// covered-progress set: s keeps pace below any point it keeps pace at).
// The result is within tol of the true supremum.
func supremum(lo, hi float64, member func(float64) bool, tol float64) float64 {
	if member(hi) {
		return hi
	}
	for hi-lo > tol {
		mid := lo + (hi-lo)/2
		if member(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo
}
