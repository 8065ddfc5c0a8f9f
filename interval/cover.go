package interval

import "github.com/katalvlaran/mezura/xreal"

// Cover is a lazily enumerated countable sequence of half-open intervals,
// indexed by the naturals. Terms are produced on demand, so a Cover may be
// conceptually infinite without being materialized. Empty and repeated
// members are legal.
type Cover func(i int) Interval

// CoverOf adapts a finite list of intervals into a Cover, padded with empty
// intervals beyond the end of the list. The padding carries zero length, so
// a finite cover and its padded countable form have the same total length.
func CoverOf(ivs ...Interval) Cover {
	return func(i int) Interval {
		if i < 0 || i >= len(ivs) {
			return Empty()
		}

		return ivs[i]
	}
}

// Singleton is the one-interval cover {iv, ∅, ∅, ...} — the cover that
// witnesses the "≤" half of the interval-measure identity.
func Singleton(iv Interval) Cover { return CoverOf(iv) }

// TotalLength evaluates Σᵢ L(cᵢ) as the supremum of partial sums over
// finite prefixes (see xreal.SumSeries for the enumeration budget and tail
// cutoff semantics). A nil cover errors with ErrNilCover.
func TotalLength(c Cover, maxTerms int, eps float64) (xreal.Value, error) {
	if c == nil {
		return xreal.Zero(), ErrNilCover
	}

	sum := xreal.SumSeries(func(i int) xreal.Value { return c(i).Length() }, maxTerms, eps)

	return sum, nil
}
