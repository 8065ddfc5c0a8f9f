package xreal

// Series is a lazily produced countable family of extended nonnegative
// reals, indexed by the naturals. Terms are produced on demand, so a Series
// may be conceptually infinite without ever being materialized.
type Series func(i int) Value

// tailRun is the number of consecutive strictly positive sub-threshold
// terms after which SumSeries treats the tail as settled.
const tailRun = 8

// SumSeries evaluates Σᵢ s(i) as the supremum of its partial sums over
// finite prefixes. Because every term is nonnegative the partial sums are
// monotone, so the supremum is well-defined in [0, +∞] and every truncation
// is a sound lower bound of the true sum.
//
// Enumeration stops at maxTerms, or earlier once tailRun consecutive
// strictly positive terms fall at or below eps (a settled geometric-style
// tail). Exact-zero terms are neutral for the cutoff: a series backed by a
// cover may hold empty members at any position, so zeros neither settle nor
// reset the run. An infinite term short-circuits to +∞ immediately.
//
// Complexity: O(maxTerms) calls to s, O(1) space.
func SumSeries(s Series, maxTerms int, eps float64) Value {
	var (
		acc   Value
		below int
	)
	for i := 0; i < maxTerms; i++ {
		t := s(i)
		if t.IsInf() {
			return Inf()
		}
		acc = acc.Add(t)
		switch {
		case t == 0:
			// neutral: says nothing about the tail
		case float64(t) <= eps:
			below++
			if below >= tailRun {
				return acc
			}
		default:
			below = 0
		}
	}

	return acc
}

// PartialSum returns the n-term prefix sum Σ_{i<n} s(i). Monotone in n;
// used to exhibit the supremum-of-partial-sums semantics directly.
func PartialSum(s Series, n int) Value {
	var acc Value
	for i := 0; i < n; i++ {
		t := s(i)
		if t.IsInf() {
			return Inf()
		}
		acc = acc.Add(t)
	}

	return acc
}
