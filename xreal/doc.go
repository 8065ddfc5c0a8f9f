// Package xreal implements the extended nonnegative reals [0, +∞] — the
// value codomain of outer measures.
//
// 🚀 What is xreal?
//
//	The half-line with a point at infinity, as a value type:
//	  • total order, with +∞ on top
//	  • monotone, associative addition; +∞ absorbs
//	  • total truncated subtraction: x − y clamps at 0 whenever y ≥ x
//	  • suprema over finite families
//	  • lazy countable sums, defined as the supremum of partial sums
//
// ✨ Why a dedicated type?
//
//   - Measures must never go negative, and must survive infinite mass;
//     raw float64 arithmetic guarantees neither.
//   - Countable sums of nonnegative terms always converge in [0, +∞], so
//     SumSeries is total: no NaNs, no divergence, no error returns.
//
// ⚙️ Usage:
//
//	v := xreal.MustNew(2.5)
//	w := v.Add(xreal.Inf())        // +∞
//	d := v.Sub(xreal.MustNew(9))   // 0 (truncated)
//
//	geo := xreal.Series(func(i int) xreal.Value {
//	  return xreal.MustNew(math.Pow(0.5, float64(i)))
//	})
//	total := xreal.SumSeries(geo, 4096, 1e-12) // ≈ 2
//
// All operations are pure and deterministic; Value is safe to copy and
// compare by arithmetic (not by ==, which is too strict around +∞/rounding).
package xreal
