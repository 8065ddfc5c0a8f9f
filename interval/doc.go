// Package interval implements half-open real intervals [a, b) and lazy
// countable covers made of them — the generating family of the Lebesgue
// construction.
//
// 🚀 What is interval?
//
//	A tiny value-type layer with exactly the operations the measure
//	machinery needs:
//	  • Interval{Lo, Hi} meaning [Lo, Hi); degenerate (Lo ≥ Hi) is the empty set
//	  • Length() = max(0, Hi − Lo) as an extended nonnegative real
//	  • Contains, Intersect, ClipAbove, SplitAt — closed on the type
//	  • Cover: a lazily enumerated countable sequence of intervals
//	  • TotalLength: Σᵢ L(cᵢ) as a supremum of partial sums
//
// ✨ Conventions:
//
//   - Any Lo ≥ Hi denotes ∅; callers never need to pre-normalize, every
//     operation tolerates degenerate inputs and yields length 0 for them.
//   - Covers tolerate repeated and empty members: both contribute length 0
//     or duplicate mass, neither breaks any downstream argument.
//   - Finite covers are padded with empty intervals beyond their end, so a
//     finite and an infinite cover are consumed identically.
//
// ⚙️ Usage:
//
//	iv, _ := interval.New(2, 5)            // [2, 5)
//	left, right := iv.SplitAt(3)           // [2, 3) and [3, 5)
//	c := interval.CoverOf(left, right)     // lazy 2-interval cover
//	sum, _ := interval.TotalLength(c, 64, 1e-12) // 3
//
// All operations are pure; Interval is safe to copy and compare by field.
package interval
