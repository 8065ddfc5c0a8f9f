package lebesgue

import "github.com/katalvlaran/mezura/interval"

// Test-only exports of private helpers. Production code must not use these.

// SplitByRayForTest exposes the four-way ray case split.
func SplitByRayForTest(t interval.Interval, c float64) (below, above interval.Interval) {
	return splitByRay(t, c)
}

// LeftApproximantForTest exposes the monotone half-open approximants of an
// open interval.
func LeftApproximantForTest(o Ioo, n int) interval.Interval {
	return leftApproximant(o, n)
}

// SupremumForTest exposes the bisection least-upper-bound primitive.
func SupremumForTest(lo, hi float64, member func(float64) bool, tol float64) float64 {
	return supremum(lo, hi, member, tol)
}
