package lebesgue_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mezura/interval"
	"github.com/katalvlaran/mezura/lebesgue"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleOuterMeasure
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Evaluate μ* across the symbolic class: a genuine interval, a reversed
//	(empty) one, a two-point set, and a ray.
//
// Use case:
//
//	The four canonical values of the construction, computed in closed form.
func ExampleOuterMeasure() {
	for _, s := range []lebesgue.Set{
		lebesgue.Ico{Lo: 2, Hi: 5},
		lebesgue.Ico{Lo: 5, Hi: 2},
		lebesgue.Union{lebesgue.Pt{X: 2}, lebesgue.Pt{X: 7}},
		lebesgue.Iio{Hi: 0},
	} {
		m, _ := lebesgue.OuterMeasure(s, nil)
		fmt.Printf("μ*(%v) = %v\n", s, m)
	}
	// Output:
	// μ*([2,5)) = 3
	// μ*([5,2)) = 0
	// μ*({2} ∪ {7}) = 0
	// μ*((-∞,0)) = +∞
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleVerifyCover
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Check two candidate covers of [2, 5): an overlapping pair that genuinely
//	covers, and a gapped pair that does not — the supremum chase stalls at
//	the gap even though the gapped pair carries enough total mass.
//
// Use case:
//
//	The "no countable cover can sum below b − a" half of the interval
//	measure identity, run as an algorithm.
func ExampleVerifyCover() {
	target := interval.Interval{Lo: 2, Hi: 5}

	good := interval.CoverOf(interval.Interval{Lo: 2, Hi: 3.5}, interval.Interval{Lo: 3, Hi: 5})
	if err := lebesgue.VerifyCover(target, good, nil); err == nil {
		fmt.Println("overlapping pair: covers")
	}

	gapped := interval.CoverOf(interval.Interval{Lo: 2, Hi: 3}, interval.Interval{Lo: 4, Hi: 6})
	if err := lebesgue.VerifyCover(target, gapped, nil); errors.Is(err, lebesgue.ErrShortCover) {
		fmt.Println("gapped pair: short")
	}
	// Output:
	// overlapping pair: covers
	// gapped pair: short
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleMinCoverLength
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Run the infimum-over-covers construction on explicit candidates for
//	[2, 5). The padded cover carries mass 5, the tight self-cover mass 3;
//	the infimum lands on the target's own length.
func ExampleMinCoverLength() {
	target := interval.Interval{Lo: 2, Hi: 5}
	covers := []interval.Cover{
		interval.Singleton(interval.Interval{Lo: 1, Hi: 6}),
		interval.Singleton(target),
	}

	m, _ := lebesgue.MinCoverLength(target, covers, nil)
	fmt.Println(m)
	// Output:
	// 3
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleIsMeasurable
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Every ray is Carathéodory measurable: the four-way split of any test
//	interval against the boundary is exactly additive.
func ExampleIsMeasurable() {
	ok, _ := lebesgue.IsMeasurable(lebesgue.Iio{Hi: 0.5}, nil)
	fmt.Println(ok)
	// Output:
	// true
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleMeasure
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The Lebesgue measure on Borel sets: an open interval measures like its
//	half-open closure (the boundary is null), and a singleton is null.
func ExampleMeasure() {
	open, _ := lebesgue.Measure(lebesgue.Ioo{Lo: 2, Hi: 5}, nil)
	point, _ := lebesgue.Measure(lebesgue.Pt{X: 2}, nil)

	fmt.Printf("measure((2,5)) = %v\n", open)
	fmt.Printf("measure({2})   = %v\n", point)
	// Output:
	// measure((2,5)) = 3
	// measure({2})   = 0
}
