// Package lebesgue constructs the Lebesgue measure on the real line the
// classical way: interval lengths → outer measure by infimum over countable
// covers → Carathéodory measurability → restriction to the Borel class.
//
// 🚀 What is lebesgue?
//
//	The four stages of the construction, each exposed as a pure function:
//	  • OuterMeasure(S)  — μ*(S): infimum over countable interval covers of
//	    the sum of interval lengths
//	  • VerifyCover      — the covering/subadditivity engine: checks that a
//	    candidate countable cover of [a,b) really carries at least b−a of
//	    mass, by chasing the supremum of the covered-progress set
//	  • IsMeasurable(E)  — the Carathéodory filter: does E split every test
//	    set additively, μ*(T) = μ*(T∩E) + μ*(T\E)?
//	  • Measure(B)       — the Lebesgue measure: μ* restricted to Borel sets
//
// 🧮 Sets:
//
//	Arbitrary subsets of ℝ admit no computable infimum over covers, so the
//	package evaluates the construction on a closed symbolic class — exactly
//	the class the Borel generation argument needs:
//	  Empty, Ico{a,b} = [a,b), Ioo{a,b} = (a,b), Pt{x} = {x},
//	  Iio{c} = (-∞,c), Ici{c} = [c,∞), finite Union, countable Seq.
//	Every member normalizes (up to Lebesgue-null discrepancies, which the
//	measure cannot see) to a canonical disjoint family of half-open pieces;
//	measures on that form are exact closed-form sums. The infimum-over-covers
//	construction itself stays operational through VerifyCover and
//	MinCoverLength, which consume explicit lazy covers.
//
// ⚖️ Numeric honesty:
//
//   - float64 is not a complete ordered field; the least-upper-bound
//     primitive of the covering argument is realized by bisection to an
//     Options.Eps tolerance, and every equality claim is eps-qualified.
//   - Countable sums and countable unions are enumerated up to
//     Options.MaxTerms; by monotonicity every truncation is a sound lower
//     bound, and geometric tails settle within budget.
//
// ⚙️ Usage:
//
//	m, err := lebesgue.OuterMeasure(lebesgue.Ico{Lo: 2, Hi: 5}, nil) // 3
//	ok, err := lebesgue.IsMeasurable(lebesgue.Iio{Hi: 0.5}, nil)     // true
//	m, err = lebesgue.Measure(lebesgue.Ioo{Lo: 2, Hi: 5}, nil)       // 3
//
// All functions are deterministic and side-effect free: no logging, no
// panics on user input — only the sentinel errors of this package, matched
// with errors.Is.
package lebesgue
