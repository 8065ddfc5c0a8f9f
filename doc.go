// Package mezura is an executable rendition of the Lebesgue measure
// construction on the real line — from interval lengths to a full Borel
// measure, built the classical way.
//
// 🚀 What is mezura?
//
//	A small, deterministic, side-effect-free library that walks the whole
//	chain of the construction:
//		• Extended nonnegative reals: the value codomain, with +∞ and lazy sums
//		• Half-open intervals [a,b): the generating family and its length
//		• Covers: lazy countable interval families and their total length
//		• Outer measure: infimum over countable interval covers
//		• Covering engine: the supremum-chasing subadditivity argument, run
//		  as an actual algorithm over a bisection-based supremum
//		• Carathéodory filter: which sets split every test set additively
//		• Lebesgue measure: the outer measure restricted to the Borel class
//
// ✨ Why choose mezura?
//
//   - Faithful — each step mirrors the textbook construction, including the
//     hard covering/compactness argument, not just the final formulas
//   - Honest about floats – every equality is epsilon-qualified, every
//     truncated countable sum is a sound lower bound
//   - Pure Go – no cgo, deterministic, no global state
//   - Checkable – ships a scenario runner (cmd/mezura) that verifies
//     expected measures from a YAML file
//
// The packages, in dependency order:
//
//	xreal/    — extended nonnegative reals: +∞, clamped subtraction, lazy series
//	interval/ — half-open intervals [a,b) and lazy countable covers
//	lebesgue/ — outer measure, covering engine, Carathéodory filter, measure
//
// Quick taste:
//
//	m, _ := lebesgue.OuterMeasure(lebesgue.Ico{Lo: 2, Hi: 5}, nil)
//	fmt.Println(m) // 3
//
// See each package's doc.go and example_test.go for walkthroughs.
package mezura
