package lebesgue

import (
	"math"
	"sort"

	"github.com/katalvlaran/mezura/interval"
)

// IsMeasurable — the Carathéodory measurability filter.
//
// Description:
//
//	E is Carathéodory measurable when it splits every test set additively:
//	  μ*(T) = μ*(T ∩ E) + μ*(T \ E)   for every T.
//	Subadditivity gives "≤" for free, so the filter really checks that E
//	never cuts a test set into pieces whose outer measures overshoot.
//
// Executable form:
//
//	The split identity is checked exactly on a family of half-open probe
//	intervals T: the intervals induced by E's own boundary points (where a
//	violation would have to show up) plus Options.Probes evenly spaced
//	intervals across E's support, plus one interval spanning it whole.
//	T ∩ E and T \ E are computed in closed form on the canonical
//	decomposition, so each side of the identity is an exact finite sum.
//
//	Rays (-∞, c) take a dedicated path: each probe [a, b) is split against
//	c by the explicit four-way case analysis (entirely below c, entirely
//	above, split by c, or empty) and the two pieces' lengths are compared
//	with the probe's own length.
//
// The measurable class is closed under complement (the defining identity
// is symmetric in E and its complement) and countable union (the limiting
// subadditivity argument); both closures are exercised in the test suite
// via Complement and Seq.
//
// Errors: ErrNilSet, ErrBadSet, ErrBadOptions.
func IsMeasurable(e Set, opts *Options) (bool, error) {
	opt, err := resolveOptions(opts)
	if err != nil {
		return false, err
	}
	if err = validateSet(e); err != nil {
		return false, err
	}

	if ray, ok := e.(Iio); ok {
		return rayMeasurable(ray.Hi, opt), nil
	}

	p, err := normalize(e, opt)
	if err != nil {
		return false, err
	}

	for _, t := range probeIntervals(p, opt) {
		in := sumLengths(p.clipTo(t))
		out := sumLengths(p.gapsWithin(t))
		if !in.Add(out).ApproxEqual(t.Length(), opt.Eps) {
			return false, nil
		}
	}

	return true, nil
}

// rayMeasurable checks the ray (-∞, c) by the four-way case split on each
// probe interval: the two pieces must partition the probe exactly.
func rayMeasurable(c float64, opt Options) bool {
	probes := rayProbes(c, opt)
	for _, t := range probes {
		below, above := splitByRay(t, c)
		if !below.Length().Add(above.Length()).ApproxEqual(t.Length(), opt.Eps) {
			return false
		}
	}

	return true
}

// splitByRay performs the four-way case analysis of a test interval [a, b)
// against the ray (-∞, c):
//
//	T empty        → (∅, ∅)
//	c ≤ a          → (∅, T)      (T entirely above the ray boundary)
//	c ≥ b          → (T, ∅)      (T entirely below)
//	a < c < b      → ([a,c), [c,b))   (T split by c)
//
// The pieces are T ∩ (-∞,c) and T \ (-∞,c); in every case their lengths sum
// to b − a exactly.
func splitByRay(t interval.Interval, c float64) (below, above interval.Interval) {
	switch {
	case t.IsEmpty():
		return interval.Empty(), interval.Empty()
	case c <= t.Lo:
		return interval.Empty(), t
	case c >= t.Hi:
		return t, interval.Empty()
	default:
		return interval.Interval{Lo: t.Lo, Hi: c}, interval.Interval{Lo: c, Hi: t.Hi}
	}
}

// rayProbes builds test intervals around the ray boundary: entirely below,
// entirely above, straddling, degenerate, plus evenly spaced ones.
func rayProbes(c float64, opt Options) []interval.Interval {
	if math.IsInf(c, 0) {
		c = 0 // every probe lands in one case branch; any anchor will do
	}
	probes := []interval.Interval{
		{Lo: c - 3, Hi: c - 1},
		{Lo: c + 1, Hi: c + 3},
		{Lo: c - 1, Hi: c + 1},
		{Lo: c, Hi: c + 2},
		{Lo: c - 2, Hi: c},
		{Lo: c, Hi: c},
	}
	span := interval.Interval{Lo: c - 4, Hi: c + 4}
	probes = append(probes, spacedProbes(span, opt.Probes)...)

	return probes
}

// probeIntervals builds the test family for a canonical decomposition: the
// intervals between consecutive boundary points (padded on both ends), the
// whole-support interval, and evenly spaced intervals across the support.
func probeIntervals(p pieces, opt Options) []interval.Interval {
	bounds := p.boundaryPoints()
	if len(bounds) == 0 {
		bounds = []float64{0}
	}
	sort.Float64s(bounds)

	lo, hi := bounds[0]-1, bounds[len(bounds)-1]+1
	probes := []interval.Interval{{Lo: lo, Hi: hi}}
	cuts := append([]float64{lo}, bounds...)
	cuts = append(cuts, hi)
	for i := 0; i+1 < len(cuts); i++ {
		if t := (interval.Interval{Lo: cuts[i], Hi: cuts[i+1]}); !t.IsEmpty() {
			probes = append(probes, t)
		}
	}
	probes = append(probes, spacedProbes(interval.Interval{Lo: lo, Hi: hi}, opt.Probes)...)

	return probes
}

// boundaryPoints lists the finite endpoints of the canonical components.
func (p pieces) boundaryPoints() []float64 {
	var out []float64
	if p.low {
		out = append(out, p.lowHi)
	}
	for _, iv := range p.ivs {
		out = append(out, iv.Lo, iv.Hi)
	}
	if p.up {
		out = append(out, p.upLo)
	}

	return out
}

// spacedProbes cuts span into n evenly spaced test intervals.
func spacedProbes(span interval.Interval, n int) []interval.Interval {
	if span.IsEmpty() || n < 1 {
		return nil
	}
	step := (span.Hi - span.Lo) / float64(n)
	out := make([]interval.Interval, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, interval.Interval{Lo: span.Lo + float64(i)*step, Hi: span.Lo + float64(i+1)*step})
	}

	return out
}

// Complement returns the symbolic complement of s, computed on the
// canonical decomposition. Because the decomposition is measure-equivalent
// rather than set-equivalent, the result can differ from the set-theoretic
// complement on a Lebesgue-null set — invisible to every measure value.
//
// Together with IsMeasurable this exercises closure of the measurable class
// under complement: the Carathéodory identity is symmetric in E and ℝ \ E.
func Complement(s Set, opts *Options) (Set, error) {
	opt, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validateSet(s); err != nil {
		return nil, err
	}

	p, err := normalize(s, opt)
	if err != nil {
		return nil, err
	}

	return p.complement().toSet(), nil
}
