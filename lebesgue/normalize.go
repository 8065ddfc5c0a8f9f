// Package lebesgue: canonical decomposition of symbolic sets.
//
// Every member of the set class normalizes to at most one lower ray, a
// sorted disjoint family of finite half-open intervals, and at most one
// upper ray. The decomposition is measure-equivalent, not set-equivalent:
// singletons vanish and open intervals widen to half-open ones, which
// changes the set only on a Lebesgue-null part that no measure value in
// this package can observe.
package lebesgue

import (
	"math"
	"sort"

	"github.com/katalvlaran/mezura/interval"
	"github.com/katalvlaran/mezura/xreal"
)

// pieces is the canonical form: low ray (-∞, lowHi) if low, then ivs
// (sorted, disjoint, nonempty, finite), then up ray [upLo, +∞) if up.
// The full line is represented as both rays with lowHi == upLo and no ivs.
type pieces struct {
	low   bool
	lowHi float64
	up    bool
	upLo  float64
	ivs   []interval.Interval
}

// rawPieces accumulates components before canonicalization.
type rawPieces struct {
	low   bool
	lowHi float64
	up    bool
	upLo  float64
	ivs   []interval.Interval
}

func (r *rawPieces) addInterval(lo, hi float64) {
	if lo >= hi {
		return
	}
	if math.IsInf(lo, -1) {
		r.addLowRay(hi)

		return
	}
	if math.IsInf(hi, 1) {
		r.addUpRay(lo)

		return
	}
	r.ivs = append(r.ivs, interval.Interval{Lo: lo, Hi: hi})
}

func (r *rawPieces) addLowRay(hi float64) {
	if math.IsInf(hi, -1) {
		return // (-∞, -∞) is empty
	}
	if !r.low || hi > r.lowHi {
		r.low, r.lowHi = true, hi
	}
}

func (r *rawPieces) addUpRay(lo float64) {
	if math.IsInf(lo, 1) {
		return // [+∞, +∞) is empty
	}
	if !r.up || lo < r.upLo {
		r.up, r.upLo = true, lo
	}
}

// gather walks the symbolic structure of s into r. Seq members are produced
// on demand, validated as they appear, and enumerated up to opt.MaxTerms.
func gather(s Set, opt Options, r *rawPieces) error {
	switch v := s.(type) {
	case nil:
		return ErrNilSet
	case Empty:
	case Ico:
		r.addInterval(v.Lo, v.Hi)
	case Ioo:
		// differs from [Lo, Hi) by the null set {Lo}
		r.addInterval(v.Lo, v.Hi)
	case Pt:
		// singletons are null
	case Iio:
		r.addLowRay(v.Hi)
	case Ici:
		r.addUpRay(v.Lo)
	case Union:
		for _, p := range v {
			if err := gather(p, opt, r); err != nil {
				return err
			}
		}
	case Seq:
		if v == nil {
			return ErrNilSet
		}
		for i := 0; i < opt.MaxTerms; i++ {
			p := v(i)
			if p == nil {
				return ErrNilSet
			}
			if err := validateSet(p); err != nil {
				return err
			}
			if err := gather(p, opt, r); err != nil {
				return err
			}
		}
	}

	return nil
}

// normalize produces the canonical form of s under the numeric policy opt.
func normalize(s Set, opt Options) (pieces, error) {
	var r rawPieces
	if err := gather(s, opt, &r); err != nil {
		return pieces{}, err
	}

	return r.canon(), nil
}

// canon sorts, merges and ray-absorbs the accumulated components.
// Overlapping and touching intervals merge; intervals reaching into a ray
// extend it. Invariant on the result: components are pairwise disjoint and
// ordered low ray < ivs < up ray.
func (r *rawPieces) canon() pieces {
	// Degenerate full-line rays first: (-∞, +∞) from either side.
	if r.low && math.IsInf(r.lowHi, 1) {
		return fullLine()
	}
	if r.up && math.IsInf(r.upLo, -1) {
		return fullLine()
	}

	out := pieces{low: r.low, lowHi: r.lowHi, up: r.up, upLo: r.upLo}
	if out.low && out.up && out.upLo <= out.lowHi {
		return fullLine()
	}

	sort.Slice(r.ivs, func(i, j int) bool {
		if r.ivs[i].Lo != r.ivs[j].Lo {
			return r.ivs[i].Lo < r.ivs[j].Lo
		}

		return r.ivs[i].Hi < r.ivs[j].Hi
	})

	merged := make([]interval.Interval, 0, len(r.ivs))
	for _, iv := range r.ivs {
		if iv.IsEmpty() {
			continue
		}
		// Absorb into the low ray while the interval touches it.
		if out.low && iv.Lo <= out.lowHi {
			if iv.Hi > out.lowHi {
				out.lowHi = iv.Hi
			}

			continue
		}
		// Merge with the previous interval when overlapping or touching.
		if n := len(merged); n > 0 && iv.Lo <= merged[n-1].Hi {
			if iv.Hi > merged[n-1].Hi {
				merged[n-1].Hi = iv.Hi
			}

			continue
		}
		merged = append(merged, iv)
	}

	// Absorb the tail into the up ray.
	if out.up {
		for len(merged) > 0 {
			last := merged[len(merged)-1]
			if last.Hi < out.upLo {
				break
			}
			if last.Lo < out.upLo {
				out.upLo = last.Lo
			}
			merged = merged[:len(merged)-1]
		}
		if out.low && out.upLo <= out.lowHi {
			return fullLine()
		}
	}

	out.ivs = merged

	return out
}

func fullLine() pieces {
	return pieces{low: true, lowHi: 0, up: true, upLo: 0}
}

// measure returns the total length of the pieces: +∞ as soon as a ray is
// present, otherwise the exact finite sum of interval lengths.
func (p pieces) measure() xreal.Value {
	if p.low || p.up {
		return xreal.Inf()
	}

	return sumLengths(p.ivs)
}

// clipTo intersects the pieces with the test interval t, yielding a sorted
// disjoint family of finite intervals.
func (p pieces) clipTo(t interval.Interval) []interval.Interval {
	if t.IsEmpty() {
		return nil
	}
	var out []interval.Interval
	if p.low {
		if iv := (interval.Interval{Lo: t.Lo, Hi: math.Min(p.lowHi, t.Hi)}); !iv.IsEmpty() {
			out = append(out, iv)
		}
	}
	for _, iv := range p.ivs {
		if x := iv.Intersect(t); !x.IsEmpty() {
			out = append(out, x)
		}
	}
	if p.up {
		if iv := (interval.Interval{Lo: math.Max(p.upLo, t.Lo), Hi: t.Hi}); !iv.IsEmpty() {
			out = append(out, iv)
		}
	}

	return out
}

// gapsWithin returns the complement of the pieces inside t, as a sorted
// disjoint family of finite intervals. Together with clipTo(t) it partitions
// t exactly: Σ clipTo + Σ gapsWithin = length(t).
func (p pieces) gapsWithin(t interval.Interval) []interval.Interval {
	if t.IsEmpty() {
		return nil
	}
	cur := t.Lo
	var out []interval.Interval
	for _, iv := range p.clipTo(t) {
		if gap := (interval.Interval{Lo: cur, Hi: iv.Lo}); !gap.IsEmpty() {
			out = append(out, gap)
		}
		if iv.Hi > cur {
			cur = iv.Hi
		}
	}
	if gap := (interval.Interval{Lo: cur, Hi: t.Hi}); !gap.IsEmpty() {
		out = append(out, gap)
	}

	return out
}

// complement returns the canonical form of ℝ minus the pieces (up to null
// sets: boundaries are not tracked).
func (p pieces) complement() pieces {
	type comp struct{ lo, hi float64 }
	var comps []comp
	if p.low {
		comps = append(comps, comp{math.Inf(-1), p.lowHi})
	}
	for _, iv := range p.ivs {
		comps = append(comps, comp{iv.Lo, iv.Hi})
	}
	if p.up {
		comps = append(comps, comp{p.upLo, math.Inf(1)})
	}

	var r rawPieces
	if len(comps) == 0 {
		return fullLine()
	}
	if first := comps[0]; !math.IsInf(first.lo, -1) {
		r.addLowRay(first.lo)
	}
	for i := 0; i+1 < len(comps); i++ {
		r.addInterval(comps[i].hi, comps[i+1].lo)
	}
	if last := comps[len(comps)-1]; !math.IsInf(last.hi, 1) {
		r.addUpRay(last.hi)
	}

	return r.canon()
}

// toSet converts canonical pieces back to a symbolic Set.
func (p pieces) toSet() Set {
	var parts Union
	if p.low {
		if p.up && p.upLo <= p.lowHi {
			// full line: (-∞, c) ∪ [c, +∞)
			return Union{Iio{Hi: p.lowHi}, Ici{Lo: p.lowHi}}
		}
		parts = append(parts, Iio{Hi: p.lowHi})
	}
	for _, iv := range p.ivs {
		parts = append(parts, Ico{Lo: iv.Lo, Hi: iv.Hi})
	}
	if p.up {
		parts = append(parts, Ici{Lo: p.upLo})
	}
	switch len(parts) {
	case 0:
		return Empty{}
	case 1:
		return parts[0]
	default:
		return parts
	}
}

func sumLengths(ivs []interval.Interval) xreal.Value {
	var acc xreal.Value
	for _, iv := range ivs {
		acc = acc.Add(iv.Length())
	}

	return acc
}
