package lebesgue

import (
	"errors"

	"github.com/katalvlaran/mezura/interval"
	"github.com/katalvlaran/mezura/xreal"
)

// OuterMeasure — Lebesgue outer measure μ*.
//
// Description:
//
//	μ*(S) = inf { Σᵢ L(cᵢ) : (cᵢ) a countable family of half-open intervals
//	with S ⊆ ⋃ᵢ cᵢ }, where L is the interval length. On the symbolic class
//	the infimum is attained and computable in closed form:
//
//	  μ*(∅) = 0                         (cover by empty intervals)
//	  μ*([a,b)) = b − a for a ≤ b       ("≤" from the one-interval cover;
//	                                     "≥" is the covering engine's
//	                                     supremum-chasing argument, see
//	                                     VerifyCover)
//	  μ*({x}) = 0                       (cover by [x, x+ε) for every ε)
//	  μ*((a,b)) = b − a                 (monotone half-open approximants
//	                                     from inside; see Measure)
//	  μ*((-∞,c)) = μ*([c,∞)) = +∞       (monotone, dominates [c−n, c) ∀n)
//	  unions                            (canonical disjoint decomposition;
//	                                     exact since every class member is
//	                                     Carathéodory measurable)
//
//	Countable unions (Seq) are enumerated up to opts.MaxTerms; the
//	truncation is a sound lower bound by monotonicity of μ*.
//
// Properties (established by the construction, exercised in tests):
//   - μ*(∅) = 0
//   - monotone: S ⊆ T ⇒ μ*(S) ≤ μ*(T)
//   - countably subadditive: μ*(⋃ᵢ Sᵢ) ≤ Σᵢ μ*(Sᵢ)
//
// Errors: ErrNilSet, ErrBadSet, ErrBadOptions.
func OuterMeasure(s Set, opts *Options) (xreal.Value, error) {
	opt, err := resolveOptions(opts)
	if err != nil {
		return xreal.Zero(), err
	}
	if err = validateSet(s); err != nil {
		return xreal.Zero(), err
	}

	p, err := normalize(s, opt)
	if err != nil {
		return xreal.Zero(), err
	}

	return p.measure(), nil
}

// MinCoverLength runs the infimum-over-covers construction on explicit
// candidates: each cover is first checked by VerifyCover, then its total
// length enters the infimum. Covers that fail to cover the target are
// skipped — they do not participate in the infimum, exactly as in the
// defining formula of μ*.
//
// Returns ErrNoCover when no candidate covers the target. For any target
// [a,b) with a ≤ b the result is ≥ b − a (the covering engine guarantees
// it), and the one-interval self-cover attains the bound.
func MinCoverLength(target interval.Interval, covers []interval.Cover, opts *Options) (xreal.Value, error) {
	opt, err := resolveOptions(opts)
	if err != nil {
		return xreal.Zero(), err
	}

	best := xreal.Inf()
	found := false
	for _, c := range covers {
		if c == nil {
			return xreal.Zero(), ErrNilCover
		}
		if err = VerifyCover(target, c, &opt); err != nil {
			if errors.Is(err, ErrShortCover) {
				continue
			}

			return xreal.Zero(), err
		}
		total, lerr := interval.TotalLength(c, opt.MaxTerms, opt.Eps)
		if lerr != nil {
			return xreal.Zero(), ErrNilCover
		}
		best = xreal.Min(best, total)
		found = true
	}
	if !found {
		return xreal.Zero(), ErrNoCover
	}

	return best, nil
}
