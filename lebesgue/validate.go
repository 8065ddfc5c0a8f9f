// Package lebesgue - validation utilities shared by all entry points.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - Validation is staged: options first, then set structure. Seq members
//     are validated lazily during normalization (they are produced on demand).
package lebesgue

import "math"

// resolveOptions applies the nil-means-default convention and checks
// internal consistency of the numeric policy.
//
// Contract:
//   - Eps must be ≥ 0 (a negative tolerance would invert every comparison).
//   - MaxTerms must be ≥ 1 (a zero budget could not even read one term).
//   - Probes must be ≥ 1.
//
// Complexity: O(1).
func resolveOptions(opts *Options) (Options, error) {
	if opts == nil {
		return DefaultOptions(), nil
	}
	if opts.Eps < 0 || math.IsNaN(opts.Eps) {
		return Options{}, ErrBadOptions
	}
	if opts.MaxTerms < 1 {
		return Options{}, ErrBadOptions
	}
	if opts.Probes < 1 {
		return Options{}, ErrBadOptions
	}

	return *opts, nil
}

// validateSet checks the eagerly available structure of s: nil sets and NaN
// endpoints are rejected. Union members are checked recursively; Seq members
// cannot be checked eagerly and are validated as they are enumerated.
//
// Complexity: O(size of the eager structure).
func validateSet(s Set) error {
	switch v := s.(type) {
	case nil:
		return ErrNilSet
	case Empty:
		return nil
	case Ico:
		if math.IsNaN(v.Lo) || math.IsNaN(v.Hi) {
			return ErrBadSet
		}
	case Ioo:
		if math.IsNaN(v.Lo) || math.IsNaN(v.Hi) {
			return ErrBadSet
		}
	case Pt:
		if math.IsNaN(v.X) {
			return ErrBadSet
		}
	case Iio:
		if math.IsNaN(v.Hi) {
			return ErrBadSet
		}
	case Ici:
		if math.IsNaN(v.Lo) {
			return ErrBadSet
		}
	case Union:
		for _, p := range v {
			if err := validateSet(p); err != nil {
				return err
			}
		}
	case Seq:
		if v == nil {
			return ErrNilSet
		}
	}

	return nil
}
