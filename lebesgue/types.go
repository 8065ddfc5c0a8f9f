// Package lebesgue: the symbolic set class the construction is evaluated on.
package lebesgue

import (
	"fmt"
	"strings"
)

// Set is a symbolic subset of the real line. The class is sealed: it is
// generated by rays under complement and countable union (see IsBorel), and
// every operation in this package is total on it.
//
// Concrete members: Empty, Ico, Ioo, Pt, Iio, Ici, Union, Seq.
type Set interface {
	sealed()
	fmt.Stringer
}

// Empty is the empty set ∅.
type Empty struct{}

// Ico is the half-open interval [Lo, Hi); degenerate (Lo ≥ Hi) denotes ∅.
type Ico struct{ Lo, Hi float64 }

// Ioo is the open interval (Lo, Hi); degenerate (Lo ≥ Hi) denotes ∅.
type Ioo struct{ Lo, Hi float64 }

// Pt is the singleton {X}.
type Pt struct{ X float64 }

// Iio is the lower ray (-∞, Hi).
type Iio struct{ Hi float64 }

// Ici is the upper ray [Lo, +∞).
type Ici struct{ Lo float64 }

// Union is a finite union of sets.
type Union []Set

// Seq is a countable union ⋃ᵢ f(i), enumerated lazily by index. Operations
// enumerate up to Options.MaxTerms terms; by monotonicity of the measure the
// truncated value is a sound lower bound of the true one.
type Seq func(i int) Set

func (Empty) sealed() {}
func (Ico) sealed()   {}
func (Ioo) sealed()   {}
func (Pt) sealed()    {}
func (Iio) sealed()   {}
func (Ici) sealed()   {}
func (Union) sealed() {}
func (Seq) sealed()   {}

func (Empty) String() string { return "∅" }
func (s Ico) String() string { return fmt.Sprintf("[%g,%g)", s.Lo, s.Hi) }
func (s Ioo) String() string { return fmt.Sprintf("(%g,%g)", s.Lo, s.Hi) }
func (s Pt) String() string  { return fmt.Sprintf("{%g}", s.X) }
func (s Iio) String() string { return fmt.Sprintf("(-∞,%g)", s.Hi) }
func (s Ici) String() string { return fmt.Sprintf("[%g,+∞)", s.Lo) }
func (Seq) String() string   { return "⋃ᵢ sᵢ" }

func (u Union) String() string {
	if len(u) == 0 {
		return "∅"
	}
	parts := make([]string, 0, len(u))
	for _, p := range u {
		if p == nil {
			parts = append(parts, "<nil>")
			continue
		}
		parts = append(parts, p.String())
	}

	return strings.Join(parts, " ∪ ")
}

// Contains reports pointwise membership of x in s. For Seq the enumeration
// is bounded by terms, so a false answer for a Seq only means "not found in
// the first `terms` members".
func Contains(s Set, x float64, terms int) bool {
	switch v := s.(type) {
	case Empty:
		return false
	case Ico:
		return v.Lo <= x && x < v.Hi
	case Ioo:
		return v.Lo < x && x < v.Hi
	case Pt:
		return v.X == x
	case Iio:
		return x < v.Hi
	case Ici:
		return v.Lo <= x
	case Union:
		for _, p := range v {
			if p != nil && Contains(p, x, terms) {
				return true
			}
		}

		return false
	case Seq:
		for i := 0; i < terms; i++ {
			if p := v(i); p != nil && Contains(p, x, terms) {
				return true
			}
		}

		return false
	default:
		return false
	}
}
