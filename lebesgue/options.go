package lebesgue

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEps is the non-negative tolerance qualifying every equality
	// claim in the package: measure comparisons, the covering engine's
	// progress slack, and the bisection supremum's stopping width.
	DefaultEps = 1e-9

	// DefaultMaxTerms bounds lazy countable enumeration: cover terms in a
	// total-length sum and members of a Seq union. Truncations are sound
	// lower bounds by monotonicity.
	DefaultMaxTerms = 4096

	// DefaultProbes is the number of evenly spaced test intervals the
	// Carathéodory filter probes across a set's support, in addition to the
	// intervals induced by the set's own boundary points.
	DefaultProbes = 16
)

// Options configures the numeric policy of the construction.
//
// Fields:
//   - Eps      — equality tolerance and bisection stopping width (≥ 0).
//   - MaxTerms — lazy enumeration budget for covers and countable unions (≥ 1).
//   - Probes   — extra Carathéodory test intervals across the support (≥ 1).
//
// A nil *Options anywhere in the package means DefaultOptions().
//
// Example:
//
//	opts := lebesgue.DefaultOptions()
//	opts.MaxTerms = 1 << 16 // deeper countable unions
//	m, err := lebesgue.OuterMeasure(s, &opts)
type Options struct {
	Eps      float64
	MaxTerms int
	Probes   int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Eps:      DefaultEps,
		MaxTerms: DefaultMaxTerms,
		Probes:   DefaultProbes,
	}
}
