package lebesgue_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mezura/interval"
	"github.com/katalvlaran/mezura/lebesgue"
	"github.com/katalvlaran/mezura/xreal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ico(lo, hi float64) interval.Interval { return interval.Interval{Lo: lo, Hi: hi} }

// TestVerifyCover_SelfCover verifies the tight one-interval cover passes:
// the "≤" witness of μ*([a,b)) = b − a.
func TestVerifyCover_SelfCover(t *testing.T) {
	target := ico(2, 5)
	assert.NoError(t, lebesgue.VerifyCover(target, interval.Singleton(target), nil))
}

// TestVerifyCover_OverlappingCover verifies an overlapping two-interval
// cover passes and carries strictly more mass than the target.
func TestVerifyCover_OverlappingCover(t *testing.T) {
	target := ico(2, 5)
	c := interval.CoverOf(ico(2, 3.5), ico(3, 5))
	require.NoError(t, lebesgue.VerifyCover(target, c, nil))

	total, err := interval.TotalLength(c, 64, 0)
	require.NoError(t, err)
	assert.True(t, target.Length().Less(total), "overlap inflates the cover's mass")
}

// TestVerifyCover_ToleratesEmptyAndRepeatedMembers checks the tie-break edge
// cases: degenerate and duplicate intervals are harmless.
func TestVerifyCover_ToleratesEmptyAndRepeatedMembers(t *testing.T) {
	target := ico(0, 2)
	c := interval.CoverOf(interval.Empty(), ico(0, 1), ico(0, 1), ico(3, 1), ico(1, 2))
	assert.NoError(t, lebesgue.VerifyCover(target, c, nil))
}

// TestVerifyCover_ToleratesLongEmptyPrefix checks that a run of empty
// members longer than any tail-settling window does not hide the genuine
// member that follows them.
func TestVerifyCover_ToleratesLongEmptyPrefix(t *testing.T) {
	members := make([]interval.Interval, 0, 13)
	for i := 0; i < 12; i++ {
		members = append(members, interval.Empty())
	}
	members = append(members, ico(0, 1))
	c := interval.CoverOf(members...)

	assert.NoError(t, lebesgue.VerifyCover(ico(0, 1), c, nil))

	total, err := interval.TotalLength(c, 64, 1e-9)
	require.NoError(t, err)
	assert.True(t, total.ApproxEqual(xreal.MustNew(1), eps), "empty members carry no mass but must not truncate the sum; got %v", total)
}

// TestVerifyCover_MassLeftOfTarget rejects a family whose intervals lie
// entirely below the target: mass outside [a, b) is not coverage.
func TestVerifyCover_MassLeftOfTarget(t *testing.T) {
	err := lebesgue.VerifyCover(ico(0, 1), interval.Singleton(ico(-2, 0)), nil)
	assert.ErrorIs(t, err, lebesgue.ErrShortCover)
}

// TestVerifyCover_OutsideMassCannotBridgeGap rejects a family whose total
// mass would suffice but part of it sits left of the target, leaving an
// uncovered stretch inside.
func TestVerifyCover_OutsideMassCannotBridgeGap(t *testing.T) {
	c := interval.CoverOf(ico(-3, 0.5), ico(0.7, 1))
	err := lebesgue.VerifyCover(ico(0, 1), c, nil)
	assert.ErrorIs(t, err, lebesgue.ErrShortCover, "the stretch [0.5,0.7) stays uncovered no matter how much mass lies below 0")
}

// TestVerifyCover_LazyInfiniteCover verifies a conceptually infinite cover
// tiling [0,1) by dyadic intervals [1−2^−i, 1−2^−(i+1)).
func TestVerifyCover_LazyInfiniteCover(t *testing.T) {
	c := interval.Cover(func(i int) interval.Interval {
		lo := 1 - math.Pow(0.5, float64(i))
		hi := 1 - math.Pow(0.5, float64(i+1))

		return ico(lo, hi)
	})

	assert.NoError(t, lebesgue.VerifyCover(ico(0, 1), c, nil))
}

// TestVerifyCover_ShortCover verifies a cover that stops early stalls the
// covered-progress supremum and errors with ErrShortCover.
func TestVerifyCover_ShortCover(t *testing.T) {
	err := lebesgue.VerifyCover(ico(2, 5), interval.Singleton(ico(2, 4)), nil)
	assert.ErrorIs(t, err, lebesgue.ErrShortCover)
}

// TestVerifyCover_GappedCover verifies a cover with an interior gap is
// rejected even though its total mass would suffice.
func TestVerifyCover_GappedCover(t *testing.T) {
	c := interval.CoverOf(ico(2, 3), ico(4, 6))
	err := lebesgue.VerifyCover(ico(2, 5), c, nil)
	assert.ErrorIs(t, err, lebesgue.ErrShortCover, "total mass 3 cannot compensate the gap at [3,4)")
}

// TestVerifyCover_EmptyTargetTriviallyCovered verifies ∅ needs no mass.
func TestVerifyCover_EmptyTargetTriviallyCovered(t *testing.T) {
	assert.NoError(t, lebesgue.VerifyCover(ico(5, 2), interval.CoverOf(), nil))
}

// TestVerifyCover_UnboundedTarget verifies the engine refuses an infinite
// target: the supremum chase needs a finite right end.
func TestVerifyCover_UnboundedTarget(t *testing.T) {
	err := lebesgue.VerifyCover(ico(0, math.Inf(1)), interval.Singleton(ico(0, 1)), nil)
	assert.ErrorIs(t, err, lebesgue.ErrUnbounded)
}

// TestVerifyCover_NilCover verifies the sentinel.
func TestVerifyCover_NilCover(t *testing.T) {
	err := lebesgue.VerifyCover(ico(0, 1), nil, nil)
	assert.ErrorIs(t, err, lebesgue.ErrNilCover)
}

// TestCoveredUpTo_Values verifies s(x) = Σᵢ L(cᵢ ∩ [from, x)) on a
// hand-computed overlapping cover.
func TestCoveredUpTo_Values(t *testing.T) {
	c := interval.CoverOf(ico(0, 2), ico(1, 3))

	s, err := lebesgue.CoveredUpTo(c, 0, 1.5, nil)
	require.NoError(t, err)
	assert.True(t, s.ApproxEqual(xreal.MustNew(2), eps), "[0,1.5) + [1,1.5) = 1.5 + 0.5")

	s, err = lebesgue.CoveredUpTo(c, 0, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, xreal.Zero(), s, "nothing is covered below the cover's start")

	s, err = lebesgue.CoveredUpTo(c, 0, 10, nil)
	require.NoError(t, err)
	assert.True(t, s.ApproxEqual(xreal.MustNew(4), eps), "clipping above the cover is the full mass")

	s, err = lebesgue.CoveredUpTo(c, 1, 2.5, nil)
	require.NoError(t, err)
	assert.True(t, s.ApproxEqual(xreal.MustNew(2.5), eps), "[1,2) + [1,2.5) = 1 + 1.5")
}

// TestCoveredUpTo_IgnoresMassBelowFrom verifies intervals left of the lower
// clip point contribute nothing: s is a coverage witness, not a length tally.
func TestCoveredUpTo_IgnoresMassBelowFrom(t *testing.T) {
	c := interval.CoverOf(ico(-2, 0), ico(0.25, 0.75))

	s, err := lebesgue.CoveredUpTo(c, 0, 1, nil)
	require.NoError(t, err)
	assert.True(t, s.ApproxEqual(xreal.MustNew(0.5), eps), "only [0.25,0.75) lands inside [0,1); got %v", s)
}

// TestCoveredUpTo_Monotone verifies the covered-length functional is
// monotone in x — the property the supremum chase leans on.
func TestCoveredUpTo_Monotone(t *testing.T) {
	c := interval.CoverOf(ico(0, 1), ico(2, 4))
	prev := xreal.Zero()
	for x := 0.0; x <= 5.0; x += 0.25 {
		cur, err := lebesgue.CoveredUpTo(c, 0, x, nil)
		require.NoError(t, err)
		assert.False(t, cur.Less(prev), "s(%v) must not drop below s at the previous probe", x)
		prev = cur
	}
}

// TestSupremum_Bisection verifies the least-upper-bound primitive locates
// the boundary of a downward-closed membership set.
func TestSupremum_Bisection(t *testing.T) {
	got := lebesgue.SupremumForTest(0, 10, func(x float64) bool { return x <= 2.5 }, 1e-12)
	assert.InDelta(t, 2.5, got, 1e-9)

	got = lebesgue.SupremumForTest(0, 10, func(x float64) bool { return true }, 1e-12)
	assert.Equal(t, 10.0, got, "a fully-member bracket returns its right end")
}

// TestMinCoverLength_InfimumAttained verifies the infimum over candidate
// covers of [2,5) is 3, attained at the tight self-cover, with padded and
// short candidates handled correctly.
func TestMinCoverLength_InfimumAttained(t *testing.T) {
	target := ico(2, 5)
	covers := []interval.Cover{
		interval.Singleton(ico(1, 6)),            // covers, mass 5
		interval.Singleton(target),               // tight, mass 3
		interval.Singleton(ico(2, 4)),            // short, skipped
		interval.CoverOf(ico(2, 4), ico(3.5, 5)), // covers, mass 3.5
	}

	got, err := lebesgue.MinCoverLength(target, covers, nil)
	require.NoError(t, err)
	assert.True(t, got.ApproxEqual(xreal.MustNew(3), eps), "inf over covers = b − a; got %v", got)
}

// TestMinCoverLength_NoCover verifies ErrNoCover when every candidate is short.
func TestMinCoverLength_NoCover(t *testing.T) {
	_, err := lebesgue.MinCoverLength(ico(0, 4), []interval.Cover{
		interval.Singleton(ico(0, 1)),
		interval.Singleton(ico(3, 4)),
	}, nil)
	assert.ErrorIs(t, err, lebesgue.ErrNoCover)
}

// TestMinCoverLength_DisjointCandidate verifies a family lying entirely
// outside the target is skipped, not admitted to the infimum.
func TestMinCoverLength_DisjointCandidate(t *testing.T) {
	_, err := lebesgue.MinCoverLength(ico(0, 1), []interval.Cover{
		interval.Singleton(ico(-2, 0)),
	}, nil)
	assert.ErrorIs(t, err, lebesgue.ErrNoCover)
}

// TestMinCoverLength_NilCandidate verifies a nil candidate is a caller error.
func TestMinCoverLength_NilCandidate(t *testing.T) {
	_, err := lebesgue.MinCoverLength(ico(0, 1), []interval.Cover{nil}, nil)
	assert.ErrorIs(t, err, lebesgue.ErrNilCover)
}
