package resource

import (
	"math"
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func asSet(t *testing.T, s string) ASSet {
	t.Helper()
	set, err := ParseASSet(s)
	require.NoError(t, err)
	return set
}

func v4Set(t *testing.T, s string) V4Set {
	t.Helper()
	set, err := ParseV4Set(s)
	require.NoError(t, err)
	return set
}

func v6Set(t *testing.T, s string) V6Set {
	t.Helper()
	set, err := ParseV6Set(s)
	require.NoError(t, err)
	return set
}

func TestWorkedASIntersection(t *testing.T) {
	x := asSet(t, "1,2,3,4,5,6,11,12,13,14,15")
	y := asSet(t, "1,2,3,4,5,6,111,121,131,141,151")
	require.True(t, x.Intersection(y).Equal(asSet(t, "1,2,3,4,5,6")))
	require.True(t, y.Intersection(x).Equal(asSet(t, "1,2,3,4,5,6")))
}

func TestCommPartition(t *testing.T) {
	x := v4Set(t, "10.0.0.44/32,10.6.0.2/32")
	y := v4Set(t, "10.0.0.0/24")
	onlyX, onlyY, both := x.Comm(y)
	require.Equal(t, "10.6.0.2/32", onlyX.String())
	require.Equal(t, "10.0.0.0-10.0.0.43,10.0.0.45-10.0.0.255", onlyY.String())
	require.Equal(t, "10.0.0.44/32", both.String())

	require.Equal(t, "10.0.0.0/24,10.6.0.2/32", x.Union(y).String())
	require.Equal(t, "10.6.0.2/32", x.Difference(y).String())
	require.Equal(t, "10.0.0.0-10.0.0.43,10.0.0.45-10.0.0.255,10.6.0.2/32",
		x.SymmetricDifference(y).String())
}

func TestCommDisjoint(t *testing.T) {
	x := v4Set(t, "10.0.0.44/32,10.6.0.2/32")
	y := v4Set(t, "10.3.0.0/24,10.0.0.77/32")
	onlyX, onlyY, both := x.Comm(y)
	require.True(t, onlyX.Equal(x))
	require.True(t, onlyY.Equal(y))
	require.Empty(t, both)
	require.Equal(t, "10.0.0.44/32,10.0.0.77/32,10.3.0.0/24,10.6.0.2/32", x.Union(y).String())
}

func TestUnionChainCollapse(t *testing.T) {
	u := asSet(t, "1-5").Union(asSet(t, "10-15"))
	require.Equal(t, "1-5,10-15", u.String())
	_, _, both := u.Comm(asSet(t, "4-12"))
	require.True(t, both.Equal(asSet(t, "4-5,10-12")))

	// A chain of mutually overlapping ranges collapses into one.
	require.Equal(t, "1-9", asSet(t, "1-3,4-6,7-9").Union(asSet(t, "2-8")).String())
	require.Equal(t, "1-20", asSet(t, "1-5,8-10").Union(asSet(t, "4-9,10-20")).String())
}

func TestUnionMergesTouching(t *testing.T) {
	require.Equal(t, "1-10", asSet(t, "1-5").Union(asSet(t, "6-10")).String())
	// Adjacency survives construction; only Union coalesces it.
	adjacent := asSet(t, "1-5,6-10")
	require.Equal(t, "1-5,6-10", adjacent.String())
	require.Equal(t, "1-10", adjacent.Union(nil).String())
	require.False(t, adjacent.Equal(asSet(t, "1-10")))
}

func TestContainment(t *testing.T) {
	require.True(t, asSet(t, "50-200").Contains(ASRange{Min: 100, Max: 100}))
	require.False(t, asSet(t, "1-99,101-200").Contains(ASRange{Min: 100, Max: 100}))
	require.False(t, asSet(t, "1-99,101-200").ContainsValue(AS(100)))
	require.True(t, asSet(t, "1-99,101-200").ContainsValue(AS(99)))
	// Coverage split across two ranges does not count as containment.
	require.False(t, asSet(t, "1-5,6-10").Contains(ASRange{Min: 4, Max: 8}))
}

func TestDomainExtremes(t *testing.T) {
	full := asSet(t, "0-4294967295")
	require.Equal(t, "1-4294967295", full.Difference(asSet(t, "0")).String())
	require.Equal(t, "0-4294967294", full.Difference(asSet(t, "4294967295")).String())
	require.Equal(t, "0-99,201-4294967295", full.Difference(asSet(t, "100-200")).String())
	require.True(t, full.Contains(ASRange{Min: 0, Max: math.MaxUint32}))

	fullV4 := v4Set(t, "0.0.0.0/0")
	require.Equal(t, "0.0.0.0-9.255.255.255,11.0.0.0-255.255.255.255",
		fullV4.Difference(v4Set(t, "10.0.0.0/8")).String())
	require.Equal(t, "0.0.0.0/0", fullV4.Union(v4Set(t, "10.0.0.0/8")).String())

	fullV6 := v6Set(t, "::/0")
	require.Equal(t, "::/0", fullV6.Union(v6Set(t, "2001:db8::/32")).String())
	require.True(t, fullV6.Difference(v6Set(t, "2001:db8::/32")).Contains(V6Range{
		Min: v6Set(t, "2001:db9::/32")[0].Min,
		Max: v6Set(t, "2001:db9::/32")[0].Max,
	}))
}

func TestOperandsNotMutated(t *testing.T) {
	x := asSet(t, "1-10,20-30")
	y := asSet(t, "5-25")
	x.Union(y)
	x.Comm(y)
	x.SymmetricDifference(y)
	require.Equal(t, "1-10,20-30", x.String())
	require.Equal(t, "5-25", y.String())
}

// randomASSet builds a small normalized set; values are drawn from a
// narrow window so operands collide often.
func randomASSet(r *rand.Rand) ASSet {
	var set ASSet
	for n := r.Intn(6); n > 0; n-- {
		min := AS(r.Intn(60))
		set = set.Union(ASSet{{Min: min, Max: min + AS(r.Intn(8))}})
	}
	return set
}

func TestAlgebraProperties(t *testing.T) {
	prop := func(seed int64) bool {
		r := rand.New(rand.NewSource(seed))
		a := randomASSet(r)
		b := randomASSet(r)

		if !a.Union(b).Equal(b.Union(a)) {
			return false
		}
		if !a.Intersection(b).Equal(b.Intersection(a)) {
			return false
		}
		if !a.SymmetricDifference(b).Equal(b.SymmetricDifference(a)) {
			return false
		}

		onlyA, onlyB, both := a.Comm(b)
		onlyB2, onlyA2, both2 := b.Comm(a)
		if !onlyA.Equal(onlyA2) || !onlyB.Equal(onlyB2) || !both.Equal(both2) {
			return false
		}

		for _, x := range a {
			if !a.Contains(x) || !a.ContainsValue(x.Min) || !a.ContainsValue(x.Max) {
				return false
			}
		}
		for _, x := range onlyA {
			if !a.Contains(x) || b.Contains(x) {
				return false
			}
		}
		for _, x := range both {
			if !a.Contains(x) || !b.Contains(x) {
				return false
			}
		}

		// Comm conserves coverage: onlyA+both is exactly a, onlyB+both
		// exactly b (up to normalization of adjacent ranges).
		if !onlyA.Union(both).Equal(a.Union(nil)) {
			return false
		}
		if !onlyB.Union(both).Equal(b.Union(nil)) {
			return false
		}
		return true
	}
	require.NoError(t, quick.Check(prop, &quick.Config{MaxCount: 2000}))
}

func TestNewSetRejectsOverlap(t *testing.T) {
	_, err := NewSet([]ASRange{{Min: 1, Max: 5}, {Min: 3, Max: 8}})
	require.ErrorIs(t, err, ErrOverlap)

	_, err = NewSet([]ASRange{{Min: 1, Max: 5}, {Min: 5, Max: 8}})
	require.ErrorIs(t, err, ErrOverlap)

	// Touching is fine.
	set, err := NewSet([]ASRange{{Min: 6, Max: 8}, {Min: 1, Max: 5}})
	require.NoError(t, err)
	require.Equal(t, "1-5,6-8", set.String())
}

func TestNewRangeRejectsMisordered(t *testing.T) {
	_, err := NewRange(AS(5), AS(1))
	require.ErrorIs(t, err, ErrInvalidRange)

	r, err := NewRange(AS(1), AS(1))
	require.NoError(t, err)
	require.Equal(t, "1", r.String())
}
