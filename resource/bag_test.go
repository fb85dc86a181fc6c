package resource

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testBag(t *testing.T, as, v4, v6 string) Bag {
	t.Helper()
	return Bag{
		AS: asSet(t, as),
		V4: v4Set(t, v4),
		V6: v6Set(t, v6),
	}
}

func TestBagApply(t *testing.T) {
	holder := testBag(t, "64496-64511", "10.0.0.0/16", "2001:db8::/32")
	holder.ValidUntil = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	later := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	out := holder.Apply(Delta{
		AddAS:      asSet(t, "65536"),
		SubV4:      v4Set(t, "10.0.1.0/24"),
		ValidUntil: later,
	})
	require.Equal(t, "64496-64511,65536", out.AS.String())
	require.Equal(t, "10.0.0.0/24,10.0.2.0-10.0.255.255", out.V4.String())
	require.Equal(t, "2001:db8::/32", out.V6.String())
	require.Equal(t, later, out.ValidUntil)

	// Zero validity in the delta leaves the bag's own.
	out = holder.Apply(Delta{SubAS: asSet(t, "64496-64511")})
	require.Empty(t, out.AS)
	require.Equal(t, holder.ValidUntil, out.ValidUntil)

	// The receiver is never touched.
	require.Equal(t, "64496-64511", holder.AS.String())
	require.Equal(t, "10.0.0.0/16", holder.V4.String())
}

func TestBagCovers(t *testing.T) {
	parent := testBag(t, "64496-64511", "10.0.0.0/8", "2001:db8::/32")
	child := testBag(t, "64500", "10.42.0.0/16", "")
	require.True(t, parent.Covers(child))
	require.False(t, child.Covers(parent))

	child.V6 = v6Set(t, "2001:db9::/32")
	require.False(t, parent.Covers(child))

	require.True(t, parent.Covers(Bag{}))
}

func TestBagSetAlgebra(t *testing.T) {
	a := testBag(t, "1-10", "10.0.0.0/24", "2001:db8::/32")
	b := testBag(t, "5-15", "10.0.0.128/25", "")

	u := a.Union(b)
	require.Equal(t, "1-15", u.AS.String())
	require.Equal(t, "10.0.0.0/24", u.V4.String())

	d := a.Difference(b)
	require.Equal(t, "1-4", d.AS.String())
	require.Equal(t, "10.0.0.0/25", d.V4.String())
	require.Equal(t, "2001:db8::/32", d.V6.String())

	i := a.Intersection(b)
	require.Equal(t, "5-10", i.AS.String())
	require.Equal(t, "10.0.0.128/25", i.V4.String())
	require.Empty(t, i.V6)
}

func TestBagEmptyAndString(t *testing.T) {
	require.True(t, Bag{}.Empty())
	require.Equal(t, "<empty>", Bag{}.String())

	b := testBag(t, "64496", "", "")
	require.False(t, b.Empty())
	require.Equal(t, "AS 64496", b.String())
}

func TestBagMarshalJSON(t *testing.T) {
	b := testBag(t, "64496-64511", "10.0.0.0/24", "")
	b.ValidUntil = time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	out, err := json.Marshal(b)
	require.NoError(t, err)
	require.JSONEq(t,
		`{"asn":"64496-64511","ipv4":"10.0.0.0/24","valid_until":"2026-08-24T00:00:00Z"}`,
		string(out))
}
