package resource

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Bag groups one entity's holdings across the three resource families,
// together with how long the delegation is valid. It is what the
// registry moves around when issuing or delegating.
type Bag struct {
	AS         ASSet
	V4         V4Set
	V6         V6Set
	ValidUntil time.Time
}

// Delta is an incremental change to a bag's holdings: resources to add
// and subtract per family, and an optional replacement validity.
type Delta struct {
	AddAS, SubAS ASSet
	AddV4, SubV4 V4Set
	AddV6, SubV6 V6Set
	ValidUntil   time.Time // replaces the bag's validity when non-zero
}

// Apply returns the bag after applying the delta: per family, additions
// are unioned in before subtractions are removed.
func (b Bag) Apply(d Delta) Bag {
	out := Bag{
		AS:         b.AS.Union(d.AddAS).Difference(d.SubAS),
		V4:         b.V4.Union(d.AddV4).Difference(d.SubV4),
		V6:         b.V6.Union(d.AddV6).Difference(d.SubV6),
		ValidUntil: b.ValidUntil,
	}
	if !d.ValidUntil.IsZero() {
		out.ValidUntil = d.ValidUntil
	}
	return out
}

// Union returns the combined holdings. Validity is taken from b.
func (b Bag) Union(other Bag) Bag {
	return Bag{
		AS:         b.AS.Union(other.AS),
		V4:         b.V4.Union(other.V4),
		V6:         b.V6.Union(other.V6),
		ValidUntil: b.ValidUntil,
	}
}

// Difference returns the holdings of b not held by other. Validity is
// taken from b.
func (b Bag) Difference(other Bag) Bag {
	return Bag{
		AS:         b.AS.Difference(other.AS),
		V4:         b.V4.Difference(other.V4),
		V6:         b.V6.Difference(other.V6),
		ValidUntil: b.ValidUntil,
	}
}

// Intersection returns the holdings common to both bags. Validity is
// taken from b.
func (b Bag) Intersection(other Bag) Bag {
	return Bag{
		AS:         b.AS.Intersection(other.AS),
		V4:         b.V4.Intersection(other.V4),
		V6:         b.V6.Intersection(other.V6),
		ValidUntil: b.ValidUntil,
	}
}

// Covers reports whether b holds everything other does, the delegation
// check: a parent may only delegate resources it holds.
func (b Bag) Covers(other Bag) bool {
	return len(other.AS.Difference(b.AS)) == 0 &&
		len(other.V4.Difference(b.V4)) == 0 &&
		len(other.V6.Difference(b.V6)) == 0
}

// Empty reports whether the bag holds no resources at all.
func (b Bag) Empty() bool {
	return len(b.AS) == 0 && len(b.V4) == 0 && len(b.V6) == 0
}

func (b Bag) String() string {
	var parts []string
	if len(b.AS) > 0 {
		parts = append(parts, "AS "+b.AS.String())
	}
	if len(b.V4) > 0 {
		parts = append(parts, "IPv4 "+b.V4.String())
	}
	if len(b.V6) > 0 {
		parts = append(parts, "IPv6 "+b.V6.String())
	}
	if len(parts) == 0 {
		parts = append(parts, "<empty>")
	}
	if !b.ValidUntil.IsZero() {
		parts = append(parts, fmt.Sprintf("valid until %s", b.ValidUntil.Format(time.RFC3339)))
	}
	return strings.Join(parts, "; ")
}

func (b Bag) MarshalJSON() ([]byte, error) {
	var out struct {
		AS         string     `json:"asn,omitempty"`
		V4         string     `json:"ipv4,omitempty"`
		V6         string     `json:"ipv6,omitempty"`
		ValidUntil *time.Time `json:"valid_until,omitempty"`
	}
	out.AS = b.AS.String()
	out.V4 = b.V4.String()
	out.V6 = b.V6.String()
	if !b.ValidUntil.IsZero() {
		out.ValidUntil = &b.ValidUntil
	}
	return json.Marshal(out)
}
