package resource

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/openrpki/registry/address"
)

// Set is an ordered collection of non-overlapping ranges over one
// resource family. The invariant is strict: ranges are sorted ascending
// and each ends before the next begins. Adjacent ranges (max+1 == next
// min) are legal and are kept distinct; only Union coalesces coverage,
// so set equality is structural, not coverage-equivalence.
type Set[T Value[T]] []Range[T]

// The three resource families.
type (
	ASRange = Range[AS]
	V4Range = Range[address.V4]
	V6Range = Range[address.V6]

	ASSet = Set[AS]
	V4Set = Set[address.V4]
	V6Set = Set[address.V6]
)

// NewSet builds a set from ranges, sorting a private copy and enforcing
// the disjointness invariant. Overlapping input, e.g. from a malformed
// certificate extension, is an error, never silently merged.
func NewSet[T Value[T]](ranges []Range[T]) (Set[T], error) {
	set := make(Set[T], len(ranges))
	copy(set, ranges)
	sort.Slice(set, func(i, j int) bool { return set[i].Less(set[j]) })
	for i := 0; i+1 < len(set); i++ {
		if set[i].Max.Compare(set[i+1].Min) >= 0 {
			return nil, errors.Wrapf(ErrOverlap, "%s and %s", set[i], set[i+1])
		}
	}
	return set, nil
}

// String renders the canonical textual form: ranges joined with "," in
// sorted order, each in its family's canonical form.
func (s Set[T]) String() string {
	tokens := make([]string, len(s))
	for i, r := range s {
		tokens[i] = r.String()
	}
	return strings.Join(tokens, ",")
}

func (s Set[T]) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Equal reports structural equality: same ranges with the same
// boundaries. Two sets covering the same points through differently
// split adjacent ranges are not Equal.
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Contains reports whether some single range of the set covers the whole
// of r.
func (s Set[T]) Contains(r Range[T]) bool {
	for _, x := range s {
		if x.Covers(r) {
			return true
		}
		if x.Min.Compare(r.Max) > 0 {
			break
		}
	}
	return false
}

// ContainsValue reports whether some range of the set covers the single
// value v.
func (s Set[T]) ContainsValue(v T) bool {
	return s.Contains(Range[T]{Min: v, Max: v})
}
