// Package resource implements RFC 3779 resource sets: the AS-number and
// IPv4/IPv6 address ranges a certificate authorizes its subject to use.
// Sets are value types; every operation returns a fresh set and never
// mutates its operands.
package resource

import (
	"fmt"

	"github.com/pkg/errors"
)

// Value is an ordered integer domain value with successor and predecessor.
// The three resource families (AS, address.V4, address.V6) implement it;
// the set algebra is generic over it, so families can never mix.
type Value[T any] interface {
	comparable
	fmt.Stringer
	Compare(T) int
	Next() T
	Prev() T
	RangeString(T) string
}

// Range is a closed interval [Min, Max] over one resource family.
type Range[T Value[T]] struct {
	Min, Max T
}

// NewRange constructs a range, rejecting min > max.
func NewRange[T Value[T]](min, max T) (Range[T], error) {
	if min.Compare(max) > 0 {
		return Range[T]{}, errors.Wrapf(ErrInvalidRange, "%s before %s", max, min)
	}
	return Range[T]{Min: min, Max: max}, nil
}

func (r Range[T]) String() string {
	return r.Min.RangeString(r.Max)
}

// Less orders ranges by Min, then by Max.
func (r Range[T]) Less(other Range[T]) bool {
	if c := r.Min.Compare(other.Min); c != 0 {
		return c < 0
	}
	return r.Max.Compare(other.Max) < 0
}

// Covers reports whether r covers the whole of other.
func (r Range[T]) Covers(other Range[T]) bool {
	return r.Min.Compare(other.Min) <= 0 && r.Max.Compare(other.Max) >= 0
}

// Contains reports whether v lies within r.
func (r Range[T]) Contains(v T) bool {
	return r.Min.Compare(v) <= 0 && r.Max.Compare(v) >= 0
}
