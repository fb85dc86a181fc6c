package resource

// Comm partitions the coverage of two sets three ways, like comm(1) over
// sorted interval lists: ranges covering points only in s, only in other,
// and in both. Boundaries are realigned by splitting, so overlapping
// coverage appears in both as identical ranges. It is the primitive
// behind intersection, difference and symmetric difference.
//
// The merge walks both sorted disjoint lists with read cursors, keeping a
// working head per side; inputs are never modified. Next/Prev below never
// wrap: a split at another range's boundary only happens when that
// boundary lies strictly inside the current head, away from the domain
// extremes.
func (s Set[T]) Comm(other Set[T]) (onlyA, onlyB, both Set[T]) {
	var (
		ra, rb   Range[T]
		okA, okB bool
	)
	i, j := 0, 0
	advanceA := func() {
		if okA = i < len(s); okA {
			ra = s[i]
			i++
		}
	}
	advanceB := func() {
		if okB = j < len(other); okB {
			rb = other[j]
			j++
		}
	}
	advanceA()
	advanceB()

	for okA || okB {
		switch {
		case !okB || (okA && ra.Max.Compare(rb.Min) < 0):
			// Head of A ends before head of B begins.
			onlyA = append(onlyA, ra)
			advanceA()
		case !okA || rb.Max.Compare(ra.Min) < 0:
			onlyB = append(onlyB, rb)
			advanceB()
		case ra.Min.Compare(rb.Min) < 0:
			// Heads overlap but A starts first: split off the part of A
			// below B.
			onlyA = append(onlyA, Range[T]{Min: ra.Min, Max: rb.Min.Prev()})
			ra.Min = rb.Min
		case rb.Min.Compare(ra.Min) < 0:
			onlyB = append(onlyB, Range[T]{Min: rb.Min, Max: ra.Min.Prev()})
			rb.Min = ra.Min
		case ra.Max.Compare(rb.Max) < 0:
			// Same start, A ends first: the shared part is all of A.
			both = append(both, ra)
			rb.Min = ra.Max.Next()
			advanceA()
		case rb.Max.Compare(ra.Max) < 0:
			both = append(both, rb)
			ra.Min = rb.Max.Next()
			advanceB()
		default:
			// Identical heads.
			both = append(both, ra)
			advanceA()
			advanceB()
		}
	}
	return onlyA, onlyB, both
}

// Union returns the coverage of both sets, coalescing overlapping and
// touching ranges. The pending output range keeps absorbing the next head
// of either input until there is a genuine gap, so a chain of mutually
// overlapping ranges collapses into one.
func (s Set[T]) Union(other Set[T]) Set[T] {
	result := make(Set[T], 0, len(s)+len(other))
	i, j := 0, 0
	for i < len(s) || j < len(other) {
		var cur Range[T]
		if j >= len(other) || (i < len(s) && s[i].Min.Compare(other[j].Min) <= 0) {
			cur = s[i]
			i++
		} else {
			cur = other[j]
			j++
		}
		for {
			switch {
			case i < len(s) && !gapAfter(cur.Max, s[i].Min):
				if cur.Max.Compare(s[i].Max) < 0 {
					cur.Max = s[i].Max
				}
				i++
				continue
			case j < len(other) && !gapAfter(cur.Max, other[j].Min):
				if cur.Max.Compare(other[j].Max) < 0 {
					cur.Max = other[j].Max
				}
				j++
				continue
			}
			break
		}
		result = append(result, cur)
	}
	return result
}

// gapAfter reports whether min starts beyond max with at least one value
// strictly between them. min > max here, so Prev cannot wrap.
func gapAfter[T Value[T]](max, min T) bool {
	return min.Compare(max) > 0 && min.Prev().Compare(max) > 0
}

// Intersection returns the coverage common to both sets.
func (s Set[T]) Intersection(other Set[T]) Set[T] {
	_, _, both := s.Comm(other)
	return both
}

// Difference returns the coverage of s not covered by other.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	onlyA, _, _ := s.Comm(other)
	return onlyA
}

// SymmetricDifference returns the coverage in exactly one of the two
// sets.
func (s Set[T]) SymmetricDifference(other Set[T]) Set[T] {
	onlyA, onlyB, _ := s.Comm(other)
	return onlyA.Union(onlyB)
}
