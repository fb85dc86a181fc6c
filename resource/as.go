package resource

import (
	"math"
	"strconv"

	"github.com/openrpki/registry/common"
)

// AS is an Autonomous System number (RFC 6793 4-byte ASN).
type AS uint32

func (a AS) String() string {
	return strconv.FormatUint(uint64(a), 10)
}

func (a AS) Compare(b AS) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Next returns the successor AS number. The caller must ensure a is not
// the top of the number space.
func (a AS) Next() AS {
	common.Assert(a != math.MaxUint32)
	return a + 1
}

// Prev returns the predecessor AS number. The caller must ensure a is
// not zero.
func (a AS) Prev() AS {
	common.Assert(a != 0)
	return a - 1
}

// RangeString renders the closed interval [a, max]: a single AS number
// is denoted by a range whose min and max are identical.
func (a AS) RangeString(max AS) string {
	if a == max {
		return a.String()
	}
	return a.String() + "-" + max.String()
}
