package address

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"
	"net"

	"github.com/openrpki/registry/common"
)

// Using 32-bit integer to represent IPv4 address
type V4 uint32

// V4Bits is the width of the IPv4 address space.
const V4Bits = 32

func ParseV4(s string) (V4, error) {
	if ip := net.ParseIP(s); ip != nil && ip.To4() != nil {
		return FromIP4(ip), nil
	}
	return 0, &net.ParseError{Type: "IPv4 address", Text: s}
}

// FromIP4 converts an ipv4 address to our integer address type
func FromIP4(ip4 net.IP) (r V4) {
	for _, b := range ip4.To4() {
		r <<= 8
		r |= V4(b)
	}
	return
}

// IP4 converts our integer address type to an ipv4 address
func (a V4) IP4() (r net.IP) {
	r = make([]byte, net.IPv4len)
	binary.BigEndian.PutUint32(r, uint32(a))
	return
}

func (a V4) String() string {
	return a.IP4().String()
}

func (a V4) Compare(b V4) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Next returns the successor address. The caller must ensure a is not
// the top of the address space.
func (a V4) Next() V4 {
	common.Assert(a != math.MaxUint32)
	return a + 1
}

// Prev returns the predecessor address. The caller must ensure a is not
// the bottom of the address space.
func (a V4) Prev() V4 {
	common.Assert(a != 0)
	return a - 1
}

// HostMask4 returns the mask covering the host bits of a prefix of the
// given length, i.e. (1 << (32 - prefixLen)) - 1.
func HostMask4(prefixLen int) V4 {
	common.Assert(prefixLen >= 0 && prefixLen <= V4Bits)
	if prefixLen == 0 {
		return ^V4(0)
	}
	return V4(1)<<(V4Bits-prefixLen) - 1
}

// RangeString renders the closed interval [a, max] in canonical form:
// "addr/prefixlen" when the interval is exactly a bit-aligned block,
// "addr-addr" otherwise.
func (a V4) RangeString(max V4) string {
	host := uint32(a ^ max)
	if host&(host+1) == 0 && uint32(a)&host == 0 {
		return fmt.Sprintf("%s/%d", a, V4Bits-bits.Len32(host))
	}
	return a.String() + "-" + max.String()
}
