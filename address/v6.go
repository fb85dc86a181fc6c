package address

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"net"
	"strings"

	"github.com/openrpki/registry/common"
)

// V6 is an IPv6 address as a 128-bit integer, split into two 64-bit limbs.
type V6 struct {
	hi, lo uint64
}

// V6Bits is the width of the IPv6 address space.
const V6Bits = 128

func ParseV6(s string) (V6, error) {
	// Insist on colon notation so dotted IPv4 strings don't sneak in as
	// v4-mapped addresses.
	if ip := net.ParseIP(s); ip != nil && strings.IndexByte(s, ':') >= 0 {
		return FromIP16(ip), nil
	}
	return V6{}, &net.ParseError{Type: "IPv6 address", Text: s}
}

// FromIP16 converts a 16-byte address to our integer address type
func FromIP16(ip net.IP) V6 {
	b := ip.To16()
	return V6{
		hi: binary.BigEndian.Uint64(b[:8]),
		lo: binary.BigEndian.Uint64(b[8:]),
	}
}

// IP16 converts our integer address type to a 16-byte address
func (a V6) IP16() (r net.IP) {
	r = make([]byte, net.IPv6len)
	binary.BigEndian.PutUint64(r[:8], a.hi)
	binary.BigEndian.PutUint64(r[8:], a.lo)
	return
}

func (a V6) String() string {
	return a.IP16().String()
}

func (a V6) Compare(b V6) int {
	switch {
	case a.hi < b.hi || (a.hi == b.hi && a.lo < b.lo):
		return -1
	case a == b:
		return 0
	}
	return 1
}

func (a V6) IsZero() bool {
	return a == V6{}
}

func (a V6) And(b V6) V6 { return V6{hi: a.hi & b.hi, lo: a.lo & b.lo} }
func (a V6) Or(b V6) V6  { return V6{hi: a.hi | b.hi, lo: a.lo | b.lo} }
func (a V6) Xor(b V6) V6 { return V6{hi: a.hi ^ b.hi, lo: a.lo ^ b.lo} }

// Next returns the successor address. The caller must ensure a is not
// the top of the address space.
func (a V6) Next() V6 {
	common.Assert(a != V6{hi: ^uint64(0), lo: ^uint64(0)})
	if a.lo == ^uint64(0) {
		return V6{hi: a.hi + 1}
	}
	return V6{hi: a.hi, lo: a.lo + 1}
}

// Prev returns the predecessor address. The caller must ensure a is not
// the bottom of the address space.
func (a V6) Prev() V6 {
	common.Assert(!a.IsZero())
	if a.lo == 0 {
		return V6{hi: a.hi - 1, lo: ^uint64(0)}
	}
	return V6{hi: a.hi, lo: a.lo - 1}
}

// HostMask6 returns the mask covering the host bits of a prefix of the
// given length, i.e. (1 << (128 - prefixLen)) - 1.
func HostMask6(prefixLen int) V6 {
	common.Assert(prefixLen >= 0 && prefixLen <= V6Bits)
	host := V6Bits - prefixLen
	switch {
	case host == V6Bits:
		return V6{hi: ^uint64(0), lo: ^uint64(0)}
	case host >= 64:
		return V6{hi: uint64(1)<<(host-64) - 1, lo: ^uint64(0)}
	case host == 0:
		return V6{}
	}
	return V6{lo: uint64(1)<<host - 1}
}

// RangeString renders the closed interval [a, max] in canonical form:
// "addr/prefixlen" when the interval is exactly a bit-aligned block,
// "addr-addr" otherwise.
func (a V6) RangeString(max V6) string {
	host := a.Xor(max)
	if n, ok := host.onesRun(); ok && a.And(host).IsZero() {
		return fmt.Sprintf("%s/%d", a, V6Bits-n)
	}
	return a.String() + "-" + max.String()
}

// onesRun reports whether the value is of the form 2^n - 1, and if so
// returns n.
func (a V6) onesRun() (int, bool) {
	switch {
	case a.hi == 0:
		if a.lo&(a.lo+1) != 0 {
			return 0, false
		}
		return bits.Len64(a.lo), true
	case a.lo == ^uint64(0):
		if a.hi&(a.hi+1) != 0 {
			return 0, false
		}
		return 64 + bits.Len64(a.hi), true
	}
	return 0, false
}
