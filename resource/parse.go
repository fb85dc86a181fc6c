package resource

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/openrpki/registry/address"
)

// ParseASRange parses one AS token: "N" or "N-M", decimal.
func ParseASRange(tok string) (ASRange, error) {
	lo, hi, isRange := strings.Cut(tok, "-")
	min, err := parseAS(lo)
	if err != nil {
		return ASRange{}, errors.Wrapf(ErrMalformedToken, "AS %q", tok)
	}
	if !isRange {
		return ASRange{Min: min, Max: min}, nil
	}
	max, err := parseAS(hi)
	if err != nil {
		return ASRange{}, errors.Wrapf(ErrMalformedToken, "AS %q", tok)
	}
	return NewRange(min, max)
}

func parseAS(s string) (AS, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	return AS(n), err
}

// ParseV4Range parses one IPv4 token: "addr/prefixlen" or "addr-addr".
func ParseV4Range(tok string) (V4Range, error) {
	if base, plen, isPrefix := strings.Cut(tok, "/"); isPrefix {
		addr, err := address.ParseV4(base)
		if err != nil {
			return V4Range{}, errors.Wrapf(ErrMalformedToken, "IPv4 %q", tok)
		}
		n, err := strconv.Atoi(plen)
		if err != nil || n < 0 || n > address.V4Bits {
			return V4Range{}, errors.Wrapf(ErrMalformedToken, "IPv4 prefix length %q", tok)
		}
		mask := address.HostMask4(n)
		if addr&mask != 0 {
			return V4Range{}, errors.Wrapf(ErrNonCanonicalForm, "%s is not the base of a /%d", addr, n)
		}
		return V4Range{Min: addr, Max: addr | mask}, nil
	}
	if lo, hi, isRange := strings.Cut(tok, "-"); isRange {
		min, errLo := address.ParseV4(lo)
		max, errHi := address.ParseV4(hi)
		if errLo != nil || errHi != nil {
			return V4Range{}, errors.Wrapf(ErrMalformedToken, "IPv4 %q", tok)
		}
		return NewRange(min, max)
	}
	return V4Range{}, errors.Wrapf(ErrMalformedToken, "IPv4 %q", tok)
}

// ParseV6Range parses one IPv6 token: "addr/prefixlen" or "addr-addr".
func ParseV6Range(tok string) (V6Range, error) {
	if base, plen, isPrefix := strings.Cut(tok, "/"); isPrefix {
		addr, err := address.ParseV6(base)
		if err != nil {
			return V6Range{}, errors.Wrapf(ErrMalformedToken, "IPv6 %q", tok)
		}
		n, err := strconv.Atoi(plen)
		if err != nil || n < 0 || n > address.V6Bits {
			return V6Range{}, errors.Wrapf(ErrMalformedToken, "IPv6 prefix length %q", tok)
		}
		mask := address.HostMask6(n)
		if !addr.And(mask).IsZero() {
			return V6Range{}, errors.Wrapf(ErrNonCanonicalForm, "%s is not the base of a /%d", addr, n)
		}
		return V6Range{Min: addr, Max: addr.Or(mask)}, nil
	}
	if lo, hi, isRange := strings.Cut(tok, "-"); isRange {
		min, errLo := address.ParseV6(lo)
		max, errHi := address.ParseV6(hi)
		if errLo != nil || errHi != nil {
			return V6Range{}, errors.Wrapf(ErrMalformedToken, "IPv6 %q", tok)
		}
		return NewRange(min, max)
	}
	return V6Range{}, errors.Wrapf(ErrMalformedToken, "IPv6 %q", tok)
}

// ParseASSet parses a comma-separated list of AS tokens. The empty
// string is the empty set.
func ParseASSet(s string) (ASSet, error) {
	return parseSet(s, ParseASRange)
}

// ParseV4Set parses a comma-separated list of IPv4 tokens.
func ParseV4Set(s string) (V4Set, error) {
	return parseSet(s, ParseV4Range)
}

// ParseV6Set parses a comma-separated list of IPv6 tokens.
func ParseV6Set(s string) (V6Set, error) {
	return parseSet(s, ParseV6Range)
}

func parseSet[T Value[T]](s string, parseRange func(string) (Range[T], error)) (Set[T], error) {
	if s == "" {
		return Set[T]{}, nil
	}
	tokens := strings.Split(s, ",")
	ranges := make([]Range[T], 0, len(tokens))
	for _, tok := range tokens {
		r, err := parseRange(tok)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return NewSet(ranges)
}
