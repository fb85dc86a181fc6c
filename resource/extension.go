package resource

import (
	"bytes"
	"encoding/asn1"
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/openrpki/registry/address"
)

// Identifiers of the RFC 3779 certificate extensions.
var (
	OIDAutonomousSysIDs = asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 1, 8} // sbgp-autonomousSysNum
	OIDIPAddrBlocks     = asn1.ObjectIdentifier{1, 3, 6, 1, 5, 5, 7, 1, 7} // sbgp-ipAddrBlock
)

// Address-family codes carried inside sbgp-ipAddrBlock.
var (
	AFIIPv4 = []byte{0x00, 0x01}
	AFIIPv6 = []byte{0x00, 0x02}
)

// Element kinds as labelled by the DER decoder.
const (
	KindSingle        = "single"
	KindRange         = "range"
	KindInherit       = "inherit"
	KindAddressPrefix = "addressPrefix"
	KindAddressRange  = "addressRange"
)

// ASEntry is one decoded element of an sbgp-autonomousSysNum extension.
type ASEntry struct {
	Kind     string
	ID       AS // for KindSingle
	Min, Max AS // for KindRange
}

// IPEntry is one decoded element of an address family within an
// sbgp-ipAddrBlock extension. Bit-strings shorter than the family width
// are left-aligned into the high bits; the low bits are implicit.
type IPEntry struct {
	Kind     string
	Prefix   asn1.BitString // for KindAddressPrefix
	Min, Max asn1.BitString // for KindAddressRange
}

// IPFamily is one per-family sequence of an sbgp-ipAddrBlock extension.
type IPFamily struct {
	AFI     []byte
	Entries []IPEntry
}

// Extension is one decoded certificate extension, as handed over by the
// X.509 layer. AS is set for sbgp-autonomousSysNum, Families for
// sbgp-ipAddrBlock.
type Extension struct {
	ID       asn1.ObjectIdentifier
	AS       []ASEntry
	Families []IPFamily
}

// ASSetFromEntries builds an AS set from decoded extension entries.
// "inherit" is rejected loudly; supporting it would require the issuer
// chain, which this layer does not see.
func ASSetFromEntries(entries []ASEntry) (ASSet, error) {
	ranges := make([]ASRange, 0, len(entries))
	for _, e := range entries {
		switch e.Kind {
		case KindSingle:
			ranges = append(ranges, ASRange{Min: e.ID, Max: e.ID})
		case KindRange:
			r, err := NewRange(e.Min, e.Max)
			if err != nil {
				return nil, err
			}
			ranges = append(ranges, r)
		case KindInherit:
			return nil, errors.Wrap(ErrInherit, "sbgp-autonomousSysNum")
		default:
			return nil, errors.Wrapf(ErrMalformedToken, "AS entry kind %q", e.Kind)
		}
	}
	return NewSet(ranges)
}

// SetsFromFamilies builds the IPv4 and IPv6 sets conveyed by the
// per-family sequences of an sbgp-ipAddrBlock extension. A family absent
// from the extension yields a nil set.
func SetsFromFamilies(families []IPFamily) (V4Set, V6Set, error) {
	var (
		v4 V4Set
		v6 V6Set
	)
	for _, fam := range families {
		switch {
		case bytes.Equal(fam.AFI, AFIIPv4):
			if v4 != nil {
				return nil, nil, errors.New("duplicate IPv4 family in sbgp-ipAddrBlock")
			}
			set, err := setFromIPEntries(fam.Entries, v4FromBits)
			if err != nil {
				return nil, nil, errors.Wrap(err, "IPv4 family")
			}
			v4 = set
		case bytes.Equal(fam.AFI, AFIIPv6):
			if v6 != nil {
				return nil, nil, errors.New("duplicate IPv6 family in sbgp-ipAddrBlock")
			}
			set, err := setFromIPEntries(fam.Entries, v6FromBits)
			if err != nil {
				return nil, nil, errors.Wrap(err, "IPv6 family")
			}
			v6 = set
		default:
			return nil, nil, errors.Wrapf(ErrDomainMismatch, "unknown address family %x", fam.AFI)
		}
	}
	return v4, v6, nil
}

// setFromIPEntries decodes one family's entries. fromBits turns a
// bit-string into the two completions of its implicit host bits: lo
// zero-fills them (prefix bases, range minimums), hi one-fills them
// (range maximums and the top of a prefix block); aligned reports that
// the encoded value has no host bits set.
func setFromIPEntries[T Value[T]](entries []IPEntry, fromBits func(asn1.BitString) (lo, hi T, aligned bool, err error)) (Set[T], error) {
	ranges := make([]Range[T], 0, len(entries))
	for _, e := range entries {
		switch e.Kind {
		case KindAddressPrefix:
			lo, hi, aligned, err := fromBits(e.Prefix)
			if err != nil {
				return nil, err
			}
			if !aligned {
				return nil, errors.Wrapf(ErrNonCanonicalForm, "%s is not the base of a /%d", lo, e.Prefix.BitLength)
			}
			ranges = append(ranges, Range[T]{Min: lo, Max: hi})
		case KindAddressRange:
			min, _, _, err := fromBits(e.Min)
			if err != nil {
				return nil, err
			}
			_, max, _, err := fromBits(e.Max)
			if err != nil {
				return nil, err
			}
			r, err := NewRange(min, max)
			if err != nil {
				return nil, err
			}
			ranges = append(ranges, r)
		case KindInherit:
			return nil, errors.Wrap(ErrInherit, "sbgp-ipAddrBlock")
		default:
			return nil, errors.Wrapf(ErrMalformedToken, "address entry kind %q", e.Kind)
		}
	}
	return NewSet(ranges)
}

func v4FromBits(bs asn1.BitString) (lo, hi address.V4, aligned bool, err error) {
	if bs.BitLength < 0 || bs.BitLength > address.V4Bits || len(bs.Bytes) > address.V4Bits/8 {
		return 0, 0, false, errors.Wrapf(ErrDomainMismatch, "%d-bit string in an IPv4 family", bs.BitLength)
	}
	var b [4]byte
	copy(b[:], bs.Bytes)
	value := address.V4(binary.BigEndian.Uint32(b[:]))
	mask := address.HostMask4(bs.BitLength)
	return value, value | mask, value&mask == 0, nil
}

func v6FromBits(bs asn1.BitString) (lo, hi address.V6, aligned bool, err error) {
	if bs.BitLength < 0 || bs.BitLength > address.V6Bits || len(bs.Bytes) > address.V6Bits/8 {
		return address.V6{}, address.V6{}, false, errors.Wrapf(ErrDomainMismatch, "%d-bit string in an IPv6 family", bs.BitLength)
	}
	var b [16]byte
	copy(b[:], bs.Bytes)
	value := address.FromIP16(b[:])
	mask := address.HostMask6(bs.BitLength)
	return value, value.Or(mask), value.And(mask).IsZero(), nil
}

// BagFromExtensions builds the resource holdings conveyed by a
// certificate's RFC 3779 extensions. Extensions with other identifiers
// are ignored; duplicated resource extensions are an error. Validity is
// not carried by these extensions and is left zero.
func BagFromExtensions(exts []Extension) (Bag, error) {
	var (
		bag            Bag
		haveAS, haveIP bool
	)
	for _, ext := range exts {
		switch {
		case ext.ID.Equal(OIDAutonomousSysIDs):
			if haveAS {
				return Bag{}, errors.New("duplicate sbgp-autonomousSysNum extension")
			}
			set, err := ASSetFromEntries(ext.AS)
			if err != nil {
				return Bag{}, err
			}
			bag.AS, haveAS = set, true
		case ext.ID.Equal(OIDIPAddrBlocks):
			if haveIP {
				return Bag{}, errors.New("duplicate sbgp-ipAddrBlock extension")
			}
			v4, v6, err := SetsFromFamilies(ext.Families)
			if err != nil {
				return Bag{}, err
			}
			bag.V4, bag.V6, haveIP = v4, v6, true
		}
	}
	return bag, nil
}
