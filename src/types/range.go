package types

import (
	"net/netip"
	"strings"
)

// AddrRange is an inclusive address interval. A single address is a
// degenerate range with Begin == End and Single set.
type AddrRange struct {
	Begin  netip.Addr
	End    netip.Addr
	Single bool
}

func NewAddrRange(addr netip.Addr) AddrRange {
	return AddrRange{Begin: addr, End: addr, Single: true}
}

// ParseAddrRange parses a single address, a CIDR prefix or a "begin-end"
// interval. Full-length prefixes collapse to a single address.
func ParseAddrRange(str string) (AddrRange, bool) {
	str = strings.TrimSpace(str)
	if str == "" {
		return AddrRange{}, false
	}

	if addr, err := netip.ParseAddr(str); err == nil {
		return NewAddrRange(addr), true
	}

	if prefix, err := netip.ParsePrefix(str); err == nil {
		begin := prefix.Masked().Addr()
		end := lastAddr(prefix)
		if begin == end {
			return NewAddrRange(begin), true
		}

		return AddrRange{Begin: begin, End: end}, true
	}

	if beginStr, endStr, found := strings.Cut(str, "-"); found {
		begin, berr := netip.ParseAddr(strings.TrimSpace(beginStr))
		end, eerr := netip.ParseAddr(strings.TrimSpace(endStr))
		if berr != nil || eerr != nil ||
			begin.BitLen() != end.BitLen() || end.Less(begin) {
			return AddrRange{}, false
		}

		if begin == end {
			return NewAddrRange(begin), true
		}

		return AddrRange{Begin: begin, End: end}, true
	}

	return AddrRange{}, false
}

func (r AddrRange) Contains(addr netip.Addr) bool {
	if addr.BitLen() != r.Begin.BitLen() {
		return false
	}

	return !addr.Less(r.Begin) && !r.End.Less(addr)
}

func (r AddrRange) ContainsRange(other AddrRange) bool {
	if other.Begin.BitLen() != r.Begin.BitLen() {
		return false
	}

	return !other.Begin.Less(r.Begin) && !r.End.Less(other.End)
}

// Prefix reports the range as a CIDR prefix if it is exactly one.
func (r AddrRange) Prefix() (netip.Prefix, bool) {
	for bits := r.Begin.BitLen(); bits >= 0; bits-- {
		prefix, err := r.Begin.Prefix(bits)
		if err != nil || prefix.Addr() != r.Begin {
			break
		}

		if lastAddr(prefix) == r.End {
			return prefix, true
		}
	}

	return netip.Prefix{}, false
}

func (r AddrRange) String() string {
	if r.Single {
		return r.Begin.String()
	}

	return r.Begin.String() + "-" + r.End.String()
}

func lastAddr(prefix netip.Prefix) netip.Addr {
	raw := prefix.Masked().Addr().AsSlice()
	for bit := prefix.Bits(); bit < len(raw)*8; bit++ {
		raw[bit/8] |= 1 << (7 - bit%8)
	}

	addr, _ := netip.AddrFromSlice(raw)
	return addr
}
