package get

import (
	"net/netip"
	"strings"
)

func NetPrefix(str string) (netip.Prefix, bool) {
	if str == "" {
		return netip.Prefix{}, false
	}

	if prefix, err := netip.ParsePrefix(str); err == nil {
		return prefix, true
	}

	if ip, err := netip.ParseAddr(str); err == nil {
		return netip.PrefixFrom(ip, ip.BitLen()), true
	}

	return netip.Prefix{}, false
}

// IsHostname reports whether str is a syntactically valid hostname:
// dot-separated labels of letters, digits and inner hyphens.
func IsHostname(str string) bool {
	if str == "" || len(str) > 253 {
		return false
	}

	if _, err := netip.ParseAddr(str); err == nil {
		return false
	}

	for _, label := range strings.Split(str, ".") {
		if label == "" || len(label) > 63 {
			return false
		}

		if label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}

		for _, c := range label {
			if c != '-' &&
				(c < 'a' || c > 'z') &&
				(c < 'A' || c > 'Z') &&
				(c < '0' || c > '9') {
				return false
			}
		}
	}

	return true
}
