package filter

import (
	"context"
	"errors"
	"net/netip"

	"github.com/cnaize/bouncer/src/types"
)

// Reasons reported by IsFiltered.
const (
	ReasonCounter  = "Counter filter"
	ReasonDNSList  = "Dns list"
	ReasonIPList   = "IP list"
	ReasonRegex    = "Regex"
	ReasonOther    = "Other"
	ReasonNotFound = "Not found"
)

var (
	// ErrHostNotFound marks a hostname that does not exist; never retried.
	ErrHostNotFound = errors.New("host not found")
	// ErrPermanent marks a fetch failure that retrying cannot fix.
	ErrPermanent = errors.New("permanent failure")
)

// ListFetcher pulls a newline-delimited address list from a url.
type ListFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// NameResolver resolves a hostname to its addresses. A missing host
// fails with ErrHostNotFound.
type NameResolver interface {
	Resolve(ctx context.Context, hostname string) ([]netip.Addr, error)
}

// CounterFilter is a secondary filter whose own match suppresses a match
// in the filter that holds it.
type CounterFilter interface {
	IsFiltered(candidate string) (bool, string)
	IsFilteredRange(r types.AddrRange) (bool, string)
}

// ServerList answers whether a range overlaps name-resolution
// infrastructure that must never be filtered.
type ServerList interface {
	ContainsRange(r types.AddrRange) bool
}
