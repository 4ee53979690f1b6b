package filter

import (
	"context"
	"fmt"
	"regexp"

	"github.com/cnaize/bouncer/src/core/logger"
	"github.com/cnaize/bouncer/src/types"
)

var _ CounterFilter = (*Filter)(nil)

// Filter answers whether a candidate address or opaque identifier is
// banned by a human-authored specification string. Immutable and safe
// for concurrent reads once New returns.
type Filter struct {
	spec        string
	patternText string
	pattern     *regexp.Regexp

	addrs  *types.AddrSet
	ranges *types.RangeSet
	tokens *types.TokenSet

	fetcher  ListFetcher
	resolver NameResolver
	counter  CounterFilter
	servers  ServerList

	logger *logger.Logger
}

type Options struct {
	Fetcher  ListFetcher
	Resolver NameResolver
	Counter  CounterFilter
	Servers  ServerList
	Logger   *logger.Logger
}

// New builds a filter from a specification string and an optional match
// pattern. It blocks until every entry is resolved; a malformed pattern
// is the only construction failure.
func New(ctx context.Context, spec, pattern string, opts Options) (*Filter, error) {
	var compiled *regexp.Regexp
	if pattern != "" {
		var err error
		compiled, err = regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compile pattern: %w", err)
		}
	}

	lg := opts.Logger
	if lg == nil {
		lg = logger.NewNop()
	}

	f := &Filter{
		spec:        spec,
		patternText: pattern,
		pattern:     compiled,
		addrs:       types.NewAddrSet(),
		ranges:      types.NewRangeSet(),
		tokens:      types.NewTokenSet(),
		fetcher:     opts.Fetcher,
		resolver:    opts.Resolver,
		counter:     opts.Counter,
		servers:     opts.Servers,
		logger:      lg,
	}

	f.resolveAll(ctx, SplitSpec(spec))

	return f, nil
}

// IsFiltered reports whether the candidate string is banned. Address-like
// candidates go through the range form; everything else is matched
// against the opaque tokens and the pattern, with the counter filter
// suppressing a match.
func (f *Filter) IsFiltered(candidate string) (bool, string) {
	if r, ok := types.ParseAddrRange(candidate); ok {
		if matched, reason := f.IsFilteredRange(r); matched {
			return true, reason
		}
	} else if f.counter != nil {
		if matched, _ := f.counter.IsFiltered(candidate); matched {
			return false, ReasonCounter
		}
	}

	normalized := types.NormalizeToken(candidate)
	if f.tokens.Contains(normalized) {
		return true, ReasonOther
	}

	if f.pattern != nil && f.pattern.MatchString(normalized) {
		return true, ReasonRegex
	}

	return false, ""
}

// IsFilteredRange reports whether the range is banned. The counter filter
// and the server list always win over the local sets.
func (f *Filter) IsFilteredRange(r types.AddrRange) (bool, string) {
	if f.counter != nil {
		if matched, reason := f.counter.IsFilteredRange(r); matched {
			if reason == "" {
				reason = ReasonCounter
			}

			return false, reason
		}
	}

	if f.servers != nil && f.servers.ContainsRange(r) {
		return false, ReasonDNSList
	}

	if r.Single && f.addrs.Contains(r.Begin) {
		return true, ReasonIPList
	}

	if f.addrs.AnyInRange(r) || f.ranges.ContainsRange(r) {
		return true, ReasonIPList
	}

	return false, ReasonNotFound
}

// Equal compares the exact addresses, the ranges and the pattern text.
// Opaque tokens are deliberately left out.
func (f *Filter) Equal(other *Filter) bool {
	if other == nil {
		return false
	}

	return f.patternText == other.patternText &&
		f.addrs.Equal(other.addrs) &&
		f.ranges.Equal(other.ranges)
}

func (f *Filter) Spec() string {
	return f.spec
}

func (f *Filter) Pattern() string {
	return f.patternText
}

func (f *Filter) Addrs() *types.AddrSet {
	return f.addrs
}

func (f *Filter) Ranges() *types.RangeSet {
	return f.ranges
}

func (f *Filter) Tokens() *types.TokenSet {
	return f.tokens
}
