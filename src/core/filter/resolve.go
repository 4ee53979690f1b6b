package filter

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"net/netip"
	"runtime"
	"strings"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/cnaize/bouncer/lib/util/get"
	"github.com/cnaize/bouncer/src/core/logger/event"
	"github.com/cnaize/bouncer/src/core/metrics"
	"github.com/cnaize/bouncer/src/types"
)

const (
	userPrefix     = "user:"
	schemeHTTP     = "http://"
	schemeHTTPS    = "https://"
	externalNTries = 3
)

// ignored entries never contribute to any set.
var ignored = map[string]struct{}{
	"0.0.0.0":   {},
	"::0":       {},
	"127.0.0.1": {},
	"::1":       {},
	"localhost": {},
}

func (f *Filter) resolveAll(ctx context.Context, entries []string) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, entry := range entries {
		g.Go(func() error {
			// failures stay local to the entry
			f.resolveEntry(ctx, entry)
			return nil
		})
	}

	g.Wait()
}

func (f *Filter) resolveEntry(ctx context.Context, entry string) {
	token, isUser := entry, false
	if len(token) >= len(userPrefix) && strings.EqualFold(token[:len(userPrefix)], userPrefix) {
		token = strings.TrimSpace(token[len(userPrefix):])
		isUser = true
	}

	if _, found := ignored[token]; found {
		return
	}

	if !isUser {
		if r, ok := types.ParseAddrRange(token); ok {
			f.addRange(r)
			return
		}

		if hasURLScheme(token) {
			f.resolveURL(ctx, token)
			return
		}

		if get.IsHostname(token) && f.resolveHost(ctx, token) {
			return
		}
	}

	f.tokens.Add(token)
	metrics.Get().EntriesResolvedTotal.WithLabelValues("opaque").Inc()
}

func (f *Filter) addRange(r types.AddrRange) {
	if r.Single {
		f.addrs.Add(r.Begin)
		metrics.Get().EntriesResolvedTotal.WithLabelValues("addr").Inc()
		return
	}

	f.ranges.Add(r)
	metrics.Get().EntriesResolvedTotal.WithLabelValues("range").Inc()
}

func (f *Filter) resolveURL(ctx context.Context, url string) {
	if f.fetcher == nil {
		f.logger.Log(event.NewError(zerolog.WarnLevel, "list fetcher not configured", nil))
		return
	}

	body, err := backoff.Retry(ctx, func() ([]byte, error) {
		body, err := f.fetcher.Fetch(ctx, url)
		if err != nil && errors.Is(err, ErrPermanent) {
			return nil, backoff.Permanent(err)
		}

		return body, err
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(externalNTries))
	if err != nil {
		// fetch failure drops the entry
		f.logger.Log(event.NewError(zerolog.WarnLevel, "list fetch failed", err))
		metrics.Get().ResolveErrorsTotal.WithLabelValues("fetch").Inc()
		return
	}

	scanner := bufio.NewScanner(bytes.NewReader(body))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if r, ok := types.ParseAddrRange(line); ok {
			f.addRange(r)
		}
	}

	metrics.Get().EntriesResolvedTotal.WithLabelValues("list").Inc()
}

func (f *Filter) resolveHost(ctx context.Context, host string) bool {
	if f.resolver == nil {
		return false
	}

	addrs, err := backoff.Retry(ctx, func() ([]netip.Addr, error) {
		addrs, err := f.resolver.Resolve(ctx, host)
		if err != nil && errors.Is(err, ErrHostNotFound) {
			return nil, backoff.Permanent(err)
		}

		return addrs, err
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(externalNTries))
	if err != nil {
		// the entry falls through to the opaque set
		f.logger.Log(event.NewError(zerolog.DebugLevel, "hostname resolve failed", err))
		metrics.Get().ResolveErrorsTotal.WithLabelValues("resolve").Inc()
		return false
	}

	for _, addr := range addrs {
		f.addrs.Add(addr)
	}

	metrics.Get().EntriesResolvedTotal.WithLabelValues("host").Inc()

	return len(addrs) > 0
}

func hasURLScheme(token string) bool {
	if len(token) >= len(schemeHTTP) && strings.EqualFold(token[:len(schemeHTTP)], schemeHTTP) {
		return true
	}

	return len(token) >= len(schemeHTTPS) && strings.EqualFold(token[:len(schemeHTTPS)], schemeHTTPS)
}
