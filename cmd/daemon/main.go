package main

import (
	"context"
	"flag"
	"fmt"
	"net/netip"
	"os"
	"strings"
	"time"

	"github.com/appleboy/graceful"
	"github.com/rs/zerolog"

	"github.com/cnaize/bouncer/lib/util/get"
	"github.com/cnaize/bouncer/src/config"
	"github.com/cnaize/bouncer/src/core/fetch"
	"github.com/cnaize/bouncer/src/core/filter"
	"github.com/cnaize/bouncer/src/core/logger"
	"github.com/cnaize/bouncer/src/core/resolve"
	"github.com/cnaize/bouncer/src/server"
	"github.com/cnaize/bouncer/src/types"
)

func main() {
	var cfg config.Config
	// parse config
	flag.StringVar(&cfg.LogLevel, "log-level", "info", "set log level")
	flag.UintVar(&cfg.LoggersCount, "lcount", 2, "set loggers count")
	flag.StringVar(&cfg.Spec, "spec", "", "set filter specification string")
	flag.StringVar(&cfg.Pattern, "pattern", "", "set filter match pattern")
	flag.StringVar(&cfg.ExceptionSpec, "exceptions", "", "set exception (counter) filter specification string")
	flag.StringVar(&cfg.DNSServers, "dns-servers", "", "set comma separated dns server subnets")
	flag.StringVar(&cfg.Resolver, "resolver", "", "set dns server address, system resolver if empty")
	flag.DurationVar(&cfg.FetchTimeout, "fetch-timeout", 30*time.Second, "set remote list fetch timeout")
	flag.DurationVar(&cfg.RebuildInterval, "rebuild-interval", 24*time.Hour, "set filter rebuild frequency")
	flag.StringVar(&cfg.Username, "username", "bouncer", "set api server username")
	flag.StringVar(&cfg.Password, "password", "bouncer", "set api server password")
	flag.StringVar(&cfg.ApiServerAddr, "api-server-addr", "localhost:8080", "set api server address")
	flag.Parse()

	// create logger
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %s", err.Error()))
	}
	zlog := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(lvl)
	log := logger.NewLogger(&zlog, 1024)

	log.Raw().Info().Msg("Running Bouncer...")

	// main context
	mainCtx, mainCancel := context.WithCancel(context.Background())
	defer mainCancel()

	log.Run(mainCtx, cfg.LoggersCount)

	// create collaborators
	var resolver filter.NameResolver = resolve.NewSystem()
	if cfg.Resolver != "" {
		resolver = resolve.NewDNS(cfg.Resolver)
	}
	fetcher := fetch.NewHTTP(cfg.FetchTimeout)
	servers := serverList(cfg.DNSServers)

	build := func(ctx context.Context) (*filter.Filter, error) {
		var counter filter.CounterFilter
		if cfg.ExceptionSpec != "" {
			c, err := filter.New(ctx, cfg.ExceptionSpec, "", filter.Options{
				Fetcher:  fetcher,
				Resolver: resolver,
				Logger:   log,
			})
			if err != nil {
				return nil, fmt.Errorf("build exception filter: %w", err)
			}
			counter = c
		}

		return filter.New(ctx, cfg.Spec, cfg.Pattern, filter.Options{
			Fetcher:  fetcher,
			Resolver: resolver,
			Counter:  counter,
			Servers:  servers,
			Logger:   log,
		})
	}

	// build filter
	f, err := build(mainCtx)
	if err != nil {
		panic(fmt.Sprintf("Failed to build filter: %s", err.Error()))
	}
	flt := filter.NewRef(f)

	// rebuild filter: remote lists and dns answers go stale
	go func() {
		ticker := time.NewTicker(cfg.RebuildInterval)
		defer ticker.Stop()

		for {
			select {
			case <-mainCtx.Done():
				return
			case <-ticker.C:
				f, err := build(mainCtx)
				if err != nil {
					log.Raw().Error().Err(err).Msg("Filter rebuild failed")
					continue
				}

				flt.Store(f)
				log.Raw().
					Info().
					Int("addrs", f.Addrs().Len()).
					Int("ranges", f.Ranges().Len()).
					Int("tokens", f.Tokens().Len()).
					Msg("Filter rebuilt")
			}
		}
	}()

	// run api server
	s := server.NewServer(cfg.ApiServerAddr, cfg.Username, cfg.Password, flt, log)
	m := graceful.NewManager(graceful.WithContext(mainCtx))
	m.AddRunningJob(func(ctx context.Context) error {
		defer mainCancel()

		select {
		case <-ctx.Done():
		default:
			if err := s.Run(ctx); err != nil {
				log.Raw().Error().Err(err).Msg("Server run failed")
			}
		}

		return nil
	})
	m.AddShutdownJob(s.Close)

	// wait till the end
	<-m.Done()
}

func serverList(raw string) filter.ServerList {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var prefixes []netip.Prefix
	for _, part := range strings.Split(raw, ",") {
		if prefix, ok := get.NetPrefix(strings.TrimSpace(part)); ok {
			prefixes = append(prefixes, prefix)
		}
	}
	if len(prefixes) == 0 {
		return nil
	}

	return types.NewServerList(prefixes)
}
