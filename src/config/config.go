package config

import (
	"time"
)

type Config struct {
	LogLevel     string
	LoggersCount uint
	// filter
	Spec            string
	Pattern         string
	ExceptionSpec   string
	DNSServers      string
	Resolver        string
	FetchTimeout    time.Duration
	RebuildInterval time.Duration
	// api server
	Username      string
	Password      string
	ApiServerAddr string
}
