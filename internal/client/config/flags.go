package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/teebay/internal/flagx"
)

// parseFlags populates cfg from the short command-line flags. Arguments it
// does not own (-c, -e) are filtered out first.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-l"})
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.GraphQLEndpoint, "a", cfg.GraphQLEndpoint, "GraphQL endpoint URL")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory for the session store")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
