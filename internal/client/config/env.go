package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/dmitrijs2005/teebay/internal/flagx"
	"github.com/joho/godotenv"
)

const (
	envGraphQLURI     = "TEEBAY_GRAPHQL_URI"
	envDataDir        = "TEEBAY_DATA_DIR"
	envRequestTimeout = "TEEBAY_REQUEST_TIMEOUT"
	envLogLevel       = "TEEBAY_LOG_LEVEL"
)

// parseEnv loads the .env file (if any) into the process environment and
// overlays cfg with the TEEBAY_* variables. Variables already set in the
// environment win over the file. A malformed file or duration panics.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(flagx.EnvFileFlags()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v := os.Getenv(envGraphQLURI); v != "" {
		cfg.GraphQLEndpoint = v
	}
	if v := os.Getenv(envDataDir); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
