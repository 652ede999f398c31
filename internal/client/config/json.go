package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/teebay/internal/flagx"
	"github.com/dmitrijs2005/teebay/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Empty fields leave
// the current value untouched.
type JsonConfig struct {
	GraphQLEndpoint string          `json:"graphql_endpoint"`
	DataDir         string          `json:"data_dir"`
	RequestTimeout  *timex.Duration `json:"request_timeout"`
	LogLevel        string          `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config. Read or decode
// errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.GraphQLEndpoint != "" {
		cfg.GraphQLEndpoint = jc.GraphQLEndpoint
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
