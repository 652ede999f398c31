package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	base := func() *Config {
		return &Config{GraphQLEndpoint: "http://default", DataDir: ".teebay", RequestTimeout: 15 * time.Second, LogLevel: "info"}
	}

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name:     "all flags",
			args:     []string{"cmd", "-a", "http://api:4000/graphql", "-d", "/data", "-t", "5", "-l", "debug"},
			expected: &Config{GraphQLEndpoint: "http://api:4000/graphql", DataDir: "/data", RequestTimeout: 5 * time.Second, LogLevel: "debug"},
		},
		{
			name:     "unowned flags are ignored",
			args:     []string{"cmd", "-c", "x.json", "-e", "y.env", "-a", "http://only"},
			expected: &Config{GraphQLEndpoint: "http://only", DataDir: ".teebay", RequestTimeout: 15 * time.Second, LogLevel: "info"},
		},
		{
			name:     "no flags keeps values",
			args:     []string{"cmd"},
			expected: base(),
		},
		{
			name:        "incorrect timeout",
			args:        []string{"cmd", "-t", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			cfg := base()
			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
