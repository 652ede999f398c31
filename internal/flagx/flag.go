// Package flagx parses the handful of command-line flags that must be known
// before the main flag set is built: the JSON config path and the .env path.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns the subset of args made of the allowed flags and their
// values, preserving order.
//
// Supported formats:
//
//	-c conf.json        flag and value as separate arguments
//	--config=conf.json  flag and value joined with '='
//
// A standalone flag only captures the following argument when that argument
// does not itself start with '-'.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, keep := allowed[name]; keep {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, keep := allowed[arg]; !keep {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}
	return filtered
}

// stringFlag extracts a single string flag known under a short and a long
// name from os.Args, ignoring every other argument.
func stringFlag(short, long, def, usage string) string {
	value := def
	args := FilterArgs(os.Args[1:], []string{"-" + short, "-" + long, "--" + short, "--" + long})

	fs := flag.NewFlagSet(long, flag.ContinueOnError)
	fs.SetOutput(discard{})
	fs.StringVar(&value, long, def, usage)
	fs.StringVar(&value, short, def, usage+" (short)")
	_ = fs.Parse(args)
	return value
}

// JsonConfigFlags returns the config file path given via -c or -config, or
// an empty string when neither is present.
func JsonConfigFlags() string {
	return stringFlag("c", "config", "", "path to JSON config file")
}

// EnvFileFlags returns the .env path given via -e or -env, defaulting to
// ".env" in the working directory.
func EnvFileFlags() string {
	return stringFlag("e", "env", ".env", "path to .env file")
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
