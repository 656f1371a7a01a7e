// Package flagx contains helpers for parsing a subset of command-line flags
// without tripping over flags that belong to other components.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs returns the arguments from args that belong to the flags named in
// valueFlags (flags that take a value) or boolFlags (switches without a value).
//
// Supported forms:
//
//	-c conf.json
//	-c=conf.json
//	--config=conf.json
//	-y
//
// A value flag keeps the following argument only when it does not look like
// another flag. A bool flag never consumes the following argument.
func FilterArgs(args []string, valueFlags []string, boolFlags ...string) []string {
	withValue := toSet(valueFlags)
	switches := toSet(boolFlags)

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		if name, _, ok := strings.Cut(arg, "="); ok {
			if _, known := withValue[name]; known {
				filtered = append(filtered, arg)
			} else if _, known := switches[name]; known {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := switches[arg]; ok {
			filtered = append(filtered, arg)
			continue
		}

		if _, ok := withValue[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// ConfigFileFlag extracts the config file path given with -c or -config.
// Other arguments are ignored. The last occurrence wins; an empty string means
// no config file was requested.
func ConfigFileFlag(args []string) string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config", "--config"}))

	return path
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
