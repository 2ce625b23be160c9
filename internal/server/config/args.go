package config

import (
	"flag"
	"os"
	"strings"
)

// filterArgs keeps only the allowed flags (and their values) from args, so
// each parsing stage can use its own FlagSet without tripping over flags it
// does not define. Both "-f value" and "-f=value" forms are recognized.
// Every allowed flag takes a value, so the argument after it is kept even
// when it starts with "-".
func filterArgs(args []string, allowed []string) []string {
	known := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		known[f] = struct{}{}
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, ok := known[name]; ok {
				out = append(out, arg)
			}
			continue
		}

		if _, ok := known[arg]; !ok {
			continue
		}
		out = append(out, arg)
		if i+1 < len(args) {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// jsonConfigPath returns the value of -c / -config, or "" when neither is set.
func jsonConfigPath() string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(filterArgs(os.Args[1:], []string{"-c", "-config"}))

	return path
}
