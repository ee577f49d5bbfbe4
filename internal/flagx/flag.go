// Package flagx lets several config loaders share one command line: each
// loader picks out only the flags it owns and ignores the rest.
package flagx

import (
	"flag"
	"io"
	"os"
	"strings"
)

// FilterArgs returns the subset of args made of allowed flags and their values.
//
// Both "-f value" and "-f=value" forms are recognised. A token following an
// allowed flag counts as its value unless it starts with '-'. The result is
// never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// StringFlag extracts a single string flag known under several names
// (e.g. "c" and "config") from args. The last occurrence wins; an absent
// flag yields "".
func StringFlag(args []string, names ...string) string {
	var value string

	dashed := make([]string, 0, len(names))
	fs := flag.NewFlagSet("flagx", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	for _, n := range names {
		dashed = append(dashed, "-"+n)
		fs.StringVar(&value, n, "", "")
	}
	_ = fs.Parse(FilterArgs(args, dashed))

	return value
}

// ConfigFileFlag returns the JSON config path given via -c or -config.
func ConfigFileFlag() string {
	return StringFlag(os.Args[1:], "c", "config")
}

// EnvFileFlag returns the dotenv file path given via -e or -env.
func EnvFileFlag() string {
	return StringFlag(os.Args[1:], "e", "env")
}
