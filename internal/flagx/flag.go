// Package flagx contains small helpers for cooperative flag parsing, so that
// each component can parse its own flags without tripping over flags defined
// elsewhere in the binary.
package flagx

import "strings"

// FilterArgs returns only the arguments belonging to the allowed flags,
// together with their values.
//
// Both forms are recognized:
//
//	-a :3000
//	-a=:3000
//
// Everything else is dropped, which lets a component hand the result to its
// own flag.FlagSet without "flag provided but not defined" errors.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		// "-flag=value" form
		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		// "-flag value" form; the value may be omitted for boolean flags
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
