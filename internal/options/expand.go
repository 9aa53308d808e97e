package options

import (
	"os"
	"regexp"
)

var envRef = regexp.MustCompile(`%([A-Za-z_][A-Za-z0-9_()]*)%|\$\(([A-Za-z_][A-Za-z0-9_]*)\)`)

// ExpandPath replaces %NAME% and $(NAME) with the value of the environment
// variable NAME. References to unset variables are left as written.
func ExpandPath(path string) string {
	return envRef.ReplaceAllStringFunc(path, func(ref string) string {
		m := envRef.FindStringSubmatch(ref)
		name := m[1]
		if name == "" {
			name = m[2]
		}
		if v, ok := os.LookupEnv(name); ok {
			return v
		}
		return ref
	})
}
