package options

import (
	"fmt"

	"github.com/joshuapare/rcversion/pkg/types"
)

// legacyFlags maps the single letter options of the classic command line
// onto long flag names.
var legacyFlags = map[byte]string{
	'm': "major",
	'n': "minor",
	'b': "build",
	'r': "revision",
	'o': "output",
	'v': "verbosity",
}

// NormalizeArgs rewrites classic options such as "/m:2" or "-b:37" into
// "--major=2" and "--build=37". The letter is case-insensitive. An option
// with an empty value ("/b:") is dropped so the default applies. Other
// arguments pass through unchanged, including paths that start with a slash.
func NormalizeArgs(args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		if !isLegacy(arg) {
			out = append(out, arg)
			continue
		}
		if len(arg) < 3 || arg[2] != ':' {
			return nil, fmt.Errorf("%w: invalid option format [%s]", types.ErrInvalidParameter, arg)
		}
		name, ok := legacyFlags[lower(arg[1])]
		if !ok {
			return nil, fmt.Errorf("%w: unknown option [%s]", types.ErrInvalidParameter, arg)
		}
		if value := arg[3:]; value != "" {
			out = append(out, "--"+name+"="+value)
		}
	}
	return out, nil
}

// isLegacy reports whether arg looks like "/x:..." or "-x:...", or is a bare
// "/x". Longer arguments without the colon are paths or regular flags.
func isLegacy(arg string) bool {
	if len(arg) < 2 || (arg[0] != '/' && arg[0] != '-') {
		return false
	}
	if !isLetter(arg[1]) {
		return false
	}
	switch {
	case len(arg) == 2:
		return arg[0] == '/'
	default:
		return arg[2] == ':'
	}
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func lower(c byte) byte {
	return c | 0x20
}
