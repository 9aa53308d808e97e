// Package options holds the command line configuration of an update run:
// the version overrides, the input and output paths, and the verbosity.
package options

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/joshuapare/rcversion/internal/logger"
	"github.com/joshuapare/rcversion/internal/rcfile"
	"github.com/joshuapare/rcversion/pkg/types"
)

// Options is the validated configuration of one update run.
type Options struct {
	Input  string
	Output string

	Major    Number
	Minor    Number
	Build    Number
	Revision Number

	// KeepBuild leaves the build number as parsed instead of incrementing it.
	KeepBuild bool

	Verbosity      Number
	Padding        int
	FullSync       bool
	SkipDirectives bool
}

// Default returns options that increment the build and change nothing else.
func Default() Options {
	return Options{
		Major:     types.Unchanged,
		Minor:     types.Unchanged,
		Build:     types.AutoIncrement,
		Revision:  types.Unchanged,
		Verbosity: logger.DefaultVerbosity,
		Padding:   rcfile.DefaultPadding,
	}
}

// Validate checks the options, expands environment variables in the paths,
// and defaults the output to the input. Every problem is reported, joined
// into one error that wraps types.ErrInvalidParameter; an input that cannot
// be found wraps fs.ErrNotExist instead.
func (o *Options) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{types.ErrInvalidParameter}, args...)...))
	}

	if o.Verbosity < logger.MinVerbosity || o.Verbosity > logger.MaxVerbosity {
		invalid("verbosity %d out of range %d-%d", o.Verbosity, logger.MinVerbosity, logger.MaxVerbosity)
	}
	if o.Padding < 0 {
		invalid("negative padding %d", o.Padding)
	}
	if o.KeepBuild && o.Build >= 0 {
		invalid("--keep-build conflicts with build number %d", o.Build)
	}

	o.Input = ExpandPath(o.Input)
	o.Output = ExpandPath(o.Output)
	if o.Input == "" {
		invalid("missing input file")
	}
	if o.Output == "" {
		o.Output = o.Input
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	if _, err := os.Stat(o.Input); err != nil {
		return fmt.Errorf("cannot access file [%s]: %w", o.Input, err)
	}
	return nil
}

// Request converts the overrides into the updater's request.
func (o Options) Request() types.Request {
	req := types.Request{
		Major:    int(o.Major),
		Minor:    int(o.Minor),
		Build:    int(o.Build),
		Revision: int(o.Revision),
	}
	if o.KeepBuild {
		req.Build = types.KeepBuild
	}
	return req
}

// ParseNumber parses a plain non-negative decimal number. Leading zeros are
// allowed; signs, blanks, prefixes, and trailing text are not.
func ParseNumber(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty number", types.ErrInvalidParameter)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: invalid number [%s]", types.ErrInvalidParameter, s)
		}
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil || n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: number [%s] out of range", types.ErrInvalidParameter, s)
	}
	return int(n), nil
}

// Number is a version component or verbosity given on the command line. It
// satisfies the flag value interface used by cobra. An empty value resets it
// to types.Unchanged.
type Number int

func (n *Number) String() string {
	return strconv.Itoa(int(*n))
}

// Set parses s with ParseNumber.
func (n *Number) Set(s string) error {
	if s == "" {
		*n = types.Unchanged
		return nil
	}
	v, err := ParseNumber(s)
	if err != nil {
		return err
	}
	*n = Number(v)
	return nil
}

// Type names the value in help output.
func (n *Number) Type() string {
	return "number"
}
