package types

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

var (
	// ErrFileCorrupt indicates the text holds no usable VERSIONINFO block or a
	// located version tuple could not be parsed or formatted.
	ErrFileCorrupt = errors.New("rcversion: file corrupt")
	// ErrInsufficientBuffer indicates a replacement did not fit in the buffer capacity.
	ErrInsufficientBuffer = errors.New("rcversion: insufficient buffer")
	// ErrInvalidParameter indicates a bad command line or API argument.
	ErrInvalidParameter = errors.New("rcversion: invalid parameter")
	// ErrFileTooLarge indicates an input file exceeds what a single buffer can hold.
	ErrFileTooLarge = errors.New("rcversion: file too large")
)

// ErrorCode is the out-of-band classification of an update result. The values
// match the Win32 error numbers the tool has always exited with.
type ErrorCode uint32

const (
	Success            ErrorCode = 0
	GenericFailure     ErrorCode = 1
	FileNotFound       ErrorCode = 2
	InvalidParameter   ErrorCode = 87
	InsufficientBuffer ErrorCode = 122
	FileCorrupt        ErrorCode = 1392
)

// String returns a short human readable name.
func (c ErrorCode) String() string {
	switch c {
	case Success:
		return "success"
	case GenericFailure:
		return "failure"
	case FileNotFound:
		return "file not found"
	case InvalidParameter:
		return "invalid parameter"
	case InsufficientBuffer:
		return "insufficient buffer"
	case FileCorrupt:
		return "file corrupt"
	default:
		return fmt.Sprintf("error %d", uint32(c))
	}
}

// Err returns the sentinel error for the code, or nil for Success.
func (c ErrorCode) Err() error {
	switch c {
	case Success:
		return nil
	case InvalidParameter:
		return ErrInvalidParameter
	case InsufficientBuffer:
		return ErrInsufficientBuffer
	case FileCorrupt:
		return ErrFileCorrupt
	case FileNotFound:
		return fs.ErrNotExist
	default:
		return errors.New(c.String())
	}
}

// UpdateError reports a failed UpdateVersion call. Code holds the
// classification of the last failure seen; Failures holds every failure in
// the order they were encountered.
//
// The buffer may already hold replacements made before the failure.
type UpdateError struct {
	Code     ErrorCode
	Failures []error
}

func (e *UpdateError) Error() string {
	if len(e.Failures) == 0 {
		return e.Code.String()
	}
	msgs := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		msgs = append(msgs, f.Error())
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *UpdateError) Unwrap() []error {
	return e.Failures
}

// OccurrenceError describes one occurrence that could not be rewritten.
type OccurrenceError struct {
	Offset int    // element offset of the occurrence in the buffer
	Text   string // the offending fragment, rendered for humans
	Err    error  // ErrFileCorrupt or ErrInsufficientBuffer
}

func (e *OccurrenceError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("offset %d [%s]: %v", e.Offset, e.Text, e.Err)
}

func (e *OccurrenceError) Unwrap() error { return e.Err }

// CodeOf classifies err. A nil error is Success.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return Success
	}
	var ue *UpdateError
	if errors.As(err, &ue) {
		return ue.Code
	}
	switch {
	case errors.Is(err, ErrInsufficientBuffer):
		return InsufficientBuffer
	case errors.Is(err, ErrFileCorrupt), errors.Is(err, ErrFileTooLarge):
		return FileCorrupt
	case errors.Is(err, ErrInvalidParameter):
		return InvalidParameter
	case errors.Is(err, fs.ErrNotExist):
		return FileNotFound
	default:
		return GenericFailure
	}
}
