package rctext

import (
	"fmt"

	"github.com/joshuapare/rcversion/internal/logger"
	"github.com/joshuapare/rcversion/pkg/types"
)

// Updater rewrites the version tuples of the first VERSIONINFO block in a
// buffer.
type Updater[C Char] struct {
	Locator[C]
}

// NewUpdater returns an Updater that logs through log. A nil log is silent.
func NewUpdater[C Char](log *logger.Logger) *Updater[C] {
	return &Updater[C]{Locator: Locator[C]{log: log}}
}

// UpdateVersion rewrites every version tuple found after the VERSIONINFO
// keyword in s and returns how many were replaced.
//
// Occurrences are processed from last to first. A failing occurrence is
// logged and skipped, and the rest are still attempted. If any occurrence
// failed, the count is 0 and the error is a *types.UpdateError whose Code is
// that of the last failure seen; the buffer may already hold some of the
// successful replacements.
func (u *Updater[C]) UpdateVersion(s []C, req types.Request) (int, error) {
	start := u.FindStartOfVersion(s)
	if start == 0 {
		u.log.Logf(logger.LevelError, "no %s block found", KeywordVersionInfo)
		return 0, &types.UpdateError{
			Code:     types.FileCorrupt,
			Failures: []error{fmt.Errorf("%w: no %s keyword", types.ErrFileCorrupt, KeywordVersionInfo)},
		}
	}

	offsets := u.FindVersionStrings(s, start)
	if len(offsets) == 0 {
		u.log.Logf(logger.LevelError, "no version fields found after %s", KeywordVersionInfo)
		return 0, &types.UpdateError{
			Code:     types.FileCorrupt,
			Failures: []error{fmt.Errorf("%w: no version fields after %s", types.ErrFileCorrupt, KeywordVersionInfo)},
		}
	}

	var (
		failures []error
		code     = types.Success
		count    int
	)
	for n := len(offsets) - 1; n >= 0; n-- {
		off := offsets[n]
		err := u.updateOne(s, off, req)
		if err != nil {
			code = types.CodeOf(err)
			failures = append(failures, err)
			continue
		}
		count++
	}

	if len(failures) > 0 {
		return 0, &types.UpdateError{Code: code, Failures: failures}
	}
	return count, nil
}

func (u *Updater[C]) updateOne(s []C, off int, req types.Request) error {
	parsed, ok := Parse(s, off)
	if !ok {
		text := fragment(s, off)
		stop := display(s[parsed.End:min(parsed.End+1, len(s))])
		if isEOL(at(s, parsed.End)) {
			stop = "end of line"
		}
		u.log.Logf(logger.LevelError, "version parsing failed for [%s] at [%s]", text, stop)
		return &types.OccurrenceError{Offset: off, Text: text, Err: types.ErrFileCorrupt}
	}

	next := req.Apply(parsed.Version)
	newText, err := Format[C](next)
	if err != nil {
		u.log.Logf(logger.LevelError, "formatting version %s failed: %v", next, err)
		return &types.OccurrenceError{Offset: off, Text: parsed.Version.String(), Err: err}
	}

	oldLen := parsed.End - off
	oldText := display(s[off:parsed.End])
	if !Replace(s[off:], oldLen, newText) {
		u.log.Logf(logger.LevelError, "version replace failed for [%s] with [%s]: buffer too small",
			oldText, display(newText))
		return &types.OccurrenceError{Offset: off, Text: oldText, Err: types.ErrInsufficientBuffer}
	}
	u.log.Logf(logger.LevelChange, "updated version at offset %d from [%s] to [%s]",
		off, oldText, display(newText))
	return nil
}

// UpdateVersion is Updater.UpdateVersion without logging.
func UpdateVersion[C Char](s []C, req types.Request) (int, error) {
	var u Updater[C]
	return u.UpdateVersion(s, req)
}
