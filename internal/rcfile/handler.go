// Package rcfile loads a resource script, runs the version updater over it
// in the script's own character width, and writes the result back.
package rcfile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/joshuapare/rcversion/internal/buf"
	"github.com/joshuapare/rcversion/internal/logger"
	"github.com/joshuapare/rcversion/internal/rctext"
	"github.com/joshuapare/rcversion/internal/textenc"
	"github.com/joshuapare/rcversion/internal/writer"
	"github.com/joshuapare/rcversion/pkg/types"
)

// DefaultPadding is the number of spare characters reserved after the file
// content for replacements that grow the text.
const DefaultPadding = 1024

// Result describes one update run.
type Result struct {
	// Data is the rewritten file, in the input's encoding and with its BOM.
	Data []byte
	// Count is the number of version fields replaced.
	Count int
	// Encoding is what Detect reported for the input.
	Encoding textenc.Encoding
}

// Handler updates resource scripts on disk.
type Handler struct {
	log *logger.Logger

	// Padding is the headroom, in characters, given to the updater. Values
	// below rctext.MinPadding are raised to it.
	Padding int

	// FullSync is passed on to the file writer.
	FullSync bool

	// SkipDirectives is passed on to the updater.
	SkipDirectives bool
}

// NewHandler returns a Handler that logs through log.
func NewHandler(log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Discard()
	}
	return &Handler{log: log, Padding: DefaultPadding}
}

// Verbosity returns the verbosity of the handler's logger.
func (h *Handler) Verbosity() int {
	return h.log.Verbosity()
}

// LoadFile reads path. The returned slice holds exactly the file content and
// has at least max(padding, rctext.MinPadding) zeroed bytes of spare capacity.
func (h *Handler) LoadFile(path string, padding int) ([]byte, error) {
	padding = max(padding, rctext.MinPadding)

	f, err := os.Open(path)
	if err != nil {
		return nil, h.log.Errorf(err, "failed to open file [%s]", path)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, h.log.Errorf(err, "failed to stat file [%s]", path)
	}
	size := fi.Size()
	if size >= int64(math.MaxInt32-padding) {
		return nil, h.log.Errorf(types.ErrFileTooLarge, "file [%s] is too large (%d bytes)", path, size)
	}

	data := make([]byte, int(size)+padding)
	n, err := io.ReadFull(f, data[:size])
	// a file that shrank after Stat is read as far as it goes
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, h.log.Errorf(err, "failed to read file [%s]", path)
	}
	h.log.Logf(logger.LevelDetail, "read %d bytes from [%s]", n, path)
	return data[:n:len(data)], nil
}

// UpdateBytes rewrites the version fields in a file image. The input is not
// modified.
func (h *Handler) UpdateBytes(data []byte, req types.Request) (Result, error) {
	enc := textenc.Detect(data)
	body := textenc.Strip(data, enc)
	h.log.Logf(logger.LevelDetail, "detected %s text, %d bytes", enc, len(body))

	var (
		out   []byte
		count int
		err   error
	)
	if enc.Wide() {
		out, count, err = h.updateWide(body, req)
	} else {
		out, count, err = updateText(h, body, req)
	}
	if err != nil {
		return Result{Encoding: enc}, err
	}

	if bom := enc.BOM(); len(bom) > 0 {
		out = append(append(make([]byte, 0, len(bom)+len(out)), bom...), out...)
	}
	return Result{Data: out, Count: count, Encoding: enc}, nil
}

func (h *Handler) updateWide(body []byte, req types.Request) ([]byte, int, error) {
	units := textenc.DecodeUnits(body)
	// a dangling odd byte is carried through untouched
	odd := body[len(units)*textenc.UTF16CodeUnitSize:]

	updated, count, err := updateText(h, units, req)
	if err != nil {
		return nil, 0, err
	}
	out := textenc.EncodeUnits(updated, false)
	return append(out, odd...), count, nil
}

// updateText runs the updater over text up to its first zero element. Any
// text after an embedded zero is appended to the result unchanged.
func updateText[C rctext.Char](h *Handler, text []C, req types.Request) ([]C, int, error) {
	end := buf.Terminator(text, 0)
	if end < len(text) {
		h.log.Logf(logger.LevelDetail, "embedded NUL at offset %d, the rest of the file is copied unchanged", end)
	}

	b := rctext.NewBuffer(text[:end], h.Padding)
	u := rctext.NewUpdater[C](h.log)
	u.SkipDirectives = h.SkipDirectives
	count, err := u.UpdateVersion(b, req)
	if err != nil {
		return nil, 0, err
	}

	updated := rctext.Content(b)
	out := make([]C, 0, len(updated)+len(text)-end)
	out = append(out, updated...)
	return append(out, text[end:]...), count, nil
}

// UpdateFile rewrites the version fields of input and writes the result to
// output, which defaults to input. Nothing is written unless at least one
// field was replaced and no field failed.
func (h *Handler) UpdateFile(input, output string, req types.Request) (Result, error) {
	if output == "" {
		output = input
	}
	return h.UpdateTo(input, output, &writer.FileWriter{Path: output, FullSync: h.FullSync}, req)
}

// UpdateTo is UpdateFile with an explicit sink. output only names the
// destination in log lines.
func (h *Handler) UpdateTo(input, output string, sink writer.Sink, req types.Request) (Result, error) {
	data, err := h.LoadFile(input, h.Padding)
	if err != nil {
		return Result{}, err
	}

	res, err := h.UpdateBytes(data, req)
	if err != nil || res.Count == 0 {
		h.log.Logf(logger.LevelNormal, "No changes made to [%s], file [%s] not modified.", input, output)
		if err == nil {
			err = fmt.Errorf("%w: no version fields replaced", types.ErrFileCorrupt)
		}
		return res, err
	}

	h.log.Logf(logger.LevelNormal, "%d changes made to [%s], writing file [%s].", res.Count, input, output)
	if err := sink.WriteFile(res.Data); err != nil {
		return res, h.log.Errorf(err, "failed to write file [%s]", output)
	}
	h.log.Logf(logger.LevelDetail, "wrote %d bytes to [%s]", len(res.Data), output)
	return res, nil
}
