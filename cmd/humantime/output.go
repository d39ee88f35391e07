package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/auth-platform/libs/go/humantime/duration"
	"github.com/auth-platform/libs/go/humantime/timestamp"
)

type printer struct {
	w      io.Writer
	format string
}

type durationResult struct {
	Text    string `json:"text"`
	Seconds uint64 `json:"seconds"`
	Nanos   uint32 `json:"nanos"`
}

type instantResult struct {
	Text  string `json:"text"`
	Unix  int64  `json:"unix"`
	Nanos uint32 `json:"nanos"`
}

func (p *printer) duration(e duration.Elapsed) error {
	res := durationResult{Text: duration.Format(e), Seconds: e.Seconds(), Nanos: e.Subsec()}
	if p.format == "json" {
		return json.NewEncoder(p.w).Encode(res)
	}
	_, err := fmt.Fprintf(p.w, "%s\nseconds: %d\nnanos: %d\n", res.Text, res.Seconds, res.Nanos)
	return err
}

func (p *printer) instant(v timestamp.Instant, precision int) error {
	text, err := timestamp.FormatPrecision(v, precision)
	if err != nil {
		return err
	}
	res := instantResult{Text: text, Unix: v.Unix(), Nanos: v.Nanosecond()}
	if p.format == "json" {
		return json.NewEncoder(p.w).Encode(res)
	}
	_, err = fmt.Fprintf(p.w, "%s\nunix: %d\nnanos: %d\n", res.Text, res.Unix, res.Nanos)
	return err
}

// inputError is a parse failure that can point at the offending byte of
// the command-line input.
type inputError struct {
	input  string
	offset int
	err    error
}

func newInputError(input string, err error) error {
	ie := &inputError{input: input, offset: -1, err: err}
	var de *duration.Error
	var te *timestamp.Error
	switch {
	case errors.As(err, &de):
		ie.offset = de.Offset
	case errors.As(err, &te):
		ie.offset = te.Offset
	}
	return ie
}

func (e *inputError) Error() string { return e.err.Error() }
func (e *inputError) Unwrap() error { return e.err }

// render writes the error followed by the input with a caret under the
// failing position. Offsets are bytes; the caret column counts runes.
func (e *inputError) render(w io.Writer) {
	fmt.Fprintf(w, "humantime: %v\n", e.err)
	if e.offset < 0 || e.offset > len(e.input) {
		return
	}
	col := utf8.RuneCountInString(e.input[:e.offset])
	fmt.Fprintf(w, "  %s\n  %s^\n", e.input, strings.Repeat(" ", col))
}
