// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mfile

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// Scanner returns whitespace-delimited tokens from a definition file,
// one line at a time, keeping track of the current line number.
type Scanner struct {

	// name of the file being read, for error reports
	File string

	rd    *bufio.Reader
	line  int
	toks  []string
	fresh bool
	eof   bool
	err   error
}

// NewScanner returns a new Scanner reading from r. file is only used in errors.
func NewScanner(r io.Reader, file string) *Scanner {
	return &Scanner{File: file, rd: bufio.NewReader(r)}
}

// Line returns the line of the last token returned.
func (sc *Scanner) Line() int {
	return sc.line
}

// IsComment returns true if the fields of a line make up a comment line.
func IsComment(toks []string) bool {
	if len(toks) == 0 {
		return false
	}
	c := toks[0][0]
	return c == '/' || c == '#'
}

func (sc *Scanner) nextLine() bool {
	if sc.eof {
		return false
	}
	ln, err := sc.rd.ReadString('\n')
	if err != nil {
		sc.eof = true
		if !errors.Is(err, io.EOF) {
			sc.err = err
		}
		if len(ln) == 0 {
			return false
		}
	}
	sc.line++
	sc.toks = strings.Fields(ln)
	sc.fresh = true
	return true
}

// SkipComments skips blank and comment lines, if the current line
// has been fully consumed.
func (sc *Scanner) SkipComments() {
	for {
		if len(sc.toks) > 0 {
			if !(sc.fresh && IsComment(sc.toks)) {
				return
			}
			sc.toks = nil
		}
		if !sc.nextLine() {
			return
		}
	}
}

// Token returns the next token, reading further lines as needed.
// ok is false at the end of the input.
func (sc *Scanner) Token() (tok string, ok bool) {
	for len(sc.toks) == 0 {
		if !sc.nextLine() {
			return "", false
		}
	}
	tok = sc.toks[0]
	sc.toks = sc.toks[1:]
	sc.fresh = false
	return tok, true
}

func (sc *Scanner) token(field Fields) (string, error) {
	tok, ok := sc.Token()
	if !ok {
		// the missing token was expected on the line after the last one read
		if sc.err != nil {
			return "", IOError(sc.File, sc.line+1, sc.err)
		}
		return "", FormatError(sc.File, sc.line+1, field, "unexpected end of file")
	}
	return tok, nil
}

// Int reads one integer token for the given field.
func (sc *Scanner) Int(field Fields) (int, error) {
	tok, err := sc.token(field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, FormatError(sc.File, sc.Line(), field, "expected integer, found %q", tok)
	}
	return v, nil
}

// Uint reads one non-negative integer token for the given field.
func (sc *Scanner) Uint(field Fields) (int, error) {
	v, err := sc.Int(field)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, FormatError(sc.File, sc.Line(), field, "expected non-negative integer, found %d", v)
	}
	return v, nil
}

// Float32 reads one floating point token for the given field.
func (sc *Scanner) Float32(field Fields) (float32, error) {
	tok, err := sc.token(field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 32)
	if err != nil {
		return 0, FormatError(sc.File, sc.Line(), field, "expected number, found %q", tok)
	}
	return float32(v), nil
}

// Float64 reads one floating point token for the given field.
func (sc *Scanner) Float64(field Fields) (float64, error) {
	tok, err := sc.token(field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, FormatError(sc.File, sc.Line(), field, "expected number, found %q", tok)
	}
	return v, nil
}

// AtEOF skips comments and reports whether the input has no more tokens.
func (sc *Scanner) AtEOF() bool {
	sc.SkipComments()
	return len(sc.toks) == 0 && sc.eof
}

// Err returns the read error that ended the input, if any.
func (sc *Scanner) Err() error {
	return sc.err
}
