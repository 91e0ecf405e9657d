/*
 * errors.go, part of drawrdf.
 *
 * Copyright 2024 The drawrdf Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package xvg

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotReadable      = errors.New("file not readable")
	ErrUnrecognizedKind = errors.New("unrecognized curve kind")
	ErrMalformedLine    = errors.New("malformed data line")
	ErrNoData           = errors.New("no data rows")
)

// Error is the error returned by the readers in this package.
// It wraps one of the sentinel errors above, so it can be checked
// with errors.Is.
type Error struct {
	message  string
	filename string
	line     int    //1-based, 0 if the error is not tied to a line
	raw      string //the offending line, if any
	deco     []string
	kind     error
}

func (err *Error) Error() string {
	if err.line > 0 {
		return fmt.Sprintf("xvg file %s error: %s at line %d (%q): %s", err.filename, err.kind, err.line, err.raw, err.message)
	}
	if err.message == "" {
		return fmt.Sprintf("xvg file %s error: %s", err.filename, err.kind)
	}
	return fmt.Sprintf("xvg file %s error: %s: %s", err.filename, err.kind, err.message)
}

// Unwrap returns the sentinel error for the failure.
func (err *Error) Unwrap() error { return err.kind }

// FileName returns the file the error is associated to.
func (err *Error) FileName() string { return err.filename }

// Line returns the 1-based line number of the offending line, or 0.
func (err *Error) Line() int { return err.line }

// Raw returns the offending line as it was read.
func (err *Error) Raw() string { return err.raw }

// Critical returns true if the file is not usable as an XVG file. An
// otherwise well formed file with no data rows gives a non critical error.
func (err *Error) Critical() bool { return err.kind != ErrNoData }

// Decorate adds the name of a caller, with optional information, to the
// error. It returns the decoration so far. An empty string adds nothing.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Trace returns the decoration as a single string, callee first.
func (err *Error) Trace() string {
	return strings.Join(err.deco, " <- ")
}

func newError(kind error, filename, message, caller string) *Error {
	return &Error{kind: kind, filename: filename, message: message, deco: []string{caller}}
}

func malformed(filename string, line int, raw, message string) *Error {
	return &Error{kind: ErrMalformedLine, filename: filename, line: line, raw: raw, message: message, deco: []string{"Read"}}
}

// errDecorate adds caller to err if err is an *Error, and returns err.
func errDecorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
