/*
 * read.go, part of drawrdf.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"
)

var (
	reTitle  = regexp.MustCompile(`@\s+title\s+"(.+)"`)
	reLegend = regexp.MustCompile(`@\s+s[0-9]+\s+legend\s+"(.+)"`)
)

// Options for reading XVG files.
type Options struct {
	legend string
	stride int
}

// DefaultOptions returns an Options that extracts the legend
// from the file and keeps every row.
func DefaultOptions() *Options {
	return &Options{stride: 1}
}

// Legend returns the legend override, and sets it to the value given, if any.
// An empty override means the legend is taken from the file.
func (o *Options) Legend(legend ...string) string {
	ret := o.legend
	if len(legend) > 0 {
		o.legend = legend[0]
	}
	return ret
}

// Stride returns the current stride, and sets it if a valid (>0) value is given.
// With a stride of N only every Nth data row, starting from the first, is kept.
func (o *Options) Stride(stride ...int) int {
	ret := o.stride
	if len(stride) > 0 && stride[0] > 0 {
		o.stride = stride[0]
	}
	return ret
}

func getOptions(options []*Options) *Options {
	if len(options) > 0 && options[0] != nil {
		return options[0]
	}
	return DefaultOptions()
}

// Load reads the XVG file in path and returns the curve in it.
// Files with the .gz or .zst extension are decompressed while reading.
func Load(path string, options ...*Options) (*Curve, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, newError(ErrNotReadable, path, err.Error(), "Load")
	}
	if info.IsDir() {
		return nil, newError(ErrNotReadable, path, "is a directory", "Load")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, newError(ErrNotReadable, path, err.Error(), "Load")
	}
	defer f.Close()
	r, err := decompressor(path, bufio.NewReader(f))
	if err != nil {
		return nil, newError(ErrNotReadable, path, err.Error(), "Load")
	}
	defer r.Close()
	C, err := Read(r, path, options...)
	if err != nil {
		return nil, errDecorate(err, "Load")
	}
	return C, nil
}

// Read parses an XVG stream. name is only used as the Path of the curve
// and in error messages.
func Read(r io.Reader, name string, options ...*Options) (*Curve, error) {
	o := getOptions(options)
	C := &Curve{Path: name, Legend: o.legend}
	haveLegend := o.legend != ""
	data := make([]float64, 0, 512)
	header := true
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for ln := 1; s.Scan(); ln++ {
		raw := s.Text()
		line := strings.TrimSpace(raw)
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "@") {
			//metadata only counts in the header block
			if !header || line[0] != '@' {
				continue
			}
			if m := reTitle.FindStringSubmatch(line); m != nil {
				kind, ok := KindFromTitle(m[1])
				if !ok {
					return nil, newError(ErrUnrecognizedKind, name, fmt.Sprintf("title %q is neither a radial distribution function nor a coordination number curve", m[1]), "Read")
				}
				C.Title = m[1]
				C.Kind = kind
			} else if m := reLegend.FindStringSubmatch(line); m != nil && !haveLegend {
				C.Legend = m[1]
				haveLegend = true
			}
			continue
		}
		header = false
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, malformed(name, ln, raw, fmt.Sprintf("expected 2 columns, found %d", len(fields)))
		}
		for _, v := range fields {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, malformed(name, ln, raw, fmt.Sprintf("can't parse %q as a number", v))
			}
			data = append(data, f)
		}
	}
	if err := s.Err(); err != nil {
		return nil, newError(ErrNotReadable, name, err.Error(), "Read")
	}
	rows := len(data) / 2
	if rows == 0 {
		return nil, newError(ErrNoData, name, "", "Read")
	}
	table := mat.NewDense(rows, 2, data)
	if o.stride > 1 {
		kept := (rows + o.stride - 1) / o.stride
		strided := mat.NewDense(kept, 2, nil)
		for i := 0; i < kept; i++ {
			strided.SetRow(i, table.RawRowView(i*o.stride))
		}
		table = strided
	}
	C.X = mat.Col(nil, 0, table)
	C.Y = mat.Col(nil, 1, table)
	return C, nil
}

// *zstd.Decoder has a Close method with no return value, so
// it doesn't implement io.ReadCloser by itself.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

func isCompressed(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz", ".zst", ".zstd":
		return true
	}
	return false
}

// decompressor picks a reader for name from its extension.
func decompressor(name string, r io.Reader) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		g, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		return g, nil
	case ".zst", ".zstd":
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{d}, nil
	default:
		return io.NopCloser(r), nil
	}
}
