/*
 * style.go, part of drawrdf.
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

package chemplot

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Style holds the look of a figure. A Style is passed explicitly to each
// Compose call, so composing one figure never changes the next one.
type Style struct {
	Width      vg.Length //figure size
	Height     vg.Length
	LineWidth  vg.Length
	AxisWidth  vg.Length
	FontSize   vg.Length
	Grid       bool
	Dashes     []float64 //on/off lengths, in units of LineWidth
	Background color.Color
	Colors     []color.Color //used for curves without a color. nil means DefaultColors
}

// DefaultStyle returns the matplotlib defaults for the supported settings.
func DefaultStyle() *Style {
	return &Style{
		Width:      6.4 * vg.Inch,
		Height:     4.8 * vg.Inch,
		LineWidth:  vg.Points(1.5),
		AxisWidth:  vg.Points(0.8),
		FontSize:   vg.Points(10),
		Dashes:     []float64{3.7, 1.6},
		Background: color.White,
	}
}

// Copy returns a deep copy of the style.
func (S *Style) Copy() *Style {
	ret := *S
	ret.Dashes = append([]float64(nil), S.Dashes...)
	ret.Colors = append([]color.Color(nil), S.Colors...)
	return &ret
}

func (S *Style) dashes() []vg.Length {
	ret := make([]vg.Length, len(S.Dashes))
	for i, v := range S.Dashes {
		ret[i] = vg.Length(v) * S.LineWidth
	}
	return ret
}

// apply sets the style on a new plot.
func (S *Style) apply(p *plot.Plot) {
	p.BackgroundColor = S.Background
	p.Title.TextStyle.Font.Size = S.FontSize * 1.2
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.LineStyle.Width = S.AxisWidth
		ax.Tick.LineStyle.Width = S.AxisWidth
		ax.Label.TextStyle.Font.Size = S.FontSize
		ax.Tick.Label.Font.Size = S.FontSize
	}
	p.Legend.TextStyle.Font.Size = S.FontSize
	p.Legend.ThumbnailWidth = 2 * S.FontSize
	if S.Grid {
		g := plotter.NewGrid()
		g.Vertical.Width = S.AxisWidth
		g.Horizontal.Width = S.AxisWidth
		p.Add(g)
	}
}

// LoadStyle returns DefaultStyle with the given style sheets applied in
// order, so later sheets win. Style sheets use the matplotlib format.
// Missing files are skipped, with a log message.
func LoadStyle(paths ...string) (*Style, error) {
	S := DefaultStyle()
	for _, p := range paths {
		f, err := os.Open(p)
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("chemplot.LoadStyle: style sheet %s not found, skipped", p)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("chemplot.LoadStyle: %w", err)
		}
		err = S.ReadSheet(f, p)
		f.Close()
		if err != nil {
			return nil, err
		}
	}
	return S, nil
}

var reCycleColors = regexp.MustCompile(`cycler\(\s*['"]color['"]\s*,\s*\[([^\]]*)\]`)
var reQuoted = regexp.MustCompile(`['"]([^'"]*)['"]`)

// ReadSheet applies a matplotlib style sheet to S. Keys that drawrdf
// doesn't use are ignored. name is only used in error messages.
func (S *Style) ReadSheet(r io.Reader, name string) error {
	s := bufio.NewScanner(r)
	for ln := 1; s.Scan(); ln++ {
		line := strings.TrimSpace(stripComment(s.Text()))
		if line == "" {
			continue
		}
		key, val, ok := strings.Cut(line, ":")
		if !ok {
			return fmt.Errorf("chemplot.ReadSheet: %s:%d: missing ':' in %q", name, ln, line)
		}
		key = strings.TrimSpace(key)
		val = strings.Trim(strings.TrimSpace(val), `"'`)
		if err := S.set(key, val); err != nil {
			return fmt.Errorf("chemplot.ReadSheet: %s:%d: %s: %w", name, ln, key, err)
		}
	}
	return s.Err()
}

func (S *Style) set(key, val string) error {
	var err error
	switch key {
	case "figure.figsize":
		var f []float64
		f, err = parseFloats(val)
		if err == nil && len(f) != 2 {
			err = fmt.Errorf("expected 2 numbers, got %d", len(f))
		}
		if err == nil {
			err = checkSize(vg.Length(f[0])*vg.Inch, vg.Length(f[1])*vg.Inch)
		}
		if err == nil {
			S.Width, S.Height = vg.Length(f[0])*vg.Inch, vg.Length(f[1])*vg.Inch
		}
	case "figure.facecolor", "axes.facecolor":
		var c color.Color
		c, err = namedColor(val)
		if err == nil {
			S.Background = c
		}
	case "lines.linewidth":
		S.LineWidth, err = parseLength(val)
	case "axes.linewidth":
		S.AxisWidth, err = parseLength(val)
	case "font.size":
		S.FontSize, err = parseLength(val)
	case "axes.grid":
		S.Grid, err = strconv.ParseBool(val)
	case "lines.dashed_pattern":
		S.Dashes, err = parseFloats(val)
	case "axes.prop_cycle":
		m := reCycleColors.FindStringSubmatch(val)
		if m == nil {
			return nil //a cycler with no colors
		}
		var cs []color.Color
		for _, q := range reQuoted.FindAllStringSubmatch(m[1], -1) {
			c, err := namedColor(q[1])
			if err != nil {
				return err
			}
			cs = append(cs, c)
		}
		S.Colors = cs
	}
	return err
}

// stripComment removes a trailing comment. A '#' inside quotes, or right
// after a non blank character (as in a hex color), doesn't start one.
func stripComment(line string) string {
	var quote rune
	for i, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		case r == '#' && (i == 0 || line[i-1] == ' ' || line[i-1] == '\t'):
			return line[:i]
		}
	}
	return line
}

func parseLength(s string) (vg.Length, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if f < 0 {
		return 0, fmt.Errorf("negative length %g", f)
	}
	return vg.Points(f), nil
}

func parseFloats(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	ret := make([]float64, 0, len(fields))
	for _, v := range fields {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		ret = append(ret, f)
	}
	return ret, nil
}

func namedColor(s string) (color.Color, error) {
	switch strings.ToLower(s) {
	case "white", "w":
		return color.White, nil
	case "black", "k":
		return color.Black, nil
	case "none", "transparent":
		return color.Transparent, nil
	}
	return ParseColor(s)
}
