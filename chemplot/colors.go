/*
 * colors.go, part of drawrdf.
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
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/rmera/drawrdf/xvg"
)

// DefaultColors is the palette used when curves get no explicit color.
var DefaultColors = []color.Color{
	color.RGBA{R: 0x0C, G: 0x5D, B: 0xA5, A: 255},
	color.RGBA{R: 0x00, G: 0xB9, B: 0x45, A: 255},
	color.RGBA{R: 0xFF, G: 0x95, B: 0x00, A: 255},
	color.RGBA{R: 0xFF, G: 0x2C, B: 0x00, A: 255},
	color.RGBA{R: 0x84, G: 0x5B, B: 0x97, A: 255},
	color.RGBA{R: 0x47, G: 0x47, B: 0x47, A: 255},
	color.RGBA{R: 0x9E, G: 0x9E, B: 0x9E, A: 255},
}

// Palette returns n colors, cycling through DefaultColors.
func Palette(n int) []color.Color {
	return cycle(DefaultColors, n)
}

func cycle(colors []color.Color, n int) []color.Color {
	if len(colors) == 0 {
		colors = DefaultColors
	}
	ret := make([]color.Color, n)
	for i := range ret {
		ret[i] = colors[i%len(colors)]
	}
	return ret
}

// HuePalette returns n colors evenly spread over the hue circle, so
// no two curves share a color no matter how many there are.
func HuePalette(n int) []color.Color {
	ret := make([]color.Color, n)
	for i := range ret {
		r, g, b := colors(i, n)
		ret[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return ret
}

// AssignColors sets the color of each curve to the color with the same index.
// The number of colors must match the number of curves.
func AssignColors(curves []*xvg.Curve, colors []color.Color) error {
	if len(curves) != len(colors) {
		return fmt.Errorf("chemplot.AssignColors: %w: %d colors for %d curves", ErrColorCount, len(colors), len(curves))
	}
	for i, c := range curves {
		c.Color = colors[i]
	}
	return nil
}

// ParseColor reads a color in "#RRGGBB" or "#RRGGBBAA" form. The leading
// '#' is optional, as style sheets often leave it out.
func ParseColor(s string) (color.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return nil, fmt.Errorf("chemplot.ParseColor: %q is not a hexadecimal color", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("chemplot.ParseColor: %q is not a hexadecimal color", s)
	}
	if len(h) == 6 {
		v = v<<8 | 0xFF
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Hex returns c in "#RRGGBB" form. Alpha is dropped.
func Hex(c color.Color) string {
	if c == nil {
		return "none"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
}

// takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var i, f, p, q, t float64
	var r, g, b float64
	conversion := 255.0
	if s == 0.0 {
		return uint8(conversion * v), uint8(conversion * v), uint8(conversion * v)
	}
	h = h / 60
	i = math.Floor(h)
	f = h - i
	p = v * (1 - s)
	q = v * (1 - s*f)
	t = v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default: //case 5
		r, g, b = v, p, q
	}
	r = r * conversion
	g = g * conversion
	b = b * conversion
	return uint8(r), uint8(g), uint8(b)
}

// colors returns the key-th of steps colors. Hues go from 0 to 300 degrees,
// skipping the 35-75 band, where pure yellows are hard to see on white.
// Value is a bit below 1 for the same reason.
func colors(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	hp := float64(key)*norm + 20.0
	var h float64
	if hp < 55 {
		h = hp - 20.0
	} else {
		h = hp + 20.0
	}
	return iHVS2RGB(h, 0.85, 1.0)
}
