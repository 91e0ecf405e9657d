/*
 * config.go, part of drawrdf.
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
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrCurveKinds     = errors.New("a plot takes one or two kinds of curves")
	ErrColorCount     = errors.New("the number of colors doesn't match the number of curves")
	ErrLegendPosition = errors.New("invalid legend position")
	ErrDPI            = errors.New("invalid dpi")
	ErrFormat         = errors.New("unsupported image format")
	ErrLineKind       = errors.New("line style must be solid or dashed")
	ErrRange          = errors.New("invalid x range")
	ErrSize           = errors.New("invalid figure size")
)

// DefaultDPI is the resolution used for raster output when none,
// or an invalid one, is given.
const DefaultDPI = 300

// MaxDPI is the highest resolution accepted for raster output.
const MaxDPI = 1200

// ParseDPI reads a resolution in dots per inch, between 1 and MaxDPI.
// On invalid input it returns DefaultDPI together with an error wrapping ErrDPI.
func ParseDPI(s string) (int, error) {
	d, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || d <= 0 || d > MaxDPI {
		return DefaultDPI, fmt.Errorf("%w: %q", ErrDPI, s)
	}
	return d, nil
}

// LegendPosition is the corner of the data area where the legend goes.
type LegendPosition int

const (
	Best LegendPosition = iota
	UpperRight
	UpperLeft
	LowerLeft
	LowerRight
)

var positionNames = []string{"best", "upper right", "upper left", "lower left", "lower right"}

// PositionNames returns the accepted legend position names.
func PositionNames() []string {
	ret := make([]string, len(positionNames))
	copy(ret, positionNames)
	return ret
}

func (L LegendPosition) String() string {
	if L < Best || int(L) >= len(positionNames) {
		return fmt.Sprintf("LegendPosition(%d)", int(L))
	}
	return positionNames[L]
}

// Top returns true for the upper corners.
func (L LegendPosition) Top() bool { return L == UpperRight || L == UpperLeft }

// Left returns true for the left corners.
func (L LegendPosition) Left() bool { return L == UpperLeft || L == LowerLeft }

// ParseLegendPosition reads one of the names in PositionNames. Case and
// surrounding spaces are ignored. An unknown name gives Best together with
// an error wrapping ErrLegendPosition.
func ParseLegendPosition(s string) (LegendPosition, error) {
	n := strings.ToLower(strings.Join(strings.Fields(s), " "))
	for i, v := range positionNames {
		if n == v {
			return LegendPosition(i), nil
		}
	}
	return Best, fmt.Errorf("%w: %q", ErrLegendPosition, s)
}

// LineKind is the dash style of the curves on the secondary axis.
type LineKind int

const (
	Dashed LineKind = iota
	Solid
)

func (L LineKind) String() string {
	if L == Solid {
		return "solid"
	}
	return "dashed"
}

// ParseLineKind reads "solid" or "dashed".
func ParseLineKind(s string) (LineKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dashed":
		return Dashed, nil
	case "solid":
		return Solid, nil
	}
	return Dashed, fmt.Errorf("%w: %q", ErrLineKind, s)
}

// Config collects everything, other than the curves, that goes into a figure.
type Config struct {
	Legend    bool //draw the legend
	Position  LegendPosition
	XMin      float64
	XMax      float64
	AutoRange bool //ignore XMin and XMax and use the x range common to all curves
	Secondary LineKind
	Style     *Style //nil means DefaultStyle()
}

// DefaultConfig returns a Config with no legend, x from 0 to 1 nm, dashed
// secondary curves and the default style.
func DefaultConfig() *Config {
	return &Config{
		Position:  Best,
		XMin:      0,
		XMax:      1,
		Secondary: Dashed,
		Style:     DefaultStyle(),
	}
}
