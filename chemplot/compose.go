/*
 * compose.go, part of drawrdf.
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

	"github.com/rmera/drawrdf/xvg"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// Axis labels.
const (
	XLabel     = "r (nm)"
	RDFLabel   = "g(r)"
	CoordLabel = "Coordination Number"
	OtherLabel = "y"
)

// YLabel returns the y axis label for curves of kind k.
func YLabel(k xvg.Kind) string {
	switch k {
	case xvg.RDF:
		return RDFLabel
	case xvg.Coordination:
		return CoordLabel
	default:
		return OtherLabel
	}
}

// Fraction of the data span added above and below the curves.
const yMargin = 0.05

// Line describes one curve as drawn in a Figure.
type Line struct {
	Legend    string
	Color     color.Color
	Dashed    bool
	Secondary bool //drawn against the right hand axis
	Kind      xvg.Kind
	X, Y      []float64 //the data of the curve, not rescaled
}

// Figure is a composed plot, ready to be shown or saved any number of times.
type Figure struct {
	plot     *plot.Plot
	style    *Style
	lines    []Line
	ylabel   string
	y2label  string
	scale    *axisScale //nil for single axis figures
	xmin     float64
	xmax     float64
	legend   bool
	position LegendPosition //never Best, once composed
}

// Lines returns the lines in the figure, in drawing order.
func (F *Figure) Lines() []Line {
	ret := make([]Line, len(F.lines))
	copy(ret, F.lines)
	return ret
}

// YLabel returns the label of the primary (left) y axis.
func (F *Figure) YLabel() string { return F.ylabel }

// SecondaryLabel returns the label of the right hand y axis, or the
// empty string if the figure has only one y axis.
func (F *Figure) SecondaryLabel() string { return F.y2label }

// Dual returns true if the figure has two y axes.
func (F *Figure) Dual() bool { return F.scale != nil }

// XRange returns the limits of the x axis.
func (F *Figure) XRange() (float64, float64) { return F.xmin, F.xmax }

// Legend returns whether the figure has a legend, and where it is.
func (F *Figure) Legend() (bool, LegendPosition) { return F.legend, F.position }

// YRange returns the limits of the primary y axis.
func (F *Figure) YRange() (float64, float64) { return F.plot.Y.Min, F.plot.Y.Max }

// SecondaryRange returns the limits of the right hand y axis, in its own
// units. For single axis figures it returns the primary limits.
func (F *Figure) SecondaryRange() (float64, float64) {
	lo, hi := F.YRange()
	if F.scale == nil {
		return lo, hi
	}
	return F.scale.toSecondary(lo), F.scale.toSecondary(hi)
}

// Style returns a copy of the style the figure was composed with.
func (F *Figure) Style() *Style { return F.style.Copy() }

// Plot returns the underlying plot. Changes to it show in later renders.
func (F *Figure) Plot() *plot.Plot { return F.plot }

// Compose lays out the curves in g. With one kind of curve, all curves share
// one y axis. With two kinds, the curves of the second kind are drawn against
// a y axis on the right, with the line style in cfg.Secondary. Any other
// number of kinds is an error.
// Curves with a nil color get one from the style's palette, by position.
func Compose(g *xvg.Group, cfg *Config) (*Figure, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	S := cfg.Style
	if S == nil {
		S = DefaultStyle()
	}
	if cfg.Secondary != Dashed && cfg.Secondary != Solid {
		return nil, fmt.Errorf("chemplot.Compose: %w", ErrLineKind)
	}
	kinds := g.Kinds()
	if len(kinds) < 1 || len(kinds) > 2 {
		return nil, fmt.Errorf("chemplot.Compose: %w, got %d", ErrCurveKinds, len(kinds))
	}
	for _, c := range g.All() {
		if c.Len() == 0 {
			return nil, fmt.Errorf("chemplot.Compose: curve %s has no data", c.Name())
		}
	}
	xmin, xmax := cfg.XMin, cfg.XMax
	if cfg.AutoRange {
		xmin, xmax = commonRange(g.All())
	}
	if !(xmin < xmax) || math.IsInf(xmin, 0) || math.IsInf(xmax, 0) {
		return nil, fmt.Errorf("chemplot.Compose: %w: (%g, %g)", ErrRange, xmin, xmax)
	}

	F := &Figure{
		plot:   plot.New(),
		style:  S.Copy(),
		ylabel: YLabel(kinds[0]),
		xmin:   xmin,
		xmax:   xmax,
		legend: cfg.Legend,
	}
	p := F.plot
	S.apply(p)
	p.X.Label.Text = XLabel
	p.Y.Label.Text = F.ylabel

	primary := g.Curves(kinds[0])
	pmin, pmax := yExtent(primary)
	var secondary []*xvg.Curve
	if len(kinds) == 2 {
		secondary = g.Curves(kinds[1])
		smin, smax := yExtent(secondary)
		F.scale = &axisScale{pmin: pmin, pmax: pmax, smin: smin, smax: smax}
		F.y2label = YLabel(kinds[1])
	}

	palette := cycle(S.Colors, g.Count())
	n := 0
	add := func(c *xvg.Curve, second bool) error {
		col := c.Color
		if col == nil {
			col = palette[n]
		}
		n++
		xys := make(plotter.XYs, c.Len())
		for i := range xys {
			xys[i].X = c.X[i]
			xys[i].Y = c.Y[i]
			if second {
				xys[i].Y = F.scale.toPrimary(c.Y[i])
			}
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("chemplot.Compose: curve %s: %w", c.Name(), err)
		}
		l.LineStyle.Color = col
		l.LineStyle.Width = S.LineWidth
		dashed := second && cfg.Secondary == Dashed
		if dashed {
			l.LineStyle.Dashes = S.dashes()
		}
		p.Add(l)
		if cfg.Legend && c.Legend != "" {
			p.Legend.Add(c.Legend, l)
		}
		F.lines = append(F.lines, Line{
			Legend:    c.Legend,
			Color:     col,
			Dashed:    dashed,
			Secondary: second,
			Kind:      c.Kind,
			X:         c.X,
			Y:         c.Y,
		})
		return nil
	}
	for _, c := range primary {
		if err := add(c, false); err != nil {
			return nil, err
		}
	}
	for _, c := range secondary {
		if err := add(c, true); err != nil {
			return nil, err
		}
	}

	//Add expands the axes to fit the data, so the limits go last.
	p.X.Min, p.X.Max = xmin, xmax
	p.Y.Min, p.Y.Max = pmin, pmax

	F.position = cfg.Position
	if F.position == Best {
		F.position = F.bestPosition()
	}
	p.Legend.Top = F.position.Top()
	p.Legend.Left = F.position.Left()
	return F, nil
}

// yExtent returns the y limits that fit all the given curves, with a margin.
func yExtent(curves []*xvg.Curve) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, c := range curves {
		l, h := c.YRange()
		lo = math.Min(lo, l)
		hi = math.Max(hi, h)
	}
	span := hi - lo
	if span == 0 {
		span = math.Max(math.Abs(hi), 1)
	}
	return lo - yMargin*span, hi + yMargin*span
}

// commonRange returns the intersection of the x ranges of all the curves.
// The result is empty (lo >= hi) if some pair of curves doesn't overlap.
func commonRange(curves []*xvg.Curve) (float64, float64) {
	lo := make([]float64, len(curves))
	hi := make([]float64, len(curves))
	for i, c := range curves {
		lo[i], hi[i] = c.XRange()
	}
	return floats.Max(lo), floats.Min(hi)
}

// axisScale maps values from the secondary y axis onto the primary one.
type axisScale struct {
	pmin, pmax float64
	smin, smax float64
}

func (a *axisScale) toPrimary(v float64) float64 {
	return a.pmin + (v-a.smin)*(a.pmax-a.pmin)/(a.smax-a.smin)
}
