/*
 * legend.go, part of drawrdf.
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

import "math"

// Size of the box a legend takes in a corner, as a fraction of the data area.
const (
	legendBoxWidth  = 0.4
	legendRowHeight = 0.08
)

// bestPosition returns the corner whose legend box covers the fewest
// data points. Ties go to the first corner in the order upper right,
// upper left, lower left, lower right.
func (F *Figure) bestPosition() LegendPosition {
	entries := 0
	for _, l := range F.lines {
		if l.Legend != "" {
			entries++
		}
	}
	h := math.Min(0.9, legendRowHeight*float64(entries)+0.05)
	w := legendBoxWidth
	ymin, ymax := F.plot.Y.Min, F.plot.Y.Max
	counts := make(map[LegendPosition]int, 4)
	for _, l := range F.lines {
		for i, x := range l.X {
			y := l.Y[i]
			if l.Secondary {
				y = F.scale.toPrimary(y)
			}
			u := (x - F.xmin) / (F.xmax - F.xmin)
			v := (y - ymin) / (ymax - ymin)
			if u < 0 || u > 1 || v < 0 || v > 1 {
				continue
			}
			left, right := u <= w, u >= 1-w
			top, bottom := v >= 1-h, v <= h
			switch {
			case top && right:
				counts[UpperRight]++
			case top && left:
				counts[UpperLeft]++
			}
			switch {
			case bottom && left:
				counts[LowerLeft]++
			case bottom && right:
				counts[LowerRight]++
			}
		}
	}
	best := UpperRight
	for _, p := range []LegendPosition{UpperLeft, LowerLeft, LowerRight} {
		if counts[p] < counts[best] {
			best = p
		}
	}
	return best
}
