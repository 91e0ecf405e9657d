/*
 * summary.go, part of drawrdf.
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

package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rmera/drawrdf/xvg"
)

// Summary describes the first solvation shell of one RDF.
type Summary struct {
	RDF        *xvg.Curve
	Peak       Peak
	HasMinimum bool
	Minimum    float64 //position of the first minimum after the peak
	CN         *xvg.Curve
	HasCN      bool
	Number     float64 //coordination number at Minimum
}

func (S Summary) String() string {
	var b strings.Builder
	name := S.RDF.Legend
	if name == "" {
		name = S.RDF.Stem()
	}
	fmt.Fprintf(&b, "%s: first peak %s", name, S.Peak)
	if S.HasMinimum {
		fmt.Fprintf(&b, ", first minimum r=%.4f", S.Minimum)
	}
	if S.HasCN {
		fmt.Fprintf(&b, ", coordination number %.3f", S.Number)
	}
	return b.String()
}

// Summarize returns one Summary for each RDF curve in g. If g also has
// coordination number curves, the i-th RDF is paired with the i-th of them,
// and the summary includes the coordination number at the first minimum.
// A curve with no peak is an error. A missing minimum, or a minimum beyond
// the coordination curve, just leaves those fields unset.
func Summarize(g *xvg.Group) ([]Summary, error) {
	rdfs := g.Curves(xvg.RDF)
	if len(rdfs) == 0 {
		return nil, fmt.Errorf("shell.Summarize: no radial distribution functions loaded")
	}
	cns := g.Curves(xvg.Coordination)
	ret := make([]Summary, 0, len(rdfs))
	for i, c := range rdfs {
		S := Summary{RDF: c}
		var err error
		S.Peak, err = FirstPeak(c.X, c.Y)
		if err != nil {
			return nil, fmt.Errorf("shell.Summarize: %s: %w", c.Name(), err)
		}
		m, err := FirstMinimum(c.X, c.Y, S.Peak.Index)
		if err == nil {
			S.HasMinimum = true
			S.Minimum = c.X[m]
		} else if !errors.Is(err, ErrNoMinimum) {
			return nil, fmt.Errorf("shell.Summarize: %s: %w", c.Name(), err)
		}
		if S.HasMinimum && i < len(cns) {
			S.CN = cns[i]
			n, err := CoordinationAt(cns[i], S.Minimum)
			if err == nil {
				S.HasCN = true
				S.Number = n
			} else if !errors.Is(err, ErrOutside) {
				return nil, fmt.Errorf("shell.Summarize: %s: %w", c.Name(), err)
			}
		}
		ret = append(ret, S)
	}
	return ret, nil
}
