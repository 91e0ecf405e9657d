//go:build gnuplot

/*
 * gnuplot.go, part of drawrdf.
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

package gnuplot

import (
	"fmt"
	"os"

	"github.com/Arafatk/glot"
	"github.com/rmera/drawrdf/chemplot"
)

// Gnuplot is a chemplot.Displayer that opens each figure in its own
// persistent gnuplot window.
type Gnuplot struct {
	Debug bool //echo the gnuplot commands
	plots []*glot.Plot
	files []string
}

// Display sends the figure to a new gnuplot window.
func (G *Gnuplot) Display(F *chemplot.Figure) error {
	files, err := WriteData(F)
	if err != nil {
		return err
	}
	G.files = append(G.files, files...)
	cmds, err := Script(F, files)
	if err != nil {
		return err
	}
	p, err := glot.NewPlot(2, true, G.Debug)
	if err != nil {
		return fmt.Errorf("gnuplot.Display: %w", err)
	}
	G.plots = append(G.plots, p)
	for _, cmd := range cmds {
		if err := p.Cmd("%s", cmd); err != nil {
			return fmt.Errorf("gnuplot.Display: %q: %w", cmd, err)
		}
	}
	return nil
}

// Close ends the gnuplot processes and removes the temporary data files.
// Windows already open stay open.
func (G *Gnuplot) Close() error {
	var first error
	for _, p := range G.plots {
		if err := p.Close(); err != nil && first == nil {
			first = err
		}
	}
	for _, f := range G.files {
		if err := os.Remove(f); err != nil && first == nil {
			first = err
		}
	}
	G.plots, G.files = nil, nil
	return first
}

var _ chemplot.Displayer = (*Gnuplot)(nil)
