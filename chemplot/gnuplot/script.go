/*
 * script.go, part of drawrdf.
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

// Package gnuplot shows chemplot figures in gnuplot windows.
//
// The Gnuplot displayer is only built with the gnuplot build tag, since it
// needs the gnuplot executable in the PATH. The script generation is
// always available.
package gnuplot

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rmera/drawrdf/chemplot"
)

// Script returns the gnuplot commands that draw the figure, given
// one data file per line of the figure.
func Script(F *chemplot.Figure, files []string) ([]string, error) {
	lines := F.Lines()
	if len(files) != len(lines) {
		return nil, fmt.Errorf("gnuplot.Script: %d data files for %d lines", len(files), len(lines))
	}
	S := F.Style()
	xmin, xmax := F.XRange()
	ymin, ymax := F.YRange()
	cmds := []string{
		"set xlabel " + quote(chemplot.XLabel),
		"set ylabel " + quote(F.YLabel()),
		fmt.Sprintf("set xrange [%g:%g]", xmin, xmax),
		fmt.Sprintf("set yrange [%g:%g]", ymin, ymax),
	}
	if F.Dual() {
		lo, hi := F.SecondaryRange()
		cmds = append(cmds,
			"set ytics nomirror",
			"set y2tics",
			"set y2label "+quote(F.SecondaryLabel()),
			fmt.Sprintf("set y2range [%g:%g]", lo, hi),
		)
	}
	if S.Grid {
		cmds = append(cmds, "set grid")
	}
	if on, pos := F.Legend(); on {
		v, h := "bottom", "right"
		if pos.Top() {
			v = "top"
		}
		if pos.Left() {
			h = "left"
		}
		cmds = append(cmds, fmt.Sprintf("set key %s %s", v, h))
	} else {
		cmds = append(cmds, "unset key")
	}
	parts := make([]string, 0, len(lines))
	for i, l := range lines {
		axes := "x1y1"
		if l.Secondary {
			axes = "x1y2"
		}
		dt := 1
		if l.Dashed {
			dt = 2
		}
		title := "notitle"
		if l.Legend != "" {
			title = "title " + quote(l.Legend)
		}
		parts = append(parts, fmt.Sprintf("%s using 1:2 axes %s with lines lw %g dt %d lc rgb %s %s",
			quote(files[i]), axes, float64(S.LineWidth), dt, quote(chemplot.Hex(l.Color)), title))
	}
	cmds = append(cmds, "plot "+strings.Join(parts, ", "))
	return cmds, nil
}

// WriteData writes the data of each line of F to its own temporary file,
// and returns the file names. On error, the files already written are removed.
func WriteData(F *chemplot.Figure) ([]string, error) {
	var files []string
	for _, l := range F.Lines() {
		name, err := writeSeries(l.X, l.Y)
		if err != nil {
			for _, f := range files {
				os.Remove(f)
			}
			return nil, fmt.Errorf("gnuplot.WriteData: %w", err)
		}
		files = append(files, name)
	}
	return files, nil
}

func writeSeries(x, y []float64) (string, error) {
	f, err := os.CreateTemp("", "drawrdf-*.dat")
	if err != nil {
		return "", err
	}
	w := bufio.NewWriter(f)
	for i := range x {
		fmt.Fprintf(w, "%s %s\n", strconv.FormatFloat(x[i], 'g', -1, 64), strconv.FormatFloat(y[i], 'g', -1, 64))
	}
	if err := w.Flush(); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), f.Close()
}

//quote returns s as a double quoted gnuplot string.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
