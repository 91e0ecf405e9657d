//go:build gnuplot

/*
 * display_gnuplot.go, part of drawrdf.
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

package main

import (
	"github.com/rmera/drawrdf/chemplot"
	"github.com/rmera/drawrdf/chemplot/gnuplot"
	"github.com/rmera/drawrdf/session"
)

// newDisplayer shows figures in gnuplot windows.
func newDisplayer(cfg session.Config) (chemplot.Displayer, func() error) {
	gp := &gnuplot.Gnuplot{Debug: cfg.GnuplotDebug}
	return gp, gp.Close
}
