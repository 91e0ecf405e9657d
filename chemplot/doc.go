/*
 * doc.go, part of drawrdf.
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

/*
Package chemplot draws radial distribution functions and coordination
numbers, as read by package xvg, with gonum/plot.

Compose takes a group with one or two kinds of curves. With one kind, every
curve shares the left y axis. With two, the curves of the second kind go
against a second y axis on the right, dashed unless the Config says
otherwise. The resulting Figure can be saved in any of the Formats, or
shown through a Displayer: ImageFile here, or the gnuplot windows of
the chemplot/gnuplot package.

The look of the figures comes from a Style, which can be read from
matplotlib style sheets.
*/
package chemplot
