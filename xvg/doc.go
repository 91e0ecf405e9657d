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
Package xvg reads and writes the two-column XVG files that the gmx rdf tool
of GROMACS produces for radial distribution functions and coordination
number curves.

An XVG file starts with a header of lines beginning with '#' (comments) or
'@' (xmgrace metadata). Two metadata lines matter here:

	@    title "Radial distribution"
	@ s0 legend "O-H"

The title decides the Kind of the curve, and must be one of the strings in
the kind table ("Radial distribution" or "Cumulative Number RDF"). The
first legend found is used as the legend of the curve, unless the caller
supplies one. Every other non-blank line is a data row with exactly two
floating point numbers, x and y.

Files ending in .gz or .zst are decompressed on the fly.
*/
package xvg
