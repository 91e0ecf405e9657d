/*
 * write.go, part of drawrdf.
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

package xvg

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Write writes C to w as an XVG file that Read can parse back.
// Numbers use the shortest representation that round-trips exactly.
func Write(w io.Writer, C *Curve) error {
	if len(C.X) != len(C.Y) {
		return fmt.Errorf("xvg.Write: curve %s has %d x values but %d y values", C.Name(), len(C.X), len(C.Y))
	}
	b := bufio.NewWriter(w)
	fmt.Fprintf(b, "# %s\n", C.Name())
	title := C.Title
	if title == "" {
		title = C.Kind.Title()
	}
	if title != "" {
		fmt.Fprintf(b, "@    title \"%s\"\n", title)
	}
	if C.Legend != "" {
		fmt.Fprintf(b, "@ s0 legend \"%s\"\n", C.Legend)
	}
	buf := make([]byte, 0, 48)
	for i, x := range C.X {
		buf = buf[:0]
		buf = strconv.AppendFloat(buf, x, 'g', -1, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, C.Y[i], 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := b.Write(buf); err != nil {
			return err
		}
	}
	return b.Flush()
}
