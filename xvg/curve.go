/*
 * curve.go, part of drawrdf.
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
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Kind is the type of curve stored in an XVG file.
type Kind int

const (
	Unrecognized Kind = iota
	RDF               //radial distribution function, g(r)
	Coordination      //cumulative number RDF
)

// The titles gmx rdf writes, mapped to the curve kinds.
var titleKinds = map[string]Kind{
	"Radial distribution":   RDF,
	"Cumulative Number RDF": Coordination,
}

// KindFromTitle returns the Kind for the given XVG title, and
// false if the title is not in the kind table.
func KindFromTitle(title string) (Kind, bool) {
	k, ok := titleKinds[title]
	return k, ok
}

// Title returns the XVG title for the kind, or the empty string
// for Unrecognized.
func (K Kind) Title() string {
	for t, k := range titleKinds {
		if k == K {
			return t
		}
	}
	return ""
}

func (K Kind) String() string {
	switch K {
	case RDF:
		return "Radial distribution"
	case Coordination:
		return "Coordination number"
	default:
		return "Unrecognized"
	}
}

// Curve is one curve read from an XVG file. Only Legend and Color
// are meant to be changed after loading.
type Curve struct {
	Path   string
	Kind   Kind
	Title  string //raw title, empty if the file had none
	Legend string
	Color  color.Color
	X      []float64
	Y      []float64
}

// Len returns the number of (x, y) pairs in the curve.
func (C *Curve) Len() int {
	return len(C.X)
}

// Name returns the file name of the curve, with extension.
func (C *Curve) Name() string {
	return filepath.Base(C.Path)
}

// Stem returns the file name of the curve without extensions.
// Compression extensions are removed too, so "a.xvg.gz" gives "a".
func (C *Curve) Stem() string {
	n := C.Name()
	if isCompressed(n) {
		n = strings.TrimSuffix(n, filepath.Ext(n))
	}
	return strings.TrimSuffix(n, filepath.Ext(n))
}

// XRange returns the smallest and largest x values in the curve.
// It panics if the curve is empty.
func (C *Curve) XRange() (float64, float64) {
	return floats.Min(C.X), floats.Max(C.X)
}

// YRange returns the smallest and largest y values in the curve.
// It panics if the curve is empty.
func (C *Curve) YRange() (float64, float64) {
	return floats.Min(C.Y), floats.Max(C.Y)
}

func (C *Curve) String() string {
	return fmt.Sprintf("%s (%s, %q, %d points)", C.Name(), C.Kind, C.Legend, C.Len())
}

// Group holds curves sorted by kind. The kinds keep the order in
// which they were first added, and so do the curves of each kind.
type Group struct {
	kinds  []Kind
	curves map[Kind][]*Curve
}

// NewGroup returns a group with the given curves added.
func NewGroup(curves ...*Curve) *Group {
	G := &Group{curves: make(map[Kind][]*Curve)}
	G.Add(curves...)
	return G
}

// Add puts the curves in the group, after the curves of the same kind.
func (G *Group) Add(curves ...*Curve) {
	if G.curves == nil {
		G.curves = make(map[Kind][]*Curve)
	}
	for _, c := range curves {
		if _, ok := G.curves[c.Kind]; !ok {
			G.kinds = append(G.kinds, c.Kind)
		}
		G.curves[c.Kind] = append(G.curves[c.Kind], c)
	}
}

// Kinds returns the kinds present in the group, in insertion order.
func (G *Group) Kinds() []Kind {
	ret := make([]Kind, len(G.kinds))
	copy(ret, G.kinds)
	return ret
}

// Curves returns the curves of kind k. The slice is shared with the group.
func (G *Group) Curves(k Kind) []*Curve {
	return G.curves[k]
}

// All returns every curve in the group, kind after kind.
func (G *Group) All() []*Curve {
	ret := make([]*Curve, 0, G.Count())
	for _, k := range G.kinds {
		ret = append(ret, G.curves[k]...)
	}
	return ret
}

// Len returns the number of kinds in the group.
func (G *Group) Len() int {
	return len(G.kinds)
}

// Count returns the number of curves in the group.
func (G *Group) Count() int {
	n := 0
	for _, v := range G.curves {
		n += len(v)
	}
	return n
}
