/*
 * plot_test.go, part of drawrdf.
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
	"bytes"
	"errors"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/drawrdf/xvg"
	"gonum.org/v1/plot/vg"
)

// diagonal returns a curve going from (x0,x0) to (x1,x1).
func diagonal(kind xvg.Kind, legend string, x0, x1 float64) *xvg.Curve {
	n := 101
	C := &xvg.Curve{Path: legend + ".xvg", Kind: kind, Legend: legend}
	for i := 0; i < n; i++ {
		v := x0 + (x1-x0)*float64(i)/float64(n-1)
		C.X = append(C.X, v)
		C.Y = append(C.Y, v)
	}
	return C
}

func rdfGroup() *xvg.Group {
	return xvg.NewGroup(
		diagonal(xvg.RDF, "O-H", 0, 1),
		diagonal(xvg.RDF, "O-O", 0, 1),
		diagonal(xvg.Coordination, "CN", 0, 1),
	)
}

func sameColor(a, b color.Color) bool {
	return Hex(a) == Hex(b)
}

func TestComposeSingle(Te *testing.T) {
	g := xvg.NewGroup(
		diagonal(xvg.RDF, "a", 0, 1),
		diagonal(xvg.RDF, "b", 0, 1),
		diagonal(xvg.RDF, "", 0, 1),
	)
	F, err := Compose(g, DefaultConfig())
	if err != nil {
		Te.Fatal(err)
	}
	if F.Dual() || F.SecondaryLabel() != "" {
		Te.Errorf("one kind of curve should give a single axis")
	}
	if F.YLabel() != RDFLabel {
		Te.Errorf("y label %q, expected %q", F.YLabel(), RDFLabel)
	}
	lines := F.Lines()
	if len(lines) != 3 {
		Te.Fatalf("%d lines, expected 3", len(lines))
	}
	for i, l := range lines {
		if l.Dashed || l.Secondary {
			Te.Errorf("line %d should be solid and on the primary axis", i)
		}
		if !sameColor(l.Color, DefaultColors[i]) {
			Te.Errorf("line %d has color %s, expected %s", i, Hex(l.Color), Hex(DefaultColors[i]))
		}
	}
	if lo, hi := F.XRange(); lo != 0 || hi != 1 {
		Te.Errorf("x range (%g, %g), expected (0, 1)", lo, hi)
	}
	if F.Plot().Y.Min >= 0 || F.Plot().Y.Max <= 1 {
		Te.Errorf("y axis (%g, %g) should leave a margin around the data", F.Plot().Y.Min, F.Plot().Y.Max)
	}
}

func TestComposeDual(Te *testing.T) {
	cn := diagonal(xvg.Coordination, "CN", 0, 1)
	for i := range cn.Y {
		cn.Y[i] *= 10
	}
	g := xvg.NewGroup(diagonal(xvg.RDF, "O-H", 0, 1), diagonal(xvg.RDF, "O-O", 0, 1), cn)
	F, err := Compose(g, DefaultConfig())
	if err != nil {
		Te.Fatal(err)
	}
	if !F.Dual() {
		Te.Fatalf("two kinds of curves should give two axes")
	}
	if F.YLabel() != RDFLabel || F.SecondaryLabel() != CoordLabel {
		Te.Errorf("labels %q and %q", F.YLabel(), F.SecondaryLabel())
	}
	lines := F.Lines()
	for i, l := range lines[:2] {
		if l.Dashed || l.Secondary {
			Te.Errorf("RDF line %d should be solid and on the primary axis", i)
		}
	}
	if l := lines[2]; !l.Dashed || !l.Secondary || l.Kind != xvg.Coordination {
		Te.Errorf("the coordination number should be dashed and on the secondary axis: %+v", l)
	}
	//The secondary data is kept in its own units.
	if lines[2].Y[len(lines[2].Y)-1] != 10 {
		Te.Errorf("secondary data was modified")
	}
	//Both data sets span the same height of the plot.
	if got := F.scale.toPrimary(10); math.Abs(got-1) > 1e-9 {
		Te.Errorf("secondary maximum maps to %g, expected 1", got)
	}
	if got := F.scale.toSecondary(F.scale.toPrimary(3)); math.Abs(got-3) > 1e-9 {
		Te.Errorf("axis mapping doesn't round trip: %g", got)
	}

	cfg := DefaultConfig()
	cfg.Secondary = Solid
	F, err = Compose(g, cfg)
	if err != nil {
		Te.Fatal(err)
	}
	if F.Lines()[2].Dashed {
		Te.Errorf("secondary line should be solid")
	}
}

func TestComposeKinds(Te *testing.T) {
	if _, err := Compose(xvg.NewGroup(), nil); !errors.Is(err, ErrCurveKinds) {
		Te.Errorf("empty group: got %v", err)
	}
	g := rdfGroup()
	g.Add(diagonal(xvg.Unrecognized, "other", 0, 1))
	if _, err := Compose(g, nil); !errors.Is(err, ErrCurveKinds) {
		Te.Errorf("three kinds: got %v", err)
	}
	cfg := DefaultConfig()
	cfg.Secondary = LineKind(7)
	if _, err := Compose(xvg.NewGroup(diagonal(xvg.RDF, "a", 0, 1)), cfg); !errors.Is(err, ErrLineKind) {
		Te.Errorf("bad line kind: got %v", err)
	}
}

func TestComposeRange(Te *testing.T) {
	g := xvg.NewGroup(diagonal(xvg.RDF, "a", 0, 1), diagonal(xvg.RDF, "b", 0.2, 1.5))
	cfg := DefaultConfig()
	cfg.AutoRange = true
	F, err := Compose(g, cfg)
	if err != nil {
		Te.Fatal(err)
	}
	if lo, hi := F.XRange(); lo != 0.2 || hi != 1 {
		Te.Errorf("x range (%g, %g), expected (0.2, 1)", lo, hi)
	}
	g = xvg.NewGroup(diagonal(xvg.RDF, "a", 0, 1), diagonal(xvg.RDF, "b", 2, 3))
	if _, err := Compose(g, cfg); !errors.Is(err, ErrRange) {
		Te.Errorf("disjoint curves: got %v", err)
	}
	cfg = DefaultConfig()
	cfg.XMin, cfg.XMax = 1, 1
	if _, err := Compose(g, cfg); !errors.Is(err, ErrRange) {
		Te.Errorf("empty range: got %v", err)
	}
}

func TestLegend(Te *testing.T) {
	cfg := DefaultConfig()
	cfg.Legend = true
	F, err := Compose(xvg.NewGroup(diagonal(xvg.RDF, "O-H", 0, 1)), cfg)
	if err != nil {
		Te.Fatal(err)
	}
	//The diagonal crosses the upper right and lower left corners.
	if on, pos := F.Legend(); !on || pos != UpperLeft {
		Te.Errorf("legend %v at %s, expected upper left", on, pos)
	}
	cfg.Position = LowerRight
	F, err = Compose(xvg.NewGroup(diagonal(xvg.RDF, "O-H", 0, 1)), cfg)
	if err != nil {
		Te.Fatal(err)
	}
	if _, pos := F.Legend(); pos != LowerRight {
		Te.Errorf("legend at %s, expected lower right", pos)
	}
	if F.Plot().Legend.Left || F.Plot().Legend.Top {
		Te.Errorf("plot legend not in the lower right corner")
	}
	if on, _ := mustCompose(Te, rdfGroup(), DefaultConfig()).Legend(); on {
		Te.Errorf("legend should be off by default")
	}
}

func mustCompose(Te *testing.T, g *xvg.Group, cfg *Config) *Figure {
	F, err := Compose(g, cfg)
	if err != nil {
		Te.Fatal(err)
	}
	return F
}

func TestParseLegendPosition(Te *testing.T) {
	for i, name := range PositionNames() {
		p, err := ParseLegendPosition(strings.ToUpper(name))
		if err != nil || int(p) != i {
			Te.Errorf("%q: got %s, %v", name, p, err)
		}
	}
	if p, err := ParseLegendPosition("  upper   left "); err != nil || p != UpperLeft {
		Te.Errorf("spaces: got %s, %v", p, err)
	}
	if p, err := ParseLegendPosition("center"); !errors.Is(err, ErrLegendPosition) || p != Best {
		Te.Errorf("center: got %s, %v", p, err)
	}
}

func TestParseDPI(Te *testing.T) {
	if d, err := ParseDPI(" 600 "); err != nil || d != 600 {
		Te.Errorf("600: got %d, %v", d, err)
	}
	for _, s := range []string{"", "abc", "-3", "0", "1.5", "1201", "200000"} {
		d, err := ParseDPI(s)
		if !errors.Is(err, ErrDPI) || d != DefaultDPI {
			Te.Errorf("%q: got %d, %v", s, d, err)
		}
	}
}

func TestColors(Te *testing.T) {
	curves := rdfGroup().All()
	if err := AssignColors(curves, Palette(2)); !errors.Is(err, ErrColorCount) {
		Te.Errorf("too few colors: got %v", err)
	}
	if err := AssignColors(curves, HuePalette(3)); err != nil {
		Te.Fatal(err)
	}
	F := mustCompose(Te, xvg.NewGroup(curves...), DefaultConfig())
	seen := map[string]bool{}
	for i, l := range F.Lines() {
		if !sameColor(l.Color, curves[i].Color) {
			Te.Errorf("line %d doesn't have its assigned color", i)
		}
		seen[Hex(l.Color)] = true
	}
	if len(seen) != 3 {
		Te.Errorf("hue palette repeats colors: %v", seen)
	}
	if p := Palette(9); !sameColor(p[7], DefaultColors[0]) {
		Te.Errorf("palette doesn't cycle")
	}

	c, err := ParseColor("#0C5DA5")
	if err != nil {
		Te.Fatal(err)
	}
	if c != (color.NRGBA{R: 0x0C, G: 0x5D, B: 0xA5, A: 0xFF}) {
		Te.Errorf("got %v", c)
	}
	if c, err := ParseColor("0c5da580"); err != nil || c.(color.NRGBA).A != 0x80 {
		Te.Errorf("alpha: got %v, %v", c, err)
	}
	for _, s := range []string{"", "#12345", "#GG0000", "red"} {
		if _, err := ParseColor(s); err == nil {
			Te.Errorf("%q should not parse", s)
		}
	}
	if h := Hex(c); h != "#0C5DA5" {
		Te.Errorf("hex %s", h)
	}
}

const sheet = `# a style sheet
figure.figsize : 3.5, 2.625
lines.linewidth: 2   # thicker
axes.grid : True
font.size : 8
axes.prop_cycle : cycler('color', ['0C5DA5', '#00B945'])
savefig.bbox : tight
`

func TestReadSheet(Te *testing.T) {
	S := DefaultStyle()
	if err := S.ReadSheet(strings.NewReader(sheet), "test.mplstyle"); err != nil {
		Te.Fatal(err)
	}
	if S.Width != 3.5*vg.Inch || S.Height != 2.625*vg.Inch {
		Te.Errorf("figure size %v x %v", S.Width, S.Height)
	}
	if S.LineWidth != vg.Points(2) || S.FontSize != vg.Points(8) || !S.Grid {
		Te.Errorf("got %+v", S)
	}
	if len(S.Colors) != 2 || Hex(S.Colors[1]) != "#00B945" {
		Te.Errorf("colors %v", S.Colors)
	}
	if err := DefaultStyle().ReadSheet(strings.NewReader("no colon here\n"), "bad"); err == nil {
		Te.Errorf("a line with no ':' should fail")
	}
	if err := DefaultStyle().ReadSheet(strings.NewReader("lines.linewidth : thick\n"), "bad"); err == nil {
		Te.Errorf("a bad number should fail")
	}

	dir := Te.TempDir()
	path := filepath.Join(dir, "my.mplstyle")
	if err := os.WriteFile(path, []byte("lines.linewidth : 3\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	S, err := LoadStyle(filepath.Join(dir, "missing.mplstyle"), path)
	if err != nil {
		Te.Fatal(err)
	}
	if S.LineWidth != vg.Points(3) {
		Te.Errorf("line width %v, expected 3", S.LineWidth)
	}
	//Each figure keeps its own style.
	cfg := DefaultConfig()
	cfg.Style = S
	F := mustCompose(Te, rdfGroup(), cfg)
	S.LineWidth = 10
	if F.style.LineWidth != vg.Points(3) {
		Te.Errorf("figure style changed with the config")
	}
}

func TestSave(Te *testing.T) {
	dir := Te.TempDir()
	cfg := DefaultConfig()
	cfg.Legend = true
	F := mustCompose(Te, rdfGroup(), cfg)
	magic := map[string]string{
		"png": "\x89PNG",
		"svg": "<svg",
		"pdf": "%PDF",
		"eps": "PS-Adobe",
	}
	for ext, head := range magic {
		path := filepath.Join(dir, "draw."+ext)
		if err := F.Save(path, 100); err != nil {
			Te.Errorf("%s: %v", ext, err)
			continue
		}
		b, err := os.ReadFile(path)
		if err != nil {
			Te.Fatal(err)
		}
		if !bytes.Contains(b[:min(len(b), 512)], []byte(head)) {
			Te.Errorf("%s: no %q in the file header", ext, head)
		}
	}
	//The same figure renders any number of times.
	var a, b bytes.Buffer
	if err := F.Render(&a, "PNG", 50); err != nil {
		Te.Fatal(err)
	}
	if err := F.Render(&b, "png", 50); err != nil {
		Te.Fatal(err)
	}
	if a.Len() == 0 || a.Len() != b.Len() {
		Te.Errorf("renders differ: %d and %d bytes", a.Len(), b.Len())
	}
	if err := F.Save(filepath.Join(dir, "draw.bmp"), 100); !errors.Is(err, ErrFormat) {
		Te.Errorf("bmp: got %v", err)
	}
	if err := F.Save(filepath.Join(dir, "draw.png"), 0); !errors.Is(err, ErrDPI) {
		Te.Errorf("dpi 0: got %v", err)
	}
}

func TestFigureSize(Te *testing.T) {
	for _, size := range []string{"0, 0", "-3, 2", "3, nan", "1e9, 1e9", "inf, 2"} {
		S := DefaultStyle()
		err := S.ReadSheet(strings.NewReader("figure.figsize : "+size+"\n"), "size.mplstyle")
		if !errors.Is(err, ErrSize) {
			Te.Errorf("figure size %q: got %v", size, err)
		}
		if S.Width != DefaultStyle().Width || S.Height != DefaultStyle().Height {
			Te.Errorf("figure size %q changed the style", size)
		}
	}

	//A style edited by hand still can't crash the renderer.
	dir := Te.TempDir()
	for _, wh := range [][2]vg.Length{{0, 0}, {-3 * vg.Inch, 2 * vg.Inch}, {1e9 * vg.Inch, 1e9 * vg.Inch}} {
		cfg := DefaultConfig()
		cfg.Style.Width, cfg.Style.Height = wh[0], wh[1]
		F := mustCompose(Te, rdfGroup(), cfg)
		var b bytes.Buffer
		for _, format := range []string{"png", "svg"} {
			if err := F.Render(&b, format, 100); !errors.Is(err, ErrSize) {
				Te.Errorf("%v in %s: got %v", wh, format, err)
			}
		}
		path := filepath.Join(dir, "big.png")
		if err := F.Save(path, 100); !errors.Is(err, ErrSize) {
			Te.Errorf("%v saved: got %v", wh, err)
		}
		if _, err := os.Stat(path); err == nil {
			Te.Errorf("a file was created for %v", wh)
		}
	}

	//Large but valid sizes fail at high resolution only.
	cfg := DefaultConfig()
	cfg.Style.Width, cfg.Style.Height = 100*vg.Inch, 100*vg.Inch
	F := mustCompose(Te, rdfGroup(), cfg)
	var b bytes.Buffer
	if err := F.Render(&b, "png", MaxDPI); !errors.Is(err, ErrDPI) {
		Te.Errorf("huge raster: got %v", err)
	}
	if err := F.Save(filepath.Join(dir, "big.png"), 5000); !errors.Is(err, ErrDPI) {
		Te.Errorf("dpi 5000: got %v", err)
	}
	if err := F.Render(&b, "svg", MaxDPI); err != nil {
		Te.Errorf("vector output doesn't depend on the resolution: %v", err)
	}
}

func TestImageFile(Te *testing.T) {
	dir := Te.TempDir()
	var out bytes.Buffer
	d := &ImageFile{Dir: dir, DPI: 50, Out: &out}
	F := mustCompose(Te, rdfGroup(), DefaultConfig())
	if err := F.Show(d); err != nil {
		Te.Fatal(err)
	}
	matches, err := filepath.Glob(filepath.Join(dir, "drawrdf-*.png"))
	if err != nil || len(matches) != 1 {
		Te.Fatalf("expected one picture, got %v, %v", matches, err)
	}
	if !strings.Contains(out.String(), "Picture written to "+matches[0]) {
		Te.Errorf("path not printed: %q", out.String())
	}
	b, err := os.ReadFile(matches[0])
	if err != nil || !bytes.HasPrefix(b, []byte("\x89PNG")) {
		Te.Errorf("not a PNG file: %v", err)
	}
	d.DPI = 100000
	if err := F.Show(d); !errors.Is(err, ErrDPI) {
		Te.Errorf("dpi 100000: got %v", err)
	}
	if matches, _ := filepath.Glob(filepath.Join(dir, "drawrdf-*.png")); len(matches) != 1 {
		Te.Errorf("a failed display left files behind: %v", matches)
	}
}

type fakeDisplay struct {
	shown []*Figure
}

func (f *fakeDisplay) Display(F *Figure) error {
	f.shown = append(f.shown, F)
	return nil
}

func TestShow(Te *testing.T) {
	F := mustCompose(Te, rdfGroup(), DefaultConfig())
	if err := F.Show(nil); err == nil {
		Te.Errorf("showing with no displayer should fail")
	}
	d := &fakeDisplay{}
	if err := F.Show(d); err != nil || len(d.shown) != 1 || d.shown[0] != F {
		Te.Errorf("figure not displayed: %v", err)
	}
}
