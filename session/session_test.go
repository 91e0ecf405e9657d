/*
 * session_test.go, part of drawrdf.
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

package session

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/drawrdf/chemplot"
)

var rdfRows = []float64{0, 0, 0, 0.5, 2.5, 1.2, 0.8, 0.9, 1.0, 1.0, 1.0}

// writeCurve writes an XVG file with the given title and legend, with
// x from 0 to 0.5 nm.
func writeCurve(Te *testing.T, dir, name, title, legend string, y func(i int) float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# This file was created by gmx rdf\n@    title \"%s\"\n@    xaxis  label \"r\"\n@ s0 legend \"%s\"\n", title, legend)
	for i := range rdfRows {
		fmt.Fprintf(&b, "%g %g\n", float64(i)*0.05, y(i))
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		Te.Fatal(err)
	}
	return path
}

type fakeDisplay struct {
	shown []*chemplot.Figure
}

func (f *fakeDisplay) Display(F *chemplot.Figure) error {
	f.shown = append(f.shown, F)
	return nil
}

func testConfig() Config {
	return Config{
		DPI:            300,
		Output:         "./draw.png",
		XMax:           1,
		LegendPosition: "best",
		Stride:         1,
		Palette:        PaletteDefault,
	}
}

func TestSession(Te *testing.T) {
	dir := Te.TempDir()
	rdf := writeCurve(Te, dir, "rdf.xvg", "Radial distribution", "O-H", func(i int) float64 { return rdfRows[i] })
	cn := writeCurve(Te, dir, "cn.xvg", "Cumulative Number RDF", "O-H", func(i int) float64 { return float64(i) })
	out := filepath.Join(dir, "out.png")
	script := strings.Join([]string{
		filepath.Join(dir, "missing.xvg"),
		"q", //nothing loaded yet
		rdf,
		rdf,
		cn,
		"q",
		"7", //not a command
		"1", "abc",
		"2", "#FF0000", "zz",
		"4", "Oxygen", "",
		"5", "upper left",
		"6", "0 0.5",
		"6", "1 0",
		"0", "0", //toggled twice, still on
		"i",
		"d",
		"s", out, "5000", //bad dpi, saved at 300
		"s", "", "150",
		"q",
	}, "\n") + "\n"
	var buf bytes.Buffer
	d := &fakeDisplay{}
	S := New(testConfig(), strings.NewReader(script), &buf, nil, d)
	if err := S.Run(context.Background()); err != nil {
		Te.Fatal(err)
	}
	text := buf.String()
	for _, want := range []string{
		"missing.xvg is not a file",
		"No curve loaded yet.",
		"rdf.xvg was already loaded.",
		"The number of Radial distribution curve: 1",
		"The number of Cumulative Number RDF curve: 1",
		"Wrong input, please enter again.",
		"Invalid input. Use default value: 300.",
		`Invalid color "zz"`,
		"Invalid input. The range is unchanged.",
		"coordination number 6.000",
		"Please enter the dpi of picture, or press enter to keep 300.",
		"Invalid input. The dpi is unchanged: 300.",
		"Picture saved to " + out,
	} {
		if !strings.Contains(text, want) {
			Te.Errorf("output lacks %q", want)
		}
	}
	if len(d.shown) != 1 {
		Te.Fatalf("%d figures displayed, expected 1", len(d.shown))
	}
	F := d.shown[0]
	if on, pos := F.Legend(); !on || pos != chemplot.UpperLeft {
		Te.Errorf("legend %v at %s", on, pos)
	}
	if lo, hi := F.XRange(); lo != 0 || hi != 0.5 {
		Te.Errorf("x range (%g, %g)", lo, hi)
	}
	lines := F.Lines()
	if len(lines) != 2 || !F.Dual() {
		Te.Fatalf("expected a dual axis figure with 2 lines")
	}
	if chemplot.Hex(lines[0].Color) != "#FF0000" || lines[0].Legend != "Oxygen" {
		Te.Errorf("first line: %s %q", chemplot.Hex(lines[0].Color), lines[0].Legend)
	}
	if lines[1].Legend != "" || !lines[1].Dashed {
		Te.Errorf("second line: %q dashed %v", lines[1].Legend, lines[1].Dashed)
	}
	if S.DPI() != 150 {
		Te.Errorf("dpi %d, expected 150", S.DPI())
	}
	if n := strings.Count(text, "Picture saved to "+out); n != 2 {
		Te.Errorf("picture saved %d times, expected 2", n)
	}
	if !strings.HasPrefix(text, intro+"\n\n") {
		Te.Errorf("output doesn't start with the introduction")
	}
	if info, err := os.Stat(out); err != nil || info.Size() == 0 {
		Te.Errorf("picture not saved: %v", err)
	}
}

func TestSessionErrors(Te *testing.T) {
	dir := Te.TempDir()
	rdf := writeCurve(Te, dir, "rdf.xvg", "Radial distribution", "O-H", func(i int) float64 { return rdfRows[i] })
	bad := filepath.Join(dir, "bad.xvg")
	if err := os.WriteFile(bad, []byte("@    title \"Density\"\n0 1\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	cfg := testConfig()
	cfg.Files = []string{rdf, bad}
	cfg.Palette = PaletteHue
	cfg.Styles = []string{filepath.Join(dir, "missing.mplstyle")}
	script := "q\n3\ndel\n3\ndel\nd\n"
	var buf bytes.Buffer
	S := New(cfg, strings.NewReader(script), &buf, nil, nil)
	if err := S.Run(context.Background()); err != nil {
		Te.Fatal(err)
	}
	text := buf.String()
	for _, want := range []string{
		"Could not load " + bad,
		"There is no style sheet to delete.",
		"Error: chemplot.Show: no displayer given",
	} {
		if !strings.Contains(text, want) {
			Te.Errorf("output lacks %q", want)
		}
	}
	if S.Group().Count() != 1 {
		Te.Errorf("%d curves loaded, expected 1", S.Group().Count())
	}
	if S.Group().All()[0].Color == nil {
		Te.Errorf("hue palette not applied")
	}
	if len(S.Styles()) != 0 {
		Te.Errorf("styles %v", S.Styles())
	}

	//A style sheet that can't be drawn is reported, and the session goes on.
	sheet := filepath.Join(dir, "flat.mplstyle")
	if err := os.WriteFile(sheet, []byte("figure.figsize : 0, 0\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	cfg = testConfig()
	cfg.Files = []string{rdf}
	cfg.Styles = []string{sheet}
	cfg.Output = filepath.Join(dir, "flat.png")
	buf.Reset()
	S = New(cfg, strings.NewReader("q\nd\ns\n\n\n1\n150\nq\n"), &buf, nil, &fakeDisplay{})
	if err := S.Run(context.Background()); err != nil {
		Te.Fatal(err)
	}
	if n := strings.Count(buf.String(), "invalid figure size"); n != 2 {
		Te.Errorf("%d size errors reported, expected 2:\n%s", n, buf.String())
	}
	if S.DPI() != 150 {
		Te.Errorf("the menu should still work after an error, dpi %d", S.DPI())
	}
	if _, err := os.Stat(cfg.Output); err == nil {
		Te.Errorf("a picture was saved with a bad style")
	}

	//The input ends before any file is loaded.
	S = New(testConfig(), strings.NewReader(""), &buf, nil, nil)
	if err := S.Run(context.Background()); err == nil {
		Te.Errorf("a session with no curves should fail")
	}
}

func TestParseCommand(Te *testing.T) {
	for _, c := range []Command{ToggleLegend, SetDPI, SetColors, EditStyles, SetLegends, SetPosition, SetRange, Summary, Draw, Save, Quit} {
		got, ok := ParseCommand(" " + c.Key() + " ")
		if !ok || got != c {
			Te.Errorf("key %q gives %v", c.Key(), got)
		}
	}
	if _, ok := ParseCommand("x"); ok {
		Te.Errorf("x is not a command")
	}
}

func TestParseConfig(Te *testing.T) {
	cfg, err := ParseConfig(flag.NewFlagSet("drawrdf", flag.ContinueOnError), nil)
	if err != nil {
		Te.Fatal(err)
	}
	if cfg.DPI != 300 || cfg.Output != "./draw.png" || cfg.XMax != 1 || cfg.Stride != 1 || cfg.Palette != PaletteDefault {
		Te.Errorf("defaults: %+v", cfg)
	}
	if len(cfg.Styles) != 2 || cfg.Styles[1] != "./style/my.mplstyle" {
		Te.Errorf("default styles %v", cfg.Styles)
	}

	Te.Setenv("DRAWRDF_DPI", "600")
	Te.Setenv("DRAWRDF_LEGEND", "true")
	Te.Setenv("DRAWRDF_STYLES", "a.mplstyle,b.mplstyle")
	cfg, err = ParseConfig(flag.NewFlagSet("drawrdf", flag.ContinueOnError),
		[]string{"-legend-position", "upper left", "-styles", "c.mplstyle", "rdf.xvg", "cn.xvg"})
	if err != nil {
		Te.Fatal(err)
	}
	if cfg.DPI != 600 || !cfg.Legend || cfg.LegendPosition != "upper left" {
		Te.Errorf("got %+v", cfg)
	}
	if len(cfg.Styles) != 1 || cfg.Styles[0] != "c.mplstyle" {
		Te.Errorf("flags should win over the environment: %v", cfg.Styles)
	}
	if len(cfg.Files) != 2 || cfg.Files[1] != "cn.xvg" {
		Te.Errorf("files %v", cfg.Files)
	}
	S := New(cfg, strings.NewReader(""), nil, nil, nil)
	if pc := S.PlotConfig(); pc.Position != chemplot.UpperLeft || !pc.Legend {
		Te.Errorf("session config %+v", pc)
	}

	for _, args := range [][]string{
		{"-palette", "rainbow"},
		{"-dpi", "0"},
		{"-dpi", "100000"},
		{"-legend-position", "center"},
		{"-xmin", "2", "-xmax", "1"},
	} {
		if _, err := ParseConfig(flag.NewFlagSet("drawrdf", flag.ContinueOnError), args); err == nil {
			Te.Errorf("%v should fail", args)
		}
	}
	Te.Setenv("DRAWRDF_STRIDE", "many")
	if _, err := ParseConfig(flag.NewFlagSet("drawrdf", flag.ContinueOnError), nil); err == nil {
		Te.Errorf("a bad environment should fail")
	}
}

var _ chemplot.Displayer = (*fakeDisplay)(nil)
