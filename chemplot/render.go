/*
 * render.go, part of drawrdf.
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
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Formats returns the image formats Save and Render understand.
func Formats() []string {
	return []string{"png", "jpg", "jpeg", "tif", "tiff", "svg", "pdf", "eps"}
}

// Save writes the figure to path. The format is taken from the extension
// of path, and dpi is used for the raster formats.
func (F *Figure) Save(path string, dpi int) (err error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !isInString(Formats(), format) {
		return fmt.Errorf("chemplot.Save: %w: %q", ErrFormat, filepath.Ext(path))
	}
	if dpi < 1 || dpi > MaxDPI {
		return fmt.Errorf("chemplot.Save: %w: %d", ErrDPI, dpi)
	}
	if err := F.checkRender(format, dpi); err != nil {
		return fmt.Errorf("chemplot.Save: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("chemplot.Save: %w", err)
	}
	defer func() {
		if err2 := f.Close(); err2 != nil && err == nil {
			err = fmt.Errorf("chemplot.Save: %w", err2)
		}
	}()
	return F.Render(f, format, dpi)
}

// Render writes the figure to w in the given format (one of Formats).
func (F *Figure) Render(w io.Writer, format string, dpi int) error {
	c, err := F.canvas(strings.ToLower(format), dpi)
	if err != nil {
		return err
	}
	F.draw(draw.New(c))
	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("chemplot.Render: %w", err)
	}
	return nil
}

// canvasWriter is a vg canvas that can write itself out.
type canvasWriter interface {
	vg.CanvasSizer
	io.WriterTo
}

// The largest figure side, and the largest raster image, that can be drawn.
const (
	maxSide   = 200 * vg.Inch
	maxPixels = 1 << 26
)

// checkSize returns an error wrapping ErrSize unless both sides are
// positive, finite and no larger than maxSide.
func checkSize(w, h vg.Length) error {
	for _, v := range []vg.Length{w, h} {
		if !(v > 0) || v > maxSide {
			return fmt.Errorf("%w: %g x %g in", ErrSize, w/vg.Inch, h/vg.Inch)
		}
	}
	return nil
}

// checkRaster returns an error wrapping ErrDPI if a w x h figure would need
// more than maxPixels at the given resolution.
func checkRaster(w, h vg.Length, dpi int) error {
	if dpi < 1 || dpi > MaxDPI {
		return fmt.Errorf("%w: %d", ErrDPI, dpi)
	}
	px := math.Ceil(w.Dots(float64(dpi))) * math.Ceil(h.Dots(float64(dpi)))
	if px > maxPixels {
		return fmt.Errorf("%w: %d dpi gives a %.0f pixel image", ErrDPI, dpi, px)
	}
	return nil
}

// checkRender returns an error if the figure can't be drawn in format.
func (F *Figure) checkRender(format string, dpi int) error {
	w, h := F.style.Width, F.style.Height
	if err := checkSize(w, h); err != nil {
		return err
	}
	switch format {
	case "png", "jpg", "jpeg", "tif", "tiff":
		return checkRaster(w, h, dpi)
	}
	return nil
}

func (F *Figure) canvas(format string, dpi int) (canvasWriter, error) {
	if err := F.checkRender(format, dpi); err != nil {
		return nil, fmt.Errorf("chemplot.Render: %w", err)
	}
	w, h := F.style.Width, F.style.Height
	raster := func() *vgimg.Canvas {
		return vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi), vgimg.UseBackgroundColor(F.style.Background))
	}
	switch format {
	case "png":
		return vgimg.PngCanvas{Canvas: raster()}, nil
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: raster()}, nil
	case "tif", "tiff":
		return vgimg.TiffCanvas{Canvas: raster()}, nil
	case "svg":
		return vgsvg.New(w, h), nil
	case "pdf":
		return vgpdf.New(w, h), nil
	case "eps":
		return vgeps.New(w, h), nil
	}
	return nil, fmt.Errorf("chemplot.Render: %w: %q", ErrFormat, format)
}

// Draw draws the figure on c.
func (F *Figure) Draw(c draw.Canvas) {
	F.draw(c)
}

func (F *Figure) draw(c draw.Canvas) {
	if F.scale == nil {
		F.plot.Draw(c)
		return
	}
	pc := draw.Crop(c, 0, -F.rightMargin(), 0, 0)
	F.plot.Draw(pc)
	F.drawSecondaryAxis(c, F.plot.DataCanvas(pc))
}

// Space between tick marks, labels and the edge of the figure.
const axisPad = vg.Length(4)

// secondaryTicks returns the ticks of the right hand axis that fall in the
// plotted range, with their values in primary axis units.
func (F *Figure) secondaryTicks() []plot.Tick {
	a := F.scale
	lo := a.toSecondary(F.plot.Y.Min)
	hi := a.toSecondary(F.plot.Y.Max)
	ticks := plot.DefaultTicks{}.Ticks(lo, hi)
	ret := make([]plot.Tick, 0, len(ticks))
	for _, t := range ticks {
		if t.Value < lo || t.Value > hi {
			continue
		}
		ret = append(ret, plot.Tick{Value: a.toPrimary(t.Value), Label: t.Label})
	}
	return ret
}

// rightMargin is the room the secondary axis needs on the right of the plot.
func (F *Figure) rightMargin() vg.Length {
	ax := F.plot.Y
	var width vg.Length
	for _, t := range F.secondaryTicks() {
		if t.IsMinor() {
			continue
		}
		width = vg.Length(math.Max(float64(width), float64(ax.Tick.Label.Width(t.Label))))
	}
	return ax.Tick.Length + 3*axisPad + width + ax.Label.TextStyle.Height(F.y2label)
}

// drawSecondaryAxis draws the right hand y axis along the right edge of the
// data area da. c is the whole figure.
func (F *Figure) drawSecondaryAxis(c, da draw.Canvas) {
	ax := F.plot.Y
	_, trY := F.plot.Transforms(&da)
	x := da.Max.X
	da.StrokeLine2(ax.LineStyle, x, da.Min.Y, x, da.Max.Y)
	lsty := ax.Tick.Label
	lsty.XAlign = draw.XLeft
	lsty.YAlign = draw.YCenter
	lsty.Rotation = 0
	for _, t := range F.secondaryTicks() {
		y := trY(t.Value)
		l := ax.Tick.Length
		if t.IsMinor() {
			l /= 2
		}
		da.StrokeLine2(ax.Tick.LineStyle, x, y, x+l, y)
		if !t.IsMinor() {
			da.FillText(lsty, vg.Point{X: x + ax.Tick.Length + axisPad, Y: y}, t.Label)
		}
	}
	if F.y2label == "" {
		return
	}
	tsty := ax.Label.TextStyle
	tsty.Rotation = math.Pi / 2
	tsty.XAlign = draw.XCenter
	tsty.YAlign = draw.YBottom
	c.FillText(tsty, vg.Point{X: c.Max.X - axisPad, Y: da.Center().Y}, F.y2label)
}

func (a *axisScale) toSecondary(v float64) float64 {
	return a.smin + (v-a.pmin)*(a.smax-a.smin)/(a.pmax-a.pmin)
}

// Displayer shows a figure on the screen.
type Displayer interface {
	Display(F *Figure) error
}

var errNoDisplay = errors.New("no displayer given")

// Show displays the figure with d.
func (F *Figure) Show(d Displayer) error {
	if d == nil {
		return fmt.Errorf("chemplot.Show: %w", errNoDisplay)
	}
	return d.Display(F)
}

// ImageFile is a Displayer that renders each figure to a PNG file in Dir
// (the system temporary directory if empty), and prints the path of the
// file to Out.
type ImageFile struct {
	Dir string
	DPI int //DefaultDPI if zero
	Out io.Writer
}

// Display writes F to a new PNG file.
func (I *ImageFile) Display(F *Figure) (err error) {
	dpi := I.DPI
	if dpi == 0 {
		dpi = DefaultDPI
	}
	if err := F.checkRender("png", dpi); err != nil {
		return fmt.Errorf("chemplot.ImageFile: %w", err)
	}
	f, err := os.CreateTemp(I.Dir, "drawrdf-*.png")
	if err != nil {
		return fmt.Errorf("chemplot.ImageFile: %w", err)
	}
	defer func() {
		if err2 := f.Close(); err2 != nil && err == nil {
			err = fmt.Errorf("chemplot.ImageFile: %w", err2)
		}
		if err != nil {
			os.Remove(f.Name())
		}
	}()
	if err := F.Render(f, "png", dpi); err != nil {
		return err
	}
	if I.Out != nil {
		fmt.Fprintf(I.Out, "Picture written to %s\n", f.Name())
	}
	return nil
}
