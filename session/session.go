/*
 * session.go, part of drawrdf.
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

// Package session runs the interactive drawrdf prompt: it asks for
// XVG files, and then lets the user tune, draw and save the figure.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/rmera/drawrdf/chemplot"
	"github.com/rmera/drawrdf/xvg"
)

// errInput means the input ended in the middle of a question.
var errInput = errors.New("unexpected end of input")

const intro = "Draw radial distribution function or coordination number curve from xvg file produced by gromacs"

// Session is one run of the interactive prompt.
type Session struct {
	in      *bufio.Scanner
	out     io.Writer
	log     *log.Logger
	display chemplot.Displayer

	opts    *xvg.Options
	palette string
	group   *xvg.Group
	loaded  map[string]bool

	plot   chemplot.Config //Style is filled at each draw
	styles []string
	dpi    int
	output string
}

// New returns a session with the settings in cfg. Questions are read from in
// and everything meant for the user goes to out. logger gets the warnings,
// and can be nil. Figures are drawn on screen with d.
func New(cfg Config, in io.Reader, out io.Writer, logger *log.Logger, d chemplot.Displayer) *Session {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	pos, _ := chemplot.ParseLegendPosition(cfg.LegendPosition)
	opts := xvg.DefaultOptions()
	opts.Stride(cfg.Stride)
	dpi := cfg.DPI
	if dpi < 1 || dpi > chemplot.MaxDPI {
		dpi = chemplot.DefaultDPI
	}
	S := &Session{
		in:      bufio.NewScanner(in),
		out:     out,
		log:     logger,
		display: d,
		opts:    opts,
		palette: cfg.Palette,
		group:   xvg.NewGroup(),
		loaded:  make(map[string]bool),
		plot: chemplot.Config{
			Legend:    cfg.Legend,
			Position:  pos,
			XMin:      cfg.XMin,
			XMax:      cfg.XMax,
			AutoRange: cfg.AutoRange,
			Secondary: chemplot.Dashed,
		},
		styles: append([]string(nil), cfg.Styles...),
		dpi:    dpi,
		output: cfg.Output,
	}
	for _, f := range cfg.Files {
		S.load(f)
	}
	return S
}

// Group returns the curves loaded so far.
func (S *Session) Group() *xvg.Group { return S.group }

// DPI returns the resolution used to save pictures.
func (S *Session) DPI() int { return S.dpi }

// PlotConfig returns the current figure settings. The style is not included.
func (S *Session) PlotConfig() chemplot.Config { return S.plot }

// Styles returns the style sheets used for the next figure.
func (S *Session) Styles() []string { return append([]string(nil), S.styles...) }

// Run asks for files, and then shows the menu until the user quits, the
// input ends, or ctx is done.
func (S *Session) Run(ctx context.Context) error {
	fmt.Fprintf(S.out, "%s\n\n", intro)
	if err := S.readFiles(ctx); err != nil {
		return err
	}
	S.report()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		S.printMenu()
		line, ok := S.readLine()
		if !ok {
			return S.in.Err()
		}
		c, ok := ParseCommand(line)
		if !ok {
			fmt.Fprintln(S.out, "Wrong input, please enter again.")
			continue
		}
		err := menu[c].run(S)
		if errors.Is(err, errQuit) {
			return nil
		}
		if errors.Is(err, errInput) {
			return S.in.Err()
		}
		if err != nil {
			fmt.Fprintf(S.out, "Error: %v\n", err)
		}
	}
}

// readFiles asks for paths until the user enters 'q' with at least one
// curve loaded.
func (S *Session) readFiles(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, ok := S.ask("Please input the path of xvg file and enter 'q' to perform the next step.\n")
		if !ok {
			if err := S.in.Err(); err != nil {
				return err
			}
			if S.group.Count() == 0 {
				return fmt.Errorf("session: no curves loaded")
			}
			break
		}
		if line == "q" {
			if S.group.Count() > 0 {
				break
			}
			fmt.Fprintln(S.out, "No curve loaded yet.")
			continue
		}
		if line != "" {
			S.load(line)
		}
	}
	if S.palette == PaletteHue {
		all := S.group.All()
		//Only fails on a count mismatch, which can't happen here.
		_ = chemplot.AssignColors(all, chemplot.HuePalette(len(all)))
	}
	return nil
}

// load reads the file in path and adds its curve to the group. Problems are
// reported to the user, and the file is dropped.
func (S *Session) load(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		fmt.Fprintf(S.out, "%s is not a file\nPlease enter the path of file again.\n", path)
		return
	}
	if S.loaded[path] {
		fmt.Fprintf(S.out, "%s was already loaded.\n", path)
		return
	}
	C, err := xvg.Load(path, S.opts)
	if err != nil {
		var e *xvg.Error
		if errors.As(err, &e) && !e.Critical() {
			S.log.Printf("skipping %s: %v", path, err)
		}
		fmt.Fprintf(S.out, "Could not load %s: %v\n", path, err)
		return
	}
	S.loaded[path] = true
	S.group.Add(C)
}

// report prints how many curves of each kind were loaded.
func (S *Session) report() {
	fmt.Fprintln(S.out)
	for _, k := range S.group.Kinds() {
		name := k.Title()
		if name == "" {
			name = k.String()
		}
		fmt.Fprintf(S.out, "The number of %s curve: %d\n", name, len(S.group.Curves(k)))
	}
}

// figure composes the loaded curves with the current settings.
func (S *Session) figure() (*chemplot.Figure, error) {
	style, err := chemplot.LoadStyle(S.styles...)
	if err != nil {
		return nil, err
	}
	cfg := S.plot
	cfg.Style = style
	return chemplot.Compose(S.group, &cfg)
}

// ask prints the question and reads the answer.
func (S *Session) ask(question string) (string, bool) {
	fmt.Fprint(S.out, question)
	return S.readLine()
}

func (S *Session) readLine() (string, bool) {
	if !S.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(S.in.Text()), true
}
