/*
 * commands.go, part of drawrdf.
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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rmera/drawrdf/chemplot"
	"github.com/rmera/drawrdf/shell"
)

// Command is an entry of the main menu.
type Command int

const (
	ToggleLegend Command = iota
	SetDPI
	SetColors
	EditStyles
	SetLegends
	SetPosition
	SetRange
	Summary
	Draw
	Save
	Quit
)

// errQuit ends the menu loop.
var errQuit = errors.New("quit")

type action struct {
	key   string
	label func(S *Session) string
	run   func(S *Session) error
}

// menu is indexed by Command.
var menu = []action{
	ToggleLegend: {"0", (*Session).legendLabel, (*Session).toggleLegend},
	SetDPI:       {"1", (*Session).dpiLabel, (*Session).setDPI},
	SetColors:    {"2", (*Session).colorsLabel, (*Session).setColors},
	EditStyles:   {"3", (*Session).stylesLabel, (*Session).editStyles},
	SetLegends:   {"4", (*Session).legendsLabel, (*Session).setLegends},
	SetPosition:  {"5", (*Session).positionLabel, (*Session).setPosition},
	SetRange:     {"6", (*Session).rangeLabel, (*Session).setRange},
	Summary:      {"i", fixed("Show the first solvation shell"), (*Session).summary},
	Draw:         {"d", fixed("Start to draw picture"), (*Session).draw},
	Save:         {"s", fixed("Save the picture"), (*Session).save},
	Quit:         {"q", fixed("Exit program"), func(*Session) error { return errQuit }},
}

func fixed(s string) func(*Session) string {
	return func(*Session) string { return s }
}

// ParseCommand returns the Command for a menu key, and false
// if there is none.
func ParseCommand(key string) (Command, bool) {
	key = strings.TrimSpace(key)
	for i, a := range menu {
		if a.key == key {
			return Command(i), true
		}
	}
	return -1, false
}

// Key returns the menu key for the command.
func (C Command) Key() string {
	if C < 0 || int(C) >= len(menu) {
		return ""
	}
	return menu[C].key
}

func (S *Session) printMenu() {
	for _, a := range menu {
		fmt.Fprintf(S.out, "%s  %s\n", a.key, a.label(S))
	}
}

func (S *Session) legendLabel() string {
	return fmt.Sprintf("Whether to turn on the legend: %t", S.plot.Legend)
}

func (S *Session) toggleLegend() error {
	S.plot.Legend = !S.plot.Legend
	return nil
}

func (S *Session) dpiLabel() string {
	return fmt.Sprintf("The dpi of output picture: %d", S.dpi)
}

func (S *Session) setDPI() error {
	line, ok := S.ask("The dpi of picture.\n")
	if !ok {
		return errInput
	}
	d, err := chemplot.ParseDPI(line)
	if err != nil {
		fmt.Fprintf(S.out, "Invalid input. Use default value: %d.\n", d)
	}
	S.dpi = d
	return nil
}

func (S *Session) colorsLabel() string {
	cs := make([]string, 0, S.group.Count())
	for _, c := range S.group.All() {
		if c.Color == nil {
			cs = append(cs, "auto")
			continue
		}
		cs = append(cs, chemplot.Hex(c.Color))
	}
	return "The color of curve in output picture: " + strings.Join(cs, ", ")
}

func (S *Session) setColors() error {
	for _, c := range S.group.All() {
		line, ok := S.ask(fmt.Sprintf("Please enter the hexadecimal color code for %s\nFor example: #0C5DA5\n", c.Name()))
		if !ok {
			return errInput
		}
		col, err := chemplot.ParseColor(line)
		if err != nil {
			fmt.Fprintf(S.out, "Invalid color %q. The color of %s is unchanged.\n", line, c.Name())
			continue
		}
		c.Color = col
	}
	return nil
}

func (S *Session) stylesLabel() string {
	return "The path of style sheets: " + strings.Join(S.styles, ", ")
}

func (S *Session) editStyles() error {
	line, ok := S.ask("Enter one path of style sheets\nIf input del, delete the last style sheet\n")
	if !ok {
		return errInput
	}
	switch {
	case line == "del" && len(S.styles) == 0:
		fmt.Fprintln(S.out, "There is no style sheet to delete.")
	case line == "del":
		S.styles = S.styles[:len(S.styles)-1]
	case line != "":
		S.styles = append(S.styles, line)
	}
	return nil
}

func (S *Session) legendsLabel() string {
	ls := make([]string, 0, S.group.Count())
	for _, c := range S.group.All() {
		if c.Legend == "" {
			ls = append(ls, "None")
			continue
		}
		ls = append(ls, c.Legend)
	}
	return "The label of curves: " + strings.Join(ls, " \\ ")
}

func (S *Session) setLegends() error {
	S.plot.Legend = true
	for _, c := range S.group.All() {
		line, ok := S.ask(fmt.Sprintf("Please enter the label for %s\n", c.Name()))
		if !ok {
			return errInput
		}
		c.Legend = line
	}
	return nil
}

func (S *Session) positionLabel() string {
	return "The position of label: " + S.plot.Position.String()
}

func (S *Session) setPosition() error {
	line, ok := S.ask("Please enter the position of legend, you can enter the following values.\n" +
		strings.Join(chemplot.PositionNames(), ", ") + "\n")
	if !ok {
		return errInput
	}
	p, err := chemplot.ParseLegendPosition(line)
	if err != nil {
		fmt.Fprintf(S.out, "Invalid input. Use default value: %s.\n", p)
	}
	S.plot.Position = p
	return nil
}

func (S *Session) rangeLabel() string {
	if S.plot.AutoRange {
		return "The range of x-axis: common to all curves"
	}
	return fmt.Sprintf("The range of x-axis: (%g,%g)", S.plot.XMin, S.plot.XMax)
}

func (S *Session) setRange() error {
	line, ok := S.ask("Please enter the range of x-axis separated by spaces.\nFor example 0 10\n")
	if !ok {
		return errInput
	}
	f := strings.Fields(line)
	if len(f) != 2 {
		fmt.Fprintln(S.out, "Invalid input. The range is unchanged.")
		return nil
	}
	lo, err1 := strconv.ParseFloat(f[0], 64)
	hi, err2 := strconv.ParseFloat(f[1], 64)
	if err1 != nil || err2 != nil || !(lo < hi) {
		fmt.Fprintln(S.out, "Invalid input. The range is unchanged.")
		return nil
	}
	S.plot.XMin, S.plot.XMax = lo, hi
	S.plot.AutoRange = false
	return nil
}

func (S *Session) summary() error {
	sums, err := shell.Summarize(S.group)
	if err != nil {
		return err
	}
	for _, s := range sums {
		fmt.Fprintln(S.out, s)
	}
	return nil
}

func (S *Session) draw() error {
	F, err := S.figure()
	if err != nil {
		return err
	}
	return F.Show(S.display)
}

func (S *Session) save() error {
	line, ok := S.ask(fmt.Sprintf("Please enter the path of output picture.\n"+
		"If you want to use the default path (%s), just press enter.\n"+
		"Picture formats: %s\n", S.output, strings.Join(chemplot.Formats(), ", ")))
	if !ok {
		return errInput
	}
	if line != "" {
		S.output = line
	}
	line, ok = S.ask(fmt.Sprintf("Please enter the dpi of picture, or press enter to keep %d.\n", S.dpi))
	if !ok {
		return errInput
	}
	if line != "" {
		d, err := chemplot.ParseDPI(line)
		if err != nil {
			fmt.Fprintf(S.out, "Invalid input. The dpi is unchanged: %d.\n", S.dpi)
		} else {
			S.dpi = d
		}
	}
	F, err := S.figure()
	if err != nil {
		return err
	}
	if err := F.Save(S.output, S.dpi); err != nil {
		return err
	}
	fmt.Fprintf(S.out, "Picture saved to %s\n", S.output)
	return nil
}
