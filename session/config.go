/*
 * config.go, part of drawrdf.
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
	"flag"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rmera/drawrdf/chemplot"
)

// Palettes that can be given in Config.Palette.
const (
	PaletteDefault = "default"
	PaletteHue     = "hue"
)

// Config holds the settings a session starts with.
type Config struct {
	DPI            int      `env:"DRAWRDF_DPI"             envDefault:"300"`
	Styles         []string `env:"DRAWRDF_STYLES"          envDefault:"./style/no-latex.mplstyle,./style/my.mplstyle" envSeparator:","`
	Output         string   `env:"DRAWRDF_OUTPUT"          envDefault:"./draw.png"`
	XMin           float64  `env:"DRAWRDF_XMIN"            envDefault:"0"`
	XMax           float64  `env:"DRAWRDF_XMAX"            envDefault:"1"`
	Legend         bool     `env:"DRAWRDF_LEGEND"`
	LegendPosition string   `env:"DRAWRDF_LEGEND_POSITION" envDefault:"best"`
	Stride         int      `env:"DRAWRDF_STRIDE"          envDefault:"1"`
	AutoRange      bool     `env:"DRAWRDF_AUTORANGE"`
	Palette        string   `env:"DRAWRDF_PALETTE"         envDefault:"default"`
	GnuplotDebug   bool     `env:"DRAWRDF_GNUPLOT_DEBUG"`
	Files          []string //preloaded, from the positional arguments
}

// ParseConfig reads the environment, and then the flags in args, into a
// Config. Flags win over the environment.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.IntVar(&cfg.DPI, "dpi", cfg.DPI, "resolution of saved raster images")
	fs.Func("styles", "comma separated list of style sheets (default "+strings.Join(cfg.Styles, ",")+")", func(s string) error {
		cfg.Styles = splitList(s)
		return nil
	})
	fs.StringVar(&cfg.Output, "o", cfg.Output, "default path of saved images")
	fs.Float64Var(&cfg.XMin, "xmin", cfg.XMin, "lower limit of the x axis, in nm")
	fs.Float64Var(&cfg.XMax, "xmax", cfg.XMax, "upper limit of the x axis, in nm")
	fs.BoolVar(&cfg.Legend, "legend", cfg.Legend, "draw the legend")
	fs.StringVar(&cfg.LegendPosition, "legend-position", cfg.LegendPosition, "one of: "+strings.Join(chemplot.PositionNames(), ", "))
	fs.IntVar(&cfg.Stride, "stride", cfg.Stride, "read one of every stride data rows")
	fs.BoolVar(&cfg.AutoRange, "autorange", cfg.AutoRange, "use the x range common to all curves")
	fs.StringVar(&cfg.Palette, "palette", cfg.Palette, "colors for the curves: default or hue")
	fs.BoolVar(&cfg.GnuplotDebug, "gnuplot-debug", cfg.GnuplotDebug, "echo the commands sent to gnuplot")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Files = fs.Args()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings that can't be fixed later from the menu.
func (c Config) Validate() error {
	if c.DPI < 1 || c.DPI > chemplot.MaxDPI {
		return fmt.Errorf("dpi: %w: %d", chemplot.ErrDPI, c.DPI)
	}
	if c.Stride < 1 {
		return fmt.Errorf("stride must be positive, got %d", c.Stride)
	}
	if _, err := chemplot.ParseLegendPosition(c.LegendPosition); err != nil {
		return fmt.Errorf("legend position: %w", err)
	}
	if c.Palette != PaletteDefault && c.Palette != PaletteHue {
		return fmt.Errorf("palette must be %s or %s, got %q", PaletteDefault, PaletteHue, c.Palette)
	}
	if !c.AutoRange && !(c.XMin < c.XMax) {
		return fmt.Errorf("x range: %w: (%g, %g)", chemplot.ErrRange, c.XMin, c.XMax)
	}
	return nil
}

func splitList(s string) []string {
	var ret []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			ret = append(ret, v)
		}
	}
	return ret
}
