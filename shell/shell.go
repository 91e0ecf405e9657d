/*
 * shell.go, part of drawrdf.
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

// Package shell extracts the first solvation shell from radial
// distribution functions and coordination numbers.
package shell

import (
	"errors"
	"fmt"
	"math"

	"github.com/maorshutman/lm"
	"github.com/rmera/drawrdf/xvg"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

var (
	ErrNoPeak    = errors.New("no peak found")
	ErrNoMinimum = errors.New("no minimum found")
	ErrOutside   = errors.New("distance outside the curve")
)

// Peak is a maximum of a radial distribution function.
type Peak struct {
	Index   int     //index of the raw maximum in the data
	R       float64 //position
	Height  float64
	Width   float64 //standard deviation of the fitted Gaussian, 0 if not refined
	Refined bool    //true if R and Height come from the Gaussian fit
}

func (P Peak) String() string {
	if P.Refined {
		return fmt.Sprintf("r=%.4f g=%.4f (fit, sigma %.4f)", P.R, P.Height, P.Width)
	}
	return fmt.Sprintf("r=%.4f g=%.4f", P.R, P.Height)
}

// FirstPeak returns the first local maximum of y that reaches at least half
// of the global maximum. The position and height are refined with a Gaussian
// fitted to the points around the maximum that are above half its height.
// If the fit fails, or places the peak outside those points, the raw maximum
// is returned, with Refined false.
func FirstPeak(x, y []float64) (Peak, error) {
	if len(x) != len(y) {
		return Peak{}, fmt.Errorf("shell.FirstPeak: %d x values and %d y values", len(x), len(y))
	}
	if len(y) < 3 {
		return Peak{}, fmt.Errorf("shell.FirstPeak: %w: only %d points", ErrNoPeak, len(y))
	}
	top := floats.Max(y)
	if top <= 0 {
		return Peak{}, fmt.Errorf("shell.FirstPeak: %w: the curve is never positive", ErrNoPeak)
	}
	idx := floats.MaxIdx(y)
	for i := 1; i < len(y)-1; i++ {
		if y[i] >= top/2 && y[i] > y[i-1] && y[i] >= y[i+1] {
			idx = i
			break
		}
	}
	P := Peak{Index: idx, R: x[idx], Height: y[idx]}
	lo, hi := idx, idx
	for lo > 0 && y[lo-1] >= P.Height/2 {
		lo--
	}
	for hi < len(y)-1 && y[hi+1] >= P.Height/2 {
		hi++
	}
	if hi-lo+1 < 3 {
		return P, nil
	}
	mu, a, sigma, ok := fitGaussian(x[lo:hi+1], y[lo:hi+1], P)
	if !ok || mu < x[lo] || mu > x[hi] {
		return P, nil
	}
	P.R, P.Height, P.Width, P.Refined = mu, a, sigma, true
	return P, nil
}

func gaussian(x, a, mu, sigma float64) float64 {
	d := (x - mu) / sigma
	return a * math.Exp(-d*d/2)
}

// fitGaussian fits a*exp(-(x-mu)^2/2sigma^2) to the points, starting
// from the raw peak.
func fitGaussian(x, y []float64, raw Peak) (mu, a, sigma float64, ok bool) {
	res := func(dst, params []float64) {
		for i := range x {
			dst[i] = gaussian(x[i], params[0], params[1], params[2]) - y[i]
		}
	}
	//a Gaussian is at half height 1.1774 sigma away from its center
	s0 := (x[len(x)-1] - x[0]) / (2 * 1.1774)
	if s0 <= 0 {
		return 0, 0, 0, false
	}
	nj := &lm.NumJac{Func: res}
	problem := lm.LMProblem{
		Dim:        3,
		Size:       len(x),
		Func:       res,
		Jac:        nj.Jac,
		InitParams: []float64{raw.Height, raw.R, s0},
		Tau:        1e-6,
		Eps1:       1e-8,
		Eps2:       1e-8,
	}
	result, err := lm.LM(problem, &lm.Settings{Iterations: 100, ObjectiveTol: 1e-16})
	if err != nil || len(result.X) != 3 {
		return 0, 0, 0, false
	}
	a, mu, sigma = result.X[0], result.X[1], math.Abs(result.X[2])
	for _, v := range []float64{a, mu, sigma} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, 0, false
		}
	}
	return mu, a, sigma, a > 0 && sigma > 0
}

// FirstMinimum returns the index of the first local minimum of y after
// index from. A minimum at the last point doesn't count, as the curve
// may keep going down.
func FirstMinimum(x, y []float64, from int) (int, error) {
	if len(x) != len(y) {
		return -1, fmt.Errorf("shell.FirstMinimum: %d x values and %d y values", len(x), len(y))
	}
	if from < 0 {
		from = 0
	}
	for i := from + 1; i < len(y)-1; i++ {
		if y[i] < y[i-1] && y[i] <= y[i+1] {
			return i, nil
		}
	}
	return -1, fmt.Errorf("shell.FirstMinimum: %w after r=%g", ErrNoMinimum, x[min(from, len(x)-1)])
}

// CoordinationAt returns the value of the coordination number curve cn at
// distance r, interpolating linearly between points.
func CoordinationAt(cn *xvg.Curve, r float64) (float64, error) {
	if cn.Len() < 2 {
		return 0, fmt.Errorf("shell.CoordinationAt: curve %s has %d points", cn.Name(), cn.Len())
	}
	lo, hi := cn.XRange()
	if r < lo || r > hi {
		return 0, fmt.Errorf("shell.CoordinationAt: %w: %g not in [%g, %g] for %s", ErrOutside, r, lo, hi, cn.Name())
	}
	for i := 1; i < len(cn.X); i++ {
		if cn.X[i] <= cn.X[i-1] {
			return 0, fmt.Errorf("shell.CoordinationAt: curve %s: x values are not increasing at point %d", cn.Name(), i)
		}
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(cn.X, cn.Y); err != nil {
		return 0, fmt.Errorf("shell.CoordinationAt: %w", err)
	}
	return pl.Predict(r), nil
}
