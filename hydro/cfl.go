// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hydro

import (
	"math"
	"runtime"

	"github.com/gshipman/flecsale/topo"
)

// Limiter names which of the three CFL rules bound a step; it is
// carried only for reporting.
type Limiter int

const (
	Acoustic Limiter = iota
	Volumetric
	Growth
)

func (l Limiter) String() string {
	switch l {
	case Acoustic:
		return "acoustic"
	case Volumetric:
		return "volumetric"
	case Growth:
		return "growth"
	}
	return "unknown"
}

// StepSize picks Δt^{n+1} as the smallest of three limiters:
//
//	Δt_a = CFLa · min_c L_c/c_c
//	Δt_v = CFLv · min_c V_c/|dV_c/dt|   (cells with dV/dt == 0 excluded)
//	Δt_g = (1+CFLg) · Δt^n
//
// Ties favor the acoustic limiter, then the volumetric one, then
// growth. minLength and soundSpeed come from geocache/hydro.Cell at
// the current stage; dVoldt from VolumeRate evaluated at the same
// nodal velocity. The two reductions run one goroutine per
// GOMAXPROCS, each folding its own stripe to a partial extremum and
// reporting it over a channel, following the setTstep/calcCFL
// reduction in the retrieved inmap solver.
func StepSize(t *topo.Topology, minLength, soundSpeed, vol, dVoldt []float64, prevDt, cflAcoustic, cflVolume, cflGrowth float64) (float64, Limiter) {
	dtA := stripedMin(t.NumCells(), func(c int) (float64, bool) {
		if soundSpeed[c] <= 0 {
			return 0, false
		}
		return minLength[c] / soundSpeed[c], true
	})
	dtA *= cflAcoustic

	dtV := stripedMin(t.NumCells(), func(c int) (float64, bool) {
		if dVoldt[c] == 0 {
			return 0, false
		}
		return vol[c] / math.Abs(dVoldt[c]), true
	})
	dtV *= cflVolume

	dtG := (1 + cflGrowth) * prevDt

	dt, limiter := dtA, Acoustic
	if dtV < dt {
		dt, limiter = dtV, Volumetric
	}
	if dtG < dt {
		dt, limiter = dtG, Growth
	}
	return dt, limiter
}

// stripedMin reduces f(i) over [0,n) to its minimum across interleaved
// goroutine stripes, skipping indices where f reports !ok.
func stripedMin(n int, f func(i int) (float64, bool)) float64 {
	nprocs := runtime.GOMAXPROCS(0)
	if nprocs > n {
		nprocs = n
	}
	if nprocs <= 1 {
		min := math.Inf(1)
		for i := 0; i < n; i++ {
			if v, ok := f(i); ok && v < min {
				min = v
			}
		}
		return min
	}

	partial := make(chan float64)
	for procNum := 0; procNum < nprocs; procNum++ {
		go func(procNum int) {
			min := math.Inf(1)
			for i := procNum; i < n; i += nprocs {
				if v, ok := f(i); ok && v < min {
					min = v
				}
			}
			partial <- min
		}(procNum)
	}
	min := math.Inf(1)
	for p := 0; p < nprocs; p++ {
		if v := <-partial; v < min {
			min = v
		}
	}
	return min
}
