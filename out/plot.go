// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/gshipman/flecsale/topo"
)

// PlotWriter renders density and pressure against the cell's
// x-coordinate and saves a PNG, for a quick look at a 1D-like cut
// (Sod/Noh scenarios are naturally 1D profiles along x). Grounded on
// out/plot.go's Show(): plt.Subplot/plt.Plot/plt.Gll/plt.Title then
// plt.Save, here driven directly from a Snapshot instead of a
// TseriesR-backed subplot registry.
type PlotWriter struct {
	Topology *topo.Topology
	Prefix   string
	DirOut   string
}

func (w *PlotWriter) Write(step int, t float64, snap Snapshot) error {
	dir := w.DirOut
	if dir == "" {
		dir = "."
	}
	x := make([]float64, len(snap.Coords))
	for i, c := range snap.Coords {
		x[i] = c[0]
	}

	plt.Subplot(2, 1, 1)
	plt.Plot(x, snap.Density, "'b.'")
	plt.Gll("x", "density", "")
	plt.Title(utl.Sf("%s step %d, t=%g", w.Prefix, step, t), "")

	plt.Subplot(2, 1, 2)
	plt.Plot(x, snap.Pressure, "'r.'")
	plt.Gll("x", "pressure", "")

	fn := utl.Sf("%s_%06d.png", w.Prefix, step)
	plt.SaveD(dir, fn)
	return nil
}
