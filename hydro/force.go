// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package hydro advances the conserved cell quantities once a time step's
// nodal velocities are known: subcell forces, the conservative cell
// update, and CFL time-step control.
package hydro

import (
	"github.com/cpmech/gosl/la"

	"github.com/gshipman/flecsale/nodal"
	"github.com/gshipman/flecsale/para"
	"github.com/gshipman/flecsale/topo"
)

// Subcell computes every corner's force
//
//	F_cn = p_c·N_cn + M_cn·(u_c − u_v)
//
// from the cell pressure, the cell-centred velocity used by the
// corner's own impedance matrix, and the vertex velocity just produced
// by nodal.SolveVertices. Corners are independent, so
// this runs data-parallel.
func Subcell(t *topo.Topology, corners []nodal.Corner, cellP []float64, cellVel, vertVel [][]float64) [][]float64 {
	ndim := t.Ndim
	out := make([][]float64, t.NumCorners())
	para.Run(t.NumCorners(), func(cn int) {
		c := corners[cn]
		cell := t.Corners[cn].Cell
		v := t.Corners[cn].Vertex
		du := make([]float64, ndim)
		for i := 0; i < ndim; i++ {
			du[i] = cellVel[cell][i] - vertVel[v][i]
		}
		Mdu := make([]float64, ndim)
		la.MatVecMul(Mdu, 1, c.M, du)
		f := make([]float64, ndim)
		for i := 0; i < ndim; i++ {
			f[i] = cellP[cell]*c.N[i] + Mdu[i]
		}
		out[cn] = f
	})
	return out
}

// VolumeRate computes each cell's dV/dt = Σ_cn N_cn·u_v,
// the rate at which the mesh's own motion would change a cell's volume
// under the just-solved nodal velocity field. The volumetric CFL
// limiter (cfl.go) consumes this, evaluated at the same
// nodal-velocity snapshot as the forces.
func VolumeRate(t *topo.Topology, corners []nodal.Corner, vertVel [][]float64) []float64 {
	ndim := t.Ndim
	out := make([]float64, t.NumCells())
	para.Run(t.NumCells(), func(cell int) {
		var dv float64
		for _, cn := range t.CornersOfCell(cell) {
			N := corners[cn].N
			v := t.Corners[cn].Vertex
			uv := vertVel[v]
			for i := 0; i < ndim; i++ {
				dv += N[i] * uv[i]
			}
		}
		out[cell] = dv
	})
	return out
}
