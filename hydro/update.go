// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hydro

import (
	"github.com/cpmech/gosl/chk"

	"github.com/gshipman/flecsale/eos"
	"github.com/gshipman/flecsale/topo"
)

// Cell holds one cell's conserved quantities (Mass, Momentum, TotalE)
// together with the primitive state (Rho, Vel, E, P, C, Gamma) the EOS
// derives from them. Mass never changes after construction; Update advances Momentum and TotalE and
// re-derives everything else.
type Cell struct {
	Mass     float64
	Momentum []float64
	TotalE   float64 // M·(e + ½|u|²)

	Vol   float64
	Rho   float64
	Vel   []float64
	E     float64
	P     float64
	C     float64
	Gamma float64
}

// Update advances every cell by one stage of size dt:
//
//	d(Mu)/dt = −Σ_cn F_cn
//	d(ME)/dt = −Σ_cn F_cn·u_v
//	(Mu)^{n+1} = (Mu)^n + dt·d(Mu)/dt
//	(ME)^{n+1} = (ME)^n + dt·d(ME)/dt
//
// then closes the cell at its new mesh volume: ρ = M/V, u = (Mu)/M,
// e = (ME)/M − ½|u|², with p and c supplied by model. vol is the
// cell's volume after this stage's mesh motion has already been
// applied, not the volume the forces above were computed against.
func Update(t *topo.Topology, forces [][]float64, vertVel [][]float64, cells []Cell, vol []float64, dt float64, model eos.Model) error {
	ndim := t.Ndim
	errs := make([]error, t.NumCells())
	for cell := 0; cell < t.NumCells(); cell++ {
		dMom := make([]float64, ndim)
		var dE float64
		for _, cn := range t.CornersOfCell(cell) {
			f := forces[cn]
			v := t.Corners[cn].Vertex
			uv := vertVel[v]
			for i := 0; i < ndim; i++ {
				dMom[i] -= f[i]
				dE -= f[i] * uv[i]
			}
		}

		cl := &cells[cell]
		for i := 0; i < ndim; i++ {
			cl.Momentum[i] += dt * dMom[i]
		}
		cl.TotalE += dt * dE

		cl.Vol = vol[cell]
		if cl.Vol <= 0 {
			errs[cell] = chk.Err("hydro: cell %d collapsed to non-positive volume %g\n", cell, cl.Vol)
			continue
		}
		cl.Rho = cl.Mass / cl.Vol

		if len(cl.Vel) != ndim {
			cl.Vel = make([]float64, ndim)
		}
		var speed2 float64
		for i := 0; i < ndim; i++ {
			cl.Vel[i] = cl.Momentum[i] / cl.Mass
			speed2 += cl.Vel[i] * cl.Vel[i]
		}
		cl.E = cl.TotalE/cl.Mass - 0.5*speed2

		p, c, gamma, err := model.UpdateFromEnergy(cl.Rho, cl.E)
		if err != nil {
			errs[cell] = chk.Err("hydro: cell %d: %v\n", cell, err)
			continue
		}
		cl.P, cl.C, cl.Gamma = p, c, gamma
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
