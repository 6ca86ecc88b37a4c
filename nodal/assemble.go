// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package nodal is the arithmetic core of the solver: per-corner
// impedance assembly and the per-vertex SPD/saddle-point solve that
// produces the Lagrangian nodal velocity.
package nodal

import (
	"github.com/cpmech/gosl/la"

	"github.com/gshipman/flecsale/geocache"
	"github.com/gshipman/flecsale/para"
	"github.com/gshipman/flecsale/topo"
)

// Corner holds one corner's impedance matrix and geometric moment:
//
//	M_cn = Σ_w  z · ℓ_w · (n_w ⊗ n_w)      (D×D SPD)
//	N_cn = Σ_w  ℓ_w · n_w                  (D-vector)
//
// z = ρ_c·c_c is the cell's acoustic impedance.
type Corner struct {
	M [][]float64
	N []float64
}

// AssembleCorners computes every corner's (M_cn, N_cn) from the
// current wedge geometry and cell impedance. cellRho and cellC are
// indexed by cell id. Corners are independent of one another (each
// writes only its own slot), so assembly runs data-parallel over
// corners.
func AssembleCorners(t *topo.Topology, g *geocache.Cache, cellRho, cellC []float64) []Corner {
	ndim := t.Ndim
	out := make([]Corner, t.NumCorners())
	para.Run(t.NumCorners(), func(cn int) {
		cell := t.Corners[cn].Cell
		z := cellRho[cell] * cellC[cell]
		M := la.MatAlloc(ndim, ndim)
		N := make([]float64, ndim)
		for _, w := range t.WedgesOfCorner(cn) {
			l := g.WedgeFacetArea[w]
			n := g.WedgeFacetNormal[w]
			la.VecOuterAdd(M, z*l, n, n)
			for i := 0; i < ndim; i++ {
				N[i] += l * n[i]
			}
		}
		out[cn] = Corner{M: M, N: N}
	})
	return out
}
