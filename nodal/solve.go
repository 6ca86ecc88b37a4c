// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nodal

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/gshipman/flecsale/bc"
	"github.com/gshipman/flecsale/geocache"
	"github.com/gshipman/flecsale/para"
	"github.com/gshipman/flecsale/topo"
)

// minPivot is the determinant floor below which the per-vertex system
// is declared singular.
const minPivot = 1e-13

// SolveVertices solves every vertex's system
//
//	M_v = Σ_{cn∋v} M_cn
//	b_v = Σ_{cn∋v} ( p_c·N_cn + M_cn·u_c )
//
// applying the three boundary-condition kinds, and
// returns the nodal velocity indexed by vertex id. cellP and cellVel
// are indexed by cell id. Vertices are independent once corner
// assembly has completed, so the solve runs data-parallel over
// vertices.
func SolveVertices(t *topo.Topology, g *geocache.Cache, corners []Corner, cellP []float64, cellVel [][]float64, bcMap bc.Map, time float64) ([][]float64, error) {
	ndim := t.Ndim
	out := make([][]float64, t.NumVerts())
	errs := make([]error, t.NumVerts())

	para.Run(t.NumVerts(), func(v int) {
		if t.IsBoundaryVertex(v) {
			if velCond, ok := findVelocityCond(t, bcMap, v); ok {
				out[v] = velCond.Velocity.At(time, t.Coords[v])
				return
			}
		}

		Mv := la.MatAlloc(ndim, ndim)
		bv := make([]float64, ndim)
		for _, cn := range t.CornersOfVertex(v) {
			c := corners[cn]
			cell := t.Corners[cn].Cell
			for i := 0; i < ndim; i++ {
				for j := 0; j < ndim; j++ {
					Mv[i][j] += c.M[i][j]
				}
			}
			Mu := make([]float64, ndim)
			la.MatVecMul(Mu, 1, c.M, cellVel[cell])
			for i := 0; i < ndim; i++ {
				bv[i] += cellP[cell]*c.N[i] + Mu[i]
			}
		}

		sByTag := map[int][]float64{}
		if t.IsBoundaryVertex(v) {
			for _, w := range t.WedgesOfVertex(v) {
				f := t.WedgeFace(w)
				if !t.IsBoundaryFace(f) {
					continue
				}
				l := g.WedgeFacetArea[w]
				n := g.WedgeFacetNormal[w]
				x := g.WedgeFacetCentroid[w]
				for tag := range t.Faces[f].Tags {
					cond, err := bcMap.Get(tag)
					if err != nil {
						errs[v] = err
						return
					}
					switch cond.Kind {
					case bc.Pressure:
						pbc := cond.Pressure.F(time, x)
						for i := 0; i < ndim; i++ {
							bv[i] -= l * pbc * n[i]
						}
					case bc.Symmetry:
						s, ok := sByTag[tag]
						if !ok {
							s = make([]float64, ndim)
						}
						for i := 0; i < ndim; i++ {
							s[i] += l * n[i]
						}
						sByTag[tag] = s
					}
				}
			}
		}

		u, err := solveVertexSystem(Mv, bv, sByTag, ndim)
		if err != nil {
			errs[v] = chk.Err("nodal: vertex %d: %v\n", v, err)
			return
		}
		out[v] = u
	})

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// solveVertexSystem solves the D×D SPD system directly when there are
// no symmetry constraints, or the (D+k)×(D+k) saddle-point system
//
//	[ M_v   Sᵀ ] [ u_v ]   [ b_v ]
//	[ S     0  ] [ λ   ] = [ 0   ]
//
// by Gaussian elimination on the augmented matrix, via gosl/la's dense
// MatInv (there is no QR/least-squares type in that package, so the
// saddle-point system is solved by direct inversion rather than a
// rank-revealing factorisation). k is len(sByTag); each map entry is
// one symmetry tag's accumulated constraint row s_tag = Σ ℓ_w n_w.
func solveVertexSystem(Mv [][]float64, bv []float64, sByTag map[int][]float64, ndim int) ([]float64, error) {
	k := len(sByTag)
	n := ndim + k
	A := la.MatAlloc(n, n)
	rhs := make([]float64, n)
	for i := 0; i < ndim; i++ {
		copy(A[i][:ndim], Mv[i])
		rhs[i] = bv[i]
	}
	row := ndim
	for _, s := range sByTag {
		for j := 0; j < ndim; j++ {
			A[row][j] = s[j]
			A[j][row] = s[j]
		}
		row++
	}

	Ainv := la.MatAlloc(n, n)
	_, err := la.MatInv(Ainv, A, minPivot)
	if err != nil {
		return nil, err
	}
	x := make([]float64, n)
	la.MatVecMul(x, 1, Ainv, rhs)
	return x[:ndim], nil
}

// findVelocityCond reports the velocity condition (if any) carried by
// one of v's incident boundary faces. A velocity condition on any tag
// at v takes priority over pressure/symmetry: if any tag on v carries
// one, u_v is set directly to u_bc(x_v,t) and assembly is skipped.
func findVelocityCond(t *topo.Topology, bcMap bc.Map, v int) (*bc.Cond, bool) {
	for _, f := range t.FacesOfVertex(v) {
		if !t.IsBoundaryFace(f) {
			continue
		}
		for tag := range t.Faces[f].Tags {
			if cond, err := bcMap.Get(tag); err == nil && cond.Kind == bc.Velocity {
				return cond, true
			}
		}
	}
	return nil, false
}
