// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import (
	"github.com/cpmech/gosl/chk"

	"github.com/gshipman/flecsale/config"
	"github.com/gshipman/flecsale/eos"
	"github.com/gshipman/flecsale/geocache"
	"github.com/gshipman/flecsale/hydro"
	"github.com/gshipman/flecsale/topo"
)

// InitCells builds every cell's starting conserved and primitive state
// from the topology's own regions and the matching config.
// InitialCondition (`ics`, recorded here as a uniform
// per-region (ρ,u,p) triple rather than an (x,t) closure — see
// config.InitialCondition's doc comment), closing pressure into
// specific energy through model. A region with no matching
// InitialCondition is a fatal configuration error.
func InitCells(t *topo.Topology, g *geocache.Cache, ics []config.InitialCondition, model eos.Model) ([]hydro.Cell, error) {
	byRegion := make(map[int]config.InitialCondition, len(ics))
	for _, ic := range ics {
		byRegion[ic.Region] = ic
	}

	cells := make([]hydro.Cell, t.NumCells())
	for c := range cells {
		region := t.Cells[c].Region
		ic, ok := byRegion[region]
		if !ok {
			return nil, chk.Err("driver: cell %d (region %d) has no matching initial condition\n", c, region)
		}
		e, snd, gamma, err := model.UpdateFromPressure(ic.Rho, ic.P)
		if err != nil {
			return nil, chk.Err("driver: region %d initial condition: %v\n", region, err)
		}
		vel := append([]float64(nil), ic.Vel...)
		vol := g.CellVol[c]
		mass := ic.Rho * vol
		mom := make([]float64, t.Ndim)
		var speed2 float64
		for i := 0; i < t.Ndim; i++ {
			mom[i] = mass * vel[i]
			speed2 += vel[i] * vel[i]
		}
		cells[c] = hydro.Cell{
			Mass:     mass,
			Momentum: mom,
			TotalE:   mass * (e + 0.5*speed2),
			Vol:      vol,
			Rho:      ic.Rho,
			Vel:      vel,
			E:        e,
			P:        ic.P,
			C:        snd,
			Gamma:    gamma,
		}
	}
	return cells, nil
}
