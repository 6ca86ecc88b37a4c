// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package driver runs the predictor-corrector time loop, coupling the
// nodal solve, subcell force evaluation, cell update, mesh motion, and
// CFL step control. Its lifecycle follows fem/solver.go's
// package-level Start/Run/End triple (there built around a `global`
// struct holding `Sim`/`DynCoefs`/MPI bookkeeping); here it is a
// *Driver value instead of a package-level global, since MPI
// rank/partition state is out of scope and there is nothing left in
// `global` worth hoisting to package level.
package driver

import (
	"log"
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/gshipman/flecsale/bc"
	"github.com/gshipman/flecsale/config"
	"github.com/gshipman/flecsale/eos"
	"github.com/gshipman/flecsale/geocache"
	"github.com/gshipman/flecsale/hydro"
	"github.com/gshipman/flecsale/nodal"
	"github.com/gshipman/flecsale/out"
	"github.com/gshipman/flecsale/para"
	"github.com/gshipman/flecsale/state"
	"github.com/gshipman/flecsale/topo"
)

// Driver owns the mesh, cached geometry, per-cell state, and the
// pieces (boundary conditions, EOS, configuration, output writer) the
// time loop needs at every step.
type Driver struct {
	Topology *topo.Topology
	Geo      *geocache.Cache
	Cells    []hydro.Cell
	BC       bc.Map
	EOS      eos.Model
	Cfg      *config.Config
	Writer   out.Writer

	// St records the predictor's and corrector's vertex-velocity
	// fields side by side (state.VersionBegin/VersionPredicted) for
	// inspection between stages, the way fem.Domain.Sol keeps y and
	// the stage's working copy side by side.
	St *state.Store

	Time   float64
	Step   int
	PrevDt float64

	// LastLimiter names which CFL rule bound the most recent step, for
	// reporting only (tie-break is report-only).
	LastLimiter hydro.Limiter
}

// New assembles a Driver. cells must already hold each region's
// initial (Mass, Momentum, TotalE) with Vol/Rho/Vel/E/P/C/Gamma closed
// via the EOS (state.Init-style construction happens in the caller,
// e.g. cmd/flecsale).
func New(t *topo.Topology, cells []hydro.Cell, bcMap bc.Map, model eos.Model, cfg *config.Config, writer out.Writer) *Driver {
	return &Driver{
		Topology: t,
		Geo:      geocache.New(t),
		Cells:    cells,
		BC:       bcMap,
		EOS:      model,
		Cfg:      cfg,
		Writer:   writer,
		St:       state.New(),
		PrevDt:   math.Inf(1), // the growth limiter must not bind before any step has a Δt to grow from
	}
}

// Run advances the driver until t ≥ final_time or step ≥ max_steps,
// emitting output every Cfg.OutputFreq steps. It returns the first
// fatal error a step produces; non-fatal writer failures are logged
// and do not stop the run.
func (d *Driver) Run() error {
	if err := d.Geo.Recompute(d.Topology); err != nil {
		return chk.Err("driver: initial geometry: %v\n", err)
	}
	d.emit()

	for !d.done() {
		if err := d.step(); err != nil {
			return err
		}
		d.Step++
		if d.Cfg.OutputFreq > 0 && d.Step%d.Cfg.OutputFreq == 0 {
			d.emit()
		}
	}
	return nil
}

func (d *Driver) done() bool {
	if d.Cfg.FinalTime > 0 && d.Time >= d.Cfg.FinalTime {
		return true
	}
	if d.Cfg.MaxSteps > 0 && d.Step >= d.Cfg.MaxSteps {
		return true
	}
	return false
}

func (d *Driver) emit() {
	if d.Writer == nil {
		return
	}
	if err := d.Writer.Write(d.Step, d.Time, d.snapshot()); err != nil {
		log.Printf("driver: output at step %d: %v\n", d.Step, err)
	}
}

func (d *Driver) snapshot() out.Snapshot {
	n := len(d.Cells)
	snap := out.Snapshot{
		Coords: d.Geo.CellCentroid, CellVel: make([][]float64, n),
		Pressure: make([]float64, n), Density: make([]float64, n),
		Energy: make([]float64, n), Temp: make([]float64, n),
		SoundSpeed: make([]float64, n),
		Region:     make([]int, n),
	}
	for c, cell := range d.Cells {
		snap.CellVel[c] = cell.Vel
		snap.Pressure[c] = cell.P
		snap.Density[c] = cell.Rho
		snap.Energy[c] = cell.E
		if t, ok := d.EOS.Temperature(cell.Rho, cell.P); ok {
			snap.Temp[c] = t
		}
		snap.SoundSpeed[c] = cell.C
		snap.Region[c] = d.Topology.Cells[c].Region
	}
	return snap
}

// step runs one predictor-corrector cycle:
//
//	save_coords; save_state
//	solve_nodal; force; Δt = step_size()
//	apply_update(½Δt); move_mesh(½Δt)
//	solve_nodal; force
//	restore_coords; restore_state
//	apply_update(Δt); move_mesh(Δt)
//
// "apply_update" closes ρ,u,e against the mesh volume *after* its own
// move_mesh call ("V^{n+1} = V(mesh)^{n+1}"), so this reorders the two
// sub-steps relative to the pseudocode's written sequence without
// changing what either stage reads.
func (d *Driver) step() error {
	savedCoords := cloneCoords(d.Topology.Coords)
	savedCells := cloneCells(d.Cells)

	rho, snd, p, vel := cellFields(d.Cells)
	corners1 := nodal.AssembleCorners(d.Topology, d.Geo, rho, snd)
	v1, err := nodal.SolveVertices(d.Topology, d.Geo, corners1, p, vel, d.BC, d.Time)
	if err != nil {
		return chk.Err("driver: predictor nodal solve at t=%g: %v\n", d.Time, err)
	}
	d.St.SetVectors("vertex_vel", topo.VertexKind, state.VersionBegin, v1)
	forces1 := hydro.Subcell(d.Topology, corners1, p, vel, v1)
	dVdt := hydro.VolumeRate(d.Topology, corners1, v1)

	minLen := d.Geo.CellMinLength
	vol := d.Geo.CellVol
	dt, limiter := hydro.StepSize(d.Topology, minLen, snd, vol, dVdt, d.PrevDt, d.Cfg.CFL.Acoustic, d.Cfg.CFL.Volume, d.Cfg.CFL.Growth)
	d.LastLimiter = limiter
	halfDt := dt / 2

	moveMesh(d.Topology, v1, halfDt)
	if err := d.Geo.Recompute(d.Topology); err != nil {
		return chk.Err("driver: predictor mesh motion: %v\n", err)
	}
	if err := hydro.Update(d.Topology, forces1, v1, d.Cells, d.Geo.CellVol, halfDt, d.EOS); err != nil {
		return chk.Err("driver: predictor update: %v\n", err)
	}

	rho2, snd2, p2, vel2 := cellFields(d.Cells)
	corners2 := nodal.AssembleCorners(d.Topology, d.Geo, rho2, snd2)
	v2, err := nodal.SolveVertices(d.Topology, d.Geo, corners2, p2, vel2, d.BC, d.Time+halfDt)
	if err != nil {
		return chk.Err("driver: corrector nodal solve at t=%g: %v\n", d.Time+halfDt, err)
	}
	d.St.SetVectors("vertex_vel", topo.VertexKind, state.VersionPredicted, v2)
	forces2 := hydro.Subcell(d.Topology, corners2, p2, vel2, v2)

	restoreCoords(d.Topology.Coords, savedCoords)
	restoreCells(d.Cells, savedCells)

	moveMesh(d.Topology, v2, dt)
	if err := d.Geo.Recompute(d.Topology); err != nil {
		return chk.Err("driver: corrector mesh motion: %v\n", err)
	}
	if err := hydro.Update(d.Topology, forces2, v2, d.Cells, d.Geo.CellVol, dt, d.EOS); err != nil {
		return chk.Err("driver: corrector update: %v\n", err)
	}

	d.Time += dt
	d.PrevDt = dt
	return nil
}

// moveMesh advances every vertex by dt·vel; vertices are independent writes, so this runs
// data-parallel over vertices.
func moveMesh(t *topo.Topology, vel [][]float64, dt float64) {
	ndim := t.Ndim
	para.Run(t.NumVerts(), func(v int) {
		for i := 0; i < ndim; i++ {
			t.Coords[v][i] += dt * vel[v][i]
		}
	})
}

func cellFields(cells []hydro.Cell) (rho, snd, p []float64, vel [][]float64) {
	n := len(cells)
	rho, snd, p = make([]float64, n), make([]float64, n), make([]float64, n)
	vel = make([][]float64, n)
	for i, c := range cells {
		rho[i], snd[i], p[i], vel[i] = c.Rho, c.C, c.P, c.Vel
	}
	return
}

func cloneCoords(coords [][]float64) [][]float64 {
	out := make([][]float64, len(coords))
	for i, x := range coords {
		out[i] = append([]float64(nil), x...)
	}
	return out
}

func restoreCoords(dst, src [][]float64) {
	for i := range dst {
		copy(dst[i], src[i])
	}
}

func cloneCells(cells []hydro.Cell) []hydro.Cell {
	out := make([]hydro.Cell, len(cells))
	for i, c := range cells {
		out[i] = c
		out[i].Momentum = append([]float64(nil), c.Momentum...)
		out[i].Vel = append([]float64(nil), c.Vel...)
	}
	return out
}

func restoreCells(dst, src []hydro.Cell) {
	for i := range dst {
		copy(dst[i].Momentum, src[i].Momentum)
		dst[i].TotalE = src[i].TotalE
		dst[i].Mass = src[i].Mass
		dst[i].Vol = src[i].Vol
		dst[i].Rho = src[i].Rho
		copy(dst[i].Vel, src[i].Vel)
		dst[i].E = src[i].E
		dst[i].P = src[i].P
		dst[i].C = src[i].C
		dst[i].Gamma = src[i].Gamma
	}
}
