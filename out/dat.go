// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/utl"

	"github.com/gshipman/flecsale/topo"
)

// DatWriter writes a plain columnar text snapshot, one line per cell:
// region, centroid coordinates, density, pressure, specific energy,
// temperature, sound speed, velocity components. Grounded on inp/mat.go's
// utl.WriteFileSD(dirout, fnkey, content) pattern for plain-text
// dumps.
type DatWriter struct {
	Topology *topo.Topology
	Prefix   string
	DirOut   string // defaults to "." when empty
}

func (w *DatWriter) Write(step int, t float64, snap Snapshot) error {
	dir := w.DirOut
	if dir == "" {
		dir = "."
	}
	fn := utl.Sf("%s_%06d.dat", w.Prefix, step)

	buf := utl.Sf("# t = %g\n# region x y rho p e temp c ux uy\n", t)
	for c := range snap.Density {
		x := snap.Coords[c]
		vel := snap.CellVel[c]
		buf += utl.Sf("%d", snap.Region[c])
		for _, xi := range x {
			buf += utl.Sf(" %.10g", xi)
		}
		var temp float64
		if c < len(snap.Temp) {
			temp = snap.Temp[c]
		}
		buf += utl.Sf(" %.10g %.10g %.10g %.10g %.10g", snap.Density[c], snap.Pressure[c], snap.Energy[c], temp, snap.SoundSpeed[c])
		for _, u := range vel {
			buf += utl.Sf(" %.10g", u)
		}
		buf += "\n"
	}

	utl.WriteFileSD(dir, fn, buf)
	return nil
}
