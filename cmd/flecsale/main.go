// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command flecsale runs a cell-centered Lagrangian hydrodynamics
// simulation from a JSON configuration file. Its lifecycle mirrors
// gofem's root main.go (flag.Parse, a deferred recover-and-report, a
// nonzero os.Exit on fatal error) adapted to this package's own
// config.Load -> topo.Build -> driver.New -> driver.Run -> driver.Shutdown
// sequence in place of gofem's fem.Start/fem.Run/fem.End.
package main

import (
	"encoding/json"
	"flag"
	"os"
	"runtime"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/utl"

	"github.com/gshipman/flecsale/config"
	"github.com/gshipman/flecsale/driver"
	"github.com/gshipman/flecsale/eos"
	"github.com/gshipman/flecsale/geocache"
	"github.com/gshipman/flecsale/out"
	"github.com/gshipman/flecsale/topo"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			utl.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	utl.PfWhite("\nflecsale -- cell-centered Lagrangian hydrodynamics\n\n")

	flag.Parse()
	if len(flag.Args()) < 1 {
		utl.Panic("Please, provide a configuration filename. Ex.: sod.json\n")
	}
	cfgfn := flag.Arg(0)

	cfg, err := config.Load(cfgfn)
	if err != nil {
		utl.Panic("%v\n", err)
	}
	if cfg.Threads > 0 {
		runtime.GOMAXPROCS(cfg.Threads)
	}

	t, err := readMesh(cfg.MeshFile)
	if err != nil {
		utl.Panic("%v\n", err)
	}

	g := geocache.New(t)
	if err := g.Recompute(t); err != nil {
		utl.Panic("%v\n", err)
	}

	model := eos.GetModel(cfg.Prefix, "region", cfg.EOS.Kind, true)
	if model == nil {
		utl.Panic("eos model %q is not registered\n", cfg.EOS.Kind)
	}
	if err := model.Init(fun.Prms{
		&fun.Prm{N: "gamma", V: cfg.EOS.Gamma()},
		&fun.Prm{N: "gas_constant", V: cfg.EOS.GasConstant},
	}); err != nil {
		utl.Panic("%v\n", err)
	}

	cells, err := driver.InitCells(t, g, cfg.ICs, model)
	if err != nil {
		utl.Panic("%v\n", err)
	}

	bcMap, err := cfg.BCMap()
	if err != nil {
		utl.Panic("%v\n", err)
	}

	writer := out.New(t, cfg.Prefix, cfg.Postfix)

	d := driver.New(t, cells, bcMap, model, cfg, writer)
	defer d.Shutdown()

	if err := d.Run(); err != nil {
		utl.Panic("%v\n", err)
	}

	utl.Pf("flecsale: finished at step %d, t=%g\n", d.Step, d.Time)
}

// readMesh loads a topo.MeshInput document and builds its Topology.
// Mesh generation and Exodus/VTK import are out of scope; this build
// only consumes the plain JSON shape topo.MeshInput already exposes.
func readMesh(fn string) (*topo.Topology, error) {
	if fn == "" {
		return nil, chk.Err("flecsale: config has no mesh_file\n")
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("flecsale: cannot open mesh %q: %v\n", fn, err)
	}
	var in topo.MeshInput
	if err := json.Unmarshal(b, &in); err != nil {
		return nil, chk.Err("flecsale: cannot parse mesh %q: %v\n", fn, err)
	}
	return topo.Build(in)
}
