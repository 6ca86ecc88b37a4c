// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// flecsale-report prints a plain-text summary of a configuration file:
// EOS, CFL limiters, termination bounds, and the registered boundary
// conditions. Grounded on tools/MatTable.go's flag-driven, io.Pf*-
// formatted materials-table report, adapted from a materials database
// listing to a single simulation Config.
package main

import (
	"flag"
	"sort"

	"github.com/cpmech/gosl/io"

	"github.com/gshipman/flecsale/config"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("flecsale-report: %v\n", err)
		}
	}()

	cfgfn := "config.json"
	flag.Parse()
	if len(flag.Args()) > 0 {
		cfgfn = flag.Arg(0)
	}

	io.Pforan("Input data\n")
	io.Pfblue2("  config = %v\n", cfgfn)

	c, err := config.Load(cfgfn)
	if err != nil {
		io.PfRed("%v\n", err)
		return
	}

	io.Pfcyan("\nOutput\n")
	io.Pfblue2("  prefix       = %v\n", c.Prefix)
	io.Pfblue2("  postfix      = %v\n", c.Postfix)
	io.Pfblue2("  output_freq  = %v\n", c.OutputFreq)

	io.Pfcyan("\nTermination\n")
	io.Pfblue2("  final_time = %v\n", c.FinalTime)
	io.Pfblue2("  max_steps  = %v\n", c.MaxSteps)

	io.Pfcyan("\nCFL\n")
	io.Pfblue2("  acoustic = %v\n", c.CFL.Acoustic)
	io.Pfblue2("  volume   = %v\n", c.CFL.Volume)
	io.Pfblue2("  growth   = %v\n", c.CFL.Growth)

	io.Pfcyan("\nEOS\n")
	io.Pfblue2("  kind          = %v\n", c.EOS.Kind)
	io.Pfblue2("  gas_constant  = %v\n", c.EOS.GasConstant)
	io.Pfblue2("  specific_heat = %v\n", c.EOS.SpecificHeat)
	io.Pfblue2("  gamma (derived) = %v\n", c.EOS.Gamma())

	io.Pfcyan("\nInitial conditions (%d regions)\n", len(c.ICs))
	for _, ic := range c.ICs {
		io.Pfblue2("  region %2d: rho=%v vel=%v p=%v\n", ic.Region, ic.Rho, ic.Vel, ic.P)
	}

	io.Pfcyan("\nBoundary map (%d tags)\n", len(c.BoundaryMap))
	tags := make([]int, 0, len(c.BoundaryMap))
	for tag := range c.BoundaryMap {
		tags = append(tags, tag)
	}
	sort.Ints(tags)
	for _, tag := range tags {
		b := c.BoundaryMap[tag]
		switch {
		case len(b.Velocity) > 0:
			io.Pfblue2("  tag %2d: velocity=%v\n", tag, b.Velocity)
		case b.Pressure != nil:
			io.Pfblue2("  tag %2d: pressure=%v\n", tag, *b.Pressure)
		case b.Symmetry:
			io.Pfblue2("  tag %2d: symmetry\n", tag)
		default:
			io.PfRed("  tag %2d: no condition recognised\n", tag)
		}
	}
}
