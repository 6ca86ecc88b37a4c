// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// IdealGas implements the polytropic ideal-gas closure
//   p = (γ-1)ρe,  c = sqrt(γp/ρ),  Γ = (γ+1)/2
// used by the Sod shock tube, Noh and Sedov test scenarios.
type IdealGas struct {
	Gamma float64 // ratio of specific heats
	R     float64 // gas constant; 0 disables the temperature closure T = p/(ρR)
}

func init() {
	allocators["ideal-gas"] = func() Model { return new(IdealGas) }
}

// GetPrms gets (an example) of parameters
func (o IdealGas) GetPrms() fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "gamma", V: 1.4},
		&fun.Prm{N: "gas_constant", V: 0},
	}
}

// Init initialises this structure
func (o *IdealGas) Init(prms fun.Prms) (err error) {
	for _, p := range prms {
		switch p.N {
		case "gamma":
			o.Gamma = p.V
		case "gas_constant":
			o.R = p.V
		default:
			return chk.Err("eos.IdealGas: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Gamma <= 1 {
		return chk.Err("eos.IdealGas: gamma must be > 1; got %g\n", o.Gamma)
	}
	return
}

// UpdateFromEnergy returns p, c, Γ from ρ and e.
func (o IdealGas) UpdateFromEnergy(rho, e float64) (p, c, gamma float64, err error) {
	if rho <= 0 {
		return 0, 0, 0, chk.Err("eos.IdealGas: density must be positive; got %g\n", rho)
	}
	if e < 0 {
		return 0, 0, 0, chk.Err("eos.IdealGas: specific internal energy must be non-negative; got %g\n", e)
	}
	p = (o.Gamma - 1) * rho * e
	c = math.Sqrt(o.Gamma * p / rho)
	gamma = (o.Gamma + 1) / 2
	return
}

// UpdateFromPressure returns e, c, Γ from ρ and p.
func (o IdealGas) UpdateFromPressure(rho, p float64) (e, c, gamma float64, err error) {
	if rho <= 0 {
		return 0, 0, 0, chk.Err("eos.IdealGas: density must be positive; got %g\n", rho)
	}
	if p < 0 {
		return 0, 0, 0, chk.Err("eos.IdealGas: pressure must be non-negative; got %g\n", p)
	}
	e = p / ((o.Gamma - 1) * rho)
	c = math.Sqrt(o.Gamma * p / rho)
	gamma = (o.Gamma + 1) / 2
	return
}

// Temperature returns T = p/(ρR); ok is false when R is not set or
// density is non-positive.
func (o IdealGas) Temperature(rho, p float64) (t float64, ok bool) {
	if o.R <= 0 || rho <= 0 {
		return 0, false
	}
	return p / (rho * o.R), true
}
