// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// Noh is the exact self-similar solution of the Noh implosion: a cold (p0=0), uniform-density gas converges on the
// origin at unit inward speed; a standing shock forms and propagates
// back outward at constant speed once the gas piles up at the center.
// Ndim selects the planar(1)/cylindrical(2)/spherical(3) geometry
// factor that sets the post-shock density jump.
type Noh struct {
	Gamma float64
	Rho0  float64
	Ndim  int // 1, 2 or 3
}

// shockSpeed returns the constant outward speed of the standing shock
// that forms at t=0 at the origin.
func (o *Noh) shockSpeed() float64 {
	return (o.Gamma - 1) / 2
}

// postShockDensity returns the density jump ρ1/ρ0 = ((γ+1)/(γ-1))^Ndim,
// the Ndim-dimensional analogue of the strong-shock density ratio.
func (o *Noh) postShockDensity() float64 {
	ratio := (o.Gamma + 1) / (o.Gamma - 1)
	return math.Pow(ratio, float64(o.Ndim))
}

// Sample returns the state (ρ,u,p) at radius r≥0 and time t>0.
// Ahead of the shock (r > shockSpeed*t) the gas is still converging
// at unit inward speed and is geometrically compressed to
// Rho0·(1+t/r)^(Ndim-1) (the original density only for Ndim=1);
// behind it, the gas is at rest with the piled-up post-shock density
// and pressure.
func (o *Noh) Sample(r, t float64) (rho, u, p float64) {
	if t <= 0 {
		return o.Rho0, -1, 0
	}
	shockR := o.shockSpeed() * t
	if r > shockR {
		rho = o.Rho0 * math.Pow(1+t/r, float64(o.Ndim-1))
		return rho, -1, 0
	}
	rho = o.Rho0 * o.postShockDensity()
	p = (o.Gamma - 1) / 2 * rho
	return rho, 0, p
}
