// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// Sedov is the exact self-similar point-blast solution: energy E released instantaneously at the origin into a
// uniform cold gas of density Rho0 drives a strong spherical (Ndim=3),
// cylindrical (Ndim=2) or planar (Ndim=1) shock outward.
//
// This only reproduces the shock trajectory and the strong-shock
// jump state immediately behind the front — not the full interior
// similarity profile, which requires numerically integrating the
// Sedov-Taylor-von Neumann ODE system rather than evaluating a closed
// form. Alpha is the dimensionless energy constant of that profile; a
// caller not supplying one gets the standard tabulated value for its
// Ndim at γ=1.4/γ=5/3 (the only EOS exponents in use), via
// DefaultAlpha.
type Sedov struct {
	Gamma float64
	Rho0  float64
	E     float64 // energy released per unit area (Ndim=2)/length (Ndim=1)/point (Ndim=3)
	Ndim  int
	Alpha float64 // dimensionless energy constant; 0 selects DefaultAlpha
}

// DefaultAlpha returns a standard tabulated Sedov energy constant for
// the common (Ndim, Gamma) combinations in use; it returns 0, false
// for any combination not tabulated.
func DefaultAlpha(ndim int, gamma float64) (alpha float64, ok bool) {
	switch {
	case ndim == 3 && math.Abs(gamma-1.4) < 1e-9:
		return 0.851, true
	case ndim == 3 && math.Abs(gamma-5.0/3.0) < 1e-9:
		return 0.494, true
	case ndim == 2 && math.Abs(gamma-1.4) < 1e-9:
		return 0.984, true
	case ndim == 1 && math.Abs(gamma-1.4) < 1e-9:
		return 0.539, true
	}
	return 0, false
}

func (o *Sedov) alpha() float64 {
	if o.Alpha > 0 {
		return o.Alpha
	}
	if a, ok := DefaultAlpha(o.Ndim, o.Gamma); ok {
		return a
	}
	return 1 // conservative fallback; callers needing accuracy must supply Alpha
}

// ShockRadius returns R(t) = (E t²/(α ρ0))^(1/(Ndim+2)), the
// similarity solution's shock position.
func (o *Sedov) ShockRadius(t float64) float64 {
	if t <= 0 {
		return 0
	}
	n := float64(o.Ndim)
	return math.Pow(o.E*t*t/(o.alpha()*o.Rho0), 1/(n+2))
}

// shockSpeed returns dR/dt at time t.
func (o *Sedov) shockSpeed(t float64) float64 {
	if t <= 0 {
		return math.Inf(1)
	}
	n := float64(o.Ndim)
	return (2 / (n + 2)) * o.ShockRadius(t) / t
}

// Sample returns the state (ρ,u,p) at radius r and time t>0: the
// undisturbed gas ahead of the shock, or the strong-shock
// Rankine-Hugoniot jump state immediately behind it (r ≤ shock
// radius returns the immediate post-shock state uniformly, per this
// type's documented thin-shell limitation).
func (o *Sedov) Sample(r, t float64) (rho, u, p float64) {
	if t <= 0 {
		return o.Rho0, 0, 0
	}
	R := o.ShockRadius(t)
	if r > R {
		return o.Rho0, 0, 0
	}
	D := o.shockSpeed(t)
	rho = o.Rho0 * (o.Gamma + 1) / (o.Gamma - 1)
	u = 2 / (o.Gamma + 1) * D
	p = 2 / (o.Gamma + 1) * o.Rho0 * D * D
	return
}
