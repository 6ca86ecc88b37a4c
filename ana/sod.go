// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements the closed-form solutions used to validate
// the solver against named scenarios: Sod, Noh and Sedov.
// Sod follows pressurised_cylinder.go's Hill solve-then-sample
// shape (a one-time nonlinear solve for an unknown scalar via
// gosl/num, then a closed-form per-point state function), adapted
// from elastic-plastic cylinder theory to the ideal-gas Riemann
// problem; Noh and Sedov are evaluated in closed form with no solve.
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
)

// Sod is the exact Riemann solution for the Sod shock tube: a left
// and right uniform ideal-gas state separated by a diaphragm at X0,
// released at t=0. Its solve-then-sample structure (a nonlinear solve
// for an unknown scalar via num.NlSolver, then a closed-form state
// function) follows the Hill elastic-plastic cylinder solution's
// shape, adapted to the exact-Riemann-solver pressure equation.
type Sod struct {
	Gamma        float64
	RhoL, UL, PL float64
	RhoR, UR, PR float64
	X0           float64
	pStar, uStar float64
	cL, cR       float64
}

// Init solves for the star-region pressure and velocity once, ahead
// of any Sample call.
func (o *Sod) Init() error {
	o.cL = math.Sqrt(o.Gamma * o.PL / o.RhoL)
	o.cR = math.Sqrt(o.Gamma * o.PR / o.RhoR)

	var nls num.NlSolver
	defer nls.Clean()

	fx := func(fx, X []float64) (err error) {
		fx[0] = o.fL(X[0]) + o.fR(X[0]) + (o.UR - o.UL)
		return
	}
	dfdx := func(dfdx [][]float64, X []float64) (err error) {
		dfdx[0][0] = o.dfLdp(X[0]) + o.dfRdp(X[0])
		return
	}

	Res := []float64{0.5 * (o.PL + o.PR)}
	nls.Init(1, fx, nil, dfdx, true, false, nil)
	if err := nls.Solve(Res, false); err != nil {
		return chk.Err("ana.Sod: star-pressure solve failed: %v\n", err)
	}
	o.pStar = Res[0]
	if o.pStar <= 0 {
		return chk.Err("ana.Sod: star pressure is non-positive (%g); vacuum is not supported\n", o.pStar)
	}
	o.uStar = 0.5*(o.UL+o.UR) + 0.5*(o.fR(o.pStar)-o.fL(o.pStar))
	return nil
}

func (o *Sod) fL(p float64) float64 { return o.fK(p, o.PL, o.RhoL, o.cL) }
func (o *Sod) fR(p float64) float64 { return o.fK(p, o.PR, o.RhoR, o.cR) }

func (o *Sod) fK(p, pK, rhoK, cK float64) float64 {
	if p > pK {
		A := 2 / ((o.Gamma + 1) * rhoK)
		B := (o.Gamma - 1) / (o.Gamma + 1) * pK
		return (p - pK) * math.Sqrt(A/(p+B))
	}
	return 2 * cK / (o.Gamma - 1) * (math.Pow(p/pK, (o.Gamma-1)/(2*o.Gamma)) - 1)
}

func (o *Sod) dfLdp(p float64) float64 { return o.dfKdp(p, o.PL, o.RhoL, o.cL) }
func (o *Sod) dfRdp(p float64) float64 { return o.dfKdp(p, o.PR, o.RhoR, o.cR) }

func (o *Sod) dfKdp(p, pK, rhoK, cK float64) float64 {
	if p > pK {
		A := 2 / ((o.Gamma + 1) * rhoK)
		B := (o.Gamma - 1) / (o.Gamma + 1) * pK
		return math.Sqrt(A/(B+p)) * (1 - (p-pK)/(2*(B+p)))
	}
	return 1 / (rhoK * cK) * math.Pow(p/pK, -(o.Gamma+1)/(2*o.Gamma))
}

// Sample returns the state (ρ,u,p) at position x and time t>0 (the
// fan/shock/contact structure sampled along the self-similar variable
// S=(x-X0)/t, Toro's exact-Riemann-solver sampling procedure).
func (o *Sod) Sample(x, t float64) (rho, u, p float64) {
	if t <= 0 {
		if x < o.X0 {
			return o.RhoL, o.UL, o.PL
		}
		return o.RhoR, o.UR, o.PR
	}
	S := (x - o.X0) / t
	if S <= o.uStar {
		return o.sampleLeft(S)
	}
	return o.sampleRight(S)
}

func (o *Sod) sampleLeft(S float64) (rho, u, p float64) {
	if o.pStar > o.PL { // left shock
		SL := o.UL - o.cL*math.Sqrt((o.Gamma+1)/(2*o.Gamma)*o.pStar/o.PL+(o.Gamma-1)/(2*o.Gamma))
		if S < SL {
			return o.RhoL, o.UL, o.PL
		}
		rho = o.RhoL * (o.pStar/o.PL + (o.Gamma-1)/(o.Gamma+1)) / ((o.Gamma-1)/(o.Gamma+1)*o.pStar/o.PL + 1)
		return rho, o.uStar, o.pStar
	}
	// left fan
	SHL := o.UL - o.cL
	cStarL := o.cL * math.Pow(o.pStar/o.PL, (o.Gamma-1)/(2*o.Gamma))
	STL := o.uStar - cStarL
	if S < SHL {
		return o.RhoL, o.UL, o.PL
	}
	if S > STL {
		rho = o.RhoL * math.Pow(o.pStar/o.PL, 1/o.Gamma)
		return rho, o.uStar, o.pStar
	}
	cFan := (2/(o.Gamma+1))*o.cL + (o.Gamma-1)/(o.Gamma+1)*(o.UL-S)
	rho = o.RhoL * math.Pow(cFan/o.cL, 2/(o.Gamma-1))
	u = 2 / (o.Gamma + 1) * (o.cL + (o.Gamma-1)/2*o.UL + S)
	p = o.PL * math.Pow(cFan/o.cL, 2*o.Gamma/(o.Gamma-1))
	return
}

func (o *Sod) sampleRight(S float64) (rho, u, p float64) {
	if o.pStar > o.PR { // right shock
		SR := o.UR + o.cR*math.Sqrt((o.Gamma+1)/(2*o.Gamma)*o.pStar/o.PR+(o.Gamma-1)/(2*o.Gamma))
		if S > SR {
			return o.RhoR, o.UR, o.PR
		}
		rho = o.RhoR * (o.pStar/o.PR + (o.Gamma-1)/(o.Gamma+1)) / ((o.Gamma-1)/(o.Gamma+1)*o.pStar/o.PR + 1)
		return rho, o.uStar, o.pStar
	}
	// right fan
	SHR := o.UR + o.cR
	cStarR := o.cR * math.Pow(o.pStar/o.PR, (o.Gamma-1)/(2*o.Gamma))
	STR := o.uStar + cStarR
	if S > SHR {
		return o.RhoR, o.UR, o.PR
	}
	if S < STR {
		rho = o.RhoR * math.Pow(o.pStar/o.PR, 1/o.Gamma)
		return rho, o.uStar, o.pStar
	}
	cFan := (2/(o.Gamma+1))*o.cR - (o.Gamma-1)/(o.Gamma+1)*(o.UR-S)
	rho = o.RhoR * math.Pow(cFan/o.cR, 2/(o.Gamma-1))
	u = 2 / (o.Gamma + 1) * (-o.cR + (o.Gamma-1)/2*o.UR + S)
	p = o.PR * math.Pow(cFan/o.cR, 2*o.Gamma/(o.Gamma-1))
	return
}
