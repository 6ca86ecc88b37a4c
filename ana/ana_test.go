// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestSodLeftAndRightStatesAtOrigin(t *testing.T) {
	s := &Sod{Gamma: 1.4, RhoL: 1, UL: 0, PL: 1, RhoR: 0.125, UR: 0, PR: 0.1, X0: 0.5}
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if s.pStar <= s.PR || s.pStar >= s.PL {
		t.Fatalf("star pressure %g out of (PR,PL)=(%g,%g)", s.pStar, s.PR, s.PL)
	}

	rho, u, p := s.Sample(0, 0.2)
	chk.AnaNum(t, "rho(far left)", 1e-12, rho, s.RhoL, chk.Verbose)
	chk.AnaNum(t, "u(far left)", 1e-12, u, s.UL, chk.Verbose)
	chk.AnaNum(t, "p(far left)", 1e-12, p, s.PL, chk.Verbose)

	rho, u, p = s.Sample(1, 0.2)
	chk.AnaNum(t, "rho(far right)", 1e-12, rho, s.RhoR, chk.Verbose)
	chk.AnaNum(t, "u(far right)", 1e-12, u, s.UR, chk.Verbose)
	chk.AnaNum(t, "p(far right)", 1e-12, p, s.PR, chk.Verbose)
}

func TestSodStarPressureBetweenStates(t *testing.T) {
	s := &Sod{Gamma: 1.4, RhoL: 1, UL: 0, PL: 1, RhoR: 0.125, UR: 0, PR: 0.1, X0: 0.5}
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	_, _, pMid := s.Sample(0.5, 0.2)
	if pMid < s.PR || pMid > s.PL {
		t.Fatalf("p(contact region) = %g, want within [%g,%g]", pMid, s.PR, s.PL)
	}
}

func TestNohPostShockDensityRatio(t *testing.T) {
	n := &Noh{Gamma: 5.0 / 3.0, Rho0: 1, Ndim: 3}
	rho, u, _ := n.Sample(0, 1)
	want := math.Pow((n.Gamma+1)/(n.Gamma-1), 3)
	chk.AnaNum(t, "rho(center)", 1e-9, rho, want, chk.Verbose)
	if u != 0 {
		t.Fatalf("u(center) = %g, want 0", u)
	}
}

func TestNohAheadOfShockIsConvergingInflow(t *testing.T) {
	n := &Noh{Gamma: 5.0 / 3.0, Rho0: 1, Ndim: 3}
	rho, u, p := n.Sample(10, 1)
	if p != 0 {
		t.Fatalf("p(ahead) = %g, want 0", p)
	}
	if u != -1 {
		t.Fatalf("u(ahead) = %g, want -1", u)
	}
	if rho < n.Rho0 {
		t.Fatalf("rho(ahead) = %g, want >= Rho0 = %g", rho, n.Rho0)
	}
}

func TestSedovShockRadiusGrows(t *testing.T) {
	sd := &Sedov{Gamma: 1.4, Rho0: 1, E: 1, Ndim: 3}
	r1 := sd.ShockRadius(0.1)
	r2 := sd.ShockRadius(0.2)
	if r2 <= r1 {
		t.Fatalf("shock radius did not grow: r(0.1)=%g, r(0.2)=%g", r1, r2)
	}
}

func TestSedovAheadOfShockIsUndisturbed(t *testing.T) {
	sd := &Sedov{Gamma: 1.4, Rho0: 1, E: 1, Ndim: 3}
	R := sd.ShockRadius(0.1)
	rho, u, p := sd.Sample(2*R+1, 0.1)
	if rho != sd.Rho0 || u != 0 || p != 0 {
		t.Fatalf("state ahead of shock = (%g,%g,%g), want (%g,0,0)", rho, u, p, sd.Rho0)
	}
}

func TestSedovPostShockDensityJump(t *testing.T) {
	sd := &Sedov{Gamma: 1.4, Rho0: 1, E: 1, Ndim: 3}
	R := sd.ShockRadius(0.1)
	rho, _, _ := sd.Sample(0.5*R, 0.1)
	want := sd.Rho0 * (sd.Gamma + 1) / (sd.Gamma - 1)
	chk.AnaNum(t, "rho(post-shock)", 1e-9, rho, want, chk.Verbose)
}
