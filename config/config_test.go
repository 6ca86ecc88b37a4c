// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, c *Config) string {
	b, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	fn := filepath.Join(t.TempDir(), "sim.json")
	if err := os.WriteFile(fn, b, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return fn
}

func TestLoadAppliesDefaultsAndValidates(t *testing.T) {
	fn := writeTempConfig(t, &Config{FinalTime: 1})
	c, err := Load(fn)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Postfix != "dat" {
		t.Fatalf("Postfix = %q, want %q", c.Postfix, "dat")
	}
	if c.CFL.Acoustic != 0.5 || c.CFL.Volume != 0.5 {
		t.Fatalf("CFL defaults not applied: %+v", c.CFL)
	}
}

func TestLoadRejectsMissingTermination(t *testing.T) {
	fn := writeTempConfig(t, &Config{})
	if _, err := Load(fn); err == nil {
		t.Fatal("expected error: neither final_time nor max_steps set")
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for a missing file")
	}
}

func TestEOSGamma(t *testing.T) {
	e := EOS{GasConstant: 287, SpecificHeat: 717.5}
	got := e.Gamma()
	want := 1 + 287.0/717.5
	if got != want {
		t.Fatalf("Gamma() = %g, want %g", got, want)
	}
	if (EOS{}).Gamma() != 0 {
		t.Fatal("Gamma() with zero SpecificHeat should be 0, not a division by zero")
	}
}

func TestBCMapBuildsEachKind(t *testing.T) {
	p := 5.0
	c := &Config{BoundaryMap: map[int]BoundaryCond{
		1: {Velocity: []float64{1, 0}},
		2: {Pressure: &p},
		3: {Symmetry: true},
	}}
	m, err := c.BCMap()
	if err != nil {
		t.Fatalf("BCMap: %v", err)
	}
	if len(m) != 3 {
		t.Fatalf("len(m) = %d, want 3", len(m))
	}
	if m[1].Velocity.At(0, nil)[0] != 1 {
		t.Fatalf("tag 1 velocity.x = %g, want 1", m[1].Velocity.At(0, nil)[0])
	}
	if m[2].Pressure.F(0, nil) != p {
		t.Fatalf("tag 2 pressure = %g, want %g", m[2].Pressure.F(0, nil), p)
	}
}

func TestBCMapRejectsEmptyCond(t *testing.T) {
	c := &Config{BoundaryMap: map[int]BoundaryCond{1: {}}}
	if _, err := c.BCMap(); err == nil {
		t.Fatal("expected error for a boundary condition with none of velocity/pressure/symmetry")
	}
}
