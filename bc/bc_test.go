// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bc

import (
	"testing"

	"github.com/cpmech/gosl/fun"
)

func TestVecFuncAt(t *testing.T) {
	v := VecFunc{&fun.Cte{C: 1}, &fun.Cte{C: -2}}
	got := v.At(0.5, []float64{3, 4})
	if len(got) != 2 || got[0] != 1 || got[1] != -2 {
		t.Fatalf("At = %v, want [1 -2]", got)
	}
}

func TestMapGetMissingTagErrors(t *testing.T) {
	m := Map{}
	if _, err := m.Get(7); err == nil {
		t.Fatal("expected error for unregistered tag")
	}
}

func TestMapGetReturnsRegisteredCond(t *testing.T) {
	c := &Cond{Tag: 3, Kind: Symmetry}
	m := Map{3: c}
	got, err := m.Get(3)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != c {
		t.Fatalf("Get returned a different *Cond")
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{Velocity: "velocity", Pressure: "pressure", Symmetry: "symmetry", Kind(99): "unknown"}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
