// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import "github.com/cpmech/gosl/chk"

// StubWriter reports that its postfix needs an external mesh-I/O tool
// (Exodus, VTK/VTU/VTM) this core does not embed. It
// exists so config.Config.Postfix can name any of the enumerated
// extensions without New needing a separate "unsupported" return path.
type StubWriter struct {
	Postfix string
}

func (w *StubWriter) Write(step int, t float64, snap Snapshot) error {
	return chk.Err("out: postfix %q requires an external tool not embedded in this build\n", w.Postfix)
}
