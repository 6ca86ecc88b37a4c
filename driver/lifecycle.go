// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package driver

import "log"

// Stop reports (and logs) whether a run must halt because of err,
// naming the phase in which it occurred. It mirrors
// fem/errorhandler.go's Stop, simplified to the single-rank case:
// that function's `mpi.IntAllReduceMax` poll across ranks collapses to
// a direct boolean test once MPI partitioning is out of scope.
func Stop(err error, phase string) bool {
	if err != nil {
		log.Printf("flecsale: simulation failed during %s: %v\n", phase, err)
		return true
	}
	return false
}

// Shutdown flushes any buffered output state. Kept as its own step
// (mirroring fem.End) even though this Driver holds no file handles of
// its own today, so a future Writer that buffers to disk has a
// natural place to flush from.
func (d *Driver) Shutdown() {
	if closer, ok := d.Writer.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.Printf("flecsale: error closing writer: %v\n", err)
		}
	}
}
