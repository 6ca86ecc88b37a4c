// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package topo implements the mesh topology store: entity arrays,
// incidence tables, and iteration over vertices, edges, faces, cells,
// corners and wedges. Topology is built once from mesh-import data and
// is immutable thereafter; only vertex coordinates mutate, under
// mesh motion.
package topo

// EntityKind identifies which of the five (or six, counting corners
// and wedges separately) entity collections a field or query refers
// to. Shared with package state, whose field keys are
// (name, EntityKind, version) triples.
type EntityKind int

// entity kinds
const (
	VertexKind EntityKind = iota
	EdgeKind
	FaceKind
	CellKind
	CornerKind
	WedgeKind
)

func (k EntityKind) String() string {
	switch k {
	case VertexKind:
		return "vertex"
	case EdgeKind:
		return "edge"
	case FaceKind:
		return "face"
	case CellKind:
		return "cell"
	case CornerKind:
		return "corner"
	case WedgeKind:
		return "wedge"
	}
	return "unknown"
}
