// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eos implements equation-of-state closures: given a cell's
// density and either its specific internal energy or its pressure, a
// Model returns the missing thermodynamic pair plus the sound speed.
// The factory/registration pattern mirrors mconduct and msolid's
// Model/GetModel machinery.
package eos

import (
	"log"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/utl"
)

// Model defines a closure relating density, energy and pressure.
type Model interface {
	Init(prms fun.Prms) error // Init initialises this structure
	GetPrms() fun.Prms        // gets (an example) of parameters

	// UpdateFromEnergy returns the pressure, sound speed and local
	// adiabatic-index proxy Γ given density and specific internal
	// energy; the conservative cell update drives the EOS this way.
	UpdateFromEnergy(rho, e float64) (p, c, gamma float64, err error)

	// UpdateFromPressure returns the specific internal energy, sound
	// speed and Γ given density and pressure (used to turn an initial
	// (ρ,u,p) condition into an energy state).
	UpdateFromPressure(rho, p float64) (e, c, gamma float64, err error)

	// Temperature returns the temperature implied by density and
	// pressure. ok is false when this model carries no gas-constant
	// closure to derive one from.
	Temperature(rho, p float64) (t float64, ok bool)
}

// GetModel returns (existent or new) EOS model.
//  simfnk    -- unique simulation filename key
//  matname   -- name of material/region
//  modelname -- model name, e.g. "ideal-gas"
//  getnew    -- force a new allocation; i.e. do not use any model found in database
//  Note: returns nil if modelname is not registered
func GetModel(simfnk, matname, modelname string, getnew bool) Model {
	if getnew {
		allocator, ok := allocators[modelname]
		if !ok {
			return nil
		}
		return allocator()
	}
	key := utl.Sf("%s_%s_%s", simfnk, matname, modelname)
	if model, ok := _models[key]; ok {
		return model
	}
	allocator, ok := allocators[modelname]
	if !ok {
		return nil
	}
	model := allocator()
	_models[key] = model
	return model
}

// LogModels prints to log information on existent and allocated Models
func LogModels() {
	log.Printf("eos: available models:")
	for name := range allocators {
		log.Printf(" " + name)
	}
	log.Printf("\neos: allocated models:")
	for key := range _models {
		log.Printf(" " + key)
	}
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// _models holds pre-allocated models
var _models = map[string]Model{}
