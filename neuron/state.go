// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron

import "math"

// NoSpike is the sentinel time for no spike predicted (or none fired yet).
const NoSpike = -1.0

// State holds the variables of one neuron.
// Vars[0] is always 0, Vars[1..N] are the model state variables in declared
// order and any remaining slots hold model bookkeeping values.
type State struct {

	// state vector
	Vars []float32

	// time of the last state update
	LastUpdate float64

	// absolute time of the next predicted spike, or NoSpike
	NextSpike float64

	// time elapsed since the state variables were last recomputed -- the input of elapsed time table dimensions
	Elapsed float64

	// absolute time of the last spike fired by the neuron, or NoSpike
	LastSpike float64

	// incremented whenever an input changes the state, invalidating earlier predictions
	Version uint64
}

// NewState returns a new state with a vector of n slots, all zero.
func NewState(n int) *State {
	return &State{Vars: make([]float32, n), NextSpike: NoSpike, LastSpike: NoSpike}
}

// VarAt returns the state vector slot at idx.
func (st *State) VarAt(idx int) float32 { return st.Vars[idx] }

// SetVarAt sets the state vector slot at idx.
func (st *State) SetVarAt(idx int, val float32) { st.Vars[idx] = val }

// ElapsedTime returns the time elapsed since the last recomputation.
func (st *State) ElapsedTime() float32 { return float32(st.Elapsed) }

// NumVars returns the length of the state vector.
func (st *State) NumVars() int { return len(st.Vars) }

// Clone returns a deep copy of the state.
func (st *State) Clone() *State {
	cp := *st
	cp.Vars = make([]float32, len(st.Vars))
	copy(cp.Vars, st.Vars)
	return &cp
}

// AddElapsedTime adds dt to the time pending recomputation.
func (st *State) AddElapsedTime(dt float64) {
	st.Elapsed += dt
}

// RecordSpike records that the neuron fired at time t.
func (st *State) RecordSpike(t float64) {
	st.LastSpike = t
}

// TimeSinceSpike returns the time between the last spike of the neuron
// and the last update, +Inf if it never fired.
func (st *State) TimeSinceSpike() float64 {
	if st.LastSpike == NoSpike {
		return math.Inf(1)
	}
	return st.LastUpdate - st.LastSpike
}

// HasPrediction returns true if a next spike is currently predicted.
func (st *State) HasPrediction() bool {
	return st.NextSpike != NoSpike
}
