// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron

// Model is the set of operations every neuron model implements.
// Configuration data is read-only: all changes go into the given State.
type Model interface {
	// Name returns the name of the model.
	Name() string

	// InitState returns a new state for a neuron of this model,
	// independent of every other state.
	InitState() *State

	// NumSynapseTypes returns the number of synapse types the model accepts:
	// Synapse.Type must be in [0, NumSynapseTypes).
	NumSynapseTypes() int

	// ApplySynapse applies the instantaneous effect of a spike
	// arriving over syn, without advancing time.
	ApplySynapse(st *State, syn *Synapse)

	// Advance brings the state variables to time t.
	Advance(st *State, t float64)

	// PredictNextFiring returns the time from the last update until
	// the next spike, or NoSpike.
	PredictNextFiring(st *State, rnd Rand) float64

	// GenerateNextSpike is called when the neuron fires at t: it advances
	// the state and returns the next predicted spike, if any.
	GenerateNextSpike(nrn *Neuron, t float64, rnd Rand) (Event, bool)

	// ProcessInputSpike advances the state to t, applies the input over syn
	// and returns the new spike prediction, if any, which supersedes
	// the previous one.
	ProcessInputSpike(nrn *Neuron, syn *Synapse, t float64, rnd Rand) (Event, bool)

	// EndRefractoryPeriod returns the refractory period after a spike.
	EndRefractoryPeriod(st *State) float64
}

// Neuron is one simulated neuron.
type Neuron struct {

	// index in the network
	Index int

	// model shared with the other neurons of the same type
	Model Model

	// state, owned by this neuron
	State *State

	// outgoing connections
	Out []Synapse
}

// NewNeuron returns a new neuron of the given model, with its initial state.
func NewNeuron(idx int, mod Model) *Neuron {
	return &Neuron{Index: idx, Model: mod, State: mod.InitState()}
}
