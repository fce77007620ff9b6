// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srm

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/emer/tablesnn/neuron"
)

// Params are the constants of the table-based SRM model
// that are not part of the model definition file.
type Params struct {
	SynGain     float32 `def:"2.718282" desc:"multiplier on the synaptic weight added to the synaptic state variable: the peak of the alpha-function kernel encoded in the tables"`
	SeedBuckets int     `def:"10" min:"1" desc:"number of distinct values the random seed state variable takes"`
}

func (sp *Params) Defaults() {
	sp.SynGain = float32(math.E)
	sp.SeedBuckets = 10
}

func (sp *Params) Update() {
	if sp.SeedBuckets < 1 {
		sp.SeedBuckets = 1
	}
}

// Model is the table-based Spike Response Model: state variables and the
// time to the next spike are looked up in precomputed tables.
// It implements neuron.Model.
type Model struct {
	Nm     string  `desc:"name of the model"`
	Config *Config `desc:"tables and variable layout, shared by all neurons of this model"`
	Params Params  `view:"inline" desc:"model constants"`
}

var _ neuron.Model = (*Model)(nil)

// NewModel returns a new model using given configuration, with default parameters.
func NewModel(name string, cf *Config) *Model {
	md := &Model{Nm: name, Config: cf}
	md.Defaults()
	return md
}

// Defaults sets default parameters.
func (md *Model) Defaults() {
	md.Params.Defaults()
}

// Update must be called after any changes to parameters.
func (md *Model) Update() {
	md.Params.Update()
}

func (md *Model) Name() string { return md.Nm }

// InitState returns a copy of the initial state of the configuration.
func (md *Model) InitState() *neuron.State {
	return md.Config.Initial.Clone()
}

// NumSynapseTypes returns the number of synaptic variables of the configuration.
func (md *Model) NumSynapseTypes() int {
	return len(md.Config.SynapticVars)
}

// ApplySynapse adds the weight of syn, times SynGain, to the state
// variable of its synapse type. The decay of the input over time comes
// from the time dependent tables. syn.Type must be a valid synapse type.
func (md *Model) ApplySynapse(st *neuron.State, syn *neuron.Synapse) {
	idx := md.Config.SynapticVars[syn.Type] + 1
	st.Vars[idx] += syn.Weight * md.Params.SynGain
	st.Version++
}

// Advance recomputes all state variables for time t, time dependent ones
// first, each from its table at the current state.
func (md *Model) Advance(st *neuron.State, t float64) {
	cf := md.Config
	st.AddElapsedTime(t - st.LastUpdate)
	for _, sv := range cf.StateVarOrder {
		st.Vars[sv+1] = cf.Tables[cf.StateVarTable[sv]].Query(st)
	}
	st.Elapsed = 0
	st.LastUpdate = t
}

// PredictNextFiring sets the last spike and seed state variables and
// returns the firing table value: the time from the last update to the
// next spike. Negative (or NaN) table values mean NoSpike.
func (md *Model) PredictNextFiring(st *neuron.State, rnd neuron.Rand) float64 {
	cf := md.Config
	st.Vars[cf.LastSpikeVar+1] = float32(st.TimeSinceSpike())
	st.Vars[cf.SeedVar+1] = float32(rnd.Intn(md.Params.SeedBuckets))
	pred := cf.Tables[cf.FiringTable].Query(st)
	if pred < 0 || math32.IsNaN(pred) {
		return neuron.NoSpike
	}
	return float64(pred)
}

// predict records the next spike prediction in the state and returns it as an event.
func (md *Model) predict(nrn *neuron.Neuron, rnd neuron.Rand) (neuron.Event, bool) {
	st := nrn.State
	pred := md.PredictNextFiring(st, rnd)
	if pred == neuron.NoSpike {
		st.NextSpike = neuron.NoSpike
		return neuron.Event{}, false
	}
	st.NextSpike = pred + st.LastUpdate
	return neuron.Event{Time: st.NextSpike, Neuron: nrn.Index, Version: st.Version}, true
}

// GenerateNextSpike advances the neuron to t, the time of the spike being
// processed, and returns its next predicted spike, if any.
func (md *Model) GenerateNextSpike(nrn *neuron.Neuron, t float64, rnd neuron.Rand) (neuron.Event, bool) {
	md.Advance(nrn.State, t)
	return md.predict(nrn, rnd)
}

// ProcessInputSpike advances the neuron to t, applies the input arriving
// over syn, and returns the new spike prediction, if any.
func (md *Model) ProcessInputSpike(nrn *neuron.Neuron, syn *neuron.Synapse, t float64, rnd neuron.Rand) (neuron.Event, bool) {
	md.Advance(nrn.State, t)
	md.ApplySynapse(nrn.State, syn)
	return md.predict(nrn, rnd)
}

// EndRefractoryPeriod returns 0: refractoriness is part of the firing table.
func (md *Model) EndRefractoryPeriod(st *neuron.State) float64 {
	return 0
}
