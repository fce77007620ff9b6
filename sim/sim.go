// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package sim runs networks of event-driven neurons: a global queue of spike
events processed in time order, the network of neurons and their synapses,
external input spikes and the log of emitted spikes.

Each neuron has at most one valid pending spike: the one matching the
Version and NextSpike of its state. Any input changing the state bumps
its version, so earlier predictions are dropped as stale when they come
out of the queue, and the neuron is predicted again from its new state.
*/
package sim

import (
	"fmt"

	"github.com/emer/emergent/timer"
	"github.com/emer/tablesnn/mfile"
	"github.com/emer/tablesnn/neuron"
)

// Params are the simulation parameters
type Params struct {
	Until     float64 `def:"1" desc:"simulated time to run until, in seconds"`
	Seed      int64   `def:"1" desc:"seed of the per-neuron random sources"`
	Delay     float64 `def:"0.001" min:"0" desc:"transmission delay of every synapse"`
	MaxEvents int     `def:"100000000" desc:"maximum number of events processed by one Run -- 0 = no limit"`
}

func (sp *Params) Defaults() {
	sp.Until = 1
	sp.Seed = 1
	sp.Delay = 0.001
	sp.MaxEvents = 100000000
}

func (sp *Params) Update() {
	if sp.Delay < 0 {
		sp.Delay = 0
	}
}

// Stats are counts of the events processed
type Stats struct {
	Events   int `desc:"events processed"`
	Stale    int `desc:"spike predictions dropped because the neuron state changed"`
	Spikes   int `desc:"spikes fired by the neuron models"`
	Inputs   int `desc:"external input spikes"`
	Synapses int `desc:"synaptic spike deliveries"`
}

func (st *Stats) String() string {
	return fmt.Sprintf("Events: %d\t Spikes: %d\t Inputs: %d\t Synapses: %d\t Stale: %d", st.Events, st.Spikes, st.Inputs, st.Synapses, st.Stale)
}

// Sim is an event-driven simulation of a Network.
type Sim struct {
	Net    *Network      `desc:"the network being simulated"`
	Params Params        `view:"inline" desc:"simulation parameters"`
	Queue  Queue         `view:"-" desc:"pending events"`
	Log    *SpikeLog     `desc:"spikes emitted"`
	Stats  Stats         `desc:"event counts since Init"`
	Time   float64       `desc:"time of the last event processed"`
	RunTmr timer.Time    `view:"-" desc:"wall clock time spent in Run"`
	Inputs []InputSpike  `desc:"external input spikes, scheduled by Init"`
	rnds   []neuron.Rand `view:"-"`
}

// NewSim returns a new simulation of net with default parameters.
func NewSim(net *Network) *Sim {
	sm := &Sim{Net: net, Log: NewSpikeLog()}
	sm.Defaults()
	return sm
}

func (sm *Sim) Defaults() {
	sm.Params.Defaults()
}

// SetInputs sets the external input spikes, checking the neuron indexes.
func (sm *Sim) SetInputs(ins []InputSpike) error {
	nn := sm.Net.NumNeurons()
	for _, in := range ins {
		if in.Neuron >= nn || in.Neuron < 0 {
			return mfile.ContractError("", mfile.InputNeuron, "input spike at %g for neuron %d, network has %d neurons", in.Time, in.Neuron, nn)
		}
	}
	sm.Inputs = ins
	return nil
}

// Rand returns the random source of neuron ni.
func (sm *Sim) Rand(ni int) neuron.Rand {
	return sm.rnds[ni]
}

// Init resets the network states and the log, makes the first spike
// prediction of every neuron and schedules the input spikes.
func (sm *Sim) Init() {
	sm.Params.Update()
	nt := sm.Net
	nt.InitStates()
	sm.Queue.Reset()
	sm.Log.Reset()
	sm.Stats = Stats{}
	sm.Time = 0
	sm.RunTmr.Reset()
	sm.rnds = make([]neuron.Rand, nt.NumNeurons())
	for ni := range nt.Neurons {
		sm.rnds[ni] = neuron.NewPhiloxRand(uint64(sm.Params.Seed), uint32(ni))
	}
	for _, nrn := range nt.Neurons {
		sm.initPredict(nrn)
	}
	for _, in := range sm.Inputs {
		sm.Queue.Push(Item{Kind: InputEvent, Event: neuron.Event{Time: in.Time, Neuron: in.Neuron}})
	}
}

// initPredict schedules the spike predicted from the initial state of nrn, if any.
func (sm *Sim) initPredict(nrn *neuron.Neuron) {
	st := nrn.State
	pred := nrn.Model.PredictNextFiring(st, sm.rnds[nrn.Index])
	if pred == neuron.NoSpike {
		st.NextSpike = neuron.NoSpike
		return
	}
	st.NextSpike = st.LastUpdate + pred
	sm.schedule(neuron.Event{Time: st.NextSpike, Neuron: nrn.Index, Version: st.Version})
}

func (sm *Sim) schedule(ev neuron.Event) {
	sm.Queue.Push(Item{Kind: SpikeEvent, Event: ev})
}

// IsStale returns true if ev is no longer the pending spike of its neuron.
func (sm *Sim) IsStale(ev neuron.Event) bool {
	st := sm.Net.Neurons[ev.Neuron].State
	return ev.Version != st.Version || ev.Time != st.NextSpike
}

// Run processes all events up to and including time until.
// It returns an error if more than Params.MaxEvents events are needed.
func (sm *Sim) Run(until float64) error {
	sm.RunTmr.Start()
	defer sm.RunTmr.Stop()
	n := 0
	for {
		it, ok := sm.Queue.Peek()
		if !ok || it.Time() > until {
			return nil
		}
		if sm.Params.MaxEvents > 0 && n >= sm.Params.MaxEvents {
			return fmt.Errorf("sim.Run: more than %d events before time %g, stopped at %g", sm.Params.MaxEvents, until, sm.Time)
		}
		sm.Step()
		n++
	}
}

// Step processes the earliest pending event. The queue must not be empty.
func (sm *Sim) Step() {
	it := sm.Queue.Pop()
	sm.Time = it.Time()
	sm.Stats.Events++
	switch it.Kind {
	case SpikeEvent:
		if sm.IsStale(it.Event) {
			sm.Stats.Stale++
			return
		}
		nrn := sm.Net.Neurons[it.Event.Neuron]
		nrn.State.RecordSpike(sm.Time)
		sm.Stats.Spikes++
		sm.emit(nrn, false)
		if ev, ok := nrn.Model.GenerateNextSpike(nrn, sm.Time, sm.rnds[nrn.Index]); ok {
			sm.schedule(ev)
		}
	case InputEvent:
		sm.Stats.Inputs++
		sm.emit(sm.Net.Neurons[it.Event.Neuron], true)
	case SynapseEvent:
		sm.Stats.Synapses++
		tgt := sm.Net.Neurons[it.Syn.Target]
		if ev, ok := tgt.Model.ProcessInputSpike(tgt, it.Syn, sm.Time, sm.rnds[tgt.Index]); ok {
			sm.schedule(ev)
		}
	}
}

// emit logs a spike of nrn at the current time and schedules its
// arrival at the targets of all its outgoing synapses.
func (sm *Sim) emit(nrn *neuron.Neuron, input bool) {
	sm.Log.Add(sm.Time, nrn.Index, input)
	arrive := sm.Time + sm.Params.Delay
	for si := range nrn.Out {
		syn := &nrn.Out[si]
		sm.Queue.Push(Item{Kind: SynapseEvent, Event: neuron.Event{Time: arrive, Neuron: syn.Target}, Syn: syn})
	}
}

// TimerReport returns the number of events processed per second of wall clock time.
func (sm *Sim) TimerReport() string {
	secs := sm.RunTmr.TotalSecs()
	rate := 0.0
	if secs > 0 {
		rate = float64(sm.Stats.Events) / secs
	}
	return fmt.Sprintf("Took %6.4g secs for %d events, %6.4g events/sec", secs, sm.Stats.Events, rate)
}
