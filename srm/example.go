// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srm

import (
	"github.com/chewxy/math32"
	"github.com/emer/tablesnn/lut"
	"github.com/emer/tablesnn/neuron"
)

// ExampleParams are the parameters of the example model built by Example:
// a single exponentially decaying postsynaptic potential (PSP), a firing
// threshold, a fixed spike latency and an absolute refractory period.
// Times are in seconds.
type ExampleParams struct {
	Tau      float32 `def:"0.01" desc:"PSP decay time constant"`
	Thr      float32 `def:"1" desc:"PSP threshold above which the neuron fires"`
	Latency  float32 `def:"0.001" min:"0" desc:"delay between threshold crossing and spike"`
	Refract  float32 `def:"0.002" desc:"absolute refractory period"`
	Jitter   float32 `def:"0.0001" desc:"spike time jitter added per seed bucket"`
	PSPMax   float32 `def:"10" desc:"largest PSP value sampled in the tables"`
	TimeN    int     `def:"101" desc:"number of elapsed time samples of the PSP table"`
	PSPN     int     `def:"41" desc:"number of PSP samples of the firing table"`
	SinceN   int     `def:"21" desc:"number of time since last spike samples of the firing table"`
	SinceMax float32 `def:"1000" desc:"largest time since last spike represented"`
	Buckets  int     `def:"10" desc:"number of seed buckets"`
}

func (ep *ExampleParams) Defaults() {
	ep.Tau = 0.01
	ep.Thr = 1
	ep.Latency = 0.001
	ep.Refract = 0.002
	ep.Jitter = 0.0001
	ep.PSPMax = 10
	ep.TimeN = 101
	ep.PSPN = 41
	ep.SinceN = 21
	ep.SinceMax = 1000
	ep.Buckets = 10
}

// state variables of the example model
const (
	exPSP = iota
	exSince
	exSeed
)

func linspace(mn, mx float32, n int) []float32 {
	c := make([]float32, n)
	if n == 1 {
		c[0] = mn
		return c
	}
	for i := range c {
		c[i] = mn + (mx-mn)*float32(i)/float32(n-1)
	}
	return c
}

// FiringDelay returns the time to the next spike for given PSP, time since the
// last spike and seed bucket, or -1 if the neuron will not fire again
// without further input.
func (ep *ExampleParams) FiringDelay(psp, since float32, seed int) float32 {
	if psp <= ep.Thr {
		return -1
	}
	dt := math32.Max(ep.Latency, ep.Refract-since)
	if psp*math32.Exp(-dt/ep.Tau) <= ep.Thr {
		return -1
	}
	return dt + float32(seed)*ep.Jitter
}

// Example returns the configuration of a working three variable model:
// variable 0 is the PSP, decaying with Tau (table 0, time dependent),
// variable 1 receives the time since the last spike and variable 2 the
// seed bucket (identity tables 1 and 2), and table 3 gives the firing
// delay over (PSP, time since last spike, seed).
func Example(ep *ExampleParams) (*Config, error) {
	cf := &Config{
		NumStateVars:  3,
		StateVarTable: []int{0, 1, 2},
		FiringTable:   3,
		SynapticVars:  []int{exPSP},
		LastSpikeVar:  exSince,
		SeedVar:       exSeed,
		Initial:       neuron.NewState(3 + NumExtraVars),
	}
	tmax := 10 * ep.Tau
	tc := linspace(0, tmax, ep.TimeN)
	pc := []float32{-ep.PSPMax, ep.PSPMax}
	vals := make([]float32, 0, len(tc)*len(pc))
	for _, t := range tc {
		dec := math32.Exp(-t / ep.Tau)
		for _, p := range pc {
			vals = append(vals, p*dec)
		}
	}
	psp, err := lut.New([]lut.Dim{{Var: 0, Coords: tc}, {Var: exPSP + 1, Coords: pc}}, vals)
	if err != nil {
		return nil, err
	}
	since, err := lut.New([]lut.Dim{{Var: exSince + 1, Coords: []float32{0, ep.SinceMax}}}, []float32{0, ep.SinceMax})
	if err != nil {
		return nil, err
	}
	bmax := float32(ep.Buckets - 1)
	seed, err := lut.New([]lut.Dim{{Var: exSeed + 1, Coords: linspace(0, bmax, ep.Buckets)}}, linspace(0, bmax, ep.Buckets))
	if err != nil {
		return nil, err
	}

	fpc := linspace(0, ep.PSPMax, ep.PSPN)
	fsc := linspace(0, 2*ep.Refract, ep.SinceN)
	fbc := linspace(0, bmax, ep.Buckets)
	fvals := make([]float32, 0, len(fpc)*len(fsc)*len(fbc))
	for _, p := range fpc {
		for _, s := range fsc {
			for b := range fbc {
				fvals = append(fvals, ep.FiringDelay(p, s, b))
			}
		}
	}
	fire, err := lut.New([]lut.Dim{{Var: exPSP + 1, Coords: fpc}, {Var: exSince + 1, Coords: fsc}, {Var: exSeed + 1, Coords: fbc}}, fvals)
	if err != nil {
		return nil, err
	}
	cf.Tables = []lut.Lookup{psp, since, seed, fire}
	cf.Initial.Vars[exSince+1] = ep.SinceMax
	if err := cf.Build(); err != nil {
		return nil, err
	}
	return cf, nil
}
