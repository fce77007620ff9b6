// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron

import "fmt"

// Event is a spike predicted by a neuron model for its own neuron.
type Event struct {

	// absolute time of the spike
	Time float64

	// index of the neuron that fires
	Neuron int

	// State.Version of the neuron when the spike was predicted
	Version uint64
}

func (ev Event) String() string {
	return fmt.Sprintf("spike n%d @ %g (v%d)", ev.Neuron, ev.Time, ev.Version)
}

// Synapse is one connection from a neuron to a target neuron.
type Synapse struct {

	// synapse type, selecting the state variable the input accumulates into
	Type int

	// connection weight
	Weight float32

	// index of the receiving neuron
	Target int
}
