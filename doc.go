// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package tablesnn is the overall repository for an event-driven spiking neural
network simulator where the state and the next firing time of each neuron are
looked up in precomputed tables instead of integrated at fixed time steps.

This top-level of the repository has no functional code -- everything is organized
into the following sub-repositories:

* lut: multidimensional lookup tables with multilinear interpolation, read from
the text model definition format.

* neuron: the per-neuron state, the spike events and the Model interface every
neuron model implements.

* mfile: the tokenizer and the structured errors of model definition and input files.

* srm: the table-based Spike Response Model: configuration loading, state variable
ordering and the event generation engine.

* sim: the global event queue, networks of neurons, input spikes and the spike log.

* examples: these compile into runnable programs. examples/srmsim runs a random
network of the built-in example model, or of any model definition file.
*/
package tablesnn
