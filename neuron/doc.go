// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package neuron defines the per-neuron state, the spike events and the
capability set that every event-driven neuron model implements.

A Model is shared by all the neurons of one type and never mutated while
simulating: all per-neuron changes go into the State owned by each Neuron.
This is what allows neurons to be updated in parallel, provided each State
is only touched by one goroutine at a time.
*/
package neuron
