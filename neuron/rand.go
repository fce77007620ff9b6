// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron

import (
	"github.com/goki/gosl/slrand"
	"github.com/goki/gosl/sltype"
)

// Rand is the random source used by models. *rand.Rand implements it.
type Rand interface {
	// Intn returns a uniform random number in [0, n).
	Intn(n int) int
}

// PhiloxRand is a counter-based Philox2x32 random source.
// The numbers drawn depend only on the seed, the key and the number
// of draws, so giving each neuron its own key makes a run reproducible
// whatever order the neurons are updated in.
type PhiloxRand struct {
	Counter sltype.Uint2
	Key     uint32
}

// NewPhiloxRand returns a source for the given seed and key.
func NewPhiloxRand(seed uint64, key uint32) *PhiloxRand {
	return &PhiloxRand{Counter: sltype.Uint2{X: uint32(seed), Y: uint32(seed >> 32)}, Key: key}
}

// Uint32 returns the next uniform 32 bit value.
func (pr *PhiloxRand) Uint32() uint32 {
	return slrand.Uint32(&pr.Counter, pr.Key)
}

// Intn returns a uniform random number in [0, n). It panics if n <= 0.
func (pr *PhiloxRand) Intn(n int) int {
	if n <= 0 {
		panic("neuron: PhiloxRand.Intn: n <= 0")
	}
	return int(slrand.Uintn(&pr.Counter, pr.Key, uint32(n)))
}
