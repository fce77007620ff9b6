// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/c2h5oh/datasize"
	"github.com/emer/emergent/prjn"
	"github.com/emer/etable/etensor"
	"github.com/emer/tablesnn/neuron"
)

// Pop is a population: a contiguous range of neurons sharing one model.
type Pop struct {
	Nm    string       `desc:"name of the population"`
	Model neuron.Model `desc:"model of all the neurons in the population"`
	St    int          `desc:"index of the first neuron"`
	N     int          `desc:"number of neurons"`
}

// Network holds the neurons and their outgoing connections.
type Network struct {
	Nm      string           `desc:"name of the network"`
	Pops    []*Pop           `desc:"populations, in order of creation"`
	Neurons []*neuron.Neuron `desc:"all the neurons, indexed by neuron.Neuron.Index"`
}

// NewNetwork returns a new empty network.
func NewNetwork(name string) *Network {
	return &Network{Nm: name}
}

// AddPop adds a population of n neurons using given model.
func (nt *Network) AddPop(name string, md neuron.Model, n int) *Pop {
	pop := &Pop{Nm: name, Model: md, St: len(nt.Neurons), N: n}
	for i := 0; i < n; i++ {
		nt.Neurons = append(nt.Neurons, neuron.NewNeuron(pop.St+i, md))
	}
	nt.Pops = append(nt.Pops, pop)
	return pop
}

// PopByName returns the population of given name, or nil.
func (nt *Network) PopByName(name string) *Pop {
	for _, pop := range nt.Pops {
		if pop.Nm == name {
			return pop
		}
	}
	return nil
}

// NumNeurons returns the total number of neurons.
func (nt *Network) NumNeurons() int { return len(nt.Neurons) }

// NumSynapses returns the total number of connections.
func (nt *Network) NumSynapses() int {
	ns := 0
	for _, nrn := range nt.Neurons {
		ns += len(nrn.Out)
	}
	return ns
}

// checkType returns an error if typ is not a synapse type of the model of neuron recv.
func (nt *Network) checkType(recv, typ int) error {
	md := nt.Neurons[recv].Model
	if typ < 0 || typ >= md.NumSynapseTypes() {
		return fmt.Errorf("sim.Network: synapse type %d onto neuron %d, model %s has %d synapse types", typ, recv, md.Name(), md.NumSynapseTypes())
	}
	return nil
}

// Connect adds a synapse of given type and weight from neuron send to neuron recv.
func (nt *Network) Connect(send, recv, typ int, wt float32) error {
	nn := len(nt.Neurons)
	if send < 0 || send >= nn || recv < 0 || recv >= nn {
		return fmt.Errorf("sim.Network Connect: neuron %d -> %d out of range 0..%d", send, recv, nn-1)
	}
	if err := nt.checkType(recv, typ); err != nil {
		return err
	}
	sn := nt.Neurons[send]
	sn.Out = append(sn.Out, neuron.Synapse{Type: typ, Weight: wt, Target: recv})
	return nil
}

// Shape returns the shape of the population, a 1D vector of its neurons.
func (pop *Pop) Shape() *etensor.Shape {
	sh := &etensor.Shape{}
	sh.SetShape([]int{pop.N}, nil, []string{pop.Nm})
	return sh
}

// ConnectRandom connects each neuron of recv to a uniformly random subset of
// the neurons of send, a proportion p of them, excluding self connections.
// seed makes the pattern reproducible. Returns the number of synapses made.
func (nt *Network) ConnectRandom(send, recv *Pop, p float32, typ int, wt float32, seed int64) (int, error) {
	if recv.N == 0 || send.N == 0 {
		return 0, nil
	}
	if err := nt.checkType(recv.St, typ); err != nil {
		return 0, err
	}
	if p <= 0 {
		return 0, nil
	}
	pat := prjn.NewUnifRnd()
	pat.PCon = p
	pat.SelfCon = false
	pat.RndSeed = seed
	_, _, cons := pat.Connect(send.Shape(), recv.Shape(), send == recv)
	cbits := cons.Values
	n := 0
	for si := 0; si < send.N; si++ {
		sn := nt.Neurons[send.St+si]
		for ri := 0; ri < recv.N; ri++ {
			if !cbits.Index(ri*send.N + si) { // no connection
				continue
			}
			sn.Out = append(sn.Out, neuron.Synapse{Type: typ, Weight: wt, Target: recv.St + ri})
			n++
		}
	}
	return n, nil
}

// InitStates resets all neurons to the initial state of their model.
func (nt *Network) InitStates() {
	for _, nrn := range nt.Neurons {
		nrn.State = nrn.Model.InitState()
	}
}

// SizeReport returns a string reporting the size of each population
// in the network, and total memory footprint.
func (nt *Network) SizeReport() string {
	var b strings.Builder
	neur := 0
	neurMem := 0
	syn := 0
	synMem := 0
	for _, pop := range nt.Pops {
		nmem := 0
		ns := 0
		for _, nrn := range nt.Neurons[pop.St : pop.St+pop.N] {
			nmem += int(unsafe.Sizeof(neuron.State{})) + 4*len(nrn.State.Vars)
			ns += len(nrn.Out)
		}
		smem := ns * int(unsafe.Sizeof(neuron.Synapse{}))
		neur += pop.N
		neurMem += nmem
		syn += ns
		synMem += smem
		fmt.Fprintf(&b, "%14s:\t Neurons: %d\t NeurMem: %v \t Syns: %d\t SynMem: %v\n", pop.Nm, pop.N, (datasize.ByteSize)(nmem).HumanReadable(), ns, (datasize.ByteSize)(smem).HumanReadable())
	}
	fmt.Fprintf(&b, "\n%14s:\t Neurons: %d\t NeurMem: %v \t Syns: %d \t SynMem: %v\n", nt.Nm, neur, (datasize.ByteSize)(neurMem).HumanReadable(), syn, (datasize.ByteSize)(synMem).HumanReadable())
	return b.String()
}
