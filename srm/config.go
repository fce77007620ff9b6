// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package srm implements the table-based Spike Response Model: a neuron model whose
// state variables and time to the next spike are all read from precomputed tables,
// as described by a model definition file.
package srm

import (
	"fmt"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/emer/tablesnn/lut"
	"github.com/emer/tablesnn/mfile"
	"github.com/emer/tablesnn/neuron"
)

// NumExtraVars is the number of state vector slots beyond the state
// variables: slot 0 plus two bookkeeping slots.
const NumExtraVars = 3

// Config is the description of a table-based SRM neuron model,
// shared read-only by all the neurons of the model.
// Table fields are integer handles into Tables, checked by Build.
type Config struct {
	File             string        `desc:"file the configuration was loaded from, if any"`
	NumStateVars     int           `desc:"number of state variables"`
	StateVarTable    []int         `desc:"table computing each state variable"`
	StateVarOrder    []int         `desc:"order state variables are recomputed in: time dependent ones first"`
	NumTimeDependent int           `desc:"number of time dependent state variables, at the start of StateVarOrder"`
	FiringTable      int           `desc:"table predicting the time to the next spike"`
	SynapticVars     []int         `desc:"state variable receiving the input of each synapse type"`
	LastSpikeVar     int           `desc:"state variable set to the time since the last spike before predicting"`
	SeedVar          int           `desc:"state variable set to a random seed bucket before predicting"`
	Tables           []lut.Lookup  `desc:"all the tables of the model"`
	Initial          *neuron.State `desc:"initial state of every neuron"`
}

// NumVars returns the length of the state vector.
func (cf *Config) NumVars() int {
	return cf.NumStateVars + NumExtraVars
}

// Build validates all indexes of the configuration and computes the
// recomputation order. It returns a ContractErr if any index is out of range.
func (cf *Config) Build() error {
	if err := cf.Validate(); err != nil {
		return err
	}
	cf.Update()
	return nil
}

// Validate checks that every table handle and state slot is in range.
func (cf *Config) Validate() error {
	nt := len(cf.Tables)
	nv := cf.NumVars()
	if cf.NumStateVars <= 0 {
		return mfile.ContractError(cf.File, mfile.NumStateVars, "model has no state variables")
	}
	if len(cf.StateVarTable) != cf.NumStateVars {
		return mfile.ContractError(cf.File, mfile.StateVarTable, "%d table indexes for %d state variables", len(cf.StateVarTable), cf.NumStateVars)
	}
	for sv, ti := range cf.StateVarTable {
		if ti < 0 || ti >= nt {
			return mfile.ContractError(cf.File, mfile.StateVarTable, "state variable %d uses table %d, only %d tables defined", sv, ti, nt)
		}
	}
	if cf.FiringTable < 0 || cf.FiringTable >= nt {
		return mfile.ContractError(cf.File, mfile.FiringTable, "firing table %d, only %d tables defined", cf.FiringTable, nt)
	}
	for st, sv := range cf.SynapticVars {
		if sv < 0 || sv+1 >= nv {
			return mfile.ContractError(cf.File, mfile.SynapticVar, "synapse type %d uses state variable %d, out of range 0..%d", st, sv, nv-2)
		}
	}
	if cf.LastSpikeVar < 0 || cf.LastSpikeVar+1 >= nv {
		return mfile.ContractError(cf.File, mfile.LastSpikeVar, "state variable %d out of range 0..%d", cf.LastSpikeVar, nv-2)
	}
	if cf.SeedVar < 0 || cf.SeedVar+1 >= nv {
		return mfile.ContractError(cf.File, mfile.SeedVar, "state variable %d out of range 0..%d", cf.SeedVar, nv-2)
	}
	for ti, tb := range cf.Tables {
		for d := 0; d < tb.NumDims(); d++ {
			if v := tb.DimAt(d).Var; v >= nv {
				return mfile.ContractError(cf.File, mfile.TableDimVar, "table %d dimension %d reads state variable %d, out of range 0..%d", ti, d, v-1, nv-2)
			}
		}
	}
	if cf.Initial == nil || cf.Initial.NumVars() != nv {
		return mfile.ContractError(cf.File, mfile.InitValue, "initial state must have %d slots", nv)
	}
	return nil
}

// Update computes StateVarOrder and NumTimeDependent: state variables whose
// table has an elapsed time dimension come first, then all the others,
// each group in declaration order. Tables may read the current value of
// other state variables, so this evaluates time dependent variables before
// the variables that depend on them. Dependencies among the stationary
// variables themselves are not ordered.
func (cf *Config) Update() {
	cf.StateVarOrder = make([]int, 0, cf.NumStateVars)
	for sv, ti := range cf.StateVarTable {
		if cf.Tables[ti].TimeDependent() {
			cf.StateVarOrder = append(cf.StateVarOrder, sv)
		}
	}
	cf.NumTimeDependent = len(cf.StateVarOrder)
	for sv, ti := range cf.StateVarTable {
		if !cf.Tables[ti].TimeDependent() {
			cf.StateVarOrder = append(cf.StateVarOrder, sv)
		}
	}
}

// IsTimeDependent returns true if state variable sv has to be
// recomputed when time advances.
func (cf *Config) IsTimeDependent(sv int) bool {
	return cf.Tables[cf.StateVarTable[sv]].TimeDependent()
}

// SizeReport returns a string reporting the size of each table
// and the total memory footprint of the model.
func (cf *Config) SizeReport() string {
	var b strings.Builder
	tot := 0
	for ti, tb := range cf.Tables {
		mem := tb.MemBytes()
		tot += mem
		fmt.Fprintf(&b, "%8s %d:\t Dims: %d\t Mem: %v\n", "Table", ti, tb.NumDims(), datasize.ByteSize(mem).HumanReadable())
	}
	fmt.Fprintf(&b, "%8s:\t Tables: %d\t StateVars: %d\t TimeDep: %d\t Mem: %v\n", "Total", len(cf.Tables), cf.NumStateVars, cf.NumTimeDependent, datasize.ByteSize(tot).HumanReadable())
	return b.String()
}
