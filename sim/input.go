// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"io"
	"os"
	"sort"

	"github.com/emer/tablesnn/mfile"
)

// InputSpike is an external spike emitted by a neuron at a given time.
type InputSpike struct {
	Time   float64
	Neuron int
}

// LoadInputs reads input spikes from r, one "time neuron" pair per line,
// with comment lines allowed anywhere. The result is sorted by time.
// file names the source in errors.
func LoadInputs(r io.Reader, file string) ([]InputSpike, error) {
	sc := mfile.NewScanner(r, file)
	var ins []InputSpike
	for !sc.AtEOF() {
		tm, err := sc.Float64(mfile.InputTime)
		if err != nil {
			return nil, err
		}
		if tm < 0 {
			return nil, mfile.FormatError(file, sc.Line(), mfile.InputTime, "negative input time %g", tm)
		}
		ni, err := sc.Uint(mfile.InputNeuron)
		if err != nil {
			return nil, err
		}
		ins = append(ins, InputSpike{Time: tm, Neuron: ni})
	}
	if sc.Err() != nil {
		return nil, mfile.IOError(file, sc.Line(), sc.Err())
	}
	SortInputs(ins)
	return ins, nil
}

// SortInputs sorts input spikes by time, keeping the order of equal times.
func SortInputs(ins []InputSpike) {
	sort.SliceStable(ins, func(i, j int) bool { return ins[i].Time < ins[j].Time })
}

// OpenInputs reads input spikes from the given file.
func OpenInputs(filename string) ([]InputSpike, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, mfile.IOError(filename, 0, err)
	}
	defer fp.Close()
	return LoadInputs(fp, filename)
}
