// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"io"
	"os"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
)

// SpikeLog records the spikes emitted during a run, one row per spike.
type SpikeLog struct {
	Table *etable.Table `desc:"spike table: Time, Neuron and Input columns"`
}

// NewSpikeLog returns a new empty spike log.
func NewSpikeLog() *SpikeLog {
	sl := &SpikeLog{Table: &etable.Table{}}
	sl.Table.SetMetaData("name", "Spikes")
	sl.Table.SetMetaData("desc", "spikes emitted, in time order")
	sl.Reset()
	return sl
}

// Reset removes all the rows.
func (sl *SpikeLog) Reset() {
	sch := etable.Schema{
		{"Time", etensor.FLOAT64, nil, nil},
		{"Neuron", etensor.INT64, nil, nil},
		{"Input", etensor.INT64, nil, nil},
	}
	sl.Table.SetFromSchema(sch, 0)
}

// Len returns the number of spikes logged.
func (sl *SpikeLog) Len() int { return sl.Table.Rows }

// Add logs a spike of neuron ni at time t. input is true for external input spikes.
func (sl *SpikeLog) Add(t float64, ni int, input bool) {
	dt := sl.Table
	row := dt.Rows
	dt.AddRows(1)
	dt.SetCellFloat("Time", row, t)
	dt.SetCellFloat("Neuron", row, float64(ni))
	inp := 0.0
	if input {
		inp = 1
	}
	dt.SetCellFloat("Input", row, inp)
}

// Spike returns the time and neuron of the spike logged at row.
func (sl *SpikeLog) Spike(row int) (float64, int) {
	return sl.Table.CellFloat("Time", row), int(sl.Table.CellFloat("Neuron", row))
}

// WriteCSV writes the spikes as tab separated values with a header row.
func (sl *SpikeLog) WriteCSV(w io.Writer) error {
	return sl.Table.WriteCSV(w, etable.Tab, etable.Headers)
}

// SaveCSV writes the spikes to the given file.
func (sl *SpikeLog) SaveCSV(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := sl.WriteCSV(fp); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}
