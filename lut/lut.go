// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lut provides the N-dimensional lookup tables that table-based neuron
models use in place of numerical integration.

Each dimension of a table is bound either to the elapsed time since the last
state update or to one slot of the neuron state vector, and a query
multilinearly interpolates the precomputed samples at the current state.
Coordinates outside the sampled range are clamped to the nearest edge.
Tables are read-only once constructed, so one table can be shared by every
neuron of a model, across goroutines.
*/
package lut

import (
	"io"
	"sort"
	"strconv"

	"github.com/emer/etable/etensor"
	"github.com/emer/etable/minmax"
	"github.com/emer/tablesnn/mfile"
	"github.com/goki/ki/ints"
	"github.com/goki/ki/kit"
	"github.com/goki/mat32"
)

// MaxDims is the maximum number of dimensions of a table.
const MaxDims = 16

// AxisKinds are the kinds of input a table dimension can be bound to.
type AxisKinds int32

//go:generate stringer -type=AxisKinds

var KiT_AxisKinds = kit.Enums.AddEnum(AxisKindsN, kit.NotBitFlag, nil)

func (ev AxisKinds) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *AxisKinds) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// ElapsedTime dimensions read the time elapsed since the last state update.
	ElapsedTime AxisKinds = iota

	// StateVar dimensions read one slot of the state vector.
	StateVar

	AxisKindsN
)

// Source provides the inputs of a table query.
type Source interface {
	// VarAt returns the state vector slot at given index.
	VarAt(idx int) float32

	// ElapsedTime returns the time elapsed since the last state update.
	ElapsedTime() float32
}

// Lookup is a read-only table that can be queried against a Source.
type Lookup interface {
	// Query returns the interpolated table value at the current inputs.
	Query(src Source) float32

	// NumDims returns the number of dimensions.
	NumDims() int

	// DimAt returns the descriptor of dimension i.
	DimAt(i int) *Dim

	// TimeDependent returns true if any dimension is on the elapsed time axis.
	TimeDependent() bool

	// MemBytes returns the memory used by the table data.
	MemBytes() int

	// Write writes the table in the text format read by Load.
	Write(w io.Writer) error
}

// Dim describes one table dimension.
type Dim struct {
	Var    int        `desc:"input selector: 0 = elapsed time, v > 0 = state vector slot v (state variable v-1)"`
	Coords []float32  `desc:"strictly increasing sample coordinates"`
	Range  minmax.F32 `desc:"first and last coordinate, used for clamping"`
}

// Axis returns the kind of input of this dimension.
func (dm *Dim) Axis() AxisKinds {
	if dm.Var == 0 {
		return ElapsedTime
	}
	return StateVar
}

// N returns the number of samples.
func (dm *Dim) N() int { return len(dm.Coords) }

// Update sets the Range from the Coords.
func (dm *Dim) Update() {
	if len(dm.Coords) == 0 {
		return
	}
	dm.Range.Min = dm.Coords[0]
	dm.Range.Max = dm.Coords[len(dm.Coords)-1]
}

// Coord returns the coordinate of this dimension for the given source.
func (dm *Dim) Coord(src Source) float32 {
	if dm.Var == 0 {
		return src.ElapsedTime()
	}
	return src.VarAt(dm.Var)
}

// Locate returns the index of the sample at or below x and the fractional
// position of x toward the next sample, clamping x to the sampled range.
func (dm *Dim) Locate(x float32) (int, float32) {
	n := len(dm.Coords)
	if n < 2 {
		return 0, 0
	}
	x = dm.Range.ClipVal(x)
	i := sort.Search(n, func(i int) bool { return dm.Coords[i] > x }) - 1
	i = ints.MinInt(ints.MaxInt(i, 0), n-2)
	lo, hi := dm.Coords[i], dm.Coords[i+1]
	fr := (x - lo) / (hi - lo)
	return i, mat32.Min(mat32.Max(fr, 0), 1)
}

// Table is a multilinearly interpolated lookup table.
// Values are stored row-major, the last dimension varying fastest.
type Table struct {
	Dims   []Dim            `desc:"dimension descriptors, fixed at construction"`
	Values *etensor.Float32 `desc:"samples, shaped by the dimension sample counts"`

	strides []int
}

// New returns a new table over the given dimensions and samples, both copied.
// It returns a FormatErr if the sample counts do not match the data.
func New(dims []Dim, vals []float32) (*Table, error) {
	nd := len(dims)
	if nd == 0 || nd > MaxDims {
		return nil, mfile.FormatError("", 0, mfile.TableDims, "number of dimensions %d out of range 1..%d", nd, MaxDims)
	}
	dims = append([]Dim(nil), dims...)
	for d := range dims {
		dims[d].Coords = append([]float32(nil), dims[d].Coords...)
	}
	shape := make([]int, nd)
	names := make([]string, nd)
	total := 1
	for d := range dims {
		dm := &dims[d]
		if dm.Var < 0 {
			return nil, mfile.FormatError("", 0, mfile.TableDimVar, "dimension %d: negative input selector %d", d, dm.Var)
		}
		n := dm.N()
		if n == 0 {
			return nil, mfile.FormatError("", 0, mfile.TableDimSize, "dimension %d has no samples", d)
		}
		for i := 1; i < n; i++ {
			if !(dm.Coords[i] > dm.Coords[i-1]) {
				return nil, mfile.FormatError("", 0, mfile.TableCoord, "dimension %d: coordinates must be strictly increasing (sample %d)", d, i)
			}
		}
		dm.Update()
		shape[d] = n
		names[d] = dimName(dm)
		total *= n
	}
	if total != len(vals) {
		return nil, mfile.FormatError("", 0, mfile.TableValue, "table declares %d samples but %d values were given", total, len(vals))
	}
	tb := &Table{Dims: dims}
	tb.Values = etensor.NewFloat32(shape, nil, names)
	copy(tb.Values.Values, vals)
	tb.strides = make([]int, nd)
	st := 1
	for d := nd - 1; d >= 0; d-- {
		tb.strides[d] = st
		st *= shape[d]
	}
	return tb, nil
}

func dimName(dm *Dim) string {
	if dm.Var == 0 {
		return "t"
	}
	return "v" + strconv.Itoa(dm.Var)
}

// NumDims returns the number of dimensions.
func (tb *Table) NumDims() int { return len(tb.Dims) }

// DimAt returns the descriptor of dimension i.
func (tb *Table) DimAt(i int) *Dim { return &tb.Dims[i] }

// TimeDependent returns true if any dimension is on the elapsed time axis.
func (tb *Table) TimeDependent() bool {
	for d := range tb.Dims {
		if tb.Dims[d].Axis() == ElapsedTime {
			return true
		}
	}
	return false
}

// MaxVar returns the largest state vector slot read by the table, 0 if none.
func (tb *Table) MaxVar() int {
	mx := 0
	for d := range tb.Dims {
		mx = ints.MaxInt(mx, tb.Dims[d].Var)
	}
	return mx
}

// Len returns the number of samples.
func (tb *Table) Len() int { return tb.Values.Len() }

// MemBytes returns the memory used by the samples and coordinates.
func (tb *Table) MemBytes() int {
	n := tb.Values.Len()
	for d := range tb.Dims {
		n += tb.Dims[d].N()
	}
	return 4 * n
}

// Query returns the table value at the inputs given by src,
// interpolating multilinearly between the 2^ndims surrounding samples.
func (tb *Table) Query(src Source) float32 {
	var idx [MaxDims]int
	var fr [MaxDims]float32
	nd := len(tb.Dims)
	for d := 0; d < nd; d++ {
		dm := &tb.Dims[d]
		idx[d], fr[d] = dm.Locate(dm.Coord(src))
	}
	vals := tb.Values.Values
	var sum float32
	for corner := 0; corner < 1<<nd; corner++ {
		w := float32(1)
		off := 0
		for d := 0; d < nd; d++ {
			i := idx[d]
			if corner&(1<<d) != 0 {
				i++
				w *= fr[d]
			} else {
				w *= 1 - fr[d]
			}
			if w == 0 {
				break
			}
			off += i * tb.strides[d]
		}
		if w == 0 {
			continue
		}
		sum += w * vals[off]
	}
	return sum
}
