// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lut

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chewxy/math32"
	"github.com/emer/tablesnn/mfile"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-5)

type testSource struct {
	vars    []float32
	elapsed float32
}

func (ts *testSource) VarAt(idx int) float32  { return ts.vars[idx] }
func (ts *testSource) ElapsedTime() float32 { return ts.elapsed }

// table2D is 3 x 2 over (elapsed, slot 1) with value = 10*t + v
func table2D(t *testing.T) *Table {
	dims := []Dim{
		{Var: 0, Coords: []float32{0, 1, 2}},
		{Var: 1, Coords: []float32{0, 10}},
	}
	vals := []float32{
		0, 10,
		10, 20,
		20, 30,
	}
	tb, err := New(dims, vals)
	if err != nil {
		t.Fatal(err)
	}
	return tb
}

func TestQueryMultilinear(t *testing.T) {
	tb := table2D(t)
	if !tb.TimeDependent() {
		t.Errorf("table with elapsed axis must be time dependent")
	}
	if tb.MaxVar() != 1 {
		t.Errorf("MaxVar: got %d want 1", tb.MaxVar())
	}
	cases := []struct {
		el, v, want float32
	}{
		{0, 0, 0},
		{2, 10, 30},
		{1, 0, 10},
		{0.5, 5, 10},
		{1.25, 2.5, 15},
		{-3, 0, 0},     // clamped below
		{5, 20, 30},    // clamped above
		{1.5, -100, 15}, // clamped on state axis only
	}
	src := &testSource{vars: []float32{0, 0}}
	for i, c := range cases {
		src.elapsed = c.el
		src.vars[1] = c.v
		got := tb.Query(src)
		if dif := math32.Abs(got - c.want); dif > difTol {
			t.Errorf("case %d: t: %g v: %g got: %g want: %g", i, c.el, c.v, got, c.want)
		}
	}
}

func TestQuerySingleSample(t *testing.T) {
	dims := []Dim{
		{Var: 2, Coords: []float32{3}},
		{Var: 1, Coords: []float32{0, 1}},
	}
	tb, err := New(dims, []float32{4, 8})
	if err != nil {
		t.Fatal(err)
	}
	if tb.TimeDependent() {
		t.Errorf("state-only table is not time dependent")
	}
	src := &testSource{vars: []float32{0, 0.25, 100}}
	if got := tb.Query(src); math32.Abs(got-5) > difTol {
		t.Errorf("got %g want 5", got)
	}
}

func TestQueryReadOnly(t *testing.T) {
	tb := table2D(t)
	before := append([]float32(nil), tb.Values.Values...)
	src := &testSource{vars: []float32{0, 7}, elapsed: 1.3}
	for i := 0; i < 10; i++ {
		tb.Query(src)
	}
	for i := range before {
		if before[i] != tb.Values.Values[i] {
			t.Fatalf("query modified sample %d", i)
		}
	}
}

func TestNewCopiesDims(t *testing.T) {
	dims := []Dim{{Var: 1, Coords: []float32{0, 10}}}
	tb, err := New(dims, []float32{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	dims[0].Coords[1] = 100
	dims[0].Var = 2
	src := &testSource{vars: []float32{0, 5, 50}}
	if got := tb.Query(src); math32.Abs(got-0.5) > difTol {
		t.Errorf("caller edits changed the table: got %g want 0.5", got)
	}
	if tb.DimAt(0).Var != 1 || tb.DimAt(0).Range.Max != 10 {
		t.Errorf("dimension changed: %+v", *tb.DimAt(0))
	}
}

func TestNewErrors(t *testing.T) {
	cases := []struct {
		dims  []Dim
		vals  []float32
		field mfile.Fields
	}{
		{nil, nil, mfile.TableDims},
		{[]Dim{{Var: 0, Coords: []float32{0, 1}}}, []float32{1}, mfile.TableValue},
		{[]Dim{{Var: 0, Coords: nil}}, nil, mfile.TableDimSize},
		{[]Dim{{Var: 0, Coords: []float32{1, 1}}}, []float32{1, 2}, mfile.TableCoord},
		{[]Dim{{Var: -1, Coords: []float32{1}}}, []float32{1}, mfile.TableDimVar},
	}
	for i, c := range cases {
		_, err := New(c.dims, c.vals)
		er, ok := mfile.AsError(err)
		if !ok {
			t.Errorf("case %d: expected *mfile.Error, got %v", i, err)
			continue
		}
		if er.Kind != mfile.FormatErr || er.Field != c.field {
			t.Errorf("case %d: got %v / %v want FormatErr / %v", i, er.Kind, er.Field, c.field)
		}
	}
}

func TestLoadWrite(t *testing.T) {
	src := `// psp table
2
0 3 0 1 2
1 2 0 10
0 10
10 20
20 30
`
	sc := mfile.NewScanner(strings.NewReader(src), "tbl")
	tb, err := Load(sc)
	if err != nil {
		t.Fatal(err)
	}
	ref := table2D(t)
	if tb.Len() != ref.Len() || tb.NumDims() != 2 {
		t.Fatalf("bad shape: %v", tb.Values.Shapes())
	}
	for i, v := range ref.Values.Values {
		if tb.Values.Values[i] != v {
			t.Errorf("value %d: got %g want %g", i, tb.Values.Values[i], v)
		}
	}
	if tb.DimAt(0).Axis() != ElapsedTime || tb.DimAt(1).Axis() != StateVar {
		t.Errorf("bad axis kinds: %v %v", tb.DimAt(0).Axis(), tb.DimAt(1).Axis())
	}

	var buf bytes.Buffer
	if err := tb.Write(&buf); err != nil {
		t.Fatal(err)
	}
	tb2, err := Load(mfile.NewScanner(&buf, "rt"))
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range tb.Values.Values {
		if tb2.Values.Values[i] != v {
			t.Errorf("round trip value %d: got %g want %g", i, tb2.Values.Values[i], v)
		}
	}
	for d := range tb.Dims {
		if tb2.Dims[d].Var != tb.Dims[d].Var || tb2.Dims[d].N() != tb.Dims[d].N() {
			t.Errorf("round trip dim %d differs", d)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		src   string
		field mfile.Fields
		line  int
	}{
		{"0\n", mfile.TableDims, 1},
		{"1\n0 2 0 1\n5\n", mfile.TableValue, 4},
		{"1\n0 2 1 0\n5 6\n", mfile.TableCoord, 3},
		{"1\n0 0\n", mfile.TableDimSize, 2},
		{"1\n0 2 0 x\n", mfile.TableCoord, 2},
	}
	for i, c := range cases {
		_, err := Load(mfile.NewScanner(strings.NewReader(c.src), "bad"))
		er, ok := mfile.AsError(err)
		if !ok {
			t.Errorf("case %d: expected *mfile.Error, got %v", i, err)
			continue
		}
		if er.Field != c.field || er.Line != c.line || er.File != "bad" {
			t.Errorf("case %d: got field %v line %d, want %v line %d", i, er.Field, er.Line, c.field, c.line)
		}
	}
}
