// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lut

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/emer/tablesnn/mfile"
)

// Load reads one table description from sc:
// the number of dimensions; per dimension its input selector (0 = elapsed
// time, v > 0 = state vector slot v), its number of samples and the sample
// coordinates; then all the sample values, last dimension varying fastest.
func Load(sc *mfile.Scanner) (*Table, error) {
	sc.SkipComments()
	nd, err := sc.Uint(mfile.TableDims)
	if err != nil {
		return nil, err
	}
	if nd == 0 || nd > MaxDims {
		return nil, mfile.FormatError(sc.File, sc.Line(), mfile.TableDims, "number of dimensions %d out of range 1..%d", nd, MaxDims)
	}
	dims := make([]Dim, nd)
	total := 1
	for d := range dims {
		sc.SkipComments()
		if dims[d].Var, err = sc.Uint(mfile.TableDimVar); err != nil {
			return nil, err
		}
		n, err := sc.Uint(mfile.TableDimSize)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, mfile.FormatError(sc.File, sc.Line(), mfile.TableDimSize, "dimension %d has no samples", d)
		}
		dims[d].Coords = make([]float32, n)
		for i := range dims[d].Coords {
			if dims[d].Coords[i], err = sc.Float32(mfile.TableCoord); err != nil {
				return nil, err
			}
		}
		total *= n
	}
	sc.SkipComments()
	vals := make([]float32, total)
	for i := range vals {
		if vals[i], err = sc.Float32(mfile.TableValue); err != nil {
			return nil, err
		}
	}
	tb, err := New(dims, vals)
	if err != nil {
		if er, ok := mfile.AsError(err); ok {
			er.File = sc.File
			er.Line = sc.Line()
		}
		return nil, err
	}
	return tb, nil
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// Write writes the table in the text format read by Load,
// one line per dimension and one line of values per run of the last dimension.
func (tb *Table) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(tb.Dims))
	for d := range tb.Dims {
		dm := &tb.Dims[d]
		fmt.Fprintf(bw, "%d %d", dm.Var, dm.N())
		for _, c := range dm.Coords {
			bw.WriteString(" " + formatFloat(c))
		}
		bw.WriteString("\n")
	}
	row := tb.Dims[len(tb.Dims)-1].N()
	for i, v := range tb.Values.Values {
		if i%row != 0 {
			bw.WriteString(" ")
		}
		bw.WriteString(formatFloat(v))
		if (i+1)%row == 0 {
			bw.WriteString("\n")
		}
	}
	return bw.Flush()
}
