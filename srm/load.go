// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/emer/tablesnn/lut"
	"github.com/emer/tablesnn/mfile"
	"github.com/emer/tablesnn/neuron"
)

// OpenConfig loads a model configuration from the given file.
func OpenConfig(filename string) (*Config, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, mfile.IOError(filename, 0, err)
	}
	defer fp.Close()
	return Load(fp, filename)
}

// Load reads a model definition from r. The fields are, in order:
// the number of state variables N; the table index of each state variable;
// the initial value of each state variable; the firing table index;
// the number of synapse types S; the state variable of each synapse type;
// the last spike state variable; the seed state variable; the number of
// tables T; and T table descriptions (see lut.Load). Comment lines may
// precede each group of fields. file names the source in errors.
// Nothing is returned unless the whole configuration is valid.
func Load(r io.Reader, file string) (*Config, error) {
	sc := mfile.NewScanner(r, file)
	cf := &Config{File: file}
	var err error

	sc.SkipComments()
	if cf.NumStateVars, err = sc.Uint(mfile.NumStateVars); err != nil {
		return nil, err
	}
	if cf.NumStateVars == 0 {
		return nil, mfile.FormatError(file, sc.Line(), mfile.NumStateVars, "model needs at least one state variable")
	}
	cf.StateVarTable = make([]int, cf.NumStateVars)
	sc.SkipComments()
	for sv := range cf.StateVarTable {
		if cf.StateVarTable[sv], err = sc.Uint(mfile.StateVarTable); err != nil {
			return nil, err
		}
	}

	cf.Initial = neuron.NewState(cf.NumVars())
	sc.SkipComments()
	for sv := 0; sv < cf.NumStateVars; sv++ {
		if cf.Initial.Vars[sv+1], err = sc.Float32(mfile.InitValue); err != nil {
			return nil, err
		}
	}

	sc.SkipComments()
	if cf.FiringTable, err = sc.Uint(mfile.FiringTable); err != nil {
		return nil, err
	}
	sc.SkipComments()
	nsyn, err := sc.Uint(mfile.NumSynapticVars)
	if err != nil {
		return nil, err
	}
	cf.SynapticVars = make([]int, nsyn)
	sc.SkipComments()
	for st := range cf.SynapticVars {
		if cf.SynapticVars[st], err = sc.Uint(mfile.SynapticVar); err != nil {
			return nil, err
		}
	}
	sc.SkipComments()
	if cf.LastSpikeVar, err = sc.Uint(mfile.LastSpikeVar); err != nil {
		return nil, err
	}
	sc.SkipComments()
	if cf.SeedVar, err = sc.Uint(mfile.SeedVar); err != nil {
		return nil, err
	}

	sc.SkipComments()
	nt, err := sc.Uint(mfile.NumTables)
	if err != nil {
		return nil, err
	}
	tables := make([]lut.Lookup, nt)
	for ti := range tables {
		tb, err := lut.Load(sc)
		if err != nil {
			return nil, fmt.Errorf("table %d: %w", ti, err)
		}
		tables[ti] = tb
	}
	if !sc.AtEOF() {
		tok, _ := sc.Token()
		return nil, mfile.FormatError(file, sc.Line(), mfile.TableValue, "unexpected %q after the last table: more values than its dimensions declare", tok)
	}
	cf.Tables = tables
	if err := cf.Build(); err != nil {
		return nil, err
	}
	return cf, nil
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// Write writes the configuration in the format read by Load.
func (cf *Config) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "// number of state variables\n%d\n", cf.NumStateVars)
	bw.WriteString("// table of each state variable\n")
	for sv, ti := range cf.StateVarTable {
		if sv > 0 {
			bw.WriteString(" ")
		}
		bw.WriteString(strconv.Itoa(ti))
	}
	bw.WriteString("\n// initial values\n")
	for sv := 0; sv < cf.NumStateVars; sv++ {
		if sv > 0 {
			bw.WriteString(" ")
		}
		bw.WriteString(formatFloat(cf.Initial.Vars[sv+1]))
	}
	fmt.Fprintf(bw, "\n// firing table\n%d\n", cf.FiringTable)
	fmt.Fprintf(bw, "// number of synaptic variables\n%d\n// synaptic variables\n", len(cf.SynapticVars))
	for st, sv := range cf.SynapticVars {
		if st > 0 {
			bw.WriteString(" ")
		}
		bw.WriteString(strconv.Itoa(sv))
	}
	fmt.Fprintf(bw, "\n// last spike variable\n%d\n", cf.LastSpikeVar)
	fmt.Fprintf(bw, "// seed variable\n%d\n", cf.SeedVar)
	fmt.Fprintf(bw, "// number of tables\n%d\n", len(cf.Tables))
	for ti, tb := range cf.Tables {
		fmt.Fprintf(bw, "// table %d\n", ti)
		if err := bw.Flush(); err != nil {
			return err
		}
		if err := tb.Write(w); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveConfig writes the configuration to the given file.
func (cf *Config) SaveConfig(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := cf.Write(fp); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}
