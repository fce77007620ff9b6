// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mfile

import (
	"errors"
	"fmt"

	"github.com/goki/ki/kit"
)

// Kinds are the broad classes of model-definition load failures.
type Kinds int32

//go:generate stringer -type=Kinds

var KiT_Kinds = kit.Enums.AddEnum(KindsN, kit.NotBitFlag, nil)

func (ev Kinds) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Kinds) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// FormatErr is a missing or malformed token at a given file location.
	FormatErr Kinds = iota

	// IOErr means the definition file could not be opened or read.
	IOErr

	// ContractErr is an out-of-range index into the tables or state slots,
	// detected once the whole file has been parsed.
	ContractErr

	KindsN
)

// Fields identify which field of a definition file a failure refers to.
type Fields int32

//go:generate stringer -type=Fields

var KiT_Fields = kit.Enums.AddEnum(FieldsN, kit.NotBitFlag, nil)

func (ev Fields) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Fields) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	ModelFile Fields = iota
	NumStateVars
	StateVarTable
	InitValue
	FiringTable
	NumSynapticVars
	SynapticVar
	LastSpikeVar
	SeedVar
	NumTables
	TableDims
	TableDimVar
	TableDimSize
	TableCoord
	TableValue
	InputTime
	InputNeuron

	FieldsN
)

// fieldCodes are the numeric codes reported to users, kept stable so that
// existing documentation of the definition format stays valid.
var fieldCodes = [FieldsN]int{
	ModelFile:       25,
	NumStateVars:    34,
	StateVarTable:   41,
	InitValue:       42,
	FiringTable:     35,
	NumSynapticVars: 36,
	SynapticVar:     40,
	LastSpikeVar:    46,
	SeedVar:         47,
	NumTables:       37,
	TableDims:       38,
	TableDimVar:     39,
	TableDimSize:    43,
	TableCoord:      44,
	TableValue:      45,
	InputTime:       60,
	InputNeuron:     61,
}

var repairs = [FieldsN]string{
	ModelFile:       "check that the model definition file exists and is readable",
	NumStateVars:    "the first field must be the number of state variables (a positive integer)",
	StateVarTable:   "give one table index per state variable",
	InitValue:       "give one initial value per state variable",
	FiringTable:     "give the index of the table used to predict the next firing",
	NumSynapticVars: "give the number of synaptic variables (synapse types)",
	SynapticVar:     "give one state variable index per synapse type",
	LastSpikeVar:    "give the state variable index that receives the time since the last spike",
	SeedVar:         "give the state variable index that receives the random seed value",
	NumTables:       "give the number of tables defined in the rest of the file",
	TableDims:       "each table starts with its number of dimensions",
	TableDimVar:     "each dimension starts with 0 (elapsed time) or a state variable number (1-based)",
	TableDimSize:    "give the number of samples of the dimension",
	TableCoord:      "give one increasing coordinate per dimension sample",
	TableValue:      "the table must contain one value per combination of dimension samples",
	InputTime:       "each input line is: time neuron",
	InputNeuron:     "each input line is: time neuron",
}

// Code returns the numeric code of the field.
func (fl Fields) Code() int {
	if fl < 0 || fl >= FieldsN {
		return 0
	}
	return fieldCodes[fl]
}

// Repair returns a remediation hint for a failure on this field.
func (fl Fields) Repair() string {
	if fl < 0 || fl >= FieldsN {
		return ""
	}
	return repairs[fl]
}

// Error is a structured model-definition load error.
// It names the file, line and field so the definition can be fixed
// without access to the source.
type Error struct {
	Kind  Kinds
	File  string
	Line  int
	Field Fields
	Msg   string
	Err   error
}

func (er *Error) Error() string {
	file := er.File
	if file == "" {
		file = "<input>"
	}
	s := fmt.Sprintf("%s error %d in %s", er.Kind, er.Field.Code(), file)
	if er.Line > 0 {
		s += fmt.Sprintf(" line %d", er.Line)
	}
	s += fmt.Sprintf(" (%s): %s", er.Field, er.Msg)
	if er.Err != nil {
		s += ": " + er.Err.Error()
	}
	return s
}

func (er *Error) Unwrap() error { return er.Err }

// Repair returns the remediation hint for the failed field.
func (er *Error) Repair() string { return er.Field.Repair() }

// FormatError returns a FormatErr for the given location and field.
func FormatError(file string, line int, field Fields, format string, args ...any) *Error {
	return &Error{Kind: FormatErr, File: file, Line: line, Field: field, Msg: fmt.Sprintf(format, args...)}
}

// ContractError returns a ContractErr for the given field.
func ContractError(file string, field Fields, format string, args ...any) *Error {
	return &Error{Kind: ContractErr, File: file, Field: field, Msg: fmt.Sprintf(format, args...)}
}

// IOError wraps an I/O failure on the given file.
func IOError(file string, line int, err error) *Error {
	return &Error{Kind: IOErr, File: file, Line: line, Field: ModelFile, Msg: "cannot read file", Err: err}
}

// IsKind reports whether err is (or wraps) an *Error of the given kind.
func IsKind(err error, kind Kinds) bool {
	var er *Error
	if !errors.As(err, &er) {
		return false
	}
	return er.Kind == kind
}

// AsError returns the *Error carried by err, if any.
func AsError(err error) (*Error, bool) {
	var er *Error
	ok := errors.As(err, &er)
	return er, ok
}
