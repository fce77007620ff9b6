// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mfile

import (
	"errors"
	"strings"
	"testing"
)

func TestScannerTokens(t *testing.T) {
	src := `// header comment
# another comment
3
1 2
  7.5
`
	sc := NewScanner(strings.NewReader(src), "tst.cfg")
	sc.SkipComments()
	n, err := sc.Uint(NumStateVars)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 || sc.Line() != 3 {
		t.Errorf("got n: %d line: %d, want 3, 3", n, sc.Line())
	}
	sc.SkipComments()
	for i, want := range []int{1, 2} {
		v, err := sc.Int(StateVarTable)
		if err != nil {
			t.Fatal(err)
		}
		if v != want {
			t.Errorf("token %d: got %d want %d", i, v, want)
		}
	}
	f, err := sc.Float32(InitValue)
	if err != nil {
		t.Fatal(err)
	}
	if f != 7.5 || sc.Line() != 5 {
		t.Errorf("got f: %g line: %d", f, sc.Line())
	}
	if !sc.AtEOF() {
		t.Errorf("expected EOF")
	}
	_, err = sc.Uint(NumTables)
	er, ok := AsError(err)
	if !ok {
		t.Fatalf("expected *Error, got %v", err)
	}
	if er.Kind != FormatErr || er.Field != NumTables || er.Line != 6 {
		t.Errorf("bad error: %+v", er)
	}
}

func TestScannerCommentOnlyBeforeGroup(t *testing.T) {
	// comments are only skipped at the start of a field group
	sc := NewScanner(strings.NewReader("1\n// not skipped\n"), "")
	if _, err := sc.Int(NumStateVars); err != nil {
		t.Fatal(err)
	}
	_, err := sc.Int(StateVarTable)
	if !IsKind(err, FormatErr) {
		t.Fatalf("expected format error, got %v", err)
	}
	er, _ := AsError(err)
	if er.Line != 2 {
		t.Errorf("line: got %d want 2", er.Line)
	}
}

func TestScannerMalformed(t *testing.T) {
	sc := NewScanner(strings.NewReader("x\n"), "bad.cfg")
	_, err := sc.Uint(NumStateVars)
	er, ok := AsError(err)
	if !ok || er.Kind != FormatErr || er.Line != 1 || er.Field != NumStateVars {
		t.Fatalf("bad error: %v", err)
	}
	msg := er.Error()
	for _, want := range []string{"bad.cfg", "line 1", "NumStateVars", "34"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
	if er.Repair() == "" {
		t.Errorf("missing repair hint")
	}
	sc = NewScanner(strings.NewReader("-2\n"), "bad.cfg")
	if _, err := sc.Uint(NumStateVars); !IsKind(err, FormatErr) {
		t.Errorf("negative count must fail, got %v", err)
	}
}

type failReader struct{}

func (failReader) Read(p []byte) (int, error) { return 0, errors.New("disk on fire") }

func TestScannerIOError(t *testing.T) {
	sc := NewScanner(failReader{}, "io.cfg")
	_, err := sc.Int(NumStateVars)
	if !IsKind(err, IOErr) {
		t.Fatalf("expected IO error, got %v", err)
	}
	if !strings.Contains(err.Error(), "disk on fire") {
		t.Errorf("cause not wrapped: %v", err)
	}
}

func TestKindsString(t *testing.T) {
	if FormatErr.String() != "FormatErr" || ContractErr.String() != "ContractErr" {
		t.Errorf("bad kind names: %v %v", FormatErr, ContractErr)
	}
	if NumTables.Code() != 37 || SeedVar.Code() != 47 {
		t.Errorf("bad field codes")
	}
}
