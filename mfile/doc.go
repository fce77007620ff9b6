// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package mfile reads the whitespace-delimited text files that define table-based
neuron models and input spike trains, tracking line numbers so that every
load failure can be reported as a structured Error naming the file, line and
field that needs fixing.

Comment lines start with '/' or '#' and are skipped wherever the grammar
calls SkipComments, which is before each group of fields.
*/
package mfile
