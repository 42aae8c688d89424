// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vcp

import "testing"

func TestAttributesEmpty(t *testing.T) {
	var zero Attributes
	if !zero.Empty() {
		t.Errorf("zero Attributes should be Empty")
	}
	if zero.Readable() || zero.Writable() {
		t.Errorf("an empty Attributes must be neither readable nor writable")
	}
}

func TestAttributesDeprecated(t *testing.T) {
	a := Deprecated()
	if a.Empty() {
		t.Errorf("Deprecated() must not be Empty")
	}
	if !a.IsDeprecated() {
		t.Errorf("Deprecated() must report IsDeprecated")
	}
	if a.Readable() || a.Writable() {
		t.Errorf("a deprecated feature is neither readable nor writable")
	}
}

func TestAttributesRW(t *testing.T) {
	tests := []struct {
		name         string
		access       Access
		kind         Kind
		wantReadable bool
		wantWritable bool
	}{
		{"read only", ReadOnly, StandardContinuous, true, false},
		{"write only", WriteOnly, WriteOnlyNC, false, true},
		{"read write", ReadWrite, SimpleNC, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := RW(tt.access, tt.kind)
			if a.Empty() {
				t.Fatalf("RW(...) must not be Empty")
			}
			if a.Readable() != tt.wantReadable {
				t.Errorf("Readable() = %v, want %v", a.Readable(), tt.wantReadable)
			}
			if a.Writable() != tt.wantWritable {
				t.Errorf("Writable() = %v, want %v", a.Writable(), tt.wantWritable)
			}
		})
	}
}

func TestInterpretFlags(t *testing.T) {
	tests := []struct {
		name string
		a    Attributes
		want string
	}{
		{"empty", Attributes{}, "Not applicable"},
		{"deprecated", Deprecated(), "Deprecated"},
		{"read-write standard continuous", RW(ReadWrite, StandardContinuous), "Read Write, Continuous (standard)"},
		{"read-only simple NC", RW(ReadOnly, SimpleNC), "Read Only, Non-Continuous (simple)"},
		{"write-only table", RW(WriteOnly, WriteOnlyTable), "Write Only, Table (write-only)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InterpretFlags(tt.a); got != tt.want {
				t.Errorf("InterpretFlags() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindIsTable(t *testing.T) {
	for _, k := range []Kind{Table, WriteOnlyTable} {
		if !k.IsTable() {
			t.Errorf("%v.IsTable() = false, want true", k)
		}
	}
	for _, k := range []Kind{StandardContinuous, ComplexContinuous, SimpleNC, ComplexNC, WriteOnlyNC} {
		if k.IsTable() {
			t.Errorf("%v.IsTable() = true, want false", k)
		}
	}
}

func TestBitsets(t *testing.T) {
	g := GroupImage | GroupAudio
	if !g.Has(GroupImage) || !g.Has(GroupAudio) {
		t.Errorf("SpecGroup.Has failed for set bits")
	}
	if g.Has(GroupWindow) {
		t.Errorf("SpecGroup.Has reported an unset bit as present")
	}

	s := SubsetCRT | SubsetTV
	if !s.Has(SubsetCRT) || s.Has(SubsetAudio) {
		t.Errorf("Subset.Has behaved incorrectly")
	}

	var f GlobalFlags
	if f.Has(Synthetic) {
		t.Errorf("zero GlobalFlags must not have Synthetic set")
	}
	f |= Synthetic
	if !f.Has(Synthetic) {
		t.Errorf("GlobalFlags.Has failed to see a bit just set")
	}
}
