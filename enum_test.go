// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vcp

import "testing"

func TestEnumTableLookup(t *testing.T) {
	t1 := enum(e(0x01, "Off"), e(0x02, "On"))

	name, ok := t1.Lookup(0x02)
	if !ok || name != "On" {
		t.Errorf("Lookup(0x02) = (%q, %v), want (On, true)", name, ok)
	}

	if _, ok := t1.Lookup(0x03); ok {
		t.Errorf("Lookup(0x03) reported an entry that was never added")
	}
}

func TestEnumTableLen(t *testing.T) {
	t1 := enum(e(0x01, "a"), e(0x02, "b"), e(0x03, "c"))
	if got := t1.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	if got := (EnumTable{}).Len(); got != 0 {
		t.Errorf("Len() of the zero EnumTable = %d, want 0", got)
	}
}

func TestEnumTableEntriesPreservesOrder(t *testing.T) {
	t1 := enum(e(0x05, "five"), e(0x01, "one"), e(0x03, "three"))
	entries := t1.Entries()
	if len(entries) != 3 {
		t.Fatalf("Entries() returned %d entries, want 3", len(entries))
	}
	wantValues := []byte{0x05, 0x01, 0x03}
	for i, ent := range entries {
		if ent.Value != wantValues[i] {
			t.Errorf("Entries()[%d].Value = 0x%02x, want 0x%02x (declaration order)", i, ent.Value, wantValues[i])
		}
	}
}

// Zero is a legal enumeration value in this domain (e.g. osdLanguageTable's
// Chinese-traditional entry), unlike the sentinel-terminated C arrays this
// type replaces; a table built with a 0x00 entry must still find it.
func TestEnumTableZeroIsLegalValue(t *testing.T) {
	t1 := enum(e(0x00, "zero-value entry"))
	name, ok := t1.Lookup(0x00)
	if !ok || name != "zero-value entry" {
		t.Errorf("Lookup(0x00) = (%q, %v), want (zero-value entry, true)", name, ok)
	}
}
