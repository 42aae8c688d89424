// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vcp

// EnumTable is a finite byte -> name mapping used by SimpleNC features to
// decode their SL byte. Unlike the source's sentinel-terminated C arrays
// (terminated by a {0x00, NULL} entry, which is ambiguous because 0x00 is
// itself a legal value — spec §9), an EnumTable carries its length
// structurally: iteration is a plain range over entries, never a sentinel
// check.
type EnumTable struct {
	entries []enumEntry
}

type enumEntry struct {
	value byte
	name  string
}

// enum builds an EnumTable from an ordered list of entries, preserving
// declaration order for Entries() — the order the tables named in spec §6
// (0x14 absolute presets, 0x60 input sources, 0xB6 technology types, 0xC8
// controllers, 0xCC OSD languages, 0xD6 power modes) must reproduce
// bit-exact.
func enum(pairs ...enumEntry) EnumTable {
	return EnumTable{entries: append([]enumEntry(nil), pairs...)}
}

// e is a single (value, name) pair, used only to build EnumTable literals
// in table.go.
func e(value byte, name string) enumEntry {
	return enumEntry{value: value, name: name}
}

// Lookup returns the name registered for b, or ("", false) if b has no
// entry.
func (t EnumTable) Lookup(b byte) (string, bool) {
	for _, ent := range t.entries {
		if ent.value == b {
			return ent.name, true
		}
	}
	return "", false
}

// Len reports the number of entries in t.
func (t EnumTable) Len() int {
	return len(t.entries)
}

// Entries returns t's (value, name) pairs in declaration order.
func (t EnumTable) Entries() []struct {
	Value byte
	Name  string
} {
	out := make([]struct {
		Value byte
		Name  string
	}, len(t.entries))
	for i, ent := range t.entries {
		out[i] = struct {
			Value byte
			Name  string
		}{ent.value, ent.name}
	}
	return out
}
