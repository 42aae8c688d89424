// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vcp

// Owned is implemented by both return shapes LookupOrSynthesize can
// produce, so the caller can never forget which kind of lifetime it
// received (spec §9, "Replacing synthetic entry + free me"). The source
// marks a flag and hopes the caller frees the right thing; here the two
// lifetimes are distinct Go types instead.
type Owned interface {
	// Entry returns the underlying catalog entry, valid regardless of
	// ownership.
	Entry() *Entry
}

// CatalogEntry wraps an *Entry that lives in the static table for the
// lifetime of the process. It requires no release.
type CatalogEntry struct {
	entry *Entry
}

// Entry implements Owned.
func (c CatalogEntry) Entry() *Entry { return c.entry }

// SynthesizedEntry wraps an *Entry fabricated on demand for an unknown or
// manufacturer-specific code (spec §4.1 find_or_synthesize). It is owned by
// the caller. Go has no manual free, so Release is a documented no-op; its
// purpose is the distinct type, not the call — a SynthesizedEntry can never
// be handed to a code path that assumes catalog-owned, process-lifetime
// storage without an explicit type assertion.
type SynthesizedEntry struct {
	entry *Entry
}

// Entry implements Owned.
func (s SynthesizedEntry) Entry() *Entry { return s.entry }

// Release marks s as no longer in use. It performs no action beyond
// documenting intent; synthesized entries carry no external resources in
// this implementation.
func (s SynthesizedEntry) Release() {}

// synthesize fabricates a placeholder Entry for an unknown feature code,
// per spec §4.1: manufacturer-specific codes (>= 0xE0) get the name
// "Manufacturer Specific", everything else gets "Unknown feature"; both
// get RW|STD_CONT at V20 and the debugContinuous formatter, and are marked
// Synthetic.
func synthesize(code FeatureCode) *Entry {
	name := "Unknown feature"
	if code >= FirstManufacturerCode {
		name = "Manufacturer Specific"
	}
	en := newEntry(code, name, 0, 0).
		at(V20, RW(ReadWrite, StandardContinuous)).
		nontable(debugContinuous).
		global(Synthetic).
		build()
	return en
}
