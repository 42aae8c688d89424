// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vcp

import "testing"

// buildCarryForwardEntry mimics a feature defined starting at V21 only,
// like 0x0F (Color Vision Compensation) or 0xB6 (Display Technology Type)
// in the feature table — used to exercise ValidVersions' carry-forward rule
// independent of the real feature table.
func buildCarryForwardEntry() *Entry {
	return newEntry(0xF1, "test feature", 0, 0).
		at(V21, RW(ReadWrite, SimpleNC)).
		defaultSL(enum(e(0x01, "a"))).
		build()
}

func TestValidVersionsCarryForward(t *testing.T) {
	en := buildCarryForwardEntry()
	valid := ValidVersions(en)

	if valid[V20] {
		t.Errorf("V20 should not be valid: the entry defines nothing at V20 and there is no lower version to carry forward from")
	}
	if !valid[V21] {
		t.Errorf("V21 should be valid: the entry defines it directly")
	}
	if !valid[V22] {
		t.Errorf("V22 should be valid: it carries forward from V21")
	}
	if !valid[V30] {
		t.Errorf("V30 should be valid: it carries forward from V21 independently of V22")
	}
}

func TestValidVersionsV22AndV30DoNotCarryFromEachOther(t *testing.T) {
	en := newEntry(0xF2, "test feature", 0, 0).
		at(V20, RW(ReadWrite, StandardContinuous)).
		at(V21, RW(ReadWrite, StandardContinuous)).
		at(V22, Deprecated()).
		build()
	valid := ValidVersions(en)

	if valid[V22] {
		t.Errorf("V22 should not be valid: it is explicitly Deprecated, and V30 being valid must not rescue it")
	}
	if !valid[V30] {
		t.Errorf("V30 should still be valid via V21, independent of V22 being deprecated")
	}
}

func TestResolveSlotIndexFallback(t *testing.T) {
	// An entry defined only at V21 (no V20). A V20 query must walk
	// forward to find the nearest definition (spec §4.1 step 4).
	en := newEntry(0xF3, "test feature", 0, 0).
		at(V21, RW(ReadOnly, StandardContinuous)).
		build()

	f := ResolvedFlags(en, V20)
	if f.Empty() {
		t.Fatalf("ResolvedFlags(V20) on a V21-only entry should fall back to V21, not stay empty")
	}
	if f.Access() != ReadOnly {
		t.Errorf("resolved access = %v, want ReadOnly (from the V21 fallback slot)", f.Access())
	}
}

func TestResolveSlotIndexPrefersV30AtV3OrNewer(t *testing.T) {
	en := newEntry(0xF4, "test feature", 0, 0).
		at(V20, RW(ReadWrite, StandardContinuous)).
		at(V30, RW(ReadWrite, ComplexNC)).
		build()

	f := ResolvedFlags(en, Version{3, 1})
	if f.Kind() != ComplexNC {
		t.Errorf("a 3.1 query should resolve against the V30 slot, got kind %v", f.Kind())
	}
}

func TestResolveSlotIndexV22Exact(t *testing.T) {
	en := newEntry(0xF5, "test feature", 0, 0).
		at(V21, RW(ReadWrite, StandardContinuous)).
		at(V22, RW(ReadOnly, SimpleNC)).
		defaultSL(enum(e(0x01, "a"))).
		build()

	f := ResolvedFlags(en, V22)
	if f.Access() != ReadOnly || f.Kind() != SimpleNC {
		t.Errorf("a 2.2 query should resolve against the V22 slot directly, got %v/%v", f.Access(), f.Kind())
	}
}

func TestHighestNonDeprecatedVersion(t *testing.T) {
	en := newEntry(0xF6, "test feature", 0, 0).
		at(V20, RW(ReadWrite, StandardContinuous)).
		at(V21, RW(ReadWrite, StandardContinuous)).
		at(V22, Deprecated()).
		build()

	v, ok := HighestNonDeprecatedVersion(en)
	if !ok {
		t.Fatalf("expected a non-deprecated version to exist")
	}
	// V30 is empty, V22 is Deprecated, so the newest surviving version is V21.
	if v != V21 {
		t.Errorf("HighestNonDeprecatedVersion = %s, want 2.1", v)
	}
}

func TestHighestNonDeprecatedVersionAllDeprecated(t *testing.T) {
	en := newEntry(0xF7, "test feature", 0, 0).
		at(V20, Deprecated()).
		build()

	_, ok := HighestNonDeprecatedVersion(en)
	if ok {
		t.Errorf("expected ok=false when every defined slot is Deprecated")
	}
}

func TestHasVersionSpecificFeatures(t *testing.T) {
	single := newEntry(0xF8, "test feature", 0, 0).
		at(V20, RW(ReadWrite, StandardContinuous)).
		build()
	if HasVersionSpecificFeatures(single) {
		t.Errorf("a feature defined at exactly one version should not be version-specific")
	}

	multi := newEntry(0xF9, "test feature", 0, 0).
		at(V20, RW(ReadWrite, StandardContinuous)).
		at(V30, RW(ReadWrite, ComplexNC)).
		build()
	if !HasVersionSpecificFeatures(multi) {
		t.Errorf("a feature defined at more than one version should be version-specific")
	}
}

func TestIsReadableIsWritable(t *testing.T) {
	en := newEntry(0xFA, "test feature", 0, 0).
		at(V20, RW(WriteOnly, WriteOnlyNC)).
		build()
	if IsReadable(en, V20) {
		t.Errorf("a write-only feature must not be readable")
	}
	if !IsWritable(en, V20) {
		t.Errorf("a write-only feature must be writable")
	}
}
