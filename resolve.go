// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vcp

// geq21 reports whether q >= (2,1) under ordinary integer version
// ordering (major, then minor) — the comparison spec §4.1 step 3 uses,
// distinct from the non-monotone LessEqual used for V22/V30.
func geq21(q Version) bool {
	return q.Major > 2 || (q.Major == 2 && q.Minor >= 1)
}

// resolveSlotIndex implements the fallback algorithm of spec §4.1
// verbatim: try V30 (if q.major>=3 and non-empty), else V22 (if q==2.2 and
// non-empty), else a step-3 candidate of V21 or V20; if that candidate is
// still empty, walk upward through V21, V30, V22 to find any definition —
// the case where a display reports an older version than the catalog's
// earliest entry for that feature.
func resolveSlotIndex(en *Entry, q Version) int {
	if q.AtLeastV3() {
		if i := slotIndex(V30); !en.slots[i].flags.Empty() {
			return i
		}
	}
	if q == V22 {
		if i := slotIndex(V22); !en.slots[i].flags.Empty() {
			return i
		}
	}

	candidate := slotIndex(V20)
	if geq21(q) || q.AtLeastV3() {
		candidate = slotIndex(V21)
	}

	if !en.slots[candidate].flags.Empty() {
		return candidate
	}
	for _, v := range []Version{V21, V30, V22} {
		if i := slotIndex(v); !en.slots[i].flags.Empty() {
			return i
		}
	}
	return candidate
}

// ResolvedFlags returns en's effective Attributes at query version q,
// after applying the fallback algorithm (spec §4.1, §4.3 resolved_flags).
func ResolvedFlags(en *Entry, q Version) Attributes {
	return en.slots[resolveSlotIndex(en, q)].flags
}

// ResolvedName returns en's effective name at query version q: the
// per-version override if the resolved slot has one, else the
// version-independent Description.
func ResolvedName(en *Entry, q Version) string {
	i := resolveSlotIndex(en, q)
	if en.slots[i].name != "" {
		return en.slots[i].name
	}
	return en.Description
}

// ResolvedSLValues returns en's effective SL enum table at query version
// q: the per-version override if present, else DefaultSLValues, else
// (EnumTable{}, false).
func ResolvedSLValues(en *Entry, q Version) (EnumTable, bool) {
	i := resolveSlotIndex(en, q)
	if en.slots[i].hasSL {
		return en.slots[i].slValues, true
	}
	if en.hasDefaultSL {
		return en.DefaultSLValues, true
	}
	return EnumTable{}, false
}

// IsSupported reports whether en is supported at query version q: its
// resolved flags are non-empty and not Deprecated (spec §4.1
// is_supported).
func IsSupported(en *Entry, q Version) bool {
	f := ResolvedFlags(en, q)
	return !f.Empty() && !f.IsDeprecated()
}

// IsReadable reports whether en can be read at query version q.
func IsReadable(en *Entry, q Version) bool {
	return ResolvedFlags(en, q).Readable()
}

// IsWritable reports whether en can be written at query version q.
func IsWritable(en *Entry, q Version) bool {
	return ResolvedFlags(en, q).Writable()
}

// HighestNonDeprecatedVersion returns the newest version in [V22, V30,
// V21, V20] (note: that declaration order, not calendar order — spec
// §4.1) whose flags are non-empty and not Deprecated, or the zero Version
// with ok=false if every slot is empty or Deprecated.
func HighestNonDeprecatedVersion(en *Entry) (v Version, ok bool) {
	for _, cand := range []Version{V22, V30, V21, V20} {
		f := en.slots[slotIndex(cand)].flags
		if !f.Empty() && !f.IsDeprecated() {
			return cand, true
		}
	}
	return Version{}, false
}

// IsTypeVersionConditional reports whether en's four flags[V].Kind values
// span both a table and a non-table kind (spec §4.1
// is_type_version_conditional) — true for no feature in the hand-built
// table in table.go, but the property every entry must satisfy regardless.
func IsTypeVersionConditional(en *Entry) bool {
	sawTable, sawNonTable := false, false
	for _, s := range en.slots {
		if s.flags.Empty() || s.flags.IsDeprecated() {
			continue
		}
		if s.flags.Kind().IsTable() {
			sawTable = true
		} else {
			sawNonTable = true
		}
	}
	return sawTable && sawNonTable
}

// HasVersionSpecificFeatures reports whether more than one of en's four
// flags[V] is non-empty (spec §4.1 has_version_specific_features), used to
// decide whether to print "(Version specific interpretation)".
func HasVersionSpecificFeatures(en *Entry) bool {
	n := 0
	for _, s := range en.slots {
		if !s.flags.Empty() {
			n++
		}
	}
	return n > 1
}

// ValidVersions implements spec §4.3's valid_versions: a version V is
// valid for en iff its flags are non-empty and not Deprecated, OR its
// flags are empty and the next-lower adjacent version (in declaration
// order V20 < V21 < {V22,V30}) is valid — implicit carry-forward. V22 and
// V30 both carry forward independently from V21; neither carries forward
// from the other (spec §8 property 5).
func ValidVersions(en *Entry) map[Version]bool {
	valid := make(map[Version]bool, 4)

	validAt := func(v Version, lowerValid bool) bool {
		f := en.slots[slotIndex(v)].flags
		if f.Empty() {
			return lowerValid
		}
		return !f.IsDeprecated()
	}

	valid[V20] = validAt(V20, false)
	valid[V21] = validAt(V21, valid[V20])
	valid[V22] = validAt(V22, valid[V21])
	valid[V30] = validAt(V30, valid[V21])
	return valid
}
