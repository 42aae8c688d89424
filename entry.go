// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vcp

// NonTableFormatter converts a parsed non-table response into a display
// string, given the query version. It is pure: no I/O, no global mutation
// (spec §4.2). ok=false means the decoded value is out-of-spec but text is
// still a best-effort rendering.
type NonTableFormatter func(r NonTableResponse, v Version) (ok bool, text string)

// TableFormatter converts a raw table-response buffer into a display
// string, given the query version.
type TableFormatter func(buf []byte, v Version) (ok bool, text string)

// versionSlot is one of an Entry's four per-version records.
type versionSlot struct {
	flags    Attributes
	name     string // version-specific name override, "" if none
	slValues EnumTable
	hasSL    bool
}

// Entry is one row of the static feature table: a VCP feature code plus
// its version-independent description, classification bitsets, and four
// per-version slots (spec §3).
type Entry struct {
	Code        FeatureCode
	Description string
	SpecGroups  SpecGroup
	Subsets     Subset
	GlobalFlags GlobalFlags

	// slots holds this entry's four per-version records, indexed by
	// slotIndex(V20|V21|V30|V22).
	slots [4]versionSlot

	// DefaultSLValues is used when Kind is SimpleNC and no per-version
	// sl_values override applies.
	DefaultSLValues EnumTable
	hasDefaultSL    bool

	// NonTableFn and TableFn are this entry's custom
	// formatters, used per the dispatch rule in spec §4.2.
	NonTableFn NonTableFormatter
	TableFn    TableFormatter
}

// slot returns the per-version record for v, or the zero versionSlot
// (Empty()) if v is not one of the four canonical versions.
func (en *Entry) slot(v Version) versionSlot {
	i := slotIndex(v)
	if i < 0 {
		return versionSlot{}
	}
	return en.slots[i]
}

// hasFlags reports whether en declares any definition at all, invariant 1
// of spec §3/§4.4: at least one of the four flags[V] must be non-empty.
func (en *Entry) hasFlags() bool {
	for _, s := range en.slots {
		if !s.flags.Empty() {
			return true
		}
	}
	return false
}

// Name returns en's version-independent description. Version-sensitive
// name resolution (including per-version overrides) is ResolvedName's job.
func (en *Entry) Name() string {
	return en.Description
}
