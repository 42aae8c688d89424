// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vcp

// Access is the read/write mode of a feature at a given MCCS version.
type Access uint8

// The three access modes a feature can declare (spec §3). There is no
// "none" value: a feature either declares exactly one of these, or its
// per-version slot is simply absent/Deprecated.
const (
	ReadOnly Access = iota + 1
	WriteOnly
	ReadWrite
)

func (a Access) String() string {
	switch a {
	case ReadOnly:
		return "Read Only"
	case WriteOnly:
		return "Write Only"
	case ReadWrite:
		return "Read Write"
	default:
		return "unknown access"
	}
}

// Kind is the shape of a feature's value at a given MCCS version.
type Kind uint8

// The seven non-deprecated kinds a feature can declare (spec §3). Exactly
// one of these accompanies an Access value inside a non-empty, non-
// deprecated Attributes; Deprecated is modeled separately (see Attributes).
const (
	StandardContinuous Kind = iota + 1
	ComplexContinuous
	SimpleNC
	ComplexNC
	WriteOnlyNC
	Table
	WriteOnlyTable
)

func (k Kind) String() string {
	switch k {
	case StandardContinuous:
		return "Continuous (standard)"
	case ComplexContinuous:
		return "Continuous (complex)"
	case SimpleNC:
		return "Non-Continuous (simple)"
	case ComplexNC:
		return "Non-Continuous (complex)"
	case WriteOnlyNC:
		return "Non-Continuous (write-only)"
	case Table:
		return "Table"
	case WriteOnlyTable:
		return "Table (write-only)"
	default:
		return "unknown kind"
	}
}

// IsTable reports whether k is one of the two table-response kinds.
func (k Kind) IsTable() bool {
	return k == Table || k == WriteOnlyTable
}

// Attributes is the per-version record from spec §3: a feature is either
// undefined at a version (the zero Attributes, Empty() true), Deprecated,
// or carries exactly one Access and exactly one Kind. Representing it this
// way — rather than the source's 16-bit flag words — makes "two access
// bits set" or "kind bit set but access bit missing" unrepresentable
// instead of a runtime-checked invariant (see DESIGN.md, §9 design note).
type Attributes struct {
	access     Access
	kind       Kind
	deprecated bool
	set        bool
}

// RW constructs a non-deprecated Attributes with the given access and kind.
func RW(access Access, kind Kind) Attributes {
	return Attributes{access: access, kind: kind, set: true}
}

// Deprecated constructs the sentinel Attributes meaning "this feature was
// removed at this version"; it suppresses Access() and Kind().
func Deprecated() Attributes {
	return Attributes{deprecated: true, set: true}
}

// Empty reports whether this version slot carries no definition at all,
// i.e. the feature is simply not mentioned in this MCCS version.
func (a Attributes) Empty() bool {
	return !a.set
}

// IsDeprecated reports whether this slot is the Deprecated sentinel.
func (a Attributes) IsDeprecated() bool {
	return a.set && a.deprecated
}

// Access returns the feature's access mode. Calling it on an empty or
// deprecated Attributes returns the zero Access; callers should check
// Empty()/IsDeprecated() first, as Readable/Writable do.
func (a Attributes) Access() Access {
	return a.access
}

// Kind returns the feature's value shape. See Access for the same caveat.
func (a Attributes) Kind() Kind {
	return a.kind
}

// Readable reports whether a feature with these attributes can be read
// with GET VCP: access is RO or RW, and the slot is not Deprecated nor
// empty (spec §3).
func (a Attributes) Readable() bool {
	if a.Empty() || a.IsDeprecated() {
		return false
	}
	return a.access == ReadOnly || a.access == ReadWrite
}

// Writable reports whether a feature with these attributes can be written
// with SET VCP: access is WO or RW, and the slot is not Deprecated nor
// empty.
func (a Attributes) Writable() bool {
	if a.Empty() || a.IsDeprecated() {
		return false
	}
	return a.access == WriteOnly || a.access == ReadWrite
}

// InterpretFlags renders a's access and kind as the short, comma-joined
// phrase the catalog's list operation and CLI use, e.g. "Read Write,
// Continuous (standard)". Deprecated attributes render as "Deprecated"
// alone, overriding access/kind per spec §4.3.
func InterpretFlags(a Attributes) string {
	if a.Empty() {
		return "Not applicable"
	}
	if a.IsDeprecated() {
		return "Deprecated"
	}
	return a.Access().String() + ", " + a.Kind().String()
}

// SpecGroup is a bitset over the nine MCCS specification groups a feature
// can belong to (spec §3).
type SpecGroup uint16

const (
	GroupPreset SpecGroup = 1 << iota
	GroupImage
	GroupControl
	GroupGeometry
	GroupMiscellaneous
	GroupAudio
	GroupDPVL
	GroupManufacturerSpecific
	GroupWindow
)

// Has reports whether g is set in the bitset s.
func (s SpecGroup) Has(g SpecGroup) bool { return s&g != 0 }

// Subset is a bitset over the eight MCCS feature subsets a feature can
// belong to (spec §3); distinct from SpecGroup, which classifies by
// functional area rather than by display capability class.
type Subset uint16

const (
	SubsetProfile Subset = 1 << iota
	SubsetColor
	SubsetLUT
	SubsetCRT
	SubsetTV
	SubsetAudio
	SubsetWindow
	SubsetDPVL
)

// Has reports whether sub is set in the bitset s.
func (s Subset) Has(sub Subset) bool { return s&sub != 0 }

// GlobalFlags is a bitset of flags that do not vary by MCCS version.
type GlobalFlags uint8

// Synthetic marks an Entry fabricated on demand by LookupOrSynthesize
// rather than present in the static table; see SynthesizedEntry.
const Synthetic GlobalFlags = 1 << 0

// Has reports whether f is set in the bitset g.
func (g GlobalFlags) Has(f GlobalFlags) bool { return g&f != 0 }
