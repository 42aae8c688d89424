// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vcp

import "fmt"

// Version is an MCCS protocol version, wire-encoded as two bytes {SH=major,
// SL=minor}. The four versions the catalog knows about are V20, V21, V22
// and V30; resolution between them is non-monotone (spec §4.1): V30 is not
// a superset of V22, and both supersede V21.
type Version struct {
	Major uint8
	Minor uint8
}

// The four canonical MCCS versions the catalog resolves against.
var (
	V20 = Version{2, 0}
	V21 = Version{2, 1}
	V22 = Version{2, 2}
	V30 = Version{3, 0}
)

// allVersions lists the catalog's version slots in table-declaration order,
// matching the four per-version fields carried by every Entry.
var allVersions = [4]Version{V20, V21, V30, V22}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// LessEqualTo2x reports whether v <= 2.x, for the given minor x, under
// ordinary integer version ordering: major < 2, or major == 2 and minor <= x.
func (v Version) LessEqualTo2x(x uint8) bool {
	return v.Major < 2 || (v.Major == 2 && v.Minor <= x)
}

// LessEqual30 reports whether v <= 3.0 under the catalog's non-monotone
// ordering (spec §4.1): true for anything at or below 2.1, and for any 3.x,
// but explicitly false for 2.2 — a 2.2 display is not <= 3.0.
func (v Version) LessEqual30() bool {
	return v.Major < 2 || (v.Major == 2 && v.Minor <= 1) || v.Major == 3
}

// LessEqual compares v against one of the four canonical versions using the
// rule appropriate to that version. Passing anything other than V20, V21,
// V22 or V30 as w is a programmer error and always reports false.
func (v Version) LessEqual(w Version) bool {
	switch w {
	case V20:
		return v.LessEqualTo2x(0)
	case V21:
		return v.LessEqualTo2x(1)
	case V22:
		return v.LessEqualTo2x(2)
	case V30:
		return v.LessEqual30()
	default:
		return false
	}
}

// GreaterThan is the strict negation of LessEqual, per spec §4.1: v > w iff
// not (v <= w).
func (v Version) GreaterThan(w Version) bool {
	return !v.LessEqual(w)
}

// AtLeastV3 reports whether v is MCCS 3.0 or newer by major version, the
// condition resolveSlotIndex uses to prefer an entry's V30 slot.
func (v Version) AtLeastV3() bool {
	return v.Major >= 3
}

// SupportedVersions lists the four MCCS versions the catalog was validated
// against, in chronological rather than slot order: 2.0, 2.1, 2.2, 3.0.
func SupportedVersions() []Version {
	return []Version{V20, V21, V22, V30}
}

// slotIndex returns the index of v's per-version slot in the entry's
// [V20,V21,V30,V22] fields, or -1 if v is not one of the four canonical
// versions.
func slotIndex(v Version) int {
	switch v {
	case V20:
		return 0
	case V21:
		return 1
	case V30:
		return 2
	case V22:
		return 3
	default:
		return -1
	}
}
