// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vcp

// entryBuilder assembles one Entry for featureTable in table.go. Using a
// builder instead of composite-literal struct tags keeps the four
// per-version slots keyed by Version rather than by field name, so a typo
// in "which version is this" makes slotIndex return -1 and the slot access
// panic with an index out of range while the table is built, rather than
// silently compiling into the wrong field.
type entryBuilder struct {
	en Entry
}

// newEntry starts a builder for a catalog-defined feature.
func newEntry(code FeatureCode, description string, groups SpecGroup, subsets Subset) *entryBuilder {
	return &entryBuilder{en: Entry{
		Code:        code,
		Description: description,
		SpecGroups:  groups,
		Subsets:     subsets,
	}}
}

// at sets the flags for version v.
func (b *entryBuilder) at(v Version, flags Attributes) *entryBuilder {
	i := slotIndex(v)
	s := b.en.slots[i]
	s.flags = flags
	b.en.slots[i] = s
	return b
}

// nameAt sets a version-specific name override.
func (b *entryBuilder) nameAt(v Version, name string) *entryBuilder {
	i := slotIndex(v)
	s := b.en.slots[i]
	s.name = name
	b.en.slots[i] = s
	return b
}

// slAt sets a version-specific SL enum table override.
func (b *entryBuilder) slAt(v Version, t EnumTable) *entryBuilder {
	i := slotIndex(v)
	s := b.en.slots[i]
	s.slValues = t
	s.hasSL = true
	b.en.slots[i] = s
	return b
}

// defaultSL sets the fallback SL enum table used when no per-version
// override applies.
func (b *entryBuilder) defaultSL(t EnumTable) *entryBuilder {
	b.en.DefaultSLValues = t
	b.en.hasDefaultSL = true
	return b
}

// nontable sets the custom non-table formatter.
func (b *entryBuilder) nontable(fn NonTableFormatter) *entryBuilder {
	b.en.NonTableFn = fn
	return b
}

// table sets the custom table formatter.
func (b *entryBuilder) table(fn TableFormatter) *entryBuilder {
	b.en.TableFn = fn
	return b
}

// global ORs extra GlobalFlags bits, e.g. Synthetic.
func (b *entryBuilder) global(f GlobalFlags) *entryBuilder {
	b.en.GlobalFlags |= f
	return b
}

// build finalizes the Entry. The returned pointer is catalog-owned static
// data; callers never construct Entry directly.
func (b *entryBuilder) build() *Entry {
	en := b.en
	return &en
}
