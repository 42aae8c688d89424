// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vcp

// byCode indexes featureTable by feature code for Lookup. Built once at
// package initialization time; the catalog is read-only after that (spec
// §5), so no locking is needed around it.
var byCode = indexByCode(featureTable)

func indexByCode(entries []*Entry) map[FeatureCode]*Entry {
	m := make(map[FeatureCode]*Entry, len(entries))
	for _, en := range entries {
		m[en.Code] = en
	}
	return m
}

// FeatureCount returns the number of entries in the static table.
func FeatureCount() int {
	return len(featureTable)
}

// GetByIndex returns the i'th entry in table-declaration order, or an
// error if i is out of range (spec §4.3 get_by_index).
func GetByIndex(i int) (*Entry, error) {
	if i < 0 || i >= len(featureTable) {
		return nil, ErrUnknownFeature
	}
	return featureTable[i], nil
}

// Lookup returns the catalog entry for code, or ErrUnknownFeature if none
// exists (spec §4.3 lookup).
func Lookup(code FeatureCode) (*Entry, error) {
	en, ok := byCode[code]
	if !ok {
		return nil, ErrUnknownFeature
	}
	return en, nil
}

// LookupOrSynthesize never fails: it returns the catalog entry for code if
// one exists, wrapped as CatalogEntry, or a fabricated placeholder wrapped
// as SynthesizedEntry (spec §4.1 find_or_synthesize, §4.3
// lookup_or_synthesize). Callers that receive a SynthesizedEntry should
// call its Release method when done; CatalogEntry needs no such call.
func LookupOrSynthesize(code FeatureCode) Owned {
	if en, ok := byCode[code]; ok {
		return CatalogEntry{entry: en}
	}
	return SynthesizedEntry{entry: synthesize(code)}
}

// FeatureName returns code's version-independent name, falling back to
// "manufacturer specific feature" or "unrecognized feature" for codes with
// no catalog entry (spec §4.3 feature_name).
func FeatureName(code FeatureCode) string {
	if en, err := Lookup(code); err == nil {
		return en.Description
	}
	if code >= FirstManufacturerCode {
		return "manufacturer specific feature"
	}
	return "unrecognized feature"
}

// FeatureNameAt is FeatureName resolved against a specific MCCS version,
// applying any per-version name override (spec §4.3 feature_name with the
// optional version argument).
func FeatureNameAt(code FeatureCode, v Version) string {
	en, err := Lookup(code)
	if err != nil {
		if code >= FirstManufacturerCode {
			return "manufacturer specific feature"
		}
		return "unrecognized feature"
	}
	return ResolvedName(en, v)
}

// ListedFeature is one row of ListFeatures' output.
type ListedFeature struct {
	Name            string
	Flags           string
	VersionSpecific bool
}

// ListFeatures returns one row per catalog entry, in table-declaration
// order (spec §4.3 list_features, §5 "list operations iterate the catalog
// in its declaration order"): the version-independent name, the
// InterpretFlags string at the entry's HighestNonDeprecatedVersion, and
// whether the entry's interpretation varies by version.
func ListFeatures() []ListedFeature {
	out := make([]ListedFeature, 0, len(featureTable))
	for _, en := range featureTable {
		var flagsText string
		if v, ok := HighestNonDeprecatedVersion(en); ok {
			flagsText = InterpretFlags(ResolvedFlags(en, v))
		} else {
			flagsText = "Deprecated"
		}
		out = append(out, ListedFeature{
			Name:            en.Description,
			Flags:           flagsText,
			VersionSpecific: HasVersionSpecificFeatures(en),
		})
	}
	return out
}
