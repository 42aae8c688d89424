// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vcp

// Validate runs the catalog's self-validation pass (spec §4.4) over the
// static feature table: for every entry and every non-empty, non-
// deprecated per-version slot it checks that exactly one access bit and
// exactly one kind bit are set (true by construction in this
// implementation — Attributes makes the alternative unrepresentable — but
// checked anyway so a future refactor that loosens that guarantee is still
// caught), that SimpleNC has an SL table to fall back on, and that
// ComplexNC/ComplexContinuous have a custom formatter. It also requires
// that every entry defines at least one version.
//
// Validate returns a *TableLogicError carrying every violation found, or
// nil if the table is internally consistent. Per spec §7 this is the one
// error in the package meant to be fatal: a caller that calls Validate at
// startup and gets a non-nil error should abort rather than serve queries
// against an inconsistent table.
func Validate(entries []*Entry) error {
	var violations []*ValidationError

	for _, en := range entries {
		if !en.hasFlags() {
			violations = append(violations, &ValidationError{
				Code: en.Code,
				Rule: "no version defines this feature (all four flags[V] are empty)",
			})
			continue
		}

		for _, v := range allVersions {
			slot := en.slot(v)
			if slot.flags.Empty() || slot.flags.IsDeprecated() {
				continue
			}

			if slot.flags.access == 0 {
				violations = append(violations, &ValidationError{
					Code: en.Code, Version: v,
					Rule: "no access bit set (need exactly one of RO/WO/RW)",
				})
			}
			if slot.flags.kind == 0 {
				violations = append(violations, &ValidationError{
					Code: en.Code, Version: v,
					Rule: "no kind bit set (need exactly one of the seven kinds)",
				})
			}

			switch slot.flags.kind {
			case SimpleNC:
				if !slot.hasSL && !en.hasDefaultSL {
					violations = append(violations, &ValidationError{
						Code: en.Code, Version: v,
						Rule: "SimpleNC requires sl_values[V] or default_sl_values",
					})
				}
			case ComplexNC:
				if en.NonTableFn == nil {
					violations = append(violations, &ValidationError{
						Code: en.Code, Version: v,
						Rule: "ComplexNC requires a non-table formatter",
					})
				}
			case ComplexContinuous:
				if en.NonTableFn == nil {
					violations = append(violations, &ValidationError{
						Code: en.Code, Version: v,
						Rule: "ComplexContinuous requires a non-table formatter",
					})
				}
			}
		}
	}

	if len(violations) == 0 {
		return nil
	}
	return &TableLogicError{Violations: violations}
}
