// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vcp

import (
	"errors"
	"fmt"
)

// Errors returned by the public query operations. None of these are
// fatal; the catalog never panics on caller-supplied codes, versions or
// bytes.
var (
	// ErrUnknownFeature is returned by Lookup when no entry exists for the
	// requested feature code. LookupOrSynthesize never returns it.
	ErrUnknownFeature = errors.New("vcp: unknown feature code")

	// ErrNotSupportedAtVersion is returned when the resolved flags for a
	// (code, version) pair are empty or DEPRECATED. Formatters must not be
	// invoked in that case.
	ErrNotSupportedAtVersion = errors.New("vcp: feature not supported at this MCCS version")

	// ErrWriteOnly is returned when a caller attempts to format a feature
	// whose resolved kind is WriteOnlyNC; such features have no formatter
	// by contract.
	ErrWriteOnly = errors.New("vcp: feature is write-only, no formatter applies")

	// ErrMalformedTableResponse names a table buffer that a custom table
	// formatter could not decode structurally (wrong length, bad magic).
	// No function in this package returns it: the formatter falls back to
	// the default hex dump and returns ok=true, and the malformed buffer is
	// reported only through the diagnostic note in the returned text.
	ErrMalformedTableResponse = errors.New("vcp: malformed table response")
)

// ValidationError describes a single invariant violated by one feature
// entry at one MCCS version, as enforced by Validate. See spec §4.4.
type ValidationError struct {
	Code    byte
	Version Version
	Rule    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("feature 0x%02x at MCCS %s: %s", e.Code, e.Version, e.Rule)
}

// TableLogicError is returned by Validate when the static feature table
// violates one or more of its own invariants. It is the one error in this
// package that signals the source code is inconsistent with itself rather
// than a bad caller input; per spec §7 a TableLogicError must be treated as
// fatal by the process that calls Validate at startup.
type TableLogicError struct {
	Violations []*ValidationError
}

func (e *TableLogicError) Error() string {
	return fmt.Sprintf("vcp: feature table failed self-validation with %d error(s); first: %v",
		len(e.Violations), e.Violations[0])
}

// Unwrap lets errors.Is/As reach the first violation.
func (e *TableLogicError) Unwrap() error {
	if len(e.Violations) == 0 {
		return nil
	}
	return e.Violations[0]
}
