// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vcp

// Fuzz is a go-fuzz entry point exercising the two formatter dispatchers
// against arbitrary attacker-controlled reply bytes, the way the teacher's
// Fuzz exercised the binary parser against arbitrary file bytes. The first
// byte selects a feature code (any value, including unassigned ones, to
// reach the synthesize path), the second selects one of the four catalog
// versions, and the rest of the input is interpreted twice: once as a
// four-byte non-table reply (MH, ML, SH, SL) and once as a raw table
// response buffer.
func Fuzz(data []byte) int {
	if len(data) < 2 {
		return 0
	}

	code := data[0]
	v := allVersions[int(data[1])%len(allVersions)]
	rest := data[2:]

	owned := LookupOrSynthesize(code)
	en := owned.Entry()
	if sub, ok := owned.(SynthesizedEntry); ok {
		defer sub.Release()
	}

	interesting := 0

	if len(rest) >= 4 {
		resp := NonTableResponse{
			VCPCode: code,
			MH:      rest[0],
			ML:      rest[1],
			SH:      rest[2],
			SL:      rest[3],
		}
		if ok, _, err := FormatNonTable(en, v, resp); ok && err == nil {
			interesting = 1
		}
	}

	if ok, _, err := FormatTable(en, v, rest); ok && err == nil {
		interesting = 1
	}

	return interesting
}
