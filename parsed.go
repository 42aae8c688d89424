// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vcp

// NonTableResponse is a parsed GET VCP reply for a non-table feature: the
// four payload bytes mh, ml, sh, sl plus their derived 16-bit values (spec
// §3, §6). The catalog does not validate that the bytes came from a real
// monitor; this is the boundary between the I2C/DDC transport collaborator
// (out of scope, spec §1) and the catalog.
type NonTableResponse struct {
	VCPCode FeatureCode
	MH, ML  byte
	SH, SL  byte
}

// CurValue returns the reply's current value, (sh<<8)|sl.
func (r NonTableResponse) CurValue() uint16 {
	return uint16(r.SH)<<8 | uint16(r.SL)
}

// MaxValue returns the reply's maximum value, (mh<<8)|ml.
func (r NonTableResponse) MaxValue() uint16 {
	return uint16(r.MH)<<8 | uint16(r.ML)
}

// TableResponse is a parsed GET VCP table reply: an opaque byte buffer
// whose structure, if any, is known only to the feature's table formatter.
type TableResponse struct {
	Bytes []byte
}
