// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vcp

import "testing"

// TestFormatScenarios reproduces the end-to-end scenario table: each case
// names the feature, query version and reply bytes, and pins the exact
// rendered text a caller depending on this catalog would see.
func TestFormatScenarios(t *testing.T) {
	lookup := func(t *testing.T, code FeatureCode) *Entry {
		t.Helper()
		en, err := Lookup(code)
		if err != nil {
			t.Fatalf("Lookup(0x%02x) failed: %v", code, err)
		}
		return en
	}

	t.Run("new control value saved", func(t *testing.T) {
		en := lookup(t, CodeNewControlValue)
		ok, text, err := FormatNonTable(en, V20, NonTableResponse{VCPCode: CodeNewControlValue, SL: 0x02})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Errorf("ok = false, want true")
		}
		want := "One or more new control values have been saved (0x02)"
		if text != want {
			t.Errorf("text = %q, want %q", text, want)
		}
	})

	t.Run("contrast width-5 current/max", func(t *testing.T) {
		en := lookup(t, CodeContrast)
		resp := NonTableResponse{VCPCode: CodeContrast, SH: 0, SL: 128, MH: 0, ML: 255}
		ok, text, err := FormatNonTable(en, V22, resp)
		if err != nil || !ok {
			t.Fatalf("FormatNonTable: ok=%v err=%v", ok, err)
		}
		want := "current value =   128, max value =   255"
		if text != want {
			t.Errorf("text = %q, want %q", text, want)
		}
	})

	t.Run("select color preset absolute", func(t *testing.T) {
		en := lookup(t, CodeSelectColorPreset)
		resp := NonTableResponse{VCPCode: CodeSelectColorPreset, MH: 0x00, SL: 0x05}
		ok, text, err := FormatNonTable(en, V30, resp)
		if err != nil || !ok {
			t.Fatalf("FormatNonTable: ok=%v err=%v", ok, err)
		}
		want := "Setting: 6500 K (0x05), No tolerance specified (0x00)"
		if text != want {
			t.Errorf("text = %q, want %q", text, want)
		}
	})

	t.Run("select color preset relative", func(t *testing.T) {
		en := lookup(t, CodeSelectColorPreset)
		resp := NonTableResponse{VCPCode: CodeSelectColorPreset, MH: 0x03, SL: 0x05}
		ok, text, err := FormatNonTable(en, V30, resp)
		if err != nil || !ok {
			t.Fatalf("FormatNonTable: ok=%v err=%v", ok, err)
		}
		want := "Setting: -2 relative warmer (0x05), Tolerance: 3% (0x03)"
		if text != want {
			t.Errorf("text = %q, want %q", text, want)
		}
	})

	t.Run("horizontal frequency out of range sentinel", func(t *testing.T) {
		en := lookup(t, CodeHorizontalFrequency)
		resp := NonTableResponse{VCPCode: CodeHorizontalFrequency, MH: 0xFF, ML: 0xFF, SH: 0xFF, SL: 0xFF}
		ok, text, err := FormatNonTable(en, V20, resp)
		if err != nil || !ok {
			t.Fatalf("FormatNonTable: ok=%v err=%v", ok, err)
		}
		want := "Cannot determine frequency or out of range"
		if text != want {
			t.Errorf("text = %q, want %q", text, want)
		}
	})

	t.Run("display usage time 3.0 wide field", func(t *testing.T) {
		en := lookup(t, CodeDisplayUsageTime)
		resp := NonTableResponse{VCPCode: CodeDisplayUsageTime, MH: 0x00, ML: 0x00, SH: 0x01, SL: 0x2C}
		ok, text, err := FormatNonTable(en, V30, resp)
		if err != nil || !ok {
			t.Fatalf("FormatNonTable: ok=%v err=%v", ok, err)
		}
		want := "Usage time (hours) = 300 (0x00012c)"
		if text != want {
			t.Errorf("text = %q, want %q", text, want)
		}
	})

	t.Run("LUT size table decode", func(t *testing.T) {
		en := lookup(t, CodeLUTSize)
		buf := []byte{0x01, 0x00, 0x01, 0x00, 0x01, 0x00, 0x08, 0x08, 0x08}
		ok, text, err := FormatTable(en, V21, buf)
		if err != nil || !ok {
			t.Fatalf("FormatTable: ok=%v err=%v", ok, err)
		}
		want := "Number of entries: 256 red, 256 green, 256 blue, Bits per entry: 8 red, 8 green, 8 blue"
		if text != want {
			t.Errorf("text = %q, want %q", text, want)
		}
	})

	t.Run("unknown manufacturer code synthesizes", func(t *testing.T) {
		if _, err := Lookup(0xE5); err == nil {
			t.Fatalf("0xE5 unexpectedly has a catalog entry")
		}
		owned := LookupOrSynthesize(0xE5)
		en := owned.Entry()
		if en.Description != "Manufacturer Specific" {
			t.Errorf("Description = %q, want %q", en.Description, "Manufacturer Specific")
		}
		if !en.GlobalFlags.Has(Synthetic) {
			t.Errorf("synthesized entry must have Synthetic set")
		}
		flags := ResolvedFlags(en, V20)
		if flags.Access() != ReadWrite || flags.Kind() != StandardContinuous {
			t.Errorf("synthesized flags = %v/%v, want ReadWrite/StandardContinuous", flags.Access(), flags.Kind())
		}
		sub, ok := owned.(SynthesizedEntry)
		if !ok {
			t.Fatalf("LookupOrSynthesize(0xE5) did not return a SynthesizedEntry")
		}
		sub.Release()
	})

	t.Run("backlight deprecated at 2.2", func(t *testing.T) {
		en := lookup(t, CodeBacklight)
		flags := ResolvedFlags(en, V22)
		if !flags.IsDeprecated() {
			t.Errorf("ResolvedFlags(0x13, 2.2) should be Deprecated")
		}
		if IsSupported(en, V22) {
			t.Errorf("IsSupported(0x13, 2.2) = true, want false")
		}
	})
}

func TestFormatNonTableRejectsWriteOnly(t *testing.T) {
	en, err := Lookup(CodeDegauss)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	_, _, err = FormatNonTable(en, V20, NonTableResponse{VCPCode: CodeDegauss})
	if err != ErrWriteOnly {
		t.Errorf("FormatNonTable on a write-only feature = %v, want ErrWriteOnly", err)
	}
}

func TestFormatNonTableRejectsUnsupportedVersion(t *testing.T) {
	en, err := Lookup(CodeBacklight)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	_, _, err = FormatNonTable(en, V22, NonTableResponse{VCPCode: CodeBacklight})
	if err != ErrNotSupportedAtVersion {
		t.Errorf("FormatNonTable at a deprecated version = %v, want ErrNotSupportedAtVersion", err)
	}
}

func TestFormatTableDefaultsToHexDump(t *testing.T) {
	en, err := Lookup(CodeSoftControls)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	ok, text, err := FormatTable(en, V20, []byte{0x01, 0xAB})
	if err != nil || !ok {
		t.Fatalf("FormatTable: ok=%v err=%v", ok, err)
	}
	want := "0x01 0xab"
	if text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}

func TestSoftControlsRendersSLAsRawByte(t *testing.T) {
	en, err := Lookup(CodeSoftControls)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	ok, text, err := FormatNonTable(en, V20, NonTableResponse{VCPCode: CodeSoftControls, SL: 0x05})
	if err != nil || !ok {
		t.Fatalf("FormatNonTable: ok=%v err=%v", ok, err)
	}
	want := "Value: 0x05"
	if text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}

func TestClockRendersAsUshort(t *testing.T) {
	en, err := Lookup(CodeClock)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	ok, text, err := FormatNonTable(en, V21, NonTableResponse{VCPCode: CodeClock, SH: 0x01, SL: 0x2C})
	if err != nil || !ok {
		t.Fatalf("FormatNonTable: ok=%v err=%v", ok, err)
	}
	want := "300 (0x012c)"
	if text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}

// debugBytes and debugSLSH are generic fallback formatters the catalog
// ships (spec §4.2) for features whose payload encoding no entry in this
// table claims to know more precisely than "here are the raw bytes"; they
// are exercised directly here rather than through a catalog entry.
func TestDebugBytesRendersAllFourPayloadBytes(t *testing.T) {
	r := NonTableResponse{MH: 0x01, ML: 0x02, SH: 0x03, SL: 0x04}
	ok, text := debugBytes(r, V20)
	if !ok {
		t.Errorf("ok = false, want true")
	}
	want := "mh=0x01 ml=0x02 sh=0x03 sl=0x04"
	if text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}

func TestDebugSLSHRendersSLAndSHOnly(t *testing.T) {
	r := NonTableResponse{MH: 0xFF, ML: 0xFF, SH: 0x0A, SL: 0x0B}
	ok, text := debugSLSH(r, V20)
	if !ok {
		t.Errorf("ok = false, want true")
	}
	want := "sh=0x0a sl=0x0b"
	if text != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}
