// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vcp

import "fmt"

// FormatNonTable implements the non-table dispatch rule of spec §4.2: the
// entry's resolved kind at q picks standardContinuous, a simple-NC SL
// lookup, the entry's custom formatter, or — for write-only-NC — an error,
// since no formatter applies to a value that is never read back.
func FormatNonTable(en *Entry, q Version, r NonTableResponse) (ok bool, text string, err error) {
	flags := ResolvedFlags(en, q)
	if flags.Empty() || flags.IsDeprecated() {
		return false, "", ErrNotSupportedAtVersion
	}

	switch flags.Kind() {
	case StandardContinuous:
		ok, text = standardContinuous(r, q)
		return ok, text, nil
	case SimpleNC:
		table, has := ResolvedSLValues(en, q)
		if !has {
			// Invariant 3 of spec §4.4 guarantees this cannot happen for a
			// validated table; defensive only for entries built outside
			// Validate (e.g. ad-hoc tests).
			return false, fmt.Sprintf("Invalid value (sl=0x%02x)", r.SL), nil
		}
		ok, text = slLookup(r.SL, table)
		return ok, text, nil
	case WriteOnlyNC:
		return false, "", ErrWriteOnly
	case ComplexContinuous, ComplexNC:
		if en.NonTableFn == nil {
			// Invariant 4/5 of spec §4.4 guarantees this cannot happen for
			// a validated table.
			return false, "", ErrNotSupportedAtVersion
		}
		ok, text = en.NonTableFn(r, q)
		return ok, text, nil
	default:
		// Table/WriteOnlyTable kind reached FormatNonTable by caller error.
		return false, "", ErrNotSupportedAtVersion
	}
}

// FormatTable implements the table dispatch rule of spec §4.2: the entry's
// custom table formatter if set, else the default hex dump.
func FormatTable(en *Entry, q Version, buf []byte) (ok bool, text string, err error) {
	flags := ResolvedFlags(en, q)
	if flags.Empty() || flags.IsDeprecated() {
		return false, "", ErrNotSupportedAtVersion
	}
	if en.TableFn != nil {
		ok, text = en.TableFn(buf, q)
		return ok, text, nil
	}
	ok, text = defaultHexDump(buf, q)
	return ok, text, nil
}

// --- Built-in non-table formatters (spec §4.2) ---

// standardContinuous renders StandardContinuous's canonical text, with
// current/max printed right-justified to width 5 to line up in a listing
// (spec §8 scenario 2).
func standardContinuous(r NonTableResponse, _ Version) (bool, string) {
	return true, fmt.Sprintf("current value = %5d, max value = %5d", r.CurValue(), r.MaxValue())
}

// ushort renders the current value as a decimal-plus-hex pair.
func ushort(r NonTableResponse, _ Version) (bool, string) {
	return true, fmt.Sprintf("%d (0x%04x)", r.CurValue(), r.CurValue())
}

// debugBytes renders all four raw payload bytes, used when nothing more
// specific is known about a feature's encoding.
func debugBytes(r NonTableResponse, _ Version) (bool, string) {
	return true, fmt.Sprintf("mh=0x%02x ml=0x%02x sh=0x%02x sl=0x%02x", r.MH, r.ML, r.SH, r.SL)
}

// debugSLSH renders just the SL/SH pair, used for features whose low two
// bytes are known to carry the value but whose encoding is undocumented.
func debugSLSH(r NonTableResponse, _ Version) (bool, string) {
	return true, fmt.Sprintf("sh=0x%02x sl=0x%02x", r.SH, r.SL)
}

// debugContinuous is the formatter assigned to synthesized entries (spec
// §4.1 find_or_synthesize): it renders current/max like
// standardContinuous but without claiming the value is validated against
// any known kind.
func debugContinuous(r NonTableResponse, _ Version) (bool, string) {
	return true, fmt.Sprintf("current value = %d (0x%04x), max value = %d (0x%04x)",
		r.CurValue(), r.CurValue(), r.MaxValue(), r.MaxValue())
}

// slByte renders only the raw SL byte.
func slByte(r NonTableResponse, _ Version) (bool, string) {
	return true, fmt.Sprintf("Value: 0x%02x", r.SL)
}

// slLookup looks sl up in table, the shared tail of the SimpleNC dispatch
// path and any custom formatter that wants the same rendering.
func slLookup(sl byte, table EnumTable) (bool, string) {
	if name, found := table.Lookup(sl); found {
		return true, fmt.Sprintf("%s (sl=0x%02x)", name, sl)
	}
	return false, fmt.Sprintf("Invalid value (sl=0x%02x)", sl)
}

// newControlValue is 0x02's custom formatter: SL enumerates which group of
// control values changed.
func newControlValue(r NonTableResponse, _ Version) (bool, string) {
	var text string
	switch r.SL {
	case 0x01:
		text = "No new control values"
	case 0x02:
		text = "One or more new control values have been saved"
	case 0xff:
		text = "No user controls are present"
	default:
		text = "reserved"
	}
	return r.SL == 0x01 || r.SL == 0x02 || r.SL == 0xff, fmt.Sprintf("%s (0x%02x)", text, r.SL)
}

// colorTemperatureIncrement is 0x0B's custom formatter: rejects 0 and
// anything above 5000 as out of spec.
func colorTemperatureIncrement(r NonTableResponse, _ Version) (bool, string) {
	cur := r.CurValue()
	if cur == 0 || cur > 5000 {
		return false, "Invalid value"
	}
	return true, fmt.Sprintf("%d", cur)
}

// colorTemperatureRequest is 0x0C's custom formatter: the requested
// absolute temperature is 3000K plus the current value times feature 0x0B's
// per-unit increment. Since FormatNonTable only sees one feature's
// response at a time, the increment is reported symbolically rather than
// looked up cross-feature, matching how the catalog has no notion of a
// live session that could hold 0x0B's last reading.
func colorTemperatureRequest(r NonTableResponse, _ Version) (bool, string) {
	cur := r.CurValue()
	return true, fmt.Sprintf("3000 + %d * (feature 0B increment) Kelvin", cur)
}

var absoluteColorPresets = enum(
	e(0x01, "4000 K"),
	e(0x02, "5000 K"),
	e(0x03, "5800 K"),
	e(0x04, "6200 K"),
	e(0x05, "6500 K"),
	e(0x06, "7500 K"),
	e(0x07, "8200 K"),
	e(0x08, "9300 K"),
	e(0x09, "10000 K"),
	e(0x0A, "11500 K"),
	e(0x0B, "User 1"),
	e(0x0C, "User 2"),
	e(0x0D, "User 3"),
)

var relativeColorPresets = enum(
	e(0x01, "sRGB"),
	e(0x02, "Display Native"),
	e(0x03, "-4 relative warmer"),
	e(0x04, "-3 relative warmer"),
	e(0x05, "-2 relative warmer"),
	e(0x06, "-1 relative warmer"),
	e(0x07, "+1 relative cooler"),
	e(0x08, "+2 relative cooler"),
	e(0x09, "+3 relative cooler"),
	e(0x0A, "+4 relative cooler"),
	e(0x0B, "User 1"),
	e(0x0C, "User 2"),
	e(0x0D, "User 3"),
)

// selectColorPreset is 0x14's custom formatter (spec §4.2): a two-phase
// decode where SL's meaning (absolute Kelvin vs relative warm/cool offset)
// and the output format both depend on version and on MH.
func selectColorPreset(r NonTableResponse, v Version) (bool, string) {
	slInvalid := r.SL == 0x00 || r.SL >= 0xE0
	useAbsolute := v.Major < 3 || r.MH == 0

	var slText string
	slOK := !slInvalid
	if slInvalid {
		slText = "Invalid value"
	} else if useAbsolute {
		name, found := absoluteColorPresets.Lookup(r.SL)
		if !found {
			slOK = false
			slText = "Invalid value"
		} else {
			slText = name
		}
	} else {
		name, found := relativeColorPresets.Lookup(r.SL)
		if !found {
			slOK = false
			slText = "Invalid value"
		} else {
			slText = name
		}
	}

	if v.Major < 3 {
		return slOK, fmt.Sprintf("Setting: %s (0x%02x)", slText, r.SL)
	}

	var mhText string
	mhOK := true
	switch {
	case r.MH == 0x00:
		mhText = "No tolerance specified"
	case r.MH >= 0x0B:
		mhOK = false
		mhText = "Invalid tolerance"
	default:
		mhText = fmt.Sprintf("Tolerance: %d%%", r.MH)
	}

	return slOK && mhOK, fmt.Sprintf("Setting: %s (0x%02x), %s (0x%02x)", slText, r.SL, mhText, r.MH)
}

// audioSpeakerVolumeV30 is 0x62's custom formatter, only ever invoked for
// MCCS >= 3.0 (pre-3.0, 0x62 dispatches as StandardContinuous instead).
func audioSpeakerVolumeV30(r NonTableResponse, _ Version) (bool, string) {
	switch r.SL {
	case 0x00:
		return true, "Fixed (default) level"
	case 0xFF:
		return true, "Mute"
	default:
		return true, fmt.Sprintf("Volume level: %d", r.SL)
	}
}

// audioTrebleBassText implements the shared neutral-midpoint encoding
// behind audioTrebleBassV30 and audioBalanceV30: 0x00 is invalid, values
// below the neutral point 0x80 are "Decreased", 0x80 is "Neutral", values
// above are "Increased".
func audioTrebleBassText(sl byte, decreasedWord, increasedWord string) (bool, string) {
	switch {
	case sl == 0x00:
		return false, "Invalid value"
	case sl < 0x80:
		return true, fmt.Sprintf("%d: %s (0x%02x, neutral - %d)", sl, decreasedWord, sl, 0x80-int(sl))
	case sl == 0x80:
		return true, "Neutral"
	default:
		return true, fmt.Sprintf("%d: %s (0x%02x, neutral + %d)", sl, increasedWord, sl, int(sl)-0x80)
	}
}

// audioTrebleBassV30 is 0x8F/0x91's custom formatter.
func audioTrebleBassV30(r NonTableResponse, _ Version) (bool, string) {
	return audioTrebleBassText(r.SL, "Decreased", "Increased")
}

// audioBalanceV30 is 0x93's custom formatter, same shape as treble/bass
// but labeled for stereo balance.
func audioBalanceV30(r NonTableResponse, _ Version) (bool, string) {
	return audioTrebleBassText(r.SL, "Left", "Right")
}

// xacHorizontalFrequency is 0xAC's custom formatter.
func xacHorizontalFrequency(r NonTableResponse, _ Version) (bool, string) {
	if r.MH == 0xFF && r.ML == 0xFF && r.SH == 0xFF && r.SL == 0xFF {
		return true, "Cannot determine frequency or out of range"
	}
	hz := uint32(r.MH)<<24 | uint32(r.ML)<<16 | uint32(r.SH)<<8 | uint32(r.SL)
	return true, fmt.Sprintf("%d hz", hz)
}

// xaeVerticalFrequency is 0xAE's custom formatter; the raw value is in
// units of 0.01 Hz.
func xaeVerticalFrequency(r NonTableResponse, _ Version) (bool, string) {
	if r.MH == 0xFF && r.ML == 0xFF && r.SH == 0xFF && r.SL == 0xFF {
		return true, "Cannot determine frequency or out of range"
	}
	raw := uint32(r.MH)<<24 | uint32(r.ML)<<16 | uint32(r.SH)<<8 | uint32(r.SL)
	return true, fmt.Sprintf("%d.%02d hz", raw/100, raw%100)
}

// xbeLinkControl is 0xBE's custom formatter: bit 0 of SL is the only
// meaningful bit.
func xbeLinkControl(r NonTableResponse, _ Version) (bool, string) {
	if r.SL&0x01 != 0 {
		return true, "enabled"
	}
	return true, "disabled"
}

// xc0DisplayUsageTime is 0xC0's custom formatter: the usage-hours field
// widens from 16 to 24 bits at MCCS 3.0, moving into ML; a non-zero MH at
// 3.0+ is out of spec but is still rendered, with a warning note (spec §4.2).
func xc0DisplayUsageTime(r NonTableResponse, v Version) (bool, string) {
	if v.Major < 3 {
		usage := r.CurValue()
		return true, fmt.Sprintf("Usage time (hours) = %d (0x%04x)", usage, usage)
	}
	usage := uint32(r.ML)<<16 | uint32(r.SH)<<8 | uint32(r.SL)
	if r.MH != 0 {
		return false, fmt.Sprintf("Usage time (hours) = %d (0x%06x) (warning: mh=0x%02x should be 0)", usage, usage, r.MH)
	}
	return true, fmt.Sprintf("Usage time (hours) = %d (0x%06x)", usage, usage)
}

// applicationEnableKey is 0xC6's custom formatter.
func applicationEnableKey(r NonTableResponse, _ Version) (bool, string) {
	return true, fmt.Sprintf("0x%02x%02x", r.SH, r.SL)
}

// displayControllerMfgTable maps 0xC8's SL byte to a controller
// manufacturer name. Feature 0xC8's "controller number" is described
// inconsistently across MCCS revisions (ML/SH vs MH/ML); per spec §9 this
// formatter deliberately does not commit to one reading and instead
// renders the raw bytes alongside the manufacturer name.
var displayControllerMfgTable = enum(
	e(0x01, "Acer Labs"),
	e(0x02, "Analog Devices"),
	e(0x03, "Cirrus Logic"),
	e(0x04, "Genesis Microchip"),
	e(0x05, "Himax"),
	e(0x06, "Hitachi"),
	e(0x07, "Intersil"),
	e(0x08, "Novatek"),
	e(0x09, "OKI Semiconductor"),
	e(0x0A, "Philips Semiconductors"),
	e(0x0B, "Realtek"),
	e(0x0C, "Sage"),
	e(0x0D, "Silicon Image"),
	e(0x0E, "SiS"),
	e(0x0F, "Topro"),
	e(0x10, "Trumpion"),
	e(0x11, "Welltrend"),
	e(0x12, "Samsung"),
	e(0x13, "Sunplus"),
	e(0x14, "Nexgen"),
	e(0xFF, "Not specified"),
)

// displayControllerType is 0xC8's custom formatter.
func displayControllerType(r NonTableResponse, _ Version) (bool, string) {
	name, found := displayControllerMfgTable.Lookup(r.SL)
	if !found {
		name = "Unknown controller"
	}
	return found, fmt.Sprintf("%s (mh=0x%02x, ml=0x%02x, sh=0x%02x)", name, r.MH, r.ML, r.SH)
}

// versionFormatter is 0xC9 and 0xDF's custom formatter: SH.SL is the
// version pair.
func versionFormatter(r NonTableResponse, _ Version) (bool, string) {
	return true, fmt.Sprintf("%d.%d", r.SH, r.SL)
}

// xceAuxDisplaySize is 0xCE's custom formatter.
func xceAuxDisplaySize(r NonTableResponse, _ Version) (bool, string) {
	rows := (r.SL >> 6) & 0x3
	chars := r.SL & 0x3F
	return true, fmt.Sprintf("%d rows, %d characters per row", rows, chars)
}

var muteLookup = enum(e(0x01, "mute"), e(0x02, "unmute"))
var blankLookup = enum(e(0x01, "blank"), e(0x02, "unblank"))

// x8dV22MuteAudioBlankScreen is 0x8D's custom formatter, only invoked for
// MCCS 2.2: SL and SH are independent lookups, muting audio and blanking
// the screen respectively.
func x8dV22MuteAudioBlankScreen(r NonTableResponse, _ Version) (bool, string) {
	muteText, muteOK := muteLookup.Lookup(r.SL)
	if !muteOK {
		muteText = "invalid"
	}
	blankText, blankOK := blankLookup.Lookup(r.SH)
	if !blankOK {
		blankText = "invalid"
	}
	return muteOK && blankOK, fmt.Sprintf("Audio: %s, Screen: %s", muteText, blankText)
}

// --- Built-in table formatters (spec §4.2) ---

// defaultHexDump is substituted by the resolver for any Table/WriteOnlyTable
// kind with no explicit table formatter (spec §3 invariant 5): it is not an
// error, just the catalog's fallback rendering.
func defaultHexDump(buf []byte, _ Version) (bool, string) {
	text := ""
	for i, b := range buf {
		if i > 0 {
			text += " "
		}
		text += fmt.Sprintf("0x%02x", b)
	}
	return true, text
}

// x73LutSize is 0x73's custom table formatter: expects exactly 9 bytes —
// three big-endian 16-bit entry counts followed by three single-byte
// bits-per-entry values. Any other length falls through to the default
// hex dump per spec §4.2.
func x73LutSize(buf []byte, v Version) (bool, string) {
	if len(buf) != 9 {
		_, text := defaultHexDump(buf, v)
		return true, text + " (malformed 0x73 table response, expected 9 bytes)"
	}
	red := uint16(buf[0])<<8 | uint16(buf[1])
	green := uint16(buf[2])<<8 | uint16(buf[3])
	blue := uint16(buf[4])<<8 | uint16(buf[5])
	redBits, greenBits, blueBits := buf[6], buf[7], buf[8]
	return true, fmt.Sprintf(
		"Number of entries: %d red, %d green, %d blue, Bits per entry: %d red, %d green, %d blue",
		red, green, blue, redBits, greenBits, blueBits)
}
