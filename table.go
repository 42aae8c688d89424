// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vcp

// Enum tables shared by more than one feature entry, or large enough to
// warrant their own declaration (spec §6: these must be reproduced
// bit-exact for interoperability with captured monitor traces).

var onOffTable = enum(
	e(0x01, "Off"),
	e(0x02, "On"),
)

var inputSourceTable = enum(
	e(0x01, "VGA-1"),
	e(0x02, "VGA-2"),
	e(0x03, "DVI-1"),
	e(0x04, "DVI-2"),
	e(0x05, "Composite video 1"),
	e(0x06, "Composite video 2"),
	e(0x07, "S-Video 1"),
	e(0x08, "S-Video 2"),
	e(0x09, "Tuner 1"),
	e(0x0A, "Tuner 2"),
	e(0x0B, "Tuner 3"),
	e(0x0C, "Component video (YPrPb/YCrCb) 1"),
	e(0x0D, "Component video (YPrPb/YCrCb) 2"),
	e(0x0E, "Component video (YPrPb/YCrCb) 3"),
	e(0x0F, "DisplayPort-1"),
	e(0x10, "DisplayPort-2"),
	e(0x11, "HDMI-1"),
	e(0x12, "HDMI-2"),
)

var technologyTypeTable = enum(
	e(0x01, "CRT (shadow mask)"),
	e(0x02, "CRT (aperture grill)"),
	e(0x03, "LCD (active matrix)"),
	e(0x04, "LCoS"),
	e(0x05, "Plasma"),
	e(0x06, "OLED"),
	e(0x07, "EL"),
	e(0x08, "MEM"),
)

var osdLanguageTable = enum(
	e(0x00, "Chinese (traditional)"),
	e(0x01, "English"),
	e(0x02, "French"),
	e(0x03, "German"),
	e(0x04, "Italian"),
	e(0x05, "Japanese"),
	e(0x06, "Korean"),
	e(0x07, "Portuguese (Portugal)"),
	e(0x08, "Russian"),
	e(0x09, "Spanish"),
	e(0x0A, "Swedish"),
	e(0x0B, "Turkish"),
	e(0x0C, "Chinese (simplified)"),
	e(0x0D, "Portuguese (Brazil)"),
	e(0x0E, "Arabic"),
	e(0x0F, "Bulgarian"),
	e(0x10, "Croatian"),
	e(0x11, "Czech"),
	e(0x12, "Danish"),
	e(0x13, "Dutch"),
	e(0x14, "Estonian"),
	e(0x15, "Finnish"),
	e(0x16, "Greek"),
	e(0x17, "Hebrew"),
	e(0x18, "Hungarian"),
	e(0x19, "Latvian"),
	e(0x1A, "Lithuanian"),
	e(0x1B, "Norwegian"),
	e(0x1C, "Polish"),
	e(0x1D, "Romanian"),
	e(0x1E, "Serbian"),
	e(0x1F, "Slovak"),
	e(0x20, "Slovenian"),
	e(0x21, "Thai"),
	e(0x22, "Ukrainian"),
	e(0x23, "Vietnamese"),
)

var powerModeTable = enum(
	e(0x01, "DPM: On,  DPMS: Off"),
	e(0x02, "DPM: Off, DPMS: Standby"),
	e(0x03, "DPM: Off, DPMS: Suspend"),
	e(0x04, "DPM: Off, DPMS: Off"),
	e(0x05, "Write only power off"),
)

var displayApplicationTable = enum(
	e(0x01, "Standard/Default"),
	e(0x02, "Productivity"),
	e(0x03, "Mixed"),
	e(0x04, "Movie"),
	e(0x05, "User defined"),
	e(0x06, "Games"),
	e(0x07, "Sports"),
	e(0x08, "Professional (all signal processing disabled)"),
	e(0x09, "Standard/Default with intermediate power consumption"),
	e(0x0A, "Standard/Default with low power consumption"),
	e(0x0B, "Demonstration"),
	e(0xF0, "Dynamic contrast"),
)

// featureTable is the catalog's static decision table, in the declaration
// order list_features/ListFeatures must iterate (spec §5). It covers
// every VCP feature code this specification calls out by name; codes not
// listed here simply have no catalog entry and resolve through Lookup as
// ErrUnknownFeature (or through LookupOrSynthesize as a synthesized entry).
var featureTable = buildFeatureTable()

func buildFeatureTable() []*Entry {
	return []*Entry{
		newEntry(CodeDegauss, "Degauss", GroupMiscellaneous, 0).
			at(V20, RW(WriteOnly, WriteOnlyNC)).
			at(V21, RW(WriteOnly, WriteOnlyNC)).
			at(V30, RW(WriteOnly, WriteOnlyNC)).
			at(V22, RW(WriteOnly, WriteOnlyNC)).
			build(),

		newEntry(CodeNewControlValue, "New Control Value", GroupMiscellaneous, 0).
			at(V20, RW(ReadOnly, ComplexNC)).
			at(V21, RW(ReadOnly, ComplexNC)).
			at(V30, RW(ReadOnly, ComplexNC)).
			at(V22, RW(ReadOnly, ComplexNC)).
			nontable(newControlValue).
			build(),

		// SL is a bitmask of active soft keys, not a single enumerated
		// value, so it is rendered as a raw byte (slByte) rather than
		// looked up in an SL enum table.
		newEntry(CodeSoftControls, "Soft Controls", GroupMiscellaneous, 0).
			at(V20, RW(ReadWrite, ComplexNC)).
			at(V21, RW(ReadWrite, ComplexNC)).
			at(V30, RW(ReadWrite, ComplexNC)).
			at(V22, RW(ReadWrite, ComplexNC)).
			nontable(slByte).
			build(),

		newEntry(CodeRestoreFactoryDefaults, "Restore Factory Defaults", GroupMiscellaneous, 0).
			at(V20, RW(WriteOnly, WriteOnlyNC)).
			at(V21, RW(WriteOnly, WriteOnlyNC)).
			at(V30, RW(WriteOnly, WriteOnlyNC)).
			at(V22, RW(WriteOnly, WriteOnlyNC)).
			build(),

		newEntry(CodeRestoreFactoryLuminanceContrast, "Restore Factory Luminance/Contrast Defaults", GroupMiscellaneous, 0).
			at(V20, RW(WriteOnly, WriteOnlyNC)).
			at(V21, RW(WriteOnly, WriteOnlyNC)).
			at(V30, RW(WriteOnly, WriteOnlyNC)).
			at(V22, RW(WriteOnly, WriteOnlyNC)).
			build(),

		newEntry(CodeRestoreFactoryGeometry, "Restore Factory Geometry Defaults", GroupGeometry, 0).
			at(V20, RW(WriteOnly, WriteOnlyNC)).
			at(V21, RW(WriteOnly, WriteOnlyNC)).
			at(V30, RW(WriteOnly, WriteOnlyNC)).
			at(V22, RW(WriteOnly, WriteOnlyNC)).
			build(),

		newEntry(CodeRestoreFactoryColor, "Restore Factory Color Defaults", GroupImage, SubsetColor).
			at(V20, RW(WriteOnly, WriteOnlyNC)).
			at(V21, RW(WriteOnly, WriteOnlyNC)).
			at(V30, RW(WriteOnly, WriteOnlyNC)).
			at(V22, RW(WriteOnly, WriteOnlyNC)).
			build(),

		newEntry(CodeRestoreFactoryTVDefaults, "Restore Factory TV Defaults", GroupMiscellaneous, SubsetTV).
			at(V20, RW(WriteOnly, WriteOnlyNC)).
			at(V21, RW(WriteOnly, WriteOnlyNC)).
			at(V30, RW(WriteOnly, WriteOnlyNC)).
			at(V22, RW(WriteOnly, WriteOnlyNC)).
			build(),

		newEntry(CodeColorTemperatureIncrement, "Color Temperature Increment", GroupImage, SubsetColor).
			at(V20, RW(ReadOnly, ComplexContinuous)).
			at(V21, RW(ReadOnly, ComplexContinuous)).
			at(V30, RW(ReadOnly, ComplexContinuous)).
			at(V22, RW(ReadOnly, ComplexContinuous)).
			nontable(colorTemperatureIncrement).
			build(),

		newEntry(CodeColorTemperatureRequest, "Color Temperature Request", GroupImage, SubsetColor).
			at(V20, RW(ReadWrite, ComplexContinuous)).
			at(V21, RW(ReadWrite, ComplexContinuous)).
			at(V30, RW(ReadWrite, ComplexContinuous)).
			at(V22, RW(ReadWrite, ComplexContinuous)).
			nontable(colorTemperatureRequest).
			build(),

		// The value is in units of the monitor's choosing rather than a
		// documented current/max pair, so it is rendered with ushort
		// (decimal plus hex) instead of standardContinuous.
		newEntry(CodeClock, "Clock", GroupGeometry, SubsetCRT).
			at(V20, RW(ReadWrite, ComplexContinuous)).
			at(V21, RW(ReadWrite, ComplexContinuous)).
			at(V30, RW(ReadWrite, ComplexContinuous)).
			at(V22, RW(ReadWrite, ComplexContinuous)).
			nontable(ushort).
			build(),

		newEntry(CodeUserColorVisionCompensation, "Color Vision Compensation", GroupImage, SubsetColor).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(CodeLuminance, "Luminance", GroupImage, 0).
			at(V20, RW(ReadWrite, StandardContinuous)).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(CodeFlesh, "Flesh Tone Enhancement", GroupImage, SubsetColor).
			at(V20, RW(ReadWrite, SimpleNC)).
			at(V21, RW(ReadWrite, SimpleNC)).
			at(V30, RW(ReadWrite, SimpleNC)).
			at(V22, RW(ReadWrite, SimpleNC)).
			defaultSL(onOffTable).
			build(),

		newEntry(CodeContrast, "Contrast", GroupImage, 0).
			at(V20, RW(ReadWrite, StandardContinuous)).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(CodeBacklight, "Backlight Control", GroupImage, 0).
			at(V20, RW(ReadWrite, StandardContinuous)).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, Deprecated()).
			build(),

		newEntry(CodeSelectColorPreset, "Select Color Preset", GroupImage, SubsetColor).
			at(V20, RW(ReadWrite, ComplexNC)).
			at(V21, RW(ReadWrite, ComplexNC)).
			at(V30, RW(ReadWrite, ComplexNC)).
			at(V22, RW(ReadWrite, ComplexNC)).
			nontable(selectColorPreset).
			build(),

		newEntry(CodeVideoGainRed, "Video Gain (Drive): Red", GroupImage, SubsetColor).
			at(V20, RW(ReadWrite, StandardContinuous)).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(CodeVideoGainGreen, "Video Gain (Drive): Green", GroupImage, SubsetColor).
			at(V20, RW(ReadWrite, StandardContinuous)).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(CodeVideoGainBlue, "Video Gain (Drive): Blue", GroupImage, SubsetColor).
			at(V20, RW(ReadWrite, StandardContinuous)).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(CodeFocus, "Focus", GroupGeometry, SubsetCRT).
			at(V20, RW(ReadWrite, StandardContinuous)).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(CodeAutoSetup, "Auto Setup", GroupGeometry, 0).
			at(V20, RW(ReadWrite, SimpleNC)).
			at(V21, RW(ReadWrite, SimpleNC)).
			at(V30, RW(ReadWrite, SimpleNC)).
			at(V22, RW(ReadWrite, SimpleNC)).
			defaultSL(enum(e(0x00, "Not Actively Performing Auto Setup"), e(0x01, "Performing Auto Setup"))).
			build(),

		newEntry(CodeAutoColorSetup, "Auto Color Setup", GroupGeometry, SubsetCRT).
			at(V20, RW(ReadWrite, SimpleNC)).
			at(V21, RW(ReadWrite, SimpleNC)).
			at(V30, RW(ReadWrite, SimpleNC)).
			at(V22, RW(ReadWrite, SimpleNC)).
			defaultSL(enum(e(0x00, "Not Actively Performing Auto Setup"), e(0x01, "Performing Auto Setup"))).
			build(),

		newEntry(CodeHorizontalPosition, "Horizontal Position (Phase)", GroupGeometry, 0).
			at(V20, RW(ReadWrite, StandardContinuous)).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(CodeHorizontalSize, "Horizontal Size", GroupGeometry, SubsetCRT).
			at(V20, RW(ReadWrite, StandardContinuous)).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(CodeVerticalPosition, "Vertical Position (Phase)", GroupGeometry, 0).
			at(V20, RW(ReadWrite, StandardContinuous)).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(CodeVerticalSize, "Vertical Size", GroupGeometry, SubsetCRT).
			at(V20, RW(ReadWrite, StandardContinuous)).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(CodeHorizontalPincushion, "Horizontal Pincushion", GroupGeometry, SubsetCRT).
			at(V20, RW(ReadWrite, StandardContinuous)).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(CodeHorizontalPincushionBal, "Horizontal Pincushion Balance", GroupGeometry, SubsetCRT).
			at(V20, RW(ReadWrite, StandardContinuous)).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(CodeHorizontalConvergenceRB, "Horizontal Convergence R/B", GroupGeometry, SubsetCRT).
			at(V20, RW(ReadWrite, StandardContinuous)).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(CodeHorizontalConvergenceMG, "Horizontal Convergence M/G", GroupGeometry, SubsetCRT).
			at(V20, RW(ReadWrite, StandardContinuous)).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(CodeHorizontalParallelogram, "Horizontal Parallelogram", GroupGeometry, SubsetCRT).
			at(V20, RW(ReadWrite, StandardContinuous)).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(CodeHorizontalKeystone, "Horizontal Keystone", GroupGeometry, SubsetCRT).
			at(V20, RW(ReadWrite, StandardContinuous)).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(CodeVideoBlackLevelRed, "Video Black Level: Red", GroupImage, SubsetColor).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(CodeVideoBlackLevelGreen, "Video Black Level: Green", GroupImage, SubsetColor).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(CodeVideoBlackLevelBlue, "Video Black Level: Blue", GroupImage, SubsetColor).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(CodeTopLeftScreenPurity, "Top Left Screen Purity", GroupGeometry, SubsetCRT).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(CodeTopRightScreenPurity, "Top Right Screen Purity", GroupGeometry, SubsetCRT).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(CodeBottomLeftScreenPurity, "Bottom Left Screen Purity", GroupGeometry, SubsetCRT).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(CodeBottomRightScreenPurity, "Bottom Right Screen Purity", GroupGeometry, SubsetCRT).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(CodeInputSource, "Input Source Select", GroupMiscellaneous, 0).
			at(V20, RW(ReadWrite, SimpleNC)).
			at(V21, RW(ReadWrite, SimpleNC)).
			at(V30, RW(ReadWrite, SimpleNC)).
			at(V22, RW(ReadWrite, SimpleNC)).
			defaultSL(inputSourceTable).
			build(),

		// 0x62's kind is version-conditional: StandardContinuous before
		// MCCS 3.0, then a fixed/mute sentinel encoding at 3.0+ that
		// needs a custom formatter (spec §4.2 audio_speaker_volume_v30).
		newEntry(CodeAudioSpeakerVolume, "Audio Speaker Volume", GroupAudio, SubsetAudio).
			at(V20, RW(ReadWrite, StandardContinuous)).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, ComplexNC)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			nontable(audioSpeakerVolumeV30).
			build(),

		newEntry(CodeLUTSize, "LUT Size", GroupImage, SubsetLUT).
			at(V21, RW(ReadOnly, Table)).
			at(V30, RW(ReadOnly, Table)).
			at(V22, RW(ReadOnly, Table)).
			table(x73LutSize).
			build(),

		newEntry(CodeHorizontalMoire, "Horizontal Moire", GroupGeometry, SubsetCRT).
			at(V20, RW(WriteOnly, WriteOnlyNC)).
			at(V21, RW(ReadWrite, SimpleNC)).
			at(V30, RW(ReadWrite, SimpleNC)).
			at(V22, RW(ReadWrite, SimpleNC)).
			defaultSL(onOffTable).
			build(),

		newEntry(CodeVerticalMoire, "Vertical Moire", GroupGeometry, SubsetCRT).
			at(V20, RW(WriteOnly, WriteOnlyNC)).
			at(V21, RW(ReadWrite, SimpleNC)).
			at(V30, RW(ReadWrite, SimpleNC)).
			at(V22, RW(ReadWrite, SimpleNC)).
			defaultSL(onOffTable).
			build(),

		// 0x8D's kind is version-conditional in the opposite direction
		// from 0x62: a simple on/off mute before MCCS 2.2, then a complex
		// two-field (mute + screen blank) encoding at 2.2 only (spec §4.2
		// x8d_v22_mute_audio_blank_screen).
		newEntry(CodeAudioMuteSrcSpeaker, "Mute", GroupAudio, SubsetAudio).
			at(V20, RW(ReadWrite, SimpleNC)).
			at(V21, RW(ReadWrite, SimpleNC)).
			at(V30, RW(ReadWrite, SimpleNC)).
			at(V22, RW(ReadWrite, ComplexNC)).
			defaultSL(muteLookup).
			nontable(x8dV22MuteAudioBlankScreen).
			build(),

		newEntry(CodeTVAudioTreble, "TV Audio Treble", GroupAudio, SubsetTV).
			at(V30, RW(ReadWrite, ComplexNC)).
			nontable(audioTrebleBassV30).
			build(),

		newEntry(CodeTVAudioBass, "TV Audio Bass", GroupAudio, SubsetTV).
			at(V30, RW(ReadWrite, ComplexNC)).
			nontable(audioTrebleBassV30).
			build(),

		newEntry(CodeAudioBalance, "Audio Balance", GroupAudio, SubsetAudio).
			at(V30, RW(ReadWrite, ComplexNC)).
			nontable(audioBalanceV30).
			build(),

		// Six-axis hue: the newest revision of the catalog treats these as
		// standard continuous, despite some real monitors reporting a
		// max=100/nominal=50 inconsistent with the MCCS midpoint of 127
		// (spec §9 design note; kept as-is per "follow the newest version").
		newEntry(Code6AxisHueRed, "6 Axis Hue Control: Red", GroupImage, SubsetColor).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(Code6AxisHueYellow, "6 Axis Hue Control: Yellow", GroupImage, SubsetColor).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(Code6AxisHueGreen, "6 Axis Hue Control: Green", GroupImage, SubsetColor).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(Code6AxisHueCyan, "6 Axis Hue Control: Cyan", GroupImage, SubsetColor).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(Code6AxisHueBlue, "6 Axis Hue Control: Blue", GroupImage, SubsetColor).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(Code6AxisHueMagenta, "6 Axis Hue Control: Magenta", GroupImage, SubsetColor).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(CodeWindowBackground, "Window Background", GroupWindow, SubsetWindow).
			at(V21, RW(ReadWrite, StandardContinuous)).
			at(V30, RW(ReadWrite, StandardContinuous)).
			at(V22, RW(ReadWrite, StandardContinuous)).
			build(),

		newEntry(CodeHorizontalFrequency, "Horizontal Frequency", GroupMiscellaneous, 0).
			at(V20, RW(ReadOnly, ComplexContinuous)).
			at(V21, RW(ReadOnly, ComplexContinuous)).
			at(V30, RW(ReadOnly, ComplexContinuous)).
			at(V22, RW(ReadOnly, ComplexContinuous)).
			nontable(xacHorizontalFrequency).
			build(),

		newEntry(CodeVerticalFrequency, "Vertical Frequency", GroupMiscellaneous, 0).
			at(V20, RW(ReadOnly, ComplexContinuous)).
			at(V21, RW(ReadOnly, ComplexContinuous)).
			at(V30, RW(ReadOnly, ComplexContinuous)).
			at(V22, RW(ReadOnly, ComplexContinuous)).
			nontable(xaeVerticalFrequency).
			build(),

		newEntry(CodeDisplayTechnologyType, "Display Technology Type", GroupMiscellaneous, 0).
			at(V21, RW(ReadOnly, SimpleNC)).
			at(V30, RW(ReadOnly, SimpleNC)).
			at(V22, RW(ReadOnly, SimpleNC)).
			defaultSL(technologyTypeTable).
			build(),

		newEntry(CodeLinkControl, "Link Control", GroupMiscellaneous, 0).
			at(V30, RW(ReadWrite, ComplexNC)).
			nontable(xbeLinkControl).
			build(),

		newEntry(CodeDisplayUsageTime, "Display Usage Time", GroupMiscellaneous, 0).
			at(V21, RW(ReadOnly, ComplexContinuous)).
			at(V30, RW(ReadOnly, ComplexContinuous)).
			at(V22, RW(ReadOnly, ComplexContinuous)).
			nontable(xc0DisplayUsageTime).
			build(),

		newEntry(CodeApplicationEnableKey, "Application Enable Key", GroupManufacturerSpecific, 0).
			at(V20, RW(ReadOnly, ComplexNC)).
			at(V21, RW(ReadOnly, ComplexNC)).
			at(V30, RW(ReadOnly, ComplexNC)).
			at(V22, RW(ReadOnly, ComplexNC)).
			nontable(applicationEnableKey).
			build(),

		newEntry(CodeDisplayControllerID, "Display Controller Type", GroupMiscellaneous, 0).
			at(V21, RW(ReadOnly, ComplexNC)).
			at(V30, RW(ReadOnly, ComplexNC)).
			at(V22, RW(ReadOnly, ComplexNC)).
			nontable(displayControllerType).
			build(),

		newEntry(CodeDisplayFirmwareLevel, "Display Firmware Level", GroupMiscellaneous, 0).
			at(V21, RW(ReadOnly, ComplexNC)).
			at(V30, RW(ReadOnly, ComplexNC)).
			at(V22, RW(ReadOnly, ComplexNC)).
			nontable(versionFormatter).
			build(),

		newEntry(CodeOSDLanguage, "OSD Language", GroupMiscellaneous, 0).
			at(V20, RW(ReadWrite, SimpleNC)).
			at(V21, RW(ReadWrite, SimpleNC)).
			at(V30, RW(ReadWrite, SimpleNC)).
			at(V22, RW(ReadWrite, SimpleNC)).
			defaultSL(osdLanguageTable).
			build(),

		newEntry(CodeAuxDisplaySize, "Auxiliary Display Size", GroupMiscellaneous, 0).
			at(V21, RW(ReadOnly, ComplexNC)).
			at(V30, RW(ReadOnly, ComplexNC)).
			at(V22, RW(ReadOnly, ComplexNC)).
			nontable(xceAuxDisplaySize).
			build(),

		newEntry(CodePowerMode, "Power Mode", GroupMiscellaneous, 0).
			at(V20, RW(ReadWrite, SimpleNC)).
			at(V21, RW(ReadWrite, SimpleNC)).
			at(V30, RW(ReadWrite, SimpleNC)).
			at(V22, RW(ReadWrite, SimpleNC)).
			defaultSL(powerModeTable).
			build(),

		newEntry(CodeDisplayApplication, "Display Application", GroupMiscellaneous, 0).
			at(V21, RW(ReadWrite, SimpleNC)).
			at(V30, RW(ReadWrite, SimpleNC)).
			at(V22, RW(ReadWrite, SimpleNC)).
			defaultSL(displayApplicationTable).
			build(),

		newEntry(CodeVCPVersion, "VCP Version", GroupMiscellaneous, 0).
			at(V20, RW(ReadOnly, ComplexNC)).
			at(V21, RW(ReadOnly, ComplexNC)).
			at(V30, RW(ReadOnly, ComplexNC)).
			at(V22, RW(ReadOnly, ComplexNC)).
			nontable(versionFormatter).
			build(),
	}
}
