// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package vcp

// FeatureCode is a one-byte VCP feature identifier, as sent on the wire in
// a DDC/CI GET VCP / SET VCP command. Codes 0x01..0xDF are catalog-defined;
// 0xE0..0xFF are manufacturer-specific; everything else is unrecognized.
type FeatureCode = byte

// Manufacturer-specific and catalog-defined code range boundaries (spec §3).
const (
	// FirstManufacturerCode is the lowest code reserved for
	// manufacturer-specific features.
	FirstManufacturerCode FeatureCode = 0xE0

	// LastCatalogCode is the highest code the catalog defines entries for.
	LastCatalogCode FeatureCode = 0xDF
)

// Catalog-defined VCP feature codes, one named constant per entry of the
// feature table (featureTable in table.go), which refers to every entry by
// these names.
const (
	// CodeDegauss is "Degauss" (0x01): a momentary write-only command,
	// present from MCCS 2.0 onward.
	CodeDegauss FeatureCode = 0x01

	// CodeNewControlValue is "New Control Value" (0x02): the display
	// signals that one or more of its control values changed since the
	// last query, SL identifying which group changed.
	CodeNewControlValue FeatureCode = 0x02

	// CodeSoftControls is "Soft Controls" (0x03): a bitmask of which
	// front-panel soft keys are active.
	CodeSoftControls FeatureCode = 0x03

	// CodeRestoreFactoryDefaults is "Restore Factory Defaults" (0x04): a
	// momentary write-only command.
	CodeRestoreFactoryDefaults FeatureCode = 0x04

	// CodeRestoreFactoryLuminanceContrast restores only luminance/contrast
	// defaults (0x05).
	CodeRestoreFactoryLuminanceContrast FeatureCode = 0x05

	// CodeRestoreFactoryGeometry restores only geometry defaults (0x06).
	CodeRestoreFactoryGeometry FeatureCode = 0x06

	// CodeRestoreFactoryColor restores only color defaults (0x08).
	CodeRestoreFactoryColor FeatureCode = 0x08

	// CodeRestoreFactoryTVDefaults restores only TV defaults (0x0A).
	CodeRestoreFactoryTVDefaults FeatureCode = 0x0A

	// CodeColorTemperatureIncrement is "Color Temperature Increment"
	// (0x0B): a fixed per-unit Kelvin step used by CodeColorTemperatureRequest.
	CodeColorTemperatureIncrement FeatureCode = 0x0B

	// CodeColorTemperatureRequest is "Color Temperature Request" (0x0C):
	// requests an absolute color temperature expressed as a multiple of
	// the 0x0B increment above 3000K.
	CodeColorTemperatureRequest FeatureCode = 0x0C

	// CodeClock is the pixel clock frequency, in units of the monitor's
	// choosing (0x0E).
	CodeClock FeatureCode = 0x0E

	// CodeUserColorVisionCompensation is "Color Vision Compensation"
	// (0x0F).
	CodeUserColorVisionCompensation FeatureCode = 0x0F

	// CodeLuminance is "Luminance" (brightness), a standard continuous
	// feature present in every MCCS version (0x10).
	CodeLuminance FeatureCode = 0x10

	// CodeFlesh is "Flesh Tone Enhancement" (0x11).
	CodeFlesh FeatureCode = 0x11

	// CodeContrast is "Contrast", a standard continuous feature (0x12).
	CodeContrast FeatureCode = 0x12

	// CodeBacklight is "Backlight Control" (0x13): deprecated in MCCS 2.2.
	CodeBacklight FeatureCode = 0x13

	// CodeSelectColorPreset is "Select Color Preset" (0x14): a complex-NC
	// feature whose SL enumeration changes meaning between MCCS <3.0
	// (absolute Kelvin presets) and MCCS 3.0 (relative warm/cool offsets).
	CodeSelectColorPreset FeatureCode = 0x14

	// CodeVideoGainRed/Green/Blue are the three RGB gain controls
	// (0x16, 0x18, 0x1A).
	CodeVideoGainRed   FeatureCode = 0x16
	CodeVideoGainGreen FeatureCode = 0x18
	CodeVideoGainBlue  FeatureCode = 0x1A

	// CodeFocus is "Focus" (0x1C), a CRT-only continuous control.
	CodeFocus FeatureCode = 0x1C

	// CodeAutoSetup is "Auto Setup" (0x1E): a simple-NC on/off toggle.
	CodeAutoSetup FeatureCode = 0x1E

	// CodeAutoColorSetup is "Auto Color Setup" (0x1F).
	CodeAutoColorSetup FeatureCode = 0x1F

	// CodeHorizontalPosition/Size and CodeVerticalPosition/Size are
	// geometry continuous controls (0x20, 0x22, 0x30, 0x32).
	CodeHorizontalPosition FeatureCode = 0x20
	CodeHorizontalSize     FeatureCode = 0x22
	CodeVerticalPosition   FeatureCode = 0x30
	CodeVerticalSize       FeatureCode = 0x32

	// CodeHorizontalPincushion and friends are CRT geometry distortion
	// controls (0x24, 0x26, 0x28, 0x29, 0x2A, 0x2C).
	CodeHorizontalPincushion    FeatureCode = 0x24
	CodeHorizontalPincushionBal FeatureCode = 0x26
	CodeHorizontalConvergenceRB FeatureCode = 0x28
	CodeHorizontalConvergenceMG FeatureCode = 0x29
	CodeHorizontalParallelogram FeatureCode = 0x2A
	CodeHorizontalKeystone      FeatureCode = 0x2C

	// CodeHorizontalMoire and CodeVerticalMoire flipped from write-only in
	// MCCS 2.0 to read-write in 2.1/3.0/2.2; the entry carries both,
	// selected by version (spec §9 design note).
	CodeHorizontalMoire FeatureCode = 0x82
	CodeVerticalMoire   FeatureCode = 0x84

	// CodeVideoBlackLevelRed/Green/Blue adjust per-channel black level
	// (0x6C, 0x6E, 0x70).
	CodeVideoBlackLevelRed   FeatureCode = 0x6C
	CodeVideoBlackLevelGreen FeatureCode = 0x6E
	CodeVideoBlackLevelBlue  FeatureCode = 0x70

	// CodeTopLeftScreenPurity and CodeTopRightScreenPurity etc. are CRT
	// purity controls (0x74, 0x76, 0x78, 0x7A).
	CodeTopLeftScreenPurity     FeatureCode = 0x74
	CodeTopRightScreenPurity    FeatureCode = 0x76
	CodeBottomLeftScreenPurity  FeatureCode = 0x78
	CodeBottomRightScreenPurity FeatureCode = 0x7A

	// CodeInputSource is "Input Source Select" (0x60): a simple-NC
	// feature whose SL enumerates the display's video inputs (VGA, DVI,
	// DisplayPort, HDMI, ...).
	CodeInputSource FeatureCode = 0x60

	// CodeAudioSpeakerVolume is "Audio Speaker Volume" (0x62): a
	// version-conditional feature, continuous pre-3.0 and complex-NC at
	// 3.0+ (CodeAudioSpeakerVolume has a fixed/mute sentinel encoding).
	CodeAudioSpeakerVolume FeatureCode = 0x62

	// CodeAudioMuteSrcSpeaker is "Mute" (0x8D), whose v2.2 behaviour
	// additionally encodes a screen-blank bit in SH.
	CodeAudioMuteSrcSpeaker FeatureCode = 0x8D

	// CodeTVAudioTreble and CodeTVAudioBass are the 3.0-and-later
	// treble/bass controls with a neutral-midpoint encoding (0x8F, 0x91).
	CodeTVAudioTreble FeatureCode = 0x8F
	CodeTVAudioBass   FeatureCode = 0x91

	// CodeAudioBalance mirrors the treble/bass encoding for left/right
	// balance (0x93).
	CodeAudioBalance FeatureCode = 0x93

	// Code6AxisHueRed..Blue are the six-axis hue controls (0x9B..0xA0):
	// standard continuous by the newest revision of the catalog, despite
	// some real monitors reporting an off-spec max/nominal (see DESIGN.md).
	Code6AxisHueRed     FeatureCode = 0x9B
	Code6AxisHueYellow  FeatureCode = 0x9C
	Code6AxisHueGreen   FeatureCode = 0x9D
	Code6AxisHueCyan    FeatureCode = 0x9E
	Code6AxisHueBlue    FeatureCode = 0x9F
	Code6AxisHueMagenta FeatureCode = 0xA0

	// CodeWindowBackground is "Window Background" (0xAA), a window
	// subset feature.
	CodeWindowBackground FeatureCode = 0xAA

	// CodeHorizontalFrequency and CodeVerticalFrequency report the
	// display's current scan rates (0xAC, 0xAE).
	CodeHorizontalFrequency FeatureCode = 0xAC
	CodeVerticalFrequency   FeatureCode = 0xAE

	// CodeDisplayTechnologyType enumerates CRT vs LCD vs other panel
	// technologies (0xB6).
	CodeDisplayTechnologyType FeatureCode = 0xB6

	// CodeLinkControl toggles a display's DisplayPort/HDMI link (0xBE).
	CodeLinkControl FeatureCode = 0xBE

	// CodeDisplayUsageTime reports cumulative power-on hours, with a wider
	// field at MCCS 3.0+ (0xC0).
	CodeDisplayUsageTime FeatureCode = 0xC0

	// CodeDisplayControllerID names the controller vendor/model (0xC8).
	CodeDisplayControllerID FeatureCode = 0xC8

	// CodeDisplayFirmwareLevel and CodeVCPVersion both report a SH.SL
	// version pair (0xC9, 0xDF).
	CodeDisplayFirmwareLevel FeatureCode = 0xC9
	CodeVCPVersion           FeatureCode = 0xDF

	// CodeApplicationEnableKey is a manufacturer-defined unlock code
	// (0xC6).
	CodeApplicationEnableKey FeatureCode = 0xC6

	// CodeOSDLanguage selects the on-screen-display's language (0xCC).
	CodeOSDLanguage FeatureCode = 0xCC

	// CodeAuxDisplaySize reports the size of an auxiliary character
	// display in rows/characters-per-row (0xCE).
	CodeAuxDisplaySize FeatureCode = 0xCE

	// CodeLUTSize is a table feature reporting the dimensions of the
	// display's 3D lookup table (0x73).
	CodeLUTSize FeatureCode = 0x73

	// CodePowerMode selects among the DPM power states (0xD6).
	CodePowerMode FeatureCode = 0xD6

	// CodeDisplayApplication selects an application preset, e.g. "Standard"
	// / "Productivity" / "Gaming" (0xDC).
	CodeDisplayApplication FeatureCode = 0xDC
)
