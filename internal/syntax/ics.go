package syntax

// ICStream represents an Individual Channel Stream: window info, section
// data, scale factors and tool flags for one channel of one frame.
//
// Ported from: ic_stream in ~/dev/faad2/libfaad/structs.h:240-301
type ICStream struct {
	// Window configuration
	MaxSFB              uint8
	GlobalGain          uint8
	NumSWB              uint8
	NumWindowGroups     uint8
	NumWindows          uint8
	WindowSequence      WindowSequence
	WindowGroupLength   [MaxWindowGroups]uint8
	WindowShape         uint8 // 0=sine, 1=KBD
	ScaleFactorGrouping uint8

	// Scale factor band offsets (calculated from tables)
	SectSFBOffset [MaxWindowGroups][15 * 8]uint16
	SWBOffset     [52]uint16
	SWBOffsetMax  uint16

	// Section data
	SectCB    [MaxWindowGroups][15 * 8]uint8
	SectStart [MaxWindowGroups][15 * 8]uint16
	SectEnd   [MaxWindowGroups][15 * 8]uint16
	SFBCB     [MaxWindowGroups][8 * 15]uint8
	NumSec    [MaxWindowGroups]uint8

	// Scale factors: 0-255 for spectral bands, signed positions for
	// intensity bands, noise energies for PNS bands.
	ScaleFactors [MaxWindowGroups][MaxSFB]int16

	// M/S stereo info (first channel of a CPE only)
	MSMaskPresent uint8 // 0=none, 1=per-band, 2=all
	MSUsed        [MaxWindowGroups][MaxSFB]uint8

	NoiseUsed              bool
	IsUsed                 bool
	PulseDataPresent       bool
	TNSDataPresent         bool
	GainControlDataPresent bool
	PredictorDataPresent   bool

	Pul  PulseInfo
	TNS  TNSInfo
	Pred PredInfo
	LTP  LTPInfo
	LTP2 LTPInfo // second channel's LTP data, common window pairs only
	Gain GainControlInfo
}

// IsIntensity returns 1 for in-phase intensity bands, -1 for
// out-of-phase ones and 0 otherwise.
//
// Ported from: is_intensity() in ~/dev/faad2/libfaad/is.h:43-54
func (ics *ICStream) IsIntensity(g, sfb uint8) int8 {
	switch ics.SFBCB[g][sfb] {
	case IntensityHCB:
		return 1
	case IntensityHCB2:
		return -1
	default:
		return 0
	}
}

// IsNoise reports whether a band is perceptual noise substituted.
//
// Ported from: is_noise() in ~/dev/faad2/libfaad/pns.h:47-52
func (ics *ICStream) IsNoise(g, sfb uint8) bool {
	return ics.SFBCB[g][sfb] == NoiseHCB
}
