package syntax

// PulseInfo contains pulse data. Up to 4 pulses can be added to the
// spectral data of a long block.
//
// Ported from: pulse_info in ~/dev/faad2/libfaad/structs.h:210-216
type PulseInfo struct {
	NumberPulse   uint8 // number of pulses - 1
	PulseStartSFB uint8
	PulseOffset   [4]uint8
	PulseAmp      [4]uint8
}

// ParsePulseData parses pulse_data().
//
// Ported from: pulse_data() in ~/dev/faad2/libfaad/syntax.c:955-983
func ParsePulseData(r BitReader, ics *ICStream, pul *PulseInfo) error {
	pul.NumberPulse = uint8(r.GetBits(2))
	pul.PulseStartSFB = uint8(r.GetBits(6))

	// FAAD2 uses >, so pulse_start_sfb == num_swb is accepted.
	if pul.PulseStartSFB > ics.NumSWB {
		return ErrPulseStartSFB
	}

	for i := uint8(0); i <= pul.NumberPulse; i++ {
		pul.PulseOffset[i] = uint8(r.GetBits(5))
		pul.PulseAmp[i] = uint8(r.GetBits(4))
	}
	return nil
}
