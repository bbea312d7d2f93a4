package spectrum

import "github.com/llehouerou/go-aacdec/internal/syntax"

// PulseDecode adds the pulse amplitudes of a long block to its quantized
// coefficients, away from zero.
//
// Ported from: pulse_decode() in ~/dev/faad2/libfaad/pulse.c:36-58
func PulseDecode(ics *syntax.ICStream, quant []int16, frameLength uint16) error {
	pul := &ics.Pul
	k := min(ics.SWBOffset[pul.PulseStartSFB], ics.SWBOffsetMax)

	for i := uint8(0); i <= pul.NumberPulse; i++ {
		k += uint16(pul.PulseOffset[i])
		if k >= frameLength {
			return syntax.ErrPulsePosition
		}
		if quant[k] > 0 {
			quant[k] += int16(pul.PulseAmp[i])
		} else {
			quant[k] -= int16(pul.PulseAmp[i])
		}
	}
	return nil
}
