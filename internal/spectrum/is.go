package spectrum

import (
	"math"

	"github.com/llehouerou/go-aacdec/internal/syntax"
)

// ISDecode reconstructs the intensity coded bands of the right channel
// from the left: R = L * 0.5^(sf/4), negated when the codebook and the
// M/S bit disagree in phase. The left channel is not modified.
//
// Ported from: is_decode() in ~/dev/faad2/libfaad/is.c:46-106
func ISDecode(icsL, icsR *syntax.ICStream, specL, specR []float32, frameLength uint16) {
	if !icsR.IsUsed {
		return
	}
	nshort := frameLength / 8
	group := uint16(0)

	for g := uint8(0); g < icsR.NumWindowGroups; g++ {
		for b := uint8(0); b < icsR.WindowGroupLength[g]; b++ {
			for sfb := uint8(0); sfb < icsR.MaxSFB; sfb++ {
				dir := icsR.IsIntensity(g, sfb)
				if dir == 0 {
					continue
				}
				icsL.Pred.PredictionUsed[sfb] = false
				icsR.Pred.PredictionUsed[sfb] = false

				sf := max(min(icsR.ScaleFactors[g][sfb], 120), -120)
				scale := float32(math.Pow(0.5, 0.25*float64(sf)))
				if dir != invertIntensity(icsL, g, sfb) {
					scale = -scale
				}

				end := min(icsR.SWBOffset[sfb+1], icsL.SWBOffsetMax)
				for i := icsR.SWBOffset[sfb]; i < end; i++ {
					k := group*nshort + i
					specR[k] = specL[k] * scale
				}
			}
			group++
		}
	}
}

// invertIntensity returns -1 when the M/S bit of an intensity band flips
// its phase.
//
// Ported from: invert_intensity() in ~/dev/faad2/libfaad/is.h:56-62
func invertIntensity(ics *syntax.ICStream, g, sfb uint8) int8 {
	if ics.MSMaskPresent == 1 {
		return 1 - 2*int8(ics.MSUsed[g][sfb])
	}
	return 1
}
