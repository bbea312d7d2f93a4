package spectrum

import "github.com/llehouerou/go-aacdec/internal/syntax"

// MSDecode converts the M/S coded bands of a pair back to L/R in place:
// L = M + S, R = M - S. Intensity bands of the right channel and noise
// bands of the left are left alone.
//
// Ported from: ms_decode() in ~/dev/faad2/libfaad/ms.c:39-77
func MSDecode(icsL, icsR *syntax.ICStream, specL, specR []float32, frameLength uint16) {
	if icsL.MSMaskPresent < 1 {
		return
	}
	nshort := frameLength / 8
	group := uint16(0)

	for g := uint8(0); g < icsL.NumWindowGroups; g++ {
		for b := uint8(0); b < icsL.WindowGroupLength[g]; b++ {
			for sfb := uint8(0); sfb < icsL.MaxSFB; sfb++ {
				if !msUsed(icsL, g, sfb) || icsR.IsIntensity(g, sfb) != 0 || icsL.IsNoise(g, sfb) {
					continue
				}
				end := min(icsL.SWBOffset[sfb+1], icsL.SWBOffsetMax)
				for i := icsL.SWBOffset[sfb]; i < end; i++ {
					k := group*nshort + i
					l, r := specL[k], specR[k]
					specL[k] = l + r
					specR[k] = l - r
				}
			}
			group++
		}
	}
}
