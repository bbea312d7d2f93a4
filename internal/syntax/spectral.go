package syntax

// ParseSpectralData Huffman decodes the quantized coefficients of every
// section into specData, in the group-interleaved order of the bitstream.
// Zero, noise and intensity sections carry no coefficients.
//
// Ported from: spectral_data() in ~/dev/faad2/libfaad/syntax.c:2156-2236
func ParseSpectralData(r BitReader, ics *ICStream, specData []int16, frameLength uint16, cb Codebooks) error {
	nshort := frameLength / 8
	groups := uint16(0)

	for g := uint8(0); g < ics.NumWindowGroups; g++ {
		p := groups * nshort

		for i := uint8(0); i < ics.NumSec[g]; i++ {
			sectCB := ics.SectCB[g][i]
			start := ics.SectSFBOffset[g][ics.SectStart[g][i]]
			end := ics.SectSFBOffset[g][ics.SectEnd[g][i]]

			switch sectCB {
			case ZeroHCB, NoiseHCB, IntensityHCB, IntensityHCB2:
				p += end - start
				continue
			}
			if cb == nil {
				return ErrCodebooksMissing
			}

			inc := uint16(4)
			if sectCB >= FirstPairHCB {
				inc = 2
			}
			for k := start; k < end; k += inc {
				if int(p+inc) > len(specData) {
					return ErrBitstreamError
				}
				if err := cb.Spectral(sectCB, r, specData[p:p+inc]); err != nil {
					return err
				}
				p += inc
			}
		}
		groups += uint16(ics.WindowGroupLength[g])
	}
	return nil
}
