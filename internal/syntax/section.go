package syntax

// ParseSectionData parses section_data(), assigning a Huffman codebook to
// every scalefactor band up to max_sfb.
//
// Ported from: section_data() in ~/dev/faad2/libfaad/syntax.c:1731-1881
func ParseSectionData(r BitReader, ics *ICStream) error {
	sectBits, sectLim := uint(5), uint16(MaxSFB)
	if ics.WindowSequence == EightShortSequence {
		sectBits, sectLim = 3, 8*15
	}
	sectEscVal := uint16(1)<<sectBits - 1

	for g := uint8(0); g < ics.NumWindowGroups; g++ {
		k := uint16(0)
		i := uint16(0)

		for k < uint16(ics.MaxSFB) {
			if r.Error() {
				return ErrBitstreamRead
			}
			if i >= sectLim {
				return ErrSectionLimit
			}

			sectCB := uint8(r.GetBits(4))
			if sectCB == ReservedHCB {
				return ErrReservedCodebook
			}
			ics.SectCB[g][i] = sectCB
			switch sectCB {
			case NoiseHCB:
				ics.NoiseUsed = true
			case IntensityHCB, IntensityHCB2:
				ics.IsUsed = true
			}

			sectLen := uint16(0)
			for {
				incr := uint16(r.GetBits(sectBits))
				sectLen += incr
				if incr != sectEscVal || r.Error() {
					break
				}
				if sectLen > sectLim {
					return ErrSectionLength
				}
			}
			if k+sectLen > sectLim || k+sectLen > uint16(ics.MaxSFB) {
				return ErrSectionLength
			}

			ics.SectStart[g][i] = k
			ics.SectEnd[g][i] = k + sectLen
			for sfb := k; sfb < k+sectLen; sfb++ {
				ics.SFBCB[g][sfb] = sectCB
			}

			k += sectLen
			i++
		}
		ics.NumSec[g] = uint8(i)
	}
	return nil
}
