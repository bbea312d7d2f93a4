package syntax

// DecodeScaleFactors decodes the differentially coded scale factors of
// every transmitted band.
//
// Three running values are kept, each starting from global_gain: the
// spectral scale factor, the intensity position (from 0) and the noise
// energy (from global_gain-90, first value 9-bit PCM).
//
// Ported from: decode_scale_factors() in ~/dev/faad2/libfaad/syntax.c:1894-1985
func DecodeScaleFactors(r BitReader, ics *ICStream, cb Codebooks) error {
	scaleFactor := int16(ics.GlobalGain)
	isPosition := int16(0)
	noisePCM := true
	noiseEnergy := int16(ics.GlobalGain) - 90

	for g := uint8(0); g < ics.NumWindowGroups; g++ {
		for sfb := uint8(0); sfb < ics.MaxSFB; sfb++ {
			switch ics.SFBCB[g][sfb] {
			case ZeroHCB:
				ics.ScaleFactors[g][sfb] = 0

			case IntensityHCB, IntensityHCB2:
				delta, err := scaleFactorDelta(r, cb)
				if err != nil {
					return err
				}
				isPosition += int16(delta)
				ics.ScaleFactors[g][sfb] = isPosition

			case NoiseHCB:
				if noisePCM {
					noisePCM = false
					noiseEnergy += int16(r.GetBits(9)) - 256
				} else {
					delta, err := scaleFactorDelta(r, cb)
					if err != nil {
						return err
					}
					noiseEnergy += int16(delta)
				}
				ics.ScaleFactors[g][sfb] = noiseEnergy

			default:
				delta, err := scaleFactorDelta(r, cb)
				if err != nil {
					return err
				}
				scaleFactor += int16(delta)
				if scaleFactor < 0 || scaleFactor > 255 {
					return ErrScaleFactorRange
				}
				ics.ScaleFactors[g][sfb] = scaleFactor
			}
		}
	}
	return nil
}

func scaleFactorDelta(r BitReader, cb Codebooks) (int, error) {
	if cb == nil {
		return 0, ErrCodebooksMissing
	}
	return cb.ScaleFactor(r)
}
