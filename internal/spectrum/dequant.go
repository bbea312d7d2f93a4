package spectrum

import (
	"errors"

	"github.com/llehouerou/go-aacdec/internal/syntax"
	"github.com/llehouerou/go-aacdec/internal/tables"
)

// ErrShortSpectrum is returned when a buffer is shorter than the frame.
var ErrShortSpectrum = errors.New("spectrum: buffer shorter than frame length")

// pow2Frac holds 2^(frac/4).
var pow2Frac = [4]float64{1.0, 1.18920711500272, 1.41421356237310, 1.68179283050743}

// Dequantize converts the quantized coefficients of an ICS to spectral
// values: x = sign(q) * |q|^(4/3) * 2^((sf-100)/4). It also undoes the
// group interleaving of short windows, so spec is in window order.
//
// Scale factors outside 0-255 belong to noise or intensity bands and
// are treated as 0.
//
// Ported from: quant_to_spec() in ~/dev/faad2/libfaad/specrec.c:627-700
func Dequantize(ics *syntax.ICStream, quant []int16, spec []float32, frameLength uint16) error {
	if len(quant) < int(frameLength) || len(spec) < int(frameLength) {
		return ErrShortSpectrum
	}
	clear(spec[:frameLength])

	winInc := int(ics.SWBOffset[ics.NumSWB])
	k := 0
	gindex := 0
	for g := uint8(0); g < ics.NumWindowGroups; g++ {
		j := 0
		gincrease := 0
		for sfb := uint8(0); sfb < ics.NumSWB; sfb++ {
			width := int(ics.SWBOffset[sfb+1] - ics.SWBOffset[sfb])

			exp, frac := 0, 0
			if sf := ics.ScaleFactors[g][sfb]; sf >= 0 && sf <= 255 {
				exp, frac = int(sf)>>2, int(sf)&3
			}
			scf := pow2(exp-25) * pow2Frac[frac]

			wa := gindex + j
			for win := uint8(0); win < ics.WindowGroupLength[g]; win++ {
				for bin := 0; bin < width; bin++ {
					if k >= len(quant) || wa+bin >= len(spec) {
						return ErrShortSpectrum
					}
					v, err := tables.IQuant(quant[k])
					if err != nil {
						return err
					}
					spec[wa+bin] = float32(v * scf)
					k++
				}
				gincrease += width
				wa += winInc
			}
			j += width
		}
		gindex += gincrease
	}
	return nil
}

// pow2 returns 2^e for small integer e.
func pow2(e int) float64 {
	if e >= 0 {
		return float64(uint64(1) << uint(e))
	}
	return 1 / float64(uint64(1)<<uint(-e))
}
