package spectrum

import (
	"math"

	"github.com/llehouerou/go-aacdec/internal/syntax"
)

// ApplyDRC scales the spectrum band by band with the transmitted dynamic
// range gains. cut weights compression bands and boost the others; both
// are in [0, 1]. A single band covers the whole spectrum.
//
// Ported from: drc_decode() in ~/dev/faad2/libfaad/drc.c:112-168
func ApplyDRC(drc *syntax.DRCInfo, spec []float32, cut, boost float32) {
	bottom := 0
	offset := float64(syntax.DRCRefLevel - int(drc.ProgRefLevel))

	for bd := uint8(0); bd < drc.NumBands && bd < uint8(len(drc.BandTop)); bd++ {
		top := len(spec)
		if drc.NumBands > 1 {
			top = min(4*(int(drc.BandTop[bd])+1), len(spec))
		}

		level := float64(drc.DynRngCtl[bd]) - offset
		var exp float64
		if drc.DynRngSgn[bd] != 0 {
			exp = -float64(cut) * level / 24
		} else {
			exp = float64(boost) * level / 24
		}
		factor := float32(math.Exp2(exp))

		for i := bottom; i < top; i++ {
			spec[i] *= factor
		}
		bottom = max(bottom, top)
	}
}
