package spectrum

import (
	"github.com/llehouerou/go-aacdec/internal/config"
	"github.com/llehouerou/go-aacdec/internal/syntax"
	"github.com/llehouerou/go-aacdec/internal/tables"
)

// TNSDecodeFrame runs the TNS synthesis (all-pole) filters over the
// spectrum of every window.
//
// Ported from: tns_decode_frame() in ~/dev/faad2/libfaad/tns.c:84-135
func TNSDecodeFrame(ics *syntax.ICStream, sfIndex uint8, objectType config.ObjectType, spec []float32, frameLength uint16) {
	tnsFrame(ics, sfIndex, objectType, spec, frameLength, tnsARFilter)
}

// TNSEncodeFrame runs the TNS analysis (all-zero) filters, the inverse
// of TNSDecodeFrame. LTP uses it to shape its predicted spectrum.
//
// Ported from: tns_encode_frame() in ~/dev/faad2/libfaad/tns.c:138-190
func TNSEncodeFrame(ics *syntax.ICStream, sfIndex uint8, objectType config.ObjectType, spec []float32, frameLength uint16) {
	tnsFrame(ics, sfIndex, objectType, spec, frameLength, tnsMAFilter)
}

type tnsFilter func(spec []float32, start, size, inc int, lpc []float32, order uint8)

func tnsFrame(ics *syntax.ICStream, sfIndex uint8, objectType config.ObjectType, spec []float32, frameLength uint16, filter tnsFilter) {
	if !ics.TNSDataPresent {
		return
	}
	tns := &ics.TNS
	nshort := int(frameLength / 8)
	maxTNS := uint16(tables.MaxTNSSFB(sfIndex, objectType, ics.WindowSequence == syntax.EightShortSequence))
	var lpc [TNSMaxOrder + 1]float32

	for w := uint8(0); w < ics.NumWindows; w++ {
		bottom := uint16(ics.NumSWB)

		for f := uint8(0); f < tns.NFilt[w]; f++ {
			top := bottom
			bottom = top - min(top, uint16(tns.Length[w][f]))
			order := min(tns.Order[w][f], TNSMaxOrder)
			if order == 0 {
				continue
			}
			tnsDecodeCoef(order, tns.CoefRes[w], tns.CoefCompress[w][f], tns.Coef[w][f][:], lpc[:])

			start := bandEdge(ics, bottom, maxTNS)
			end := bandEdge(ics, top, maxTNS)
			size := int(end) - int(start)
			if size <= 0 {
				continue
			}

			inc := 1
			first := int(start)
			if tns.Direction[w][f] != 0 {
				inc = -1
				first = int(end) - 1
			}
			filter(spec, int(w)*nshort+first, size, inc, lpc[:], order)
		}
	}
}

// bandEdge maps a band index to a spectral offset, limited by the TNS
// band maximum, max_sfb and swb_offset_max.
func bandEdge(ics *syntax.ICStream, sfb, maxTNS uint16) uint16 {
	sfb = min(sfb, maxTNS, uint16(ics.MaxSFB))
	return min(ics.SWBOffset[sfb], ics.SWBOffsetMax)
}

// tnsDecodeCoef converts transmitted reflection coefficient indices to
// direct form LPC coefficients with the Levinson recursion. lpc[0] is 1.
//
// Ported from: tns_decode_coef() in ~/dev/faad2/libfaad/tns.c:193-242
func tnsDecodeCoef(order, coefRes, coefCompress uint8, coef []uint8, lpc []float32) {
	table := tnsCoefTable(coefCompress, coefRes)

	var refl, b [TNSMaxOrder + 1]float32
	for i := uint8(0); i < order; i++ {
		refl[i] = table[coef[i]&0xF]
	}

	lpc[0] = 1
	for m := uint8(1); m <= order; m++ {
		lpc[m] = refl[m-1]
		for i := uint8(1); i < m; i++ {
			b[i] = lpc[i] + lpc[m]*lpc[m-i]
		}
		for i := uint8(1); i < m; i++ {
			lpc[i] = b[i]
		}
	}
}

// tnsARFilter filters size bins starting at spec[start], stepping by
// inc. The state is a double ring buffer so the inner loop never wraps.
//
// Ported from: tns_ar_filter() in ~/dev/faad2/libfaad/tns.c:244-290
func tnsARFilter(spec []float32, start, size, inc int, lpc []float32, order uint8) {
	var state [2 * TNSMaxOrder]float32
	idx := 0
	n := int(order)

	for i, p := 0, start; i < size; i, p = i+1, p+inc {
		y := spec[p]
		for j := 0; j < n; j++ {
			y -= state[idx+j] * lpc[j+1]
		}
		idx--
		if idx < 0 {
			idx = n - 1
		}
		state[idx] = y
		state[idx+n] = y
		spec[p] = y
	}
}

// tnsMAFilter is the all-zero counterpart of tnsARFilter.
//
// Ported from: tns_ma_filter() in ~/dev/faad2/libfaad/tns.c:292-327
func tnsMAFilter(spec []float32, start, size, inc int, lpc []float32, order uint8) {
	var state [2 * TNSMaxOrder]float32
	idx := 0
	n := int(order)

	for i, p := 0, start; i < size; i, p = i+1, p+inc {
		x := spec[p]
		y := x
		for j := 0; j < n; j++ {
			y += state[idx+j] * lpc[j+1]
		}
		idx--
		if idx < 0 {
			idx = n - 1
		}
		state[idx] = x
		state[idx+n] = x
		spec[p] = y
	}
}
