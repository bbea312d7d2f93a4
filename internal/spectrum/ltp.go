package spectrum

import (
	"math"

	"github.com/llehouerou/go-aacdec/internal/config"
	"github.com/llehouerou/go-aacdec/internal/syntax"
)

// ltpCodebook maps the transmitted coefficient index to its gain.
//
// Ported from: codebook[] in ~/dev/faad2/libfaad/lt_predict.c:68-78
var ltpCodebook = [8]float32{
	0.570829,
	0.696616,
	0.813004,
	0.911304,
	0.984900,
	1.067894,
	1.194601,
	1.369533,
}

// ForwardFilterBank transforms a 2*frameLength time block to frameLength
// MDCT coefficients using the windows of the current frame.
type ForwardFilterBank interface {
	ForwardLTP(seq syntax.WindowSequence, shape, prevShape uint8, in, out []float32)
}

// LTPState returns a zeroed history buffer for one channel.
func LTPState(frameLength uint16) []int16 {
	return make([]int16, 4*int(frameLength))
}

// LTPPrediction adds the long term prediction to the bands that use it.
// The estimate is built from the decoded history in state, delayed by
// the transmitted lag and scaled by the codebook gain, then taken to the
// frequency domain and TNS shaped like the current frame.
//
// Ported from: lt_prediction() in ~/dev/faad2/libfaad/lt_predict.c:80-133
func LTPPrediction(ics *syntax.ICStream, ltp *syntax.LTPInfo, spec []float32, state []int16,
	fb ForwardFilterBank, sfIndex uint8, objectType config.ObjectType, frameLength uint16,
	shape, prevShape uint8) {
	if ics.WindowSequence == syntax.EightShortSequence || !ltp.DataPresent {
		return
	}

	n := 2 * int(frameLength)
	xEst := make([]float32, n)
	coef := ltpCodebook[ltp.Coef&7]
	for i := 0; i < n; i++ {
		xEst[i] = float32(state[n+i-int(ltp.Lag)]) * coef
	}

	est := make([]float32, frameLength)
	fb.ForwardLTP(ics.WindowSequence, shape, prevShape, xEst, est)
	TNSEncodeFrame(ics, sfIndex, objectType, est, frameLength)

	for sfb := uint8(0); sfb < ltp.LastBand; sfb++ {
		if !ltp.LongUsed[sfb] {
			continue
		}
		low := ics.SWBOffset[sfb]
		high := min(ics.SWBOffset[sfb+1], ics.SWBOffsetMax)
		for bin := low; bin < high; bin++ {
			spec[bin] += est[bin]
		}
	}
}

// LTPUpdateState shifts the history by one frame and appends the newly
// decoded time samples and the filter bank overlap.
//
// Layout is [old | time | overlap | zeros], or for LD
// [older | old | time | overlap].
//
// Ported from: lt_update_state() in ~/dev/faad2/libfaad/lt_predict.c:173-213
func LTPUpdateState(state []int16, time, overlap []float32, frameLength uint16, objectType config.ObjectType) {
	n := int(frameLength)
	if objectType == config.ObjectTypeLD {
		for i := 0; i < n; i++ {
			state[i] = state[i+n]
			state[n+i] = state[i+2*n]
			state[2*n+i] = realToInt16(time[i])
			state[3*n+i] = realToInt16(overlap[i])
		}
		return
	}
	for i := 0; i < n; i++ {
		state[i] = state[i+n]
		state[n+i] = realToInt16(time[i])
		state[2*n+i] = realToInt16(overlap[i])
	}
}

// realToInt16 rounds half away from zero and saturates.
//
// Ported from: real_to_int16() in ~/dev/faad2/libfaad/lt_predict.c:152-170
func realToInt16(v float32) int16 {
	r := math.Round(float64(v))
	switch {
	case r >= 32767:
		return 32767
	case r <= -32768:
		return -32768
	}
	return int16(r)
}
