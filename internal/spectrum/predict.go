package spectrum

import (
	"math"

	"github.com/llehouerou/go-aacdec/internal/syntax"
	"github.com/llehouerou/go-aacdec/internal/tables"
)

// Predictor constants.
// Source: ~/dev/faad2/libfaad/ic_predict.h:40-42
const (
	predAlpha = 0.90625
	predA     = 0.953125
	predB     = 0.953125
)

// varOne is 1.0 in the 16-bit predictor state format.
const varOne = 0x3F80

// ResetPredState resets one predictor so it predicts zero.
//
// Ported from: reset_pred_state() in ~/dev/faad2/libfaad/ic_predict.c:198-206
func ResetPredState(s *syntax.PredState) {
	*s = syntax.PredState{VAR: [2]int16{varOne, varOne}}
}

// ResetAllPredictors resets every predictor in states.
//
// Ported from: reset_all_predictors() in ~/dev/faad2/libfaad/ic_predict.c:236-241
func ResetAllPredictors(states []syntax.PredState) {
	for i := range states {
		ResetPredState(&states[i])
	}
}

// ICPrediction runs the MAIN profile backward adaptive predictors over
// the bands below max_pred_sfb, adding the prediction where it is
// enabled, and applies a signalled predictor reset. Short windows reset
// all predictors.
//
// Ported from: ic_prediction() in ~/dev/faad2/libfaad/ic_predict.c:243-278
func ICPrediction(ics *syntax.ICStream, spec []float32, states []syntax.PredState, frameLength uint16, sfIndex uint8) {
	if ics.WindowSequence == syntax.EightShortSequence {
		ResetAllPredictors(states)
		return
	}

	for sfb := uint8(0); sfb < tables.MaxPredSFB(sfIndex); sfb++ {
		low := ics.SWBOffset[sfb]
		high := min(ics.SWBOffset[sfb+1], ics.SWBOffsetMax)
		use := ics.PredictorDataPresent && ics.Pred.PredictionUsed[sfb]
		for bin := low; bin < high; bin++ {
			spec[bin] = icPredict(&states[bin], spec[bin], use)
		}
	}

	if ics.PredictorDataPresent && ics.Pred.PredictorReset && ics.Pred.PredictorResetGroupNumber > 0 {
		for bin := uint16(ics.Pred.PredictorResetGroupNumber - 1); bin < frameLength; bin += 30 {
			ResetPredState(&states[bin])
		}
	}
}

// PNSResetPredState resets the predictors of noise substituted bands.
//
// Ported from: pns_reset_pred_state() in ~/dev/faad2/libfaad/ic_predict.c:208-234
func PNSResetPredState(ics *syntax.ICStream, states []syntax.PredState) {
	if ics.WindowSequence == syntax.EightShortSequence {
		return
	}
	for sfb := uint8(0); sfb < ics.MaxSFB; sfb++ {
		if !ics.IsNoise(0, sfb) {
			continue
		}
		end := min(ics.SWBOffset[sfb+1], ics.SWBOffsetMax)
		for i := ics.SWBOffset[sfb]; i < end; i++ {
			ResetPredState(&states[i])
		}
	}
}

// icPredict predicts one bin with a second order lattice predictor and
// updates its state. The prediction is added to input when pred is set.
//
// Ported from: ic_predict() in ~/dev/faad2/libfaad/ic_predict.c:87-196
func icPredict(s *syntax.PredState, input float32, pred bool) float32 {
	r0, r1 := invQuantPred(s.R[0]), invQuantPred(s.R[1])
	cor0, cor1 := invQuantPred(s.COR[0]), invQuantPred(s.COR[1])
	var0, var1 := invQuantPred(s.VAR[0]), invQuantPred(s.VAR[1])

	k1 := gain(s.VAR[0], cor0, var0)
	out := input
	if pred {
		k2 := gain(s.VAR[1], cor1, var1)
		out = input + fltRound(k1*r0+k2*r1)
	}

	e0 := out
	e1 := e0 - k1*r0
	dr1 := k1 * e0

	var0 = predAlpha*var0 + 0.5*(r0*r0+e0*e0)
	cor0 = predAlpha*cor0 + r0*e0
	var1 = predAlpha*var1 + 0.5*(r1*r1+e1*e1)
	cor1 = predAlpha*cor1 + r1*e1

	r1 = predA * (r0 - dr1)
	r0 = predA * e0

	s.R = [2]int16{quantPred(r0), quantPred(r1)}
	s.COR = [2]int16{quantPred(cor0), quantPred(cor1)}
	s.VAR = [2]int16{quantPred(var0), quantPred(var1)}
	return out
}

// gain returns B*COR/VAR, or 0 while the quantized variance is below 2.
func gain(q int16, cor, v float32) float32 {
	if uint16(q)>>7 < 128 {
		return 0
	}
	return predB * cor / v
}

// fltRound rounds a float32 to 16 significant bits, half away from zero.
//
// Ported from: flt_round() in ~/dev/faad2/libfaad/ic_predict.c:53-74
func fltRound(f float32) float32 {
	bits := math.Float32bits(f)
	hi := bits & 0xffff0000
	if bits&0x00008000 == 0 {
		return math.Float32frombits(hi)
	}
	exp := bits & 0xff800000
	return math.Float32frombits(hi) + math.Float32frombits(exp|0x00010000) - math.Float32frombits(exp)
}

// quantPred keeps the upper 16 bits of a float32.
func quantPred(f float32) int16 {
	return int16(math.Float32bits(f) >> 16)
}

func invQuantPred(q int16) float32 {
	return math.Float32frombits(uint32(uint16(q)) << 16)
}
