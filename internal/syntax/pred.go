package syntax

import "github.com/llehouerou/go-aacdec/internal/tables"

// PredInfo holds MAIN profile prediction side info.
//
// Ported from: pred_info in ~/dev/faad2/libfaad/structs.h:201-207
type PredInfo struct {
	Limit                     uint8 // min(max_sfb, max_pred_sfb)
	PredictorReset            bool
	PredictorResetGroupNumber uint8 // 1-30
	PredictionUsed            [MaxSFB]bool
}

// PredState is the backward adaptive predictor of one spectral bin. The
// values are floats truncated to their upper 16 bits.
//
// Ported from: pred_state in ~/dev/faad2/libfaad/structs.h:51-55
type PredState struct {
	R   [2]int16
	COR [2]int16
	VAR [2]int16
}

// parsePredictionData reads the MAIN profile part of ics_info().
//
// Ported from: ics_info() in ~/dev/faad2/libfaad/syntax.c:876-905
func parsePredictionData(r BitReader, ics *ICStream, sfIndex uint8) {
	pred := &ics.Pred
	pred.Limit = min(ics.MaxSFB, tables.MaxPredSFB(sfIndex))

	pred.PredictorReset = r.Get1Bit() != 0
	if pred.PredictorReset {
		pred.PredictorResetGroupNumber = uint8(r.GetBits(5))
	}
	for sfb := uint8(0); sfb < pred.Limit; sfb++ {
		pred.PredictionUsed[sfb] = r.Get1Bit() != 0
	}
}
