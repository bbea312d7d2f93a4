package spectrum

import (
	"testing"

	"github.com/llehouerou/go-aacdec/internal/syntax"
)

func predICS(t *testing.T, used bool) *syntax.ICStream {
	t.Helper()
	ics := testICS(t, syntax.OnlyLongSequence, 0, 49)
	ics.PredictorDataPresent = true
	for sfb := range ics.Pred.PredictionUsed {
		ics.Pred.PredictionUsed[sfb] = used
	}
	return ics
}

func TestResetPredState(t *testing.T) {
	s := syntax.PredState{R: [2]int16{1, 2}, COR: [2]int16{3, 4}, VAR: [2]int16{5, 6}}
	ResetPredState(&s)
	want := syntax.PredState{VAR: [2]int16{0x3F80, 0x3F80}}
	if s != want {
		t.Errorf("got %+v, want %+v", s, want)
	}
	if invQuantPred(s.VAR[0]) != 1 {
		t.Errorf("reset variance: got %v, want 1", invQuantPred(s.VAR[0]))
	}
}

func TestICPrediction_Converges(t *testing.T) {
	states := make([]syntax.PredState, 1024)
	ResetAllPredictors(states)

	var out []float32
	for frame := 0; frame < 3; frame++ {
		spec := filled(1024, 1000)
		ICPrediction(predICS(t, true), spec, states, 1024, 4)
		out = append(out, spec[0])
	}
	// a fresh predictor needs two frames of history before it has any
	// correlation to predict from
	if out[0] != 1000 || out[1] != 1000 {
		t.Errorf("first frames: got %v, want unchanged input", out[:2])
	}
	if out[2] <= 1000 {
		t.Errorf("third frame: got %v, want a positive prediction added", out[2])
	}
}

func TestICPrediction_NotUsedStillUpdates(t *testing.T) {
	states := make([]syntax.PredState, 1024)
	ResetAllPredictors(states)

	for frame := 0; frame < 3; frame++ {
		spec := filled(1024, 1000)
		ICPrediction(predICS(t, false), spec, states, 1024, 4)
		if spec[0] != 1000 {
			t.Fatalf("frame %d: got %v, want input unchanged", frame, spec[0])
		}
	}
	if states[0].COR[0] == 0 {
		t.Error("predictor state not updated")
	}
	// 44.1 kHz predicts 40 bands, which end at bin 672
	if states[672] != states[1000] || states[671] == states[672] {
		t.Error("bins beyond max_pred_sfb updated")
	}
}

func TestICPrediction_ShortWindowResets(t *testing.T) {
	states := make([]syntax.PredState, 1024)
	for i := range states {
		states[i].R[0] = 0x4000
	}
	ics := testICS(t, syntax.EightShortSequence, 0, 1)
	spec := filled(1024, 3)
	ICPrediction(ics, spec, states, 1024, 4)

	var reset syntax.PredState
	ResetPredState(&reset)
	for _, i := range []int{0, 500, 1023} {
		if states[i] != reset {
			t.Errorf("state %d not reset", i)
		}
	}
	if spec[0] != 3 {
		t.Errorf("short window spectrum changed: %v", spec[0])
	}
}

func TestICPrediction_ResetGroup(t *testing.T) {
	states := make([]syntax.PredState, 1024)
	ResetAllPredictors(states)
	ics := predICS(t, false)
	ics.Pred.PredictorReset = true
	ics.Pred.PredictorResetGroupNumber = 2

	ICPrediction(ics, filled(1024, 1000), states, 1024, 4)

	var reset syntax.PredState
	ResetPredState(&reset)
	for _, i := range []int{1, 31, 61, 1021} {
		if states[i] != reset {
			t.Errorf("state %d in reset group not reset", i)
		}
	}
	if states[0] == reset || states[2] == reset {
		t.Error("states outside the reset group were reset")
	}
}

func TestPNSResetPredState(t *testing.T) {
	states := make([]syntax.PredState, 1024)
	for i := range states {
		states[i].COR[0] = 0x4000
	}
	ics := noiseICS(t, 0, 1)

	PNSResetPredState(ics, states)

	var reset syntax.PredState
	ResetPredState(&reset)
	for i := 4; i < 8; i++ {
		if states[i] != reset {
			t.Errorf("noise bin %d not reset", i)
		}
	}
	if states[3] == reset || states[8] == reset {
		t.Error("non-noise bins reset")
	}
}

func TestFltRound(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{1, 1},
		{-2, -2},
		{1 + 1.0/256, 1 + 1.0/128},       // bit 15 set rounds up
		{1 + 1.0/512, 1},                 // below the rounding bit
		{-(1 + 1.0/256), -(1 + 1.0/128)}, // away from zero
	}
	for _, tt := range tests {
		if got := fltRound(tt.in); got != tt.want {
			t.Errorf("fltRound(%v): got %v, want %v", tt.in, got, tt.want)
		}
	}
}
