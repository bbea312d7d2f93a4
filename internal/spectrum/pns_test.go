package spectrum

import (
	"testing"

	"github.com/llehouerou/go-aacdec/internal/syntax"
)

func noiseICS(t *testing.T, sf int16, bands ...uint8) *syntax.ICStream {
	t.Helper()
	ics := testICS(t, syntax.OnlyLongSequence, 0, 4)
	ics.NoiseUsed = true
	for _, sfb := range bands {
		ics.SFBCB[0][sfb] = syntax.NoiseHCB
		ics.ScaleFactors[0][sfb] = sf
	}
	return ics
}

func TestPNSDecode_Energy(t *testing.T) {
	ics := noiseICS(t, 8, 1)
	spec := make([]float32, 1024)
	spec[0] = 7

	NewPNSState().PNSDecode(ics, spec, 1024)

	energy := 0.0
	for _, v := range spec[4:8] {
		energy += float64(v) * float64(v)
	}
	// amplitude 2^(sf/4) gives energy 2^(sf/2)
	if !near(energy, 16, 1e-3) {
		t.Errorf("band energy: got %v, want 16", energy)
	}
	if spec[0] != 7 || spec[8] != 0 {
		t.Errorf("non-noise bins changed: %v %v", spec[0], spec[8])
	}
}

func TestPNSDecode_Deterministic(t *testing.T) {
	a, b := make([]float32, 1024), make([]float32, 1024)
	NewPNSState().PNSDecode(noiseICS(t, 0, 0, 2), a, 1024)
	NewPNSState().PNSDecode(noiseICS(t, 0, 0, 2), b, 1024)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("bin %d: %v != %v", i, a[i], b[i])
		}
	}

	// the generator state advances across calls
	s := NewPNSState()
	c := make([]float32, 1024)
	s.PNSDecode(noiseICS(t, 0, 0), c, 1024)
	s.PNSDecode(noiseICS(t, 0, 0), c, 1024)
	if c[0] == a[0] && c[1] == a[1] {
		t.Error("second frame repeated the first frame's noise")
	}
}

func TestPNSDecode_DisablesPrediction(t *testing.T) {
	ics := noiseICS(t, 0, 1)
	ics.LTP.LongUsed[1] = true
	ics.LTP2.LongUsed[1] = true
	ics.Pred.PredictionUsed[1] = true
	ics.Pred.PredictionUsed[2] = true

	NewPNSState().PNSDecode(ics, make([]float32, 1024), 1024)

	if ics.LTP.LongUsed[1] || ics.LTP2.LongUsed[1] || ics.Pred.PredictionUsed[1] {
		t.Error("noise band still predicted")
	}
	if !ics.Pred.PredictionUsed[2] {
		t.Error("prediction cleared on a non-noise band")
	}
}

func TestPNSDecodePair_Correlation(t *testing.T) {
	tests := []struct {
		name       string
		mask       uint8
		correlated bool
	}{
		{"ms all", 2, true},
		{"ms off", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			icsL := noiseICS(t, 4, 0)
			icsR := noiseICS(t, 4, 0)
			icsL.MSMaskPresent = tt.mask
			specL, specR := make([]float32, 1024), make([]float32, 1024)

			NewPNSState().PNSDecodePair(icsL, icsR, specL, specR, 1024)

			same := true
			for i := 0; i < 4; i++ {
				if specL[i] != specR[i] {
					same = false
				}
			}
			if same != tt.correlated {
				t.Errorf("channels equal: got %v, want %v (L %v R %v)", same, tt.correlated, specL[:4], specR[:4])
			}
		})
	}
}

func TestPNSDecodePair_LeftMatchesSingle(t *testing.T) {
	single := make([]float32, 1024)
	NewPNSState().PNSDecode(noiseICS(t, 0, 3), single, 1024)

	specL, specR := make([]float32, 1024), make([]float32, 1024)
	icsL, icsR := noiseICS(t, 0, 3), noiseICS(t, 0, 3)
	icsL.MSMaskPresent = 2
	NewPNSState().PNSDecodePair(icsL, icsR, specL, specR, 1024)

	for i := 12; i < 16; i++ {
		if specL[i] != single[i] {
			t.Errorf("bin %d: pair left %v, single %v", i, specL[i], single[i])
		}
	}
}
